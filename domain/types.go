package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// ErrNoRate no rate is available for a currency pair at the requested date
var ErrNoRate = errors.New("no rate available")

// ErrValidation input failed validation
var ErrValidation = errors.New("validation error")

// Currency a currency code
type Currency string

// Pivot the special drawing right, every feed value is quoted against it
const Pivot Currency = "SDR"

// ParseCurrency accepts the pivot code or any recognized ISO 4217 code, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if Currency(code) == Pivot {
		return Pivot, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: unknown currency [%v]", ErrValidation, s)
	}
	return Currency(unit.String()), nil
}

// RateKind tells settled rates from same-day ones
type RateKind int

const (
	Historical RateKind = iota
	Provisional
)

func (k RateKind) String() string {
	if k == Provisional {
		return "provisional"
	}
	return "historical"
}

func (k RateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindOn is Provisional when the date is today, Historical otherwise.
func KindOn(d civil.Date, now time.Time) RateKind {
	if d == civil.DateOf(now) {
		return Provisional
	}
	return Historical
}

// Rate an exchange rate: 1 unit of Base == Factor units of Term.
// A chained rate carries its two legs in Chain and no ValidOn.
type Rate struct {
	Base    Currency
	Term    Currency
	Factor  decimal.Decimal
	Kind    RateKind
	ValidOn civil.Date
	Chain   []Rate
}

// Dated reports whether the rate carries a valid-on date
func (r Rate) Dated() bool {
	return !r.ValidOn.IsZero()
}

func (r Rate) Chained() bool {
	return len(r.Chain) > 0
}

// Query a point-in-time rate request. A zero AsOf means today.
type Query struct {
	Base Currency
	Term Currency
	AsOf time.Time
}

// Date truncates AsOf to its calendar date, falling back to the date of now.
func (q Query) Date(now time.Time) civil.Date {
	if q.AsOf.IsZero() {
		return civil.DateOf(now)
	}
	return civil.DateOf(q.AsOf)
}

// Exchanged the result of converting an amount
type Exchanged struct {
	Rate   Rate
	Amount decimal.Decimal
}

// ReloadStats summarizes one parsed feed
type ReloadStats struct {
	Lines           int `json:"lines"`
	CurrencyToPivot int `json:"currencyToPivot"`
	PivotToCurrency int `json:"pivotToCurrency"`
	SkippedLines    int `json:"skippedLines"`
	SkippedValues   int `json:"skippedValues"`
}
