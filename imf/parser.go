package imf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"

	"go-imf-rate-provider/alias"
	"go-imf-rate-provider/domain"
)

const (
	// values in the following section are SDR units per currency unit
	markerPivotPerCurrency = "SDRs per Currency unit"
	// values in the following section are currency units per SDR
	markerCurrencyPerPivot = "Currency units per SDR"
	headerLabel            = "Currency"
	headerDateLayout       = "January 2, 2006"

	maxLineLength = 1 << 20
)

// ErrFormat the feed is structurally broken, e.g. a header date cannot be read
var ErrFormat = errors.New("malformed feed")

// ErrRead the feed stream could not be read
var ErrRead = errors.New("reading feed")

var (
	errZeroValue = errors.New("zero value")
	valuePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,10})?$`)
	one          = decimal.NewFromInt(1)
)

// Tables the two directed rate collections, keyed by the non-pivot currency.
// Every slice is ordered most recent first.
type Tables struct {
	CurrencyToPivot map[domain.Currency][]domain.Rate
	PivotToCurrency map[domain.Currency][]domain.Rate
}

func emptyTables() Tables {
	return Tables{
		CurrencyToPivot: map[domain.Currency][]domain.Rate{},
		PivotToCurrency: map[domain.Currency][]domain.Rate{},
	}
}

type section int

const (
	noSection section = iota
	currencyToPivot
	pivotToCurrency
)

// Parser reads the tab separated IMF rate feed
type Parser struct {
	aliases *alias.Table
	logger  log.Logger
	now     func() time.Time
}

// NewParser constructs a Parser resolving currency names through aliases
func NewParser(aliases *alias.Table, logger log.Logger, now func() time.Time) *Parser {
	return &Parser{
		aliases: aliases,
		logger:  logger,
		now:     now,
	}
}

// parse state for a single feed
type parse struct {
	*Parser
	at     time.Time
	today  civil.Date
	active section
	dates  []civil.Date
	line   int
	tables Tables
	stats  domain.ReloadStats
}

// Parse reads the whole feed. Bad data lines and values are skipped and logged; only an unreadable
// stream (ErrRead) or an unreadable header (ErrFormat) fails the parse.
func (p *Parser) Parse(r io.Reader) (Tables, domain.ReloadStats, error) {
	now := p.now()
	st := &parse{
		Parser: p,
		at:     now,
		today:  civil.DateOf(now),
		tables: emptyTables(),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		st.line++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		st.stats.Lines++

		// both markers also start with the header label
		switch {
		case strings.HasPrefix(line, markerPivotPerCurrency):
			st.active = pivotToCurrency
		case strings.HasPrefix(line, markerCurrencyPerPivot):
			st.active = currencyToPivot
		case strings.HasPrefix(line, headerLabel):
			dates, err := parseHeader(line)
			if err != nil {
				return Tables{}, st.stats, fmt.Errorf("%w: line %d: %v", ErrFormat, st.line, err)
			}
			st.dates = dates
		default:
			st.dataLine(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Tables{}, st.stats, fmt.Errorf("%w: %v", ErrRead, err)
	}

	st.stats.CurrencyToPivot = finish(st.tables.CurrencyToPivot)
	st.stats.PivotToCurrency = finish(st.tables.PivotToCurrency)
	return st.tables, st.stats, nil
}

func (st *parse) dataLine(line string) {
	if st.active == noSection {
		level.Debug(st.logger).Log("msg", "ignoring line before first section", "line", st.line)
		return
	}

	parts := strings.Split(line, "\t")
	name := strings.TrimSpace(parts[0])
	code, ok := st.aliases.Resolve(name)
	if !ok {
		level.Debug(st.logger).Log("msg", "uninterpretable currency, skipping line", "line", st.line, "name", name)
		st.stats.SkippedLines++
		return
	}

	for i, cell := range parts[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if i >= len(st.dates) || st.dates[i].IsZero() {
			level.Debug(st.logger).Log("msg", "no date for column", "line", st.line, "column", i+1, "currency", code)
			continue
		}
		date := st.dates[i]

		value, err := parseValue(cell)
		if err != nil {
			level.Debug(st.logger).Log("msg", "skipping value", "line", st.line, "column", i+1, "currency", code, "value", cell, "err", err)
			st.stats.SkippedValues++
			continue
		}
		if date.After(st.today) {
			level.Debug(st.logger).Log("msg", "skipping future value", "line", st.line, "currency", code, "date", date)
			st.stats.SkippedValues++
			continue
		}

		rate := domain.Rate{
			Factor:  one.Div(value),
			Kind:    domain.KindOn(date, st.at),
			ValidOn: date,
		}
		if st.active == currencyToPivot {
			rate.Base, rate.Term = code, domain.Pivot
			st.tables.CurrencyToPivot[code] = append(st.tables.CurrencyToPivot[code], rate)
		} else {
			rate.Base, rate.Term = domain.Pivot, code
			st.tables.PivotToCurrency[code] = append(st.tables.PivotToCurrency[code], rate)
		}
	}
}

// parseHeader reads the column dates, e.g. "Currency\tJanuary 31, 2013\tJanuary 30, 2013".
// Empty cells yield a zero date.
func parseHeader(line string) ([]civil.Date, error) {
	parts := strings.Split(line, "\t")
	dates := make([]civil.Date, 0, len(parts))
	for _, cell := range parts[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			dates = append(dates, civil.Date{})
			continue
		}
		t, err := time.Parse(headerDateLayout, cell)
		if err != nil {
			return nil, fmt.Errorf("header date [%v]: %w", cell, err)
		}
		dates = append(dates, civil.DateOf(t))
	}
	return dates, nil
}

// parseValue accepts plain decimals with at most ten fraction digits
func parseValue(s string) (decimal.Decimal, error) {
	if !valuePattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("not a plain decimal: %q", s)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if v.IsZero() {
		return decimal.Zero, errZeroValue
	}
	return v, nil
}

// finish orders every sequence most recent first and drops repeated dates, keeping the observation read last.
// It returns the number of records kept.
func finish(table map[domain.Currency][]domain.Rate) int {
	count := 0
	for code, rates := range table {
		slices.SortStableFunc(rates, compareNewestFirst)
		kept := rates[:0]
		for i, r := range rates {
			if i+1 < len(rates) && r.Dated() && rates[i+1].ValidOn == r.ValidOn {
				continue
			}
			kept = append(kept, r)
		}
		table[code] = kept
		count += len(kept)
	}
	return count
}

// compareNewestFirst orders by date descending, undated rates last
func compareNewestFirst(a, b domain.Rate) int {
	switch {
	case !a.Dated() && !b.Dated():
		return 0
	case !a.Dated():
		return 1
	case !b.Dated():
		return -1
	case a.ValidOn.After(b.ValidOn):
		return -1
	case a.ValidOn.Before(b.ValidOn):
		return 1
	}
	return 0
}
