package imf

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"go-imf-rate-provider/domain"
)

// resolve picks the rate for base->term at the given date, chaining through the pivot when neither side is the pivot
func resolve(t Tables, base, term domain.Currency, at civil.Date, now time.Time) (domain.Rate, bool) {
	switch {
	case base == term:
		return domain.Rate{
			Base:    base,
			Term:    term,
			Factor:  decimal.NewFromInt(1),
			Kind:    domain.KindOn(at, now),
			ValidOn: at,
		}, true
	case base == domain.Pivot:
		return nearest(t.PivotToCurrency[term], at)
	case term == domain.Pivot:
		return nearest(t.CurrencyToPivot[base], at)
	}

	toPivot, ok := nearest(t.CurrencyToPivot[base], at)
	if !ok {
		return domain.Rate{}, false
	}
	fromPivot, ok := nearest(t.PivotToCurrency[term], at)
	if !ok {
		return domain.Rate{}, false
	}
	return domain.Rate{
		Base:   base,
		Term:   term,
		Factor: toPivot.Factor.Mul(fromPivot.Factor),
		Kind:   domain.Historical,
		Chain:  []domain.Rate{toPivot, fromPivot},
	}, true
}

// nearest returns the rate valid exactly at the date, or else the most recent one
func nearest(rates []domain.Rate, at civil.Date) (domain.Rate, bool) {
	if len(rates) == 0 {
		return domain.Rate{}, false
	}
	for _, r := range rates {
		if r.Dated() && r.ValidOn == at {
			return r, true
		}
	}
	return rates[0], true
}
