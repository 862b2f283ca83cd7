package imf

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-imf-rate-provider/alias"
	"go-imf-rate-provider/domain"
)

const sampleFeed = "SDRs per Currency unit (2)\n" +
	"\n" +
	"Currency\tJanuary 31, 2013\tJanuary 30, 2013\tJanuary 29, 2013\n" +
	"Euro\t0.8791080000\t0.8789170000\t0.8742470000\n" +
	"U.S. Dollar\t0.6497360000\t\t0.6502790000\n" +
	"Unknown Money\t1.0000000000\t1.0000000000\t1.0000000000\n" +
	"\n" +
	"Currency units per SDR(3)\n" +
	"\n" +
	"Currency\tJanuary 31, 2013\tJanuary 30, 2013\tJanuary 29, 2013\n" +
	"Euro\t1.1375200000\t1.1377600000\t1.1438400000\n" +
	"U.S. Dollar\t1.5390800000\t1.5381500000\t1.5378000000\n"

func clock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func newTestParser(now func() time.Time) *Parser {
	return NewParser(alias.Default(), log.NewNopLogger(), now)
}

func inverse(s string) decimal.Decimal {
	return decimal.NewFromInt(1).Div(decimal.RequireFromString(s))
}

func date(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertFactor(t *testing.T, want decimal.Decimal, got decimal.Decimal) {
	t.Helper()
	assert.True(t, want.Equal(got), "factor: want %v, got %v", want, got)
}

func TestParser_Parse(t *testing.T) {
	tables, stats, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)

	eur := tables.PivotToCurrency["EUR"]
	require.Len(t, eur, 3)
	assert.Equal(t, domain.Pivot, eur[0].Base)
	assert.Equal(t, domain.Currency("EUR"), eur[0].Term)
	assert.Equal(t, date("2013-01-31"), eur[0].ValidOn)
	assertFactor(t, inverse("0.8791080000"), eur[0].Factor)
	assert.Equal(t, domain.Historical, eur[0].Kind)

	eurToSdr := tables.CurrencyToPivot["EUR"]
	require.Len(t, eurToSdr, 3)
	assert.Equal(t, domain.Currency("EUR"), eurToSdr[0].Base)
	assert.Equal(t, domain.Pivot, eurToSdr[0].Term)
	assertFactor(t, inverse("1.1375200000"), eurToSdr[0].Factor)

	// empty column is no observation
	usd := tables.PivotToCurrency["USD"]
	require.Len(t, usd, 2)
	assert.Equal(t, date("2013-01-31"), usd[0].ValidOn)
	assert.Equal(t, date("2013-01-29"), usd[1].ValidOn)

	assert.Len(t, tables.CurrencyToPivot, 2)
	assert.Len(t, tables.PivotToCurrency, 2)
	assert.Equal(t, domain.ReloadStats{
		Lines:           9,
		CurrencyToPivot: 6,
		PivotToCurrency: 5,
		SkippedLines:    1,
		SkippedValues:   0,
	}, stats)
}

func TestParser_DirectionsAreNotReconciled(t *testing.T) {
	feed := "SDRs per Currency unit\n" +
		"Currency\tJanuary 31, 2013\n" +
		"Euro\t0.5000000000\n" +
		"Currency units per SDR\n" +
		"Currency\tJanuary 31, 2013\n" +
		"Euro\t4.0000000000\n"

	tables, _, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	sdrToEur := tables.PivotToCurrency["EUR"][0]
	eurToSdr := tables.CurrencyToPivot["EUR"][0]
	assertFactor(t, decimal.NewFromInt(2), sdrToEur.Factor)
	assertFactor(t, decimal.RequireFromString("0.25"), eurToSdr.Factor)
	assert.False(t, sdrToEur.Factor.Mul(eurToSdr.Factor).Equal(decimal.NewFromInt(1)))
}

func TestParser_OrdersNewestFirst(t *testing.T) {
	feed := "Currency units per SDR\n" +
		"Currency\tJanuary 29, 2013\tJanuary 31, 2013\tJanuary 25, 2013\tJanuary 30, 2013\n" +
		"Euro\t1.1\t1.2\t1.3\t1.4\n"

	tables, _, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	rates := tables.CurrencyToPivot["EUR"]
	require.Len(t, rates, 4)
	for i := 0; i+1 < len(rates); i++ {
		assert.False(t, rates[i].ValidOn.Before(rates[i+1].ValidOn), "rate %d before rate %d", i, i+1)
	}
	assert.Equal(t, date("2013-01-31"), rates[0].ValidOn)
	assert.Equal(t, date("2013-01-25"), rates[3].ValidOn)
}

func TestParser_MalformedValueIsolation(t *testing.T) {
	feed := "Currency units per SDR\n" +
		"Currency\tJanuary 31, 2013\tJanuary 30, 2013\tJanuary 29, 2013\n" +
		"Euro\t0.8791080000\tabc\t\n"

	tables, stats, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	rates := tables.CurrencyToPivot["EUR"]
	require.Len(t, rates, 1)
	assert.Equal(t, date("2013-01-31"), rates[0].ValidOn)
	assert.Equal(t, 1, stats.SkippedValues)
}

func TestParser_ZeroValueRejected(t *testing.T) {
	feed := "Currency units per SDR\n" +
		"Currency\tJanuary 31, 2013\tJanuary 30, 2013\n" +
		"Euro\t0\t0.5000000000\n" +
		"Japanese Yen\t0.0000000000\t\n"

	tables, stats, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	rates := tables.CurrencyToPivot["EUR"]
	require.Len(t, rates, 1)
	assert.Equal(t, date("2013-01-30"), rates[0].ValidOn)
	assert.NotContains(t, tables.CurrencyToPivot, domain.Currency("JPY"))
	assert.Equal(t, 2, stats.SkippedValues)
}

func TestParser_UnknownCurrencySkipsLine(t *testing.T) {
	feed := "Currency units per SDR\n" +
		"Currency\tJanuary 31, 2013\n" +
		"Atlantis Drachma\t1.0000000000\n" +
		"U.K. Pound Sterling\t0.9000000000\n"

	tables, stats, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	assert.Len(t, tables.CurrencyToPivot, 1)
	assert.Len(t, tables.CurrencyToPivot["GBP"], 1)
	assert.Equal(t, 1, stats.SkippedLines)
}

func TestParser_IgnoresLinesBeforeFirstSection(t *testing.T) {
	feed := "Representative rates for selected currencies\n" +
		"Euro\t0.5000000000\n" +
		"Currency\tJanuary 31, 2013\n" +
		"Euro\t0.5000000000\n" +
		"SDRs per Currency unit\n" +
		"Euro\t0.2500000000\n"

	tables, _, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	assert.Empty(t, tables.CurrencyToPivot)
	require.Len(t, tables.PivotToCurrency["EUR"], 1)
	assertFactor(t, decimal.NewFromInt(4), tables.PivotToCurrency["EUR"][0].Factor)
}

func TestParser_ShortHeaderMeansNoObservation(t *testing.T) {
	feed := "Currency units per SDR\n" +
		"Currency\tJanuary 31, 2013\n" +
		"Euro\t0.5000000000\t0.2500000000\t0.1250000000\n"

	tables, stats, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	assert.Len(t, tables.CurrencyToPivot["EUR"], 1)
	assert.Equal(t, 0, stats.SkippedValues)
}

func TestParser_Kind(t *testing.T) {
	tables, _, err := newTestParser(clock(2013, time.January, 31)).Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)

	rates := tables.PivotToCurrency["EUR"]
	require.Len(t, rates, 3)
	assert.Equal(t, domain.Provisional, rates[0].Kind)
	assert.Equal(t, domain.Historical, rates[1].Kind)
	assert.Equal(t, domain.Historical, rates[2].Kind)
}

func TestParser_DropsFutureValues(t *testing.T) {
	tables, stats, err := newTestParser(clock(2013, time.January, 30)).Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)

	rates := tables.PivotToCurrency["EUR"]
	require.Len(t, rates, 2)
	assert.Equal(t, date("2013-01-30"), rates[0].ValidOn)
	// the January 31 column of EUR and USD, in both sections
	assert.Equal(t, 4, stats.SkippedValues)
}

func TestParser_RepeatedDateKeepsLastValue(t *testing.T) {
	feed := "Currency units per SDR\n" +
		"Currency\tJanuary 31, 2013\n" +
		"Euro\t0.5000000000\n" +
		"Currency\tJanuary 30, 2013\tJanuary 31, 2013\n" +
		"Euro\t0.1000000000\t0.2500000000\n"

	tables, stats, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	rates := tables.CurrencyToPivot["EUR"]
	require.Len(t, rates, 2)
	assert.Equal(t, date("2013-01-31"), rates[0].ValidOn)
	assertFactor(t, decimal.NewFromInt(4), rates[0].Factor)
	assert.Equal(t, 2, stats.CurrencyToPivot)
}

func TestParser_CarriageReturns(t *testing.T) {
	feed := strings.ReplaceAll(sampleFeed, "\n", "\r\n")

	tables, _, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	require.NoError(t, err)

	assert.Len(t, tables.PivotToCurrency["EUR"], 3)
	assert.Len(t, tables.CurrencyToPivot["USD"], 3)
}

func TestParser_BadHeader(t *testing.T) {
	feed := "Currency units per SDR\n" +
		"Currency\tJanuary 31, 2013\t31/01/2013\n" +
		"Euro\t0.5000000000\t0.5000000000\n"

	_, _, err := newTestParser(clock(2013, time.February, 1)).Parse(strings.NewReader(feed))
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestParser_ReadFailure(t *testing.T) {
	_, _, err := newTestParser(clock(2013, time.February, 1)).Parse(iotest.ErrReader(errors.New("disk on fire")))
	assert.True(t, errors.Is(err, ErrRead))
}

func TestParseHeader(t *testing.T) {
	dates, err := parseHeader("Currency\tMay 01, 2013\t April 30, 2013 \t\tApril 9, 2013")
	require.NoError(t, err)
	assert.Equal(t, []civil.Date{date("2013-05-01"), date("2013-04-30"), {}, date("2013-04-09")}, dates)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"ten digits", "0.8791080000", "0.879108", false},
		{"six digits", "1.137520", "1.13752", false},
		{"integer", "12", "12", false},
		{"eleven digits", "0.12345678901", "", true},
		{"zero", "0.0000000000", "", true},
		{"negative", "-1.5", "", true},
		{"grouping", "1,234.5", "", true},
		{"exponent", "1e3", "", true},
		{"text", "NA", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValue(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertFactor(t, decimal.RequireFromString(tt.want), got)
		})
	}
}

func TestFinish_UndatedLast(t *testing.T) {
	rates := map[domain.Currency][]domain.Rate{
		"EUR": {
			{Factor: decimal.NewFromInt(1)},
			{ValidOn: date("2013-01-25")},
			{ValidOn: date("2013-01-31")},
		},
	}

	finish(rates)

	got := rates["EUR"]
	require.Len(t, got, 3)
	assert.Equal(t, date("2013-01-31"), got[0].ValidOn)
	assert.Equal(t, date("2013-01-25"), got[1].ValidOn)
	assert.False(t, got[2].Dated())
}
