// Package alias maps currency display names, as the IMF feed spells them, to currency codes.
package alias

import (
	"strings"

	"go-imf-rate-provider/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Table resolves display names to currency codes. It is immutable once built and safe for concurrent reads.
type Table struct {
	byName map[string]domain.Currency
}

// New builds a table from the given name lists. Later lists override earlier ones.
func New(lists ...map[string]domain.Currency) *Table {
	t := &Table{byName: map[string]domain.Currency{}}
	for _, names := range lists {
		for name, code := range names {
			t.byName[normalize(name)] = code
		}
	}
	return t
}

// Default builds the table from the English ISO 4217 names plus the feed's own spellings.
func Default() *Table {
	return New(isoNames, feedNames)
}

// Resolve looks up a display name. A miss is expected for footnotes and unknown rows.
func (t *Table) Resolve(name string) (domain.Currency, bool) {
	code, ok := t.byName[normalize(name)]
	return code, ok
}

// Len number of distinct names known to the table
func (t *Table) Len() int {
	return len(t.byName)
}

// normalize folds case, composes unicode and collapses whitespace, so "Trinidad And Tobago Dollar"
// and "Trinidad and Tobago  Dollar" share a key.
func normalize(name string) string {
	name = strings.Join(strings.Fields(norm.NFC.String(name)), " ")
	// a Caser keeps state, so one per call
	return cases.Fold().String(name)
}
