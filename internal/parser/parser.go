package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/riftdata/internal/card"
	"github.com/arcanaland/riftdata/internal/keyword"
)

// Column names of the primary card CSV
const (
	ColName       = "Name"
	ColNumber     = "Collector Number"
	ColDomain1    = "Domain 1"
	ColDomain2    = "Domain 2"
	ColTypes      = "types"
	ColSupertypes = "supertypes"
	ColEnergy     = "Energy"
	ColMight      = "Might"
	ColPower      = "Power"
	ColRules      = "Description"
	ColAltText    = "ALT TEXT"
	ColTags       = "Tags"
	ColRarity     = "Rarity"

	subtypeSlots = 5
	defaultType  = "unit"
)

// SubtypeColumn returns the column name of subtype slot n (1-based)
func SubtypeColumn(n int) string {
	return fmt.Sprintf("Subtype %d", n)
}

// ParseRow converts one CSV row into a card record. It reports false when
// the row has no name or no collector number.
func ParseRow(row Row) (*card.Record, bool) {
	name := strings.TrimSpace(row.Get(ColName))
	if name == "" {
		return nil, false
	}

	id := strings.TrimSpace(row.Get(ColNumber))
	if id == "" {
		return nil, false
	}

	// Domains
	var domains []string
	for _, col := range []string{ColDomain1, ColDomain2} {
		if d := Capitalize(strings.TrimSpace(row.Get(col))); present(d) {
			domains = append(domains, d)
		}
	}
	domain := card.DefaultDomain
	if len(domains) > 0 {
		domain = strings.Join(domains, ", ")
	}

	// Type line
	cardType := Lower(strings.TrimSpace(row.Get(ColTypes)))
	if cardType == "" {
		cardType = defaultType
	}
	var subtypes []string
	for i := 1; i <= subtypeSlots; i++ {
		if st := strings.TrimSpace(row.Get(SubtypeColumn(i))); present(st) {
			subtypes = append(subtypes, Lower(st))
		}
	}

	description := strings.TrimSpace(row.Get(ColRules))
	// ALT TEXT is part of the source sheet but not of the expert schema
	_ = strings.TrimSpace(row.Get(ColAltText))

	rec := &card.Record{
		ID:       id,
		Name:     name,
		Rarity:   Lower(strings.TrimSpace(row.Get(ColRarity))),
		Domain:   domain,
		TypeLine: card.TypeLine(cardType, subtypes),
		Stats: card.Stats{
			Energy: ParseNumber(row.Get(ColEnergy)),
			Might:  ParseNumber(row.Get(ColMight)),
			Power:  ParsePower(row.Get(ColPower)),
		},
		RulesText: card.RulesText{
			Raw:      description,
			Keywords: keyword.Extract(description),
		},
	}

	if st := strings.TrimSpace(row.Get(ColSupertypes)); present(st) {
		rec.Supertypes = Lower(st)
	}

	if tags := strings.TrimSpace(row.Get(ColTags)); present(tags) {
		rec.Tags = splitTags(tags)
	}

	return rec, true
}

// ParseNumber parses an energy or might cell. Blank cells, "-" and anything
// that is not a finite number are absent.
func ParseNumber(s string) card.Value {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return card.Value{}
	}
	f, ok := parseFloat(s)
	if !ok {
		return card.Value{}
	}
	return card.Number(f)
}

// ParsePower parses a power cell. A run of C's is a symbolic cost and is kept
// upper-cased, numbers are parsed and anything else is kept as written.
func ParsePower(s string) card.Value {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return card.Value{}
	}
	if strings.Trim(s, "Cc") == "" {
		return card.Text(strings.ToUpper(s))
	}
	if f, ok := parseFloat(s); ok {
		return card.Number(f)
	}
	return card.Text(s)
}

func parseFloat(s string) (float64, bool) {
	// Hex floats are valid Go syntax but not valid sheet numbers
	if strings.ContainsAny(s, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Capitalize upper-cases the first letter of s and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + Lower(s[size:])
}

// Lower applies full Unicode lower-case mapping
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// present reports whether a cell holds a real value rather than a blank or
// a spreadsheet "nan"
func present(s string) bool {
	return s != "" && !strings.EqualFold(s, "nan")
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
