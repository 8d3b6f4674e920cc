package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/riftdata/internal/card"
	"github.com/arcanaland/riftdata/internal/parser"
)

// Card represents a record from the legacy card data file
type Card struct {
	ID       FlexString      `json:"id"`
	Name     string          `json:"name"`
	Rarity   string          `json:"rarity"`
	Domain   string          `json:"domain"`
	Type     string          `json:"type"`
	Tags     []string        `json:"tags"`
	Cost     json.RawMessage `json:"cost"`
	Stats    Stats           `json:"stats"`
	Ability  Ability         `json:"ability"`
	ImageURL string          `json:"image_url"`
}

// Stats holds legacy combat stats, kept as raw JSON so they can be copied
type Stats struct {
	Might json.RawMessage `json:"might"`
	Power json.RawMessage `json:"power"`
}

// Ability holds the legacy rules text fields
type Ability struct {
	RawText    string   `json:"raw_text"`
	EffectText string   `json:"effect_text"`
	Keywords   []string `json:"keywords"`
}

// FlexString accepts a JSON string or number
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %s", data)
	}
	*s = FlexString(n.String())
	return nil
}

// LoadFile reads a legacy JSON array of cards
func LoadFile(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading legacy cards: %w", err)
	}

	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("error parsing legacy cards %s: %w", path, err)
	}
	return cards, nil
}

// Convert maps a legacy card onto the normalized record schema
func Convert(c Card) *card.Record {
	cardType := parser.Lower(c.Type)
	if cardType == "" {
		cardType = "unit"
	}

	tags := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		tags[i] = parser.Lower(t)
	}

	raw := c.Ability.RawText
	if raw == "" {
		raw = c.Ability.EffectText
	}

	keywords := c.Ability.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	domain := c.Domain
	if domain == "" {
		domain = card.DefaultDomain
	}

	return &card.Record{
		ID:       string(c.ID),
		Name:     c.Name,
		Rarity:   parser.Lower(c.Rarity),
		Domain:   domain,
		TypeLine: card.TypeLine(cardType, tags),
		Stats: card.Stats{
			Energy: card.Raw(c.Cost),
			Might:  card.Raw(c.Stats.Might),
			Power:  card.Raw(c.Stats.Power),
		},
		RulesText: card.RulesText{
			Raw:      raw,
			Keywords: keywords,
		},
		ImageURL: c.ImageURL,
	}
}

// Reconcile appends every legacy card whose name (ignoring case) is not
// already among records. CSV records always win; legacy cards only fill
// gaps. It returns the merged list and the names of the cards it added.
func Reconcile(records []*card.Record, legacy []Card) ([]*card.Record, []string) {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[parser.Lower(r.Name)] = true
	}

	var added []string
	for _, c := range legacy {
		name := parser.Lower(c.Name)
		if name == "" || strings.TrimSpace(string(c.ID)) == "" || known[name] {
			continue
		}
		records = append(records, Convert(c))
		added = append(added, c.Name)
	}

	return records, added
}
