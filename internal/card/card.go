package card

import "strings"

// DefaultDomain is used when a card belongs to no domain
const DefaultDomain = "Colorless"

// Record represents a normalized card as written to the expert data file
type Record struct {
	ID         string    `json:"id"`                   // Collector number (e.g., OGN-001)
	Name       string    `json:"name"`                 // Card name
	Rarity     string    `json:"rarity"`               // Lower-cased rarity
	Domain     string    `json:"domain"`               // Comma-joined domains or Colorless
	TypeLine   string    `json:"type_line"`            // Primary type, optionally " - " and subtypes
	Stats      Stats     `json:"stats"`                // Energy, might and power
	RulesText  RulesText `json:"rules_text"`           // Rules text and its keywords
	Supertypes string    `json:"supertypes,omitempty"` // Lower-cased supertypes (e.g., basic)
	Tags       []string  `json:"tags,omitempty"`       // Trimmed tags
	ImageURL   string    `json:"image_url,omitempty"`  // Absolute image URL
}

// Stats holds the numeric (or symbolic) card statistics
type Stats struct {
	Energy Value `json:"energy"`
	Might  Value `json:"might"`
	Power  Value `json:"power"`
}

// RulesText holds the verbatim rules text and the keywords found in it
type RulesText struct {
	Raw      string   `json:"raw"`
	Keywords []string `json:"keywords"`
}

// PrimaryType returns the part of the type line before the subtypes
func (r *Record) PrimaryType() string {
	primary, _, _ := strings.Cut(r.TypeLine, TypeSeparator)
	return primary
}

// TypeSeparator separates the primary type from its subtypes in a type line
const TypeSeparator = " - "

// TypeLine joins a primary type with its subtypes
func TypeLine(primary string, subtypes []string) string {
	if len(subtypes) == 0 {
		return primary
	}
	return primary + TypeSeparator + strings.Join(subtypes, ", ")
}
