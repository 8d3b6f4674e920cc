package keyword

import (
	"regexp"
	"strings"
)

// vocabulary lists the ability keywords recognized outside of brackets
var vocabulary = []string{
	"Accelerate", "Action", "Reaction", "Hidden", "Vision", "Legion",
	"Assault", "Defender", "Elusive", "Fearsome", "Mighty", "Temporary",
	"Quick Attack", "Overwhelm", "Lifesteal", "Barrier", "Spellshield",
	"Regeneration", "Tough", "Challenger", "Scout", "Fury", "Attune",
	"Deep", "Ephemeral", "Last Breath", "Nexus Strike", "Play", "Strike",
	"Support", "Vulnerable", "Capture", "Frostbite", "Immobile", "Recall",
	"Silence", "Stun", "Obliterate", "Rally", "Enlightened", "Reputation",
	"Lurk", "Predict", "Invoke", "Behold", "Augment", "Impact", "Formidable",
	"Equipment", "Attach", "Hallowed", "Evolve", "Husk", "Boon", "Flow",
}

var (
	bracketPattern = regexp.MustCompile(`\[([^\]]+)\]`)
	numberSuffix   = regexp.MustCompile(`\s+\d+$`)

	// usagePatterns confirms a vocabulary keyword is used as an annotation,
	// either [Keyword], [Keyword N] or (Keyword
	usagePatterns = compileUsagePatterns(vocabulary)
)

func compileUsagePatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, kw := range words {
		q := regexp.QuoteMeta(kw)
		patterns[i] = regexp.MustCompile(`(?i)\[` + q + `(?:\s+\d+)?\]|\(` + q)
	}
	return patterns
}

// Vocabulary returns a copy of the known keyword table
func Vocabulary() []string {
	return append([]string(nil), vocabulary...)
}

// Extract returns the keywords found in a card's rules text, in order of
// first detection and without duplicates.
func Extract(text string) []string {
	keywords := []string{}
	seen := make(map[string]bool)
	bases := make(map[string]bool)

	add := func(kw string) {
		keywords = append(keywords, kw)
		seen[kw] = true
		bases[BaseName(kw)] = true
	}

	// Bracketed keywords are kept verbatim, including any number
	for _, m := range bracketPattern.FindAllStringSubmatch(text, -1) {
		kw := strings.TrimSpace(m[1])
		if kw == "" || seen[kw] {
			continue
		}
		add(kw)
	}

	lower := strings.ToLower(text)
	for i, kw := range vocabulary {
		if bases[kw] || !strings.Contains(lower, strings.ToLower(kw)) {
			continue
		}
		if usagePatterns[i].MatchString(text) {
			add(kw)
		}
	}

	return keywords
}

// BaseName strips a trailing number from a keyword ("Assault 2" -> "Assault")
func BaseName(kw string) string {
	return numberSuffix.ReplaceAllString(kw, "")
}
