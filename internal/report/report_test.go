package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/riftdata/internal/card"
)

func sampleRecords() []*card.Record {
	return []*card.Record{
		{
			ID:       "001",
			Name:     "Test Unit",
			Rarity:   "common",
			Domain:   "Colorless",
			TypeLine: "unit",
			Stats:    card.Stats{Energy: card.Number(2), Might: card.Number(3)},
			RulesText: card.RulesText{
				Raw:      "Héros <3 & co",
				Keywords: []string{},
			},
		},
		{
			ID:        "002",
			Name:      "Bolt",
			Domain:    "Fury",
			TypeLine:  "spell - trick",
			Stats:     card.Stats{Power: card.Text("CC")},
			RulesText: card.RulesText{Keywords: []string{"Action"}},
			Tags:      []string{"Noxus"},
			ImageURL:  "https://riftdecks.com/img/bolt.png",
		},
	}
}

const wantJSON = `[
  {
    "id": "001",
    "name": "Test Unit",
    "rarity": "common",
    "domain": "Colorless",
    "type_line": "unit",
    "stats": {
      "energy": 2.0,
      "might": 3.0,
      "power": null
    },
    "rules_text": {
      "raw": "Héros <3 & co",
      "keywords": []
    }
  },
  {
    "id": "002",
    "name": "Bolt",
    "rarity": "",
    "domain": "Fury",
    "type_line": "spell - trick",
    "stats": {
      "energy": null,
      "might": null,
      "power": "CC"
    },
    "rules_text": {
      "raw": "",
      "keywords": [
        "Action"
      ]
    },
    "tags": [
      "Noxus"
    ],
    "image_url": "https://riftdecks.com/img/bolt.png"
  }
]`

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecords()))
	assert.Equal(t, wantJSON, buf.String())
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", buf.String())
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, sampleRecords()))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Bolt", records[1].Name)
	assert.Equal(t, "CC", records[1].Stats.Power.String())

	// Writing what was read gives the same bytes back
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, records))
	assert.Equal(t, wantJSON, buf.String())
}

func TestDistribution(t *testing.T) {
	s := Distribution(sampleRecords())
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, map[string]int{"Colorless": 1, "Fury": 1}, s.Domains)
	assert.Equal(t, map[string]int{"unit": 1, "spell": 1}, s.Types)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Distribution(sampleRecords()))

	want := "Total cards: 2\n" +
		"\nDomain distribution:\n  Colorless: 1\n  Fury: 1\n" +
		"\nType distribution:\n  spell: 1\n  unit: 1\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintAdded(t *testing.T) {
	var buf bytes.Buffer
	PrintAdded(&buf, nil)
	assert.Empty(t, buf.String())

	PrintAdded(&buf, []string{"Vayne, Hunter"})
	assert.Equal(t, "Added 1 cards from legacy data:\n  - Vayne, Hunter\n", buf.String())
}
