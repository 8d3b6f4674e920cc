package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const imagesCSV = `Name,Card Image URL
Test Unit,/img/cards/test.png
Absolute Unit, https://example.com/a.png 
,/img/cards/nameless.png
No Image,
Seal of Rage,/img/cards/seal.png
`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(imagesCSV))
	require.NoError(t, err)

	assert.Len(t, m, 3)
	assert.Equal(t, "https://riftdecks.com/img/cards/test.png", m["Test Unit"])
	assert.Equal(t, "https://example.com/a.png", m["Absolute Unit"])

	_, ok := m.Lookup("No Image")
	assert.False(t, ok)
}

func TestWithOverridesFillsGapsOnly(t *testing.T) {
	m, err := Load(strings.NewReader(imagesCSV))
	require.NoError(t, err)

	m = WithOverrides(m)
	assert.Equal(t, "https://riftdecks.com/img/cards/seal.png", m["Seal of Rage"])

	url, ok := m.Lookup("Vayne, Hunter")
	require.True(t, ok)
	assert.Equal(t, Overrides()["Vayne, Hunter"], url)
	assert.Len(t, m, 3+len(Overrides())-1)
}

func TestWithOverridesNilMap(t *testing.T) {
	m := WithOverrides(nil)
	assert.Equal(t, Overrides(), m)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images.csv")
	require.NoError(t, os.WriteFile(path, []byte(imagesCSV), 0644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, m, "Test Unit")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
