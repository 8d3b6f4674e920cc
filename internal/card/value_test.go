package card

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		0:      "0.0",
		2:      "2.0",
		3.5:    "3.5",
		-1:     "-1.0",
		0.0001: "0.0001",
		1.5e-5: "1.5e-05",
		1e16:   "1e+16",
		12345:  "12345.0",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatFloat(in), "formatFloat(%v)", in)
	}
}

func TestValueMarshal(t *testing.T) {
	stats := Stats{
		Energy: Number(2),
		Might:  Value{},
		Power:  Text("CC"),
	}
	out, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"energy":2,"might":null,"power":"CC"}`, string(out))
	assert.Equal(t, `{"energy":2.0,"might":null,"power":"CC"}`, string(out))
}

func TestValueMarshalKeepsHTML(t *testing.T) {
	out, err := Text("<2>").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"<2>"`, string(out))
}

func TestRawValue(t *testing.T) {
	assert.True(t, Raw(nil).IsAbsent())
	assert.True(t, Raw(json.RawMessage("null")).IsAbsent())

	f, ok := Raw(json.RawMessage("1.50")).Float()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := Raw(json.RawMessage(`"CC"`)).AsText()
	require.True(t, ok)
	assert.Equal(t, "CC", s)

	out, err := Raw(json.RawMessage("3")).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "3", string(out))
}

func TestValueUnmarshal(t *testing.T) {
	var stats Stats
	require.NoError(t, json.Unmarshal([]byte(`{"energy":2.0,"might":null,"power":"CC"}`), &stats))

	f, ok := stats.Energy.Float()
	require.True(t, ok)
	assert.Equal(t, 2.0, f)
	assert.True(t, stats.Might.IsAbsent())
	assert.Equal(t, "CC", stats.Power.String())
}

func TestNonFiniteNumberFails(t *testing.T) {
	_, err := json.Marshal(Stats{Energy: Number(1), Might: Number(1), Power: Number(math.Inf(1))})
	assert.Error(t, err)
}

func TestTypeLine(t *testing.T) {
	assert.Equal(t, "unit", TypeLine("unit", nil))
	assert.Equal(t, "unit - yordle, mage", TypeLine("unit", []string{"yordle", "mage"}))

	r := &Record{TypeLine: "spell - trick"}
	assert.Equal(t, "spell", r.PrimaryType())
}
