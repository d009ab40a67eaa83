package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_Magnitudes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		number float64
		unit   string
	}{
		{"pixels", "12px", 12, "px"},
		{"rem", "1.5rem", 1.5, "rem"},
		{"em", "2em", 2, "em"},
		{"percent", "50%", 50, "%"},
		{"viewport width", "100vw", 100, "vw"},
		{"viewport height", "80vh", 80, "vh"},
		{"seconds", "0.3s", 0.3, "s"},
		{"milliseconds", "200ms", 200, "ms"},
		{"negative", "-4px", -4, "px"},
		{"unitless", "42", 42, ""},
		{"unitless decimal", "0.5", 0.5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseValue(tt.input)
			assert.Equal(t, tt.input, v.Raw)
			require.NotNil(t, v.Number)
			assert.Equal(t, tt.number, *v.Number)
			assert.Equal(t, tt.unit, v.Unit)
		})
	}
}

func TestParseValue_Colors(t *testing.T) {
	v := ParseValue("#FF00AA")
	assert.Equal(t, "#FF00AA", v.Raw)
	assert.Nil(t, v.Number)
	assert.Equal(t, "hex", v.Unit)

	for _, hex := range []string{"#fff", "#ffff", "#ffffff", "#ffffffff"} {
		v := ParseValue(hex)
		assert.Equal(t, "hex", v.Unit, "input %q", hex)
	}

	v = ParseValue("rgba(0,0,0,.5)")
	assert.Equal(t, "rgb", v.Unit)
	assert.Nil(t, v.Number)

	v = ParseValue("rgb(255, 0, 0)")
	assert.Equal(t, "rgb", v.Unit)
}

func TestParseValue_Opaque(t *testing.T) {
	for _, raw := range []string{"auto", "inherit", "1px solid black", "calc(100% - 8px)", ""} {
		v := ParseValue(raw)
		assert.Equal(t, raw, v.Raw, "input %q", raw)
		assert.Nil(t, v.Number, "input %q", raw)
		assert.Empty(t, v.Unit, "input %q", raw)
	}
}

func TestParseValue_Numbers(t *testing.T) {
	v := ParseValue(float64(16))
	assert.Equal(t, "16", v.Raw)
	require.NotNil(t, v.Number)
	assert.Equal(t, float64(16), *v.Number)
	assert.Empty(t, v.Unit)

	v = ParseValue(2.5)
	assert.Equal(t, "2.5", v.Raw)
	require.NotNil(t, v.Number)
	assert.Equal(t, 2.5, *v.Number)

	v = ParseValue(4)
	assert.Equal(t, "4", v.Raw)
	require.NotNil(t, v.Number)
	assert.Equal(t, float64(4), *v.Number)
}

func TestParseValue_UnknownUnitIsOpaque(t *testing.T) {
	// "pt" is not in the recognized unit set.
	v := ParseValue("12pt")
	assert.Equal(t, "12pt", v.Raw)
	assert.Nil(t, v.Number)
	assert.Empty(t, v.Unit)
}
