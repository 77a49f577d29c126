package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", RGBA{255, 0, 0, 255}},
		{"#00ff00", RGBA{0, 255, 0, 255}},
		{"ff00ff", RGBA{255, 0, 255, 255}},
		{"#d3d3d3", RGBA{211, 211, 211, 255}},
		{" #00000080 ", RGBA{0, 0, 0, 128}},
		{"#fff", RGBA{255, 255, 255, 255}},
		{"#f00", RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#ff", "#gggggg", "#12345", "#1234567", "#000000zz", "azul"} {
		_, err := ParseHexColor(in)
		assert.Error(t, err, in)
	}
}

func TestParseHexColorOrFallback(t *testing.T) {
	fallback := RGBA{1, 2, 3, 4}
	assert.Equal(t, fallback, ParseHexColorOr("azul", fallback))
	assert.Equal(t, RGBA{0, 0, 255, 255}, ParseHexColorOr("#0000ff", fallback))
}

func TestRGBAHex(t *testing.T) {
	assert.Equal(t, "#ff00ff", RGBA{255, 0, 255, 255}.Hex())
	assert.Equal(t, "#ff00ff80", RGBA{255, 0, 255, 128}.Hex())

	for _, in := range []string{"#d3d3d3", "#12345678", "#00ff00"} {
		c, err := ParseHexColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, c.Hex())
	}
}
