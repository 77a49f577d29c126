package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA é uma cor em 8 bits por canal, no mesmo formato usado pelos buffers de malha.
type RGBA [4]uint8

// ParseHexColor converte "#rgb", "#rrggbb" ou "#rrggbbaa" em RGBA. O "#" é opcional.
func ParseHexColor(s string) (RGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	alpha := uint8(255)
	switch len(hex) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("cor inválida %q: alpha: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	default:
		return RGBA{}, fmt.Errorf("cor inválida %q: esperado #rgb, #rrggbb ou #rrggbbaa", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("cor inválida %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA{r, g, b, alpha}, nil
}

// ParseHexColorOr é como ParseHexColor mas retorna fallback em caso de erro.
func ParseHexColorOr(s string, fallback RGBA) RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// Colorful converte para o tipo do go-colorful (alpha descartado).
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

// Hex retorna a cor no formato "#rrggbb" (alpha omitido quando opaco).
func (c RGBA) Hex() string {
	hex := c.Colorful().Hex()
	if c[3] == 255 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, c[3])
}
