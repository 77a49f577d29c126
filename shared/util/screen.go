package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Viewport representa a área de desenho em pixels.
type Viewport struct {
	Width  int
	Height int
}

// Valid retorna true se a viewport tem área positiva.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Aspect retorna a razão largura/altura (1.0 se inválida).
func (v Viewport) Aspect() float32 {
	if !v.Valid() {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// String retorna a representação em string da viewport.
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// ScreenToNDC converte uma posição de tela (origem no canto superior esquerdo, Y para baixo)
// em coordenadas normalizadas de dispositivo [-1, 1] com Y para cima.
func (v Viewport) ScreenToNDC(x, y float32) mgl32.Vec2 {
	if !v.Valid() {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		(x/float32(v.Width))*2 - 1,
		-(y/float32(v.Height))*2 + 1,
	}
}
