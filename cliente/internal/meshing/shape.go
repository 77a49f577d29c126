package meshing

import (
	"PolyDraw/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind define como a forma é desenhada.
type Kind int

const (
	KindLineLoop Kind = iota // Polilinha fechada (desenho em andamento)
	KindFilled               // Malha preenchida com contorno
)

func (k Kind) String() string {
	switch k {
	case KindLineLoop:
		return "LineLoop"
	case KindFilled:
		return "Filled"
	}
	return "Desconhecido"
}

// Shape é uma forma na cena. A geometria fica em coordenadas locais; Position desloca tudo.
type Shape struct {
	Kind Kind

	// Anel de vértices na ordem de inserção
	Ring []mgl32.Vec3

	Fill    GeometryData // Triângulos (apenas KindFilled)
	Outline GeometryData // Segmentos de contorno (apenas KindFilled)

	// Material
	Color        util.RGBA
	OutlineColor util.RGBA

	Position mgl32.Vec3
}

// NewLineLoop cria a polilinha fechada que passa por todos os vértices em ordem.
func NewLineLoop(ring []mgl32.Vec3, color util.RGBA) *Shape {
	r := make([]mgl32.Vec3, len(ring))
	copy(r, ring)
	return &Shape{
		Kind:  KindLineLoop,
		Ring:  r,
		Color: color,
	}
}

// NewFilled cria a forma preenchida a partir de geometria já triangulada.
func NewFilled(ring []mgl32.Vec3, fill, outline GeometryData, color, outlineColor util.RGBA) *Shape {
	r := make([]mgl32.Vec3, len(ring))
	copy(r, ring)
	return &Shape{
		Kind:         KindFilled,
		Ring:         r,
		Fill:         fill,
		Outline:      outline,
		Color:        color,
		OutlineColor: outlineColor,
	}
}

// Clone realiza uma cópia profunda de geometria e material.
func (s *Shape) Clone() *Shape {
	clone := *s
	clone.Ring = make([]mgl32.Vec3, len(s.Ring))
	copy(clone.Ring, s.Ring)
	clone.Fill = s.Fill.Clone()
	clone.Outline = s.Outline.Clone()
	return &clone
}

// MoveTo posiciona a forma no mundo.
func (s *Shape) MoveTo(p mgl32.Vec3) {
	s.Position = p
}

// Lines retorna os segmentos a desenhar como linha, em coordenadas locais.
// Para LineLoop liga vértices consecutivos e fecha o último no primeiro.
func (s *Shape) Lines() [][2]mgl32.Vec3 {
	if s.Kind == KindFilled {
		return s.Outline.Segments()
	}
	n := len(s.Ring)
	if n < 2 {
		return nil
	}
	segs := make([][2]mgl32.Vec3, 0, n)
	for i := 0; i < n-1; i++ {
		segs = append(segs, [2]mgl32.Vec3{s.Ring[i], s.Ring[i+1]})
	}
	if n > 2 {
		segs = append(segs, [2]mgl32.Vec3{s.Ring[n-1], s.Ring[0]})
	}
	return segs
}
