package meshing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rclancey/earcut"
)

// planeNormal é a normal do plano de desenho (z=0, olhando para +Z).
var planeNormal = mgl32.Vec3{0, 0, 1}

// Earcut triangula anéis simples pelo algoritmo de ear clipping.
type Earcut struct{}

// Fill triangula o anel e retorna uma malha indexada no plano z=0.
func (Earcut) Fill(ring []mgl32.Vec2) (GeometryData, error) {
	return TriangulateFill(ring)
}

// Outline extrai as arestas de borda da malha preenchida.
func (Earcut) Outline(fill GeometryData) GeometryData {
	return TraceBoundaryEdges(fill)
}

// TriangulateFill gera a geometria de preenchimento de um anel ordenado de vértices.
// Anéis degenerados (colineares) produzem vértices sem triângulos.
func TriangulateFill(ring []mgl32.Vec2) (GeometryData, error) {
	if len(ring) < 3 {
		return GeometryData{}, fmt.Errorf("anel com %d vértices: mínimo 3", len(ring))
	}
	if len(ring) > math.MaxUint16 {
		return GeometryData{}, fmt.Errorf("anel com %d vértices excede o limite de índices 16 bits", len(ring))
	}

	coords := make([]float64, 0, len(ring)*2)
	for _, p := range ring {
		coords = append(coords, float64(p.X()), float64(p.Y()))
	}

	tris, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return GeometryData{}, fmt.Errorf("falha na triangulação de %d vértices: %w", len(ring), err)
	}
	if len(tris)%3 != 0 {
		return GeometryData{}, fmt.Errorf("triangulação inválida: %d índices", len(tris))
	}

	buf := MeshBuffer{}
	for _, p := range ring {
		buf.AddVertex(mgl32.Vec3{p.X(), p.Y(), 0}, planeNormal)
	}
	for i := 0; i < len(tris); i += 3 {
		buf.AddTriangle(uint16(tris[i]), uint16(tris[i+1]), uint16(tris[i+2]))
	}
	return buf.Geometry, nil
}

type edgeKey struct{ a, b uint16 }

func newEdgeKey(a, b uint16) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// TraceBoundaryEdges retorna, como segmentos, as arestas usadas por apenas um triângulo.
// Numa malha plana isso é exatamente a silhueta.
func TraceBoundaryEdges(fill GeometryData) GeometryData {
	count := make(map[edgeKey]int, len(fill.Indices))
	order := make([][2]uint16, 0, len(fill.Indices))

	for t := 0; t+2 < len(fill.Indices); t += 3 {
		tri := [3]uint16{fill.Indices[t], fill.Indices[t+1], fill.Indices[t+2]}
		for e := 0; e < 3; e++ {
			a, b := tri[e], tri[(e+1)%3]
			k := newEdgeKey(a, b)
			if count[k] == 0 {
				order = append(order, [2]uint16{a, b})
			}
			count[k]++
		}
	}

	buf := MeshBuffer{}
	for _, e := range order {
		if count[newEdgeKey(e[0], e[1])] != 1 {
			continue
		}
		buf.AddSegment(fill.Vertex(int(e[0])), fill.Vertex(int(e[1])))
	}
	return buf.Geometry
}

// Project2D descarta Z de um anel 3D.
func Project2D(ring []mgl32.Vec3) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(ring))
	for i, v := range ring {
		out[i] = v.Vec2()
	}
	return out
}
