package meshing

import "github.com/go-gl/mathgl/mgl32"

// GeometryData contém os buffers de vértices para uma malha.
// Para preenchimentos, Indices descreve triângulos; para contornos, cada par de vértices é um segmento.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint16
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Normals) > 0 {
		clone.Normals = make([]float32, len(g.Normals))
		copy(clone.Normals, g.Normals)
	}
	if len(g.Indices) > 0 {
		clone.Indices = make([]uint16, len(g.Indices))
		copy(clone.Indices, g.Indices)
	}
	return clone
}

// VertexCount retorna o número de vértices (3 floats cada).
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos indexados.
func (g GeometryData) TriangleCount() int {
	return len(g.Indices) / 3
}

// Empty retorna true se não há nada para desenhar.
func (g GeometryData) Empty() bool {
	return len(g.Vertices) == 0
}

// Vertex retorna o i-ésimo vértice.
func (g GeometryData) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{g.Vertices[i*3], g.Vertices[i*3+1], g.Vertices[i*3+2]}
}

// Segments interpreta os vértices como pares (linhas soltas).
func (g GeometryData) Segments() [][2]mgl32.Vec3 {
	n := g.VertexCount() / 2
	segs := make([][2]mgl32.Vec3, 0, n)
	for i := 0; i < n; i++ {
		segs = append(segs, [2]mgl32.Vec3{g.Vertex(i * 2), g.Vertex(i*2 + 1)})
	}
	return segs
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

// AddVertex adiciona um vértice com normal e retorna seu índice.
func (b *MeshBuffer) AddVertex(v mgl32.Vec3, n mgl32.Vec3) uint16 {
	idx := uint16(b.Geometry.VertexCount())
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	return idx
}

// AddTriangle adiciona um triângulo a partir de índices já existentes.
func (b *MeshBuffer) AddTriangle(i1, i2, i3 uint16) {
	b.Geometry.Indices = append(b.Geometry.Indices, i1, i2, i3)
}

// AddSegment adiciona um segmento de linha (sem índices).
func (b *MeshBuffer) AddSegment(v1, v2 mgl32.Vec3) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v1[0], v1[1], v1[2], v2[0], v2[1], v2[2])
}
