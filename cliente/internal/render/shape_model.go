package render

import (
	"PolyDraw/cliente/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeModel representa a parte renderizável de uma forma da cena.
// A malha preenchida só vai para a GPU quando a janela existe.
type ShapeModel struct {
	Shape    *meshing.Shape
	Model    rl.Model // Preenchimento (apenas meshing.KindFilled)
	Uploaded bool
}

// needsUpload indica se a forma tem triângulos ainda não enviados para a GPU.
func (m *ShapeModel) needsUpload() bool {
	return !m.Uploaded && m.Shape.Kind == meshing.KindFilled && m.Shape.Fill.TriangleCount() > 0
}
