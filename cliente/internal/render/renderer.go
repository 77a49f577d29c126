package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"log"
	"unsafe"

	"PolyDraw/cliente/internal/camera"
	"PolyDraw/cliente/internal/meshing"
	"PolyDraw/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// outlineLift afasta linhas do preenchimento em direção à câmera para evitar z-fighting.
const outlineLift float32 = 0.01

// Renderer é a cena: mantém as formas adicionadas e seus recursos de GPU.
// Só é usado a partir do loop principal (thread do OpenGL).
type Renderer struct {
	shapes []*ShapeModel // Ordem de inserção = ordem de desenho

	// Grade de referência
	ShowGrid     bool
	GridSize     float32
	GridSlices   int32
	GridColor    rl.Color
	VertexMarker bool // Desenha um ponto em cada vértice da polilinha
}

// NewRenderer cria uma cena vazia.
func NewRenderer() *Renderer {
	return &Renderer{
		shapes:       make([]*ShapeModel, 0, 2),
		ShowGrid:     true,
		GridSlices:   40,
		GridColor:    rl.NewColor(211, 211, 211, 255),
		VertexMarker: true,
	}
}

// Add coloca uma forma na cena. Adicionar a mesma forma duas vezes não tem efeito.
func (r *Renderer) Add(shape *meshing.Shape) {
	if shape == nil || r.find(shape) >= 0 {
		return
	}
	r.shapes = append(r.shapes, &ShapeModel{Shape: shape})
}

// Remove tira a forma da cena e libera seu modelo da GPU.
func (r *Renderer) Remove(shape *meshing.Shape) {
	i := r.find(shape)
	if i < 0 {
		return
	}
	r.release(r.shapes[i])
	r.shapes = append(r.shapes[:i], r.shapes[i+1:]...)
}

// Len retorna o número de formas na cena.
func (r *Renderer) Len() int {
	return len(r.shapes)
}

// Unload libera todos os recursos e esvazia a cena.
func (r *Renderer) Unload() {
	for _, sm := range r.shapes {
		r.release(sm)
	}
	r.shapes = r.shapes[:0]
	log.Println("[Renderer] Cena descarregada")
}

func (r *Renderer) find(shape *meshing.Shape) int {
	for i, sm := range r.shapes {
		if sm.Shape == shape {
			return i
		}
	}
	return -1
}

func (r *Renderer) release(sm *ShapeModel) {
	if sm.Uploaded {
		rl.UnloadModel(sm.Model)
		sm.Uploaded = false
	}
}

// upload converte a geometria de preenchimento em um modelo Raylib na GPU.
func (r *Renderer) upload(sm *ShapeModel) {
	if !rl.IsWindowReady() {
		return
	}
	mesh := r.geometryToMesh(sm.Shape.Fill)
	rl.UploadMesh(&mesh, false)
	sm.Model = rl.LoadModelFromMesh(mesh)
	sm.Uploaded = true
	log.Printf("[Renderer] Upload de preenchimento: %d vértices, %d triângulos",
		sm.Shape.Fill.VertexCount(), sm.Shape.Fill.TriangleCount())
}

func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Indices) > 0 {
		mesh.Indices = (*uint16)(r.copyToC(unsafe.Pointer(&data.Indices[0]), len(data.Indices)*2))
	}
	return mesh
}

// copyToC copia para memória C: o Raylib libera esses buffers com free() no UnloadModel.
func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// Draw renderiza grade e formas. Deve ser chamado entre BeginMode3D/EndMode3D.
func (r *Renderer) Draw() {
	if r.ShowGrid {
		r.drawGrid()
	}

	for _, sm := range r.shapes {
		if sm.needsUpload() {
			r.upload(sm)
		}
		r.drawShape(sm)
	}
}

func (r *Renderer) drawShape(sm *ShapeModel) {
	shape := sm.Shape
	pos := shape.Position

	if sm.Uploaded {
		// Preenchimento visível dos dois lados, independente da ordem dos vértices
		rl.DisableBackfaceCulling()
		rl.DrawModel(sm.Model, ToVector3(pos), 1.0, ToColor(shape.Color))
		rl.EnableBackfaceCulling()
	}

	lineColor := ToColor(shape.Color)
	if shape.Kind == meshing.KindFilled {
		lineColor = ToColor(shape.OutlineColor)
	}
	lift := mgl32.Vec3{0, 0, outlineLift}
	for _, seg := range shape.Lines() {
		rl.DrawLine3D(ToVector3(seg[0].Add(pos).Add(lift)), ToVector3(seg[1].Add(pos).Add(lift)), lineColor)
	}

	if r.VertexMarker && shape.Kind == meshing.KindLineLoop {
		for _, v := range shape.Ring {
			rl.DrawPoint3D(ToVector3(v.Add(pos).Add(lift)), lineColor)
		}
	}
}

// drawGrid desenha a grade no plano z=0 (o DrawGrid do Raylib usa o plano XZ).
func (r *Renderer) drawGrid() {
	if r.GridSize <= 0 || r.GridSlices <= 0 {
		return
	}
	half := r.GridSize / 2
	step := r.GridSize / float32(r.GridSlices)
	const z = -outlineLift
	for i := int32(0); i <= r.GridSlices; i++ {
		d := -half + float32(i)*step
		rl.DrawLine3D(rl.Vector3{X: d, Y: -half, Z: z}, rl.Vector3{X: d, Y: half, Z: z}, r.GridColor)
		rl.DrawLine3D(rl.Vector3{X: -half, Y: d, Z: z}, rl.Vector3{X: half, Y: d, Z: z}, r.GridColor)
	}
}

// RaylibCamera converte o controlador de câmera para a Camera3D do Raylib.
func RaylibCamera(c *camera.CameraController) rl.Camera3D {
	return rl.Camera3D{
		Position:   ToVector3(c.Eye()),
		Target:     ToVector3(c.CurrentLookAt),
		Up:         ToVector3(c.Up()),
		Fovy:       c.ViewHeight(),
		Projection: rl.CameraOrthographic,
	}
}

// ToVector3 converte mgl32 -> Raylib.
func ToVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// ToColor converte util.RGBA -> Raylib.
func ToColor(c util.RGBA) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], c[3])
}
