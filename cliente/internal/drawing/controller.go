// Package drawing contém a máquina de estados de desenho e posicionamento de polígonos.
//
// O Controller não conhece o Raylib: recebe coordenadas de tela já extraídas pelo
// app e fala com a cena, a câmera e o triangulador por meio de interfaces.
package drawing

import (
	"log"
	"time"

	"PolyDraw/cliente/internal/meshing"
	"PolyDraw/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode representa o estado da máquina de desenho.
type Mode int

const (
	ModeDrawing  Mode = iota // Cliques adicionam vértices
	ModeComplete             // Polígono fechado; cliques posicionam a cópia
)

func (m Mode) String() string {
	if m == ModeComplete {
		return "Concluído"
	}
	return "Desenhando"
}

// Button identifica um botão do mouse.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// unprojectDepth é a profundidade NDC usada para posicionar novos vértices.
const unprojectDepth = 0.5

// Projector é a consulta de interseção com o plano fornecida pela câmera.
type Projector interface {
	Project(ndc mgl32.Vec2) (mgl32.Vec3, bool)
	Unproject(ndc mgl32.Vec2, depth float32) mgl32.Vec3
}

// Scene controla quais formas estão na cena. Remove também libera os recursos da forma.
type Scene interface {
	Add(shape *meshing.Shape)
	Remove(shape *meshing.Shape)
}

// Tessellator gera o preenchimento e o contorno de um anel.
type Tessellator interface {
	Fill(ring []mgl32.Vec2) (meshing.GeometryData, error)
	Outline(fill meshing.GeometryData) meshing.GeometryData
}

// Palette agrupa as cores usadas pelas formas.
type Palette struct {
	Line    util.RGBA
	Fill    util.RGBA
	Outline util.RGBA
	Clone   util.RGBA
}

// DefaultPalette retorna as cores padrão (vermelho, verde, preto, magenta).
func DefaultPalette() Palette {
	return Palette{
		Line:    util.RGBA{255, 0, 0, 255},
		Fill:    util.RGBA{0, 255, 0, 255},
		Outline: util.RGBA{0, 0, 0, 255},
		Clone:   util.RGBA{255, 0, 255, 255},
	}
}

// Options configura um Controller. Campos zerados usam o padrão.
type Options struct {
	Palette       Palette
	ResetCooldown time.Duration
	Clock         func() time.Time
	Tessellator   Tessellator
}

// Controller é o dono de todo o estado de desenho: vértices, forma ativa e cópia.
// Não é seguro para uso concorrente; todas as chamadas vêm do loop principal.
type Controller struct {
	projector Projector
	scene     Scene
	tess      Tessellator
	palette   Palette
	clock     func() time.Time

	viewport util.Viewport

	mode     Mode
	vertices []mgl32.Vec3
	active   *meshing.Shape
	clone    *meshing.Shape
	dragging bool

	resetCooldown time.Duration
	resetUntil    time.Time
}

// New cria um Controller no modo de desenho, sem vértices.
func New(projector Projector, scene Scene, vp util.Viewport, opts Options) *Controller {
	c := &Controller{
		projector:     projector,
		scene:         scene,
		tess:          opts.Tessellator,
		palette:       opts.Palette,
		clock:         opts.Clock,
		viewport:      vp,
		mode:          ModeDrawing,
		resetCooldown: opts.ResetCooldown,
	}
	if c.tess == nil {
		c.tess = meshing.Earcut{}
	}
	if c.palette == (Palette{}) {
		c.palette = DefaultPalette()
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	return c
}

// SetViewport atualiza as dimensões usadas na conversão tela -> NDC.
func (c *Controller) SetViewport(vp util.Viewport) {
	c.viewport = vp
}

// Mode retorna o estado atual.
func (c *Controller) Mode() Mode { return c.mode }

// Dragging indica se a cópia está sendo arrastada.
func (c *Controller) Dragging() bool { return c.dragging }

// Active retorna a forma ativa (nil se não há vértices).
func (c *Controller) Active() *meshing.Shape { return c.active }

// Clone retorna a cópia (nil se não existe).
func (c *Controller) Clone() *meshing.Shape { return c.clone }

// Vertices retorna uma cópia dos vértices acumulados.
func (c *Controller) Vertices() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(c.vertices))
	copy(out, c.vertices)
	return out
}

// CanComplete indica se CompleteDrawing teria efeito.
func (c *Controller) CanComplete() bool {
	return c.mode == ModeDrawing && len(c.vertices) > 2
}

// CanCopy indica se CopyDrawing teria efeito.
func (c *Controller) CanCopy() bool {
	return c.active != nil && c.mode == ModeComplete && c.clone == nil
}

// ResetAvailable indica se o Reiniciar está fora do tempo de bloqueio.
func (c *Controller) ResetAvailable() bool {
	return !c.clock().Before(c.resetUntil)
}

// OnPointerSample move a cópia para o ponto sob o ponteiro durante o arrasto.
// Quem chama é responsável por limitar a taxa de amostras.
func (c *Controller) OnPointerSample(x, y float32) {
	if !c.dragging || c.clone == nil {
		return
	}
	c.placeClone(x, y)
}

// OnPointerDown inicia o arrasto da cópia com o botão principal.
// A cópia já salta para o ponto clicado, mesmo sem movimento.
func (c *Controller) OnPointerDown(button Button, x, y float32) {
	if button != ButtonPrimary || c.clone == nil {
		return
	}
	c.dragging = true
	c.placeClone(x, y)
}

// OnPointerUp encerra qualquer arrasto.
func (c *Controller) OnPointerUp() {
	c.dragging = false
}

// OnClick adiciona um vértice (desenhando) ou posiciona a cópia (concluído).
func (c *Controller) OnClick(x, y float32) {
	switch {
	case c.mode == ModeDrawing:
		v := c.projector.Unproject(c.viewport.ScreenToNDC(x, y), unprojectDepth)
		v[2] = 0
		c.vertices = append(c.vertices, v)
		c.rebuildLineLoop()
	case c.clone != nil:
		c.placeClone(x, y)
	}
}

// CompleteDrawing fecha o polígono em uma malha preenchida com contorno.
// Sem ao menos 3 vértices nada acontece.
func (c *Controller) CompleteDrawing() {
	if !c.CanComplete() {
		log.Printf("[Drawing] Concluir ignorado: %d vértices no modo %s", len(c.vertices), c.mode)
		return
	}

	c.mode = ModeComplete
	c.destroy(&c.active)

	fill, err := c.tess.Fill(meshing.Project2D(c.vertices))
	if err != nil {
		log.Printf("[Drawing] AVISO: %v", err)
		fill = meshing.GeometryData{}
	}
	outline := c.tess.Outline(fill)
	if fill.TriangleCount() == 0 {
		log.Printf("[Drawing] AVISO: polígono degenerado com %d vértices, preenchimento vazio", len(c.vertices))
	}

	c.active = meshing.NewFilled(c.vertices, fill, outline, c.palette.Fill, c.palette.Outline)
	c.scene.Add(c.active)
	log.Printf("[Drawing] Polígono concluído: %d vértices, %d triângulos", len(c.vertices), fill.TriangleCount())
}

// CopyDrawing cria a única cópia da forma concluída, na mesma posição da original.
func (c *Controller) CopyDrawing() {
	if !c.CanCopy() {
		return
	}
	clone := c.active.Clone()
	clone.Color = c.palette.Clone
	c.clone = clone
	c.scene.Add(clone)
	log.Println("[Drawing] Cópia criada")
}

// Reset limpa tudo e volta ao modo de desenho.
// Pedidos durante o tempo de bloqueio são ignorados.
func (c *Controller) Reset() {
	now := c.clock()
	if now.Before(c.resetUntil) {
		return
	}
	c.resetUntil = now.Add(c.resetCooldown)

	c.vertices = nil
	c.mode = ModeDrawing
	c.destroy(&c.active)
	c.destroy(&c.clone)
	c.dragging = false
	log.Println("[Drawing] Cena reiniciada")
}

// rebuildLineLoop recria a polilinha do zero a cada vértice novo.
func (c *Controller) rebuildLineLoop() {
	c.destroy(&c.active)
	c.active = meshing.NewLineLoop(c.vertices, c.palette.Line)
	c.scene.Add(c.active)
}

func (c *Controller) placeClone(x, y float32) {
	p, ok := c.projector.Project(c.viewport.ScreenToNDC(x, y))
	if !ok {
		return
	}
	c.clone.MoveTo(p)
}

// destroy remove a forma da cena, libera seus recursos e zera a referência.
func (c *Controller) destroy(shape **meshing.Shape) {
	if *shape == nil {
		return
	}
	c.scene.Remove(*shape)
	*shape = nil
}
