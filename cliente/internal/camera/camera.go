package camera

import (
	"PolyDraw/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Valores de recorte iguais aos usados pelo Raylib no modo ortográfico.
const (
	NearPlane float32 = 0.01
	FarPlane  float32 = 1000.0
)

// CameraController gerencia a câmera ortográfica que olha de cima para o plano z=0.
// Toda a matemática fica aqui (mgl32); o app só converte o resultado para o Raylib.
type CameraController struct {
	Viewport util.Viewport

	// Configurações
	Distance     float32 // Altura da câmera acima do plano
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32 // Unidades de mundo por segundo com zoom 1
	ZoomSpeed    float32 // Fração do zoom por "clique" da roda
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Meia-largura da área de desenho (grade). 0 = plano infinito.
	PlaneHalfExtent float32

	// Estado Alvo (para interpolação suave)
	TargetLookAt mgl32.Vec3
	TargetZoom   float32

	// Estado Atual (interpolado)
	CurrentLookAt mgl32.Vec3
	CurrentZoom   float32
}

// New cria um novo controlador de câmera para a viewport dada.
// Com zoom 1 uma unidade de mundo equivale a um pixel.
func New(vp util.Viewport) *CameraController {
	c := &CameraController{
		Viewport:     vp,
		Distance:     5.0,
		MinZoom:      0.25,
		MaxZoom:      8.0,
		MoveSpeed:    400.0,
		ZoomSpeed:    0.1,
		SmoothFactor: 0.2,
		TargetZoom:   1.0,
	}

	// Inicializa os valores atuais com os alvos para não "saltar" no início
	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom
	return c
}

// SetTarget define o ponto observado imediatamente (sem suavização).
func (c *CameraController) SetTarget(pos mgl32.Vec3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
}

// SetViewport atualiza as dimensões da janela (redimensionamento).
func (c *CameraController) SetViewport(vp util.Viewport) {
	c.Viewport = vp
}

// Update interpola o estado atual em direção ao alvo.
// Deve ser chamado a cada frame.
func (c *CameraController) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // Normaliza para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	c.CurrentLookAt = c.CurrentLookAt.Add(c.TargetLookAt.Sub(c.CurrentLookAt).Mul(factor))
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)
}

// Zoom aplica o movimento da roda do mouse ao zoom alvo.
func (c *CameraController) Zoom(wheel float32) bool {
	if wheel == 0 {
		return false
	}
	c.TargetZoom = util.Clamp(c.TargetZoom*(1+wheel*c.ZoomSpeed), c.MinZoom, c.MaxZoom)
	return true
}

// Pan desloca o alvo no plano. dir é uma direção em tela (X direita, Y cima).
// A velocidade cai com o zoom para manter a sensação em pixels.
func (c *CameraController) Pan(dir mgl32.Vec2, dt float32) bool {
	if dir.Len() == 0 {
		return false
	}
	step := dir.Normalize().Mul(c.MoveSpeed / c.CurrentZoom * dt)
	c.TargetLookAt = c.TargetLookAt.Add(step.Vec3(0))
	return true
}

// ViewHeight é a altura visível em unidades de mundo (o "Fovy" ortográfico do Raylib).
func (c *CameraController) ViewHeight() float32 {
	zoom := c.CurrentZoom
	if zoom <= 0 {
		zoom = 1
	}
	return float32(c.Viewport.Height) / zoom
}

// Eye retorna a posição da câmera.
func (c *CameraController) Eye() mgl32.Vec3 {
	return c.CurrentLookAt.Add(mgl32.Vec3{0, 0, c.Distance})
}

// Up retorna o vetor "para cima" da tela.
func (c *CameraController) Up() mgl32.Vec3 {
	return mgl32.Vec3{0, 1, 0}
}

// View retorna a matriz de visão.
func (c *CameraController) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.CurrentLookAt, c.Up())
}

// Projection retorna a matriz de projeção ortográfica.
func (c *CameraController) Projection() mgl32.Mat4 {
	halfH := c.ViewHeight() / 2
	halfW := halfH * c.Viewport.Aspect()
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, NearPlane, FarPlane)
}
