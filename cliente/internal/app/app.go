package app

import (
	"log"
	"time"

	"PolyDraw/cliente/internal/camera"
	"PolyDraw/cliente/internal/drawing"
	"PolyDraw/cliente/internal/meshing"
	"PolyDraw/cliente/internal/render"
	"PolyDraw/shared/config"
	"PolyDraw/shared/remote"
	"PolyDraw/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/time/rate"
)

// App é a aplicação principal do PolyDraw: janela, loop de frames e despacho de entrada.
type App struct {
	Config *config.Config

	Cam      *camera.CameraController
	Drawing  *drawing.Controller
	renderer *render.Renderer
	remote   *remote.Server

	viewport   util.Viewport
	background rl.Color

	// Despacho de entrada
	sampler     *rate.Limiter  // Limita amostras de movimento do ponteiro
	canvasPress bool           // Botão esquerdo foi pressionado fora da barra de ferramentas
	lastMouse   rl.Vector2
	toolbar     []*toolButton
	frameCount  int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:   cfg,
		viewport: util.Viewport{Width: int(cfg.WindowWidth), Height: int(cfg.WindowHeight)},
		sampler:  util.NewPointerSampler(cfg.PointerSampleInterval()),
	}
}

// palette monta as cores do desenho a partir da configuração.
func (a *App) palette() drawing.Palette {
	def := drawing.DefaultPalette()
	return drawing.Palette{
		Line:    util.ParseHexColorOr(a.Config.LineColor, def.Line),
		Fill:    util.ParseHexColorOr(a.Config.FillColor, def.Fill),
		Outline: util.ParseHexColorOr(a.Config.OutlineColor, def.Outline),
		Clone:   util.ParseHexColorOr(a.Config.CloneColor, def.Clone),
	}
}

// setup cria câmera, cena, controlador e ponte remota. Não depende da janela.
func (a *App) setup() {
	cfg := a.Config

	a.Cam = camera.New(a.viewport)
	a.Cam.Distance = cfg.CameraDistance
	a.Cam.MinZoom = cfg.MinZoom
	a.Cam.MaxZoom = cfg.MaxZoom
	a.Cam.ZoomSpeed = cfg.ZoomSpeed
	a.Cam.MoveSpeed = cfg.CameraSpeed
	a.Cam.SmoothFactor = cfg.SmoothFactor
	// A grade tem a largura da janela inicial e limita a área de interseção
	a.Cam.PlaneHalfExtent = float32(cfg.WindowWidth) / 2

	a.renderer = render.NewRenderer()
	a.renderer.ShowGrid = cfg.ShowGrid
	a.renderer.GridSize = float32(cfg.WindowWidth)
	a.renderer.GridSlices = cfg.GridSlices
	a.renderer.GridColor = render.ToColor(util.ParseHexColorOr(cfg.GridColor, util.RGBA{211, 211, 211, 255}))
	a.background = render.ToColor(util.ParseHexColorOr(cfg.BackgroundColor, util.RGBA{255, 255, 255, 255}))

	a.Drawing = drawing.New(a.Cam, a.renderer, a.viewport, drawing.Options{
		Palette:       a.palette(),
		ResetCooldown: cfg.ResetCooldown(),
		Clock:         time.Now,
		Tessellator:   meshing.Earcut{},
	})
	p := a.palette()
	log.Printf("[App] Paleta: linha %s, preenchimento %s, contorno %s, cópia %s",
		p.Line.Hex(), p.Fill.Hex(), p.Outline.Hex(), p.Clone.Hex())

	a.toolbar = a.newToolbar()

	if cfg.RemoteAddr != "" {
		a.remote = remote.NewServer(16)
		if err := a.remote.Start(cfg.RemoteAddr); err != nil {
			log.Printf("[App] AVISO: ponte remota desativada: %v", err)
			a.remote = nil
		}
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)

	a.setup()
	a.resize(rl.GetScreenWidth(), rl.GetScreenHeight())

	log.Println("[App] Janela inicializada com sucesso")
	log.Printf("[App] Resolução: %s", a.viewport)

	// Loop principal
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	// Cleanup
	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame. Eventos são aplicados em ordem, um por vez.
func (a *App) update() {
	a.frameCount++

	if rl.IsWindowResized() {
		a.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	a.updateCamera()
	a.updateInput()
	a.processRemoteCommands()
}

// resize propaga o novo tamanho da janela para câmera e controlador.
func (a *App) resize(width, height int) {
	vp := util.Viewport{Width: width, Height: height}
	if !vp.Valid() || vp == a.viewport {
		return
	}
	a.viewport = vp
	a.Cam.SetViewport(vp)
	a.Drawing.SetViewport(vp)
	a.toolbar = a.newToolbar()
	log.Printf("[App] Janela redimensionada: %s", vp)
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.remote != nil {
		if err := a.remote.Close(); err != nil {
			log.Printf("[App] Erro ao fechar ponte remota: %v", err)
		}
	}
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
