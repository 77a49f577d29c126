package app

import (
	"log"
	"time"

	"PolyDraw/cliente/internal/drawing"
	"PolyDraw/shared/remote"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	// Zoom com a roda do mouse
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Cam.Zoom(wheel)
	}

	// Movimento com WASD / setas
	var dir mgl32.Vec2
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		dir[1]++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		dir[1]--
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		dir[0]++
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		dir[0]--
	}
	a.Cam.Pan(dir, dt)

	// Home volta a câmera para a origem, sem zoom
	if rl.IsKeyPressed(rl.KeyHome) {
		a.Cam.SetTarget(mgl32.Vec3{})
		a.Cam.TargetZoom = 1
		log.Println("[Camera] Câmera centralizada na origem")
	}

	// Atualiza interpolação da câmera
	a.Cam.Update(dt)
}

// updateInput traduz eventos do Raylib para chamadas no controlador de desenho.
func (a *App) updateInput() {
	a.updatePointer()

	// Atalhos dos botões da barra
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		a.runCommand(remote.CommandComplete)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.runCommand(remote.CommandCopy)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.runCommand(remote.CommandReset)
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle grid
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
		a.renderer.ShowGrid = a.Config.ShowGrid
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
		a.Config.Fullscreen = !a.Config.Fullscreen
	}
}

// updatePointer despacha os eventos do mouse em ordem: pressionar, mover, soltar, clicar.
// Eventos sobre a barra de ferramentas não chegam ao canvas.
func (a *App) updatePointer() {
	mouse := rl.GetMousePosition()
	overUI := a.overToolbar(mouse)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if overUI {
			a.canvasPress = false
			a.pressToolbar(mouse)
		} else {
			a.canvasPress = true
			a.Drawing.OnPointerDown(drawing.ButtonPrimary, mouse.X, mouse.Y)
		}
	}
	if !overUI && rl.IsMouseButtonPressed(rl.MouseRightButton) {
		a.Drawing.OnPointerDown(drawing.ButtonSecondary, mouse.X, mouse.Y)
	}
	if !overUI && rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		a.Drawing.OnPointerDown(drawing.ButtonMiddle, mouse.X, mouse.Y)
	}

	if mouse != a.lastMouse {
		a.lastMouse = mouse
		if a.sampler.AllowN(time.Now(), 1) {
			a.Drawing.OnPointerSample(mouse.X, mouse.Y)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseRightButton) || rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		a.Drawing.OnPointerUp()
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.Drawing.OnPointerUp()
		if a.canvasPress && !overUI {
			a.Drawing.OnClick(mouse.X, mouse.Y)
		}
		a.canvasPress = false
	}
}

// runCommand executa um comando vindo da barra, do teclado ou da ponte remota.
func (a *App) runCommand(cmd remote.Command) {
	switch cmd {
	case remote.CommandComplete:
		a.Drawing.CompleteDrawing()
	case remote.CommandCopy:
		a.Drawing.CopyDrawing()
	case remote.CommandReset:
		a.Drawing.Reset()
	default:
		log.Printf("[App] Comando desconhecido: %q", cmd)
	}
}
