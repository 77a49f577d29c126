package app

import (
	"fmt"

	"PolyDraw/cliente/internal/render"
	"PolyDraw/shared/remote"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	toolbarMargin  = 10
	toolbarButtonW = 130
	toolbarButtonH = 36
)

// toolButton é um botão da barra de ferramentas.
type toolButton struct {
	label   string
	hint    string
	cmd     remote.Command
	bounds  rl.Rectangle
	color   rl.Color
	enabled func() bool
}

// newToolbar monta os botões no canto superior esquerdo.
func (a *App) newToolbar() []*toolButton {
	buttons := []*toolButton{
		{label: "Concluir", hint: "Enter", cmd: remote.CommandComplete, color: rl.DarkGreen, enabled: a.Drawing.CanComplete},
		{label: "Copiar", hint: "C", cmd: remote.CommandCopy, color: rl.DarkBlue, enabled: a.Drawing.CanCopy},
		{label: "Reiniciar", hint: "R", cmd: remote.CommandReset, color: rl.Maroon, enabled: a.Drawing.ResetAvailable},
	}
	x := float32(toolbarMargin)
	for _, b := range buttons {
		b.bounds = rl.NewRectangle(x, toolbarMargin, toolbarButtonW, toolbarButtonH)
		x += toolbarButtonW + toolbarMargin
	}
	return buttons
}

// toolbarBounds é a faixa ocupada pela barra, incluindo margens.
func (a *App) toolbarBounds() rl.Rectangle {
	n := float32(len(a.toolbar))
	return rl.NewRectangle(0, 0, n*(toolbarButtonW+toolbarMargin)+toolbarMargin, toolbarButtonH+2*toolbarMargin)
}

func (a *App) overToolbar(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, a.toolbarBounds())
}

// pressToolbar aciona o botão sob o ponteiro, se estiver habilitado.
func (a *App) pressToolbar(p rl.Vector2) {
	for _, b := range a.toolbar {
		if rl.CheckCollisionPointRec(p, b.bounds) && b.enabled() {
			a.runCommand(b.cmd)
			return
		}
	}
}

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.background)

	a.drawScene()
	a.drawToolbar()
	a.drawHUD()

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(render.RaylibCamera(a.Cam))
	a.renderer.Draw()
	rl.EndMode3D()
}

// drawToolbar desenha os botões com hover e estado desabilitado.
func (a *App) drawToolbar() {
	mouse := rl.GetMousePosition()
	hovering := false

	for _, b := range a.toolbar {
		enabled := b.enabled()
		isHover := rl.CheckCollisionPointRec(mouse, b.bounds)

		fill := b.color
		text := rl.White
		if !enabled {
			fill = rl.LightGray
			text = rl.Gray
		} else if isHover {
			fill.R = addClamp(fill.R, 30)
			fill.G = addClamp(fill.G, 30)
			fill.B = addClamp(fill.B, 30)
			hovering = true
		}

		x, y := int32(b.bounds.X), int32(b.bounds.Y)
		w, h := int32(b.bounds.Width), int32(b.bounds.Height)
		rl.DrawRectangle(x, y, w, h, fill)
		rl.DrawRectangleLines(x, y, w, h, rl.DarkGray)

		label := fmt.Sprintf("%s (%s)", b.label, b.hint)
		textWidth := rl.MeasureText(label, 16)
		rl.DrawText(label, x+(w-textWidth)/2, y+(h-16)/2, 16, text)
	}

	if hovering {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func addClamp(c, d uint8) uint8 {
	if int(c)+int(d) > 255 {
		return 255
	}
	return c + d
}

// drawHUD desenha a linha de estado e, com F3, o painel de debug.
func (a *App) drawHUD() {
	screenHeight := int32(rl.GetScreenHeight())

	status := fmt.Sprintf("Modo: %s | Vértices: %d", a.Drawing.Mode(), len(a.Drawing.Vertices()))
	if a.Drawing.Clone() != nil {
		status += " | Cópia: clique ou arraste para posicionar"
	}
	rl.DrawText(status, toolbarMargin, screenHeight-30, 18, rl.DarkGray)

	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(320)
	height := int32(150)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	remoteStr := "Ponte: desligada"
	if a.remote != nil {
		remoteStr = "Ponte: " + a.remote.Addr()
	}
	rl.DrawText(remoteStr, x+120, y+14, 14, rl.SkyBlue)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	look := a.Cam.CurrentLookAt
	rl.DrawText(fmt.Sprintf("Câmera: (%.1f, %.1f) zoom %.2f", look.X(), look.Y(), a.Cam.CurrentZoom), x+10, y+45, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Formas na cena: %d | Arrastando: %v", a.renderer.Len(), a.Drawing.Dragging()), x+10, y+65, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Janela: %s | Frame %d", a.viewport, a.frameCount), x+10, y+85, 14, rl.LightGray)

	rl.DrawLine(x+10, y+105, x+width-10, y+105, rl.NewColor(100, 100, 100, 100))
	rl.DrawText("WASD: Mover | Scroll: Zoom | Home: Centro | G: Grade", x+10, y+115, 14, rl.LightGray)
	rl.DrawText("F11: Tela Cheia | F3: HUD", x+10, y+130, 14, rl.SkyBlue)
}
