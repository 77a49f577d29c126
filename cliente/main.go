package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"PolyDraw/cliente/internal/app"
	"PolyDraw/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	remoteAddr := flag.String("remote", "", "Endereço da ponte WebSocket de comandos (ex: localhost:8090)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_polydraw.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO POLYDRAW ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("PolyDraw v0.1.0 - desenho e cópia de polígonos")

	// Carregar configurações
	cfg := config.Load()

	// Flags sobrescrevem o config salvo
	if *remoteAddr != "" {
		cfg.RemoteAddr = *remoteAddr
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	app.New(cfg).Run()
}
