package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// component descreve um binário do repositório.
type component struct {
	name   string
	dir    string
	output string
	cgo    bool // Raylib exige CGO
	gui    bool // Sem console no Windows
}

var components = []component{
	{name: "CLIENTE (CGO + GUI)", dir: "cliente", output: "polydraw", cgo: true, gui: true},
	{name: "CONTROLE (Pure Go)", dir: "controle", output: "polyctl"},
}

func main() {
	outDir := flag.String("out", "bin", "Diretório de saída")
	flag.Parse()

	fmt.Println(ColorCyan + "PolyDraw Builder" + ColorReset)
	start := time.Now()

	setupEnvironment()

	for i, c := range components {
		fmt.Printf(ColorYellow+"\n[%d/%d] Compilando %s..."+ColorReset+"\n", i+1, len(components), c.name)
		if err := build(c, *outDir); err != nil {
			fatal(err)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
}

func setupEnvironment() {
	if runtime.GOOS != "windows" {
		return
	}
	// Adicionar MSYS2 ao PATH
	msysPath := `C:\msys64\mingw64\bin`
	if currentPath := os.Getenv("PATH"); !strings.Contains(currentPath, msysPath) {
		os.Setenv("PATH", msysPath+";"+currentPath)
		fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
	}
	os.Setenv("CC", "gcc")
}

// ldflags monta as flags de link por plataforma.
func ldflags(c component) string {
	flags := []string{"-s", "-w"}
	if runtime.GOOS == "windows" {
		if c.cgo {
			flags = append(flags, "-extldflags=-static")
		}
		if c.gui {
			flags = append(flags, "-H=windowsgui")
		}
	}
	return strings.Join(flags, " ")
}

func build(c component, outDir string) error {
	output := filepath.Join(outDir, c.output)
	if runtime.GOOS == "windows" {
		output += ".exe"
	}

	cgoValue := "0"
	if c.cgo {
		cgoValue = "1"
	}

	cmd := exec.Command("go", "build", "-ldflags", ldflags(c), "-o", output, "./"+c.dir)
	cmd.Env = append(os.Environ(), "CGO_ENABLED="+cgoValue)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %w", c.name, err)
	}

	fmt.Printf(ColorGreen+"  - %s -> %s"+ColorReset+"\n", c.name, output)
	return nil
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	os.Exit(1)
}
