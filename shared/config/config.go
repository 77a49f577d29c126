package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config armazena as configurações do PolyDraw.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width" yaml:"window_width"`
	WindowHeight int32  `json:"window_height" yaml:"window_height"`
	WindowTitle  string `json:"window_title" yaml:"window_title"`
	Fullscreen   bool   `json:"fullscreen" yaml:"fullscreen"`
	TargetFPS    int32  `json:"target_fps" yaml:"target_fps"`

	// Grade de referência no plano z=0
	ShowGrid   bool   `json:"show_grid" yaml:"show_grid"`
	GridSlices int32  `json:"grid_slices" yaml:"grid_slices"`
	GridColor  string `json:"grid_color" yaml:"grid_color"`

	// Cores (#rrggbb)
	BackgroundColor string `json:"background_color" yaml:"background_color"`
	LineColor       string `json:"line_color" yaml:"line_color"`       // Polilinha durante o desenho
	FillColor       string `json:"fill_color" yaml:"fill_color"`       // Polígono concluído
	OutlineColor    string `json:"outline_color" yaml:"outline_color"` // Contorno do polígono concluído
	CloneColor      string `json:"clone_color" yaml:"clone_color"`     // Cópia arrastável

	// Interação
	PointerSampleMS int `json:"pointer_sample_ms" yaml:"pointer_sample_ms"` // Intervalo mínimo entre amostras de movimento
	ResetCooldownMS int `json:"reset_cooldown_ms" yaml:"reset_cooldown_ms"` // Tempo em que o Reiniciar fica desativado

	// Câmera
	CameraDistance float32 `json:"camera_distance" yaml:"camera_distance"`
	MinZoom        float32 `json:"min_zoom" yaml:"min_zoom"`
	MaxZoom        float32 `json:"max_zoom" yaml:"max_zoom"`
	ZoomSpeed      float32 `json:"zoom_speed" yaml:"zoom_speed"`
	CameraSpeed    float32 `json:"camera_speed" yaml:"camera_speed"`
	SmoothFactor   float32 `json:"smooth_factor" yaml:"smooth_factor"`

	// Ponte remota (websocket). Vazio desativa.
	RemoteAddr string `json:"remote_addr" yaml:"remote_addr"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info" yaml:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "PolyDraw",
		Fullscreen:   false,
		TargetFPS:    60,

		ShowGrid:   true,
		GridSlices: 40,
		GridColor:  "#d3d3d3",

		BackgroundColor: "#ffffff",
		LineColor:       "#ff0000",
		FillColor:       "#00ff00",
		OutlineColor:    "#000000",
		CloneColor:      "#ff00ff",

		PointerSampleMS: 16,
		ResetCooldownMS: 1000,

		CameraDistance: 5.0,
		MinZoom:        0.25,
		MaxZoom:        8.0,
		ZoomSpeed:      0.1,
		CameraSpeed:    400.0,
		SmoothFactor:   0.2,

		RemoteAddr: "",

		ShowDebugInfo: false,
	}
}

// PointerSampleInterval retorna o intervalo de amostragem do ponteiro.
func (c *Config) PointerSampleInterval() time.Duration {
	return time.Duration(c.PointerSampleMS) * time.Millisecond
}

// ResetCooldown retorna o tempo de bloqueio do Reiniciar.
func (c *Config) ResetCooldown() time.Duration {
	return time.Duration(c.ResetCooldownMS) * time.Millisecond
}

// normalize devolve valores inválidos ao padrão.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.WindowWidth <= 0 {
		c.WindowWidth = def.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = def.WindowHeight
	}
	if c.WindowTitle == "" {
		c.WindowTitle = def.WindowTitle
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
	if c.GridSlices <= 0 {
		c.GridSlices = def.GridSlices
	}
	if c.PointerSampleMS < 0 {
		c.PointerSampleMS = def.PointerSampleMS
	}
	if c.ResetCooldownMS <= 0 {
		c.ResetCooldownMS = def.ResetCooldownMS
	}
	if c.CameraDistance <= 0 {
		c.CameraDistance = def.CameraDistance
	}
	if c.MinZoom <= 0 || c.MaxZoom < c.MinZoom {
		c.MinZoom = def.MinZoom
		c.MaxZoom = def.MaxZoom
	}
	if c.ZoomSpeed <= 0 {
		c.ZoomSpeed = def.ZoomSpeed
	}
	if c.CameraSpeed <= 0 {
		c.CameraSpeed = def.CameraSpeed
	}
	if c.SmoothFactor <= 0 || c.SmoothFactor > 1 {
		c.SmoothFactor = def.SmoothFactor
	}
}

// configNames são os arquivos procurados ao lado do executável, em ordem.
var configNames = []string{"config.yaml", "config.yml", "config.json"}

// configPath retorna o caminho do arquivo de configuração.
// Um config.yaml existente tem preferência sobre o config.json.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	dir := filepath.Dir(execDir)
	for _, name := range configNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, "config.json")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load carrega as configurações do arquivo ao lado do executável.
// Se o arquivo não existir ou for inválido, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFrom(configPath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Config] Arquivo inválido, usando padrão: %v", err)
		}
		return DefaultConfig()
	}
	return cfg
}

// LoadFrom carrega as configurações de um arquivo JSON ou YAML (pela extensão).
// Campos ausentes mantêm o valor padrão.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// Save salva as configurações no arquivo ao lado do executável.
func (c *Config) Save() error {
	return c.SaveTo(configPath())
}

// SaveTo salva as configurações em um arquivo específico, no formato da extensão.
func (c *Config) SaveTo(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
