package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var Config Configuration

const (
	DisplaySDL   = "sdl"
	DisplayTcell = "tcell"
	DisplayANSI  = "ansi"
)

type Configuration struct {
	LogLevel  int    `json:"logLevel" toml:"logLevel"`
	LogFile   string `json:"logFile" toml:"logFile"`
	Display   string `json:"display" toml:"display"`
	FontPath  string `json:"fontPath" toml:"fontPath"`
	FontSize  int    `json:"fontSize" toml:"fontSize"`
	ShowStats bool   `json:"showStats" toml:"showStats"`
	// ResetServe is a pointer so an absent key can default to true.
	ResetServe *bool `json:"resetServe" toml:"resetServe"`
}

func Default() Configuration {
	return Configuration{
		Display:  DisplaySDL,
		FontPath: "font.ttf",
		FontSize: 32,
	}
}

// ServeResets reports whether a goal restores the serve velocity.
func (c Configuration) ServeResets() bool {
	return c.ResetServe == nil || *c.ResetServe
}

// TerminalDisplay reports whether the display draws into the terminal the
// process is attached to.
func (c Configuration) TerminalDisplay() bool {
	return c.Display == DisplayTcell || c.Display == DisplayANSI
}

func LoadConfig(path string) {
	Config = Load(path)
}

// Load reads path, or config.json when path is empty. Files ending in
// .toml are parsed as TOML, everything else as JSON. Missing or broken
// files fall back to the defaults.
func Load(path string) Configuration {
	var c = Default()

	if path == "" {
		path = "config.json"
	}

	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.Any("path", path))
		return c
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.Decode(string(cf), &c)
	} else {
		err = json.Unmarshal(cf, &c)
	}
	if err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		return Default()
	}

	switch c.Display {
	case DisplaySDL, DisplayTcell, DisplayANSI:
	default:
		slog.Info("unknown display, using default", slog.Any("display", c.Display))
		c.Display = DisplaySDL
	}
	if c.FontSize <= 0 {
		c.FontSize = Default().FontSize
	}

	return c
}
