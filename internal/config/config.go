package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the user settings for yt-tui.
type Config struct {
	YtDlpPath       string
	OutputDir       string
	OutputTemplate  string
	LogFile         string // empty discards log output
	Theme           string
	Tick            time.Duration
	ChannelCapacity int
}

const (
	defaultConfigPath      = "~/.config/yt-tui/config.toml"
	defaultYtDlpPath       = "yt-dlp"
	defaultOutputDir       = "~/Downloads"
	defaultOutputTemplate  = "%(title)s [%(id)s].%(ext)s"
	defaultLogFile         = "~/.local/state/yt-tui/yt-tui.log"
	defaultTheme           = "Nightfox"
	defaultTickMS          = 100
	defaultChannelCapacity = 32
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		YtDlpPath:       defaultYtDlpPath,
		OutputDir:       mustExpand(defaultOutputDir),
		OutputTemplate:  defaultOutputTemplate,
		LogFile:         mustExpand(defaultLogFile),
		Theme:           defaultTheme,
		Tick:            defaultTickMS * time.Millisecond,
		ChannelCapacity: defaultChannelCapacity,
	}
}

// Load locates and parses the yt-tui config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		YtDlpPath       string  `toml:"ytdlp_path"`
		OutputDir       string  `toml:"output_dir"`
		OutputTemplate  string  `toml:"output_template"`
		LogFile         *string `toml:"log_file"`
		Theme           string  `toml:"theme"`
		TickMS          int     `toml:"tick_ms"`
		ChannelCapacity int     `toml:"channel_capacity"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.YtDlpPath); v != "" {
		cfg.YtDlpPath = binaryPath(v)
	}
	if v := strings.TrimSpace(raw.OutputDir); v != "" {
		cfg.OutputDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.OutputTemplate); v != "" {
		cfg.OutputTemplate = v
	}
	// An explicit empty log_file turns logging off; a missing key keeps the default.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if v := strings.TrimSpace(*raw.LogFile); v != "" {
			cfg.LogFile = mustExpand(v)
		}
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if raw.TickMS > 0 {
		cfg.Tick = time.Duration(raw.TickMS) * time.Millisecond
	}
	if raw.ChannelCapacity > 0 {
		cfg.ChannelCapacity = raw.ChannelCapacity
	}

	return cfg, nil
}

// WithOutputDir returns a copy of c that saves downloads to dir. A blank dir
// leaves c unchanged.
func (c Config) WithOutputDir(dir string) (Config, error) {
	if strings.TrimSpace(dir) == "" {
		return c, nil
	}
	expanded, err := expandPath(dir)
	if err != nil {
		return Config{}, fmt.Errorf("output dir: %w", err)
	}
	c.OutputDir = expanded
	return c, nil
}

// binaryPath expands values that look like paths and leaves bare command
// names alone so they are looked up on PATH.
func binaryPath(value string) string {
	if strings.HasPrefix(value, "~") || strings.ContainsAny(value, `/\`) {
		return mustExpand(value)
	}
	return value
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
