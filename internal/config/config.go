// Package config loads the optional bignum.toml file that holds session and
// tracing defaults. Command-line flags take precedence over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for from the working directory upwards.
const FileName = "bignum.toml"

// DefaultPrompt is written before each read when prompting is enabled.
// Lines starting with '#' are ignored by test drivers.
const DefaultPrompt = "#Enter number or 'q':"

// PromptMode selects when the session prompt is shown.
type PromptMode string

const (
	PromptAuto PromptMode = "auto"
	PromptOn   PromptMode = "on"
	PromptOff  PromptMode = "off"
)

// Config is the decoded bignum.toml.
type Config struct {
	Session SessionConfig `toml:"session"`
	Trace   TraceConfig   `toml:"trace"`
}

type SessionConfig struct {
	Prompt     string     `toml:"prompt"`
	ShowPrompt PromptMode `toml:"show_prompt"`
	Poly       bool       `toml:"poly"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Session: SessionConfig{
			Prompt:     DefaultPrompt,
			ShowPrompt: PromptAuto,
		},
		Trace: TraceConfig{
			Level:  "off",
			Output: "-",
			Format: "text",
		},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("session", "show_prompt") {
		mode, err := ParsePromptMode(string(cfg.Session.ShowPrompt))
		if err != nil {
			return Config{}, fmt.Errorf("%s: [session].show_prompt: %w", path, err)
		}
		cfg.Session.ShowPrompt = mode
	}
	if meta.IsDefined("trace", "output") && strings.TrimSpace(cfg.Trace.Output) == "" {
		return Config{}, fmt.Errorf("%s: [trace].output must not be empty", path)
	}
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest FileName above
// startDir, otherwise Default. The returned path is empty when no file was used.
func Resolve(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// ParsePromptMode validates a show_prompt / --prompt-mode value.
func ParsePromptMode(value string) (PromptMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return PromptAuto, nil
	case "on":
		return PromptOn, nil
	case "off":
		return PromptOff, nil
	default:
		return "", fmt.Errorf("invalid prompt mode %q (expected auto|on|off)", value)
	}
}
