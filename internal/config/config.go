package config

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config represents the complete spotlight configuration
type Config struct {
	Attention AttentionConfig `mapstructure:"attention" yaml:"attention"`
	TUI       TUIConfig       `mapstructure:"tui" yaml:"tui"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// AttentionConfig controls outside-click dismissal
type AttentionConfig struct {
	// DismissButtons lists the mouse buttons whose press outside the active
	// widget resets it. Options: "left", "middle", "right" (default: ["left"])
	DismissButtons []string `mapstructure:"dismiss_buttons" yaml:"dismiss_buttons"`
}

// TUIConfig controls the demo terminal UI
type TUIConfig struct {
	// MouseMode selects how the terminal reports mouse events.
	// Options: "cell_motion", "all_motion" (default: "cell_motion")
	MouseMode string `mapstructure:"mouse_mode" yaml:"mouse_mode"`
	// Widgets lists which demo widgets to show, in order
	Widgets []string `mapstructure:"widgets" yaml:"widgets"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where debug.log is written. Empty means the state directory.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// mouseButtons maps config names to Bubble Tea buttons
var mouseButtons = map[string]tea.MouseButton{
	"left":   tea.MouseButtonLeft,
	"middle": tea.MouseButtonMiddle,
	"right":  tea.MouseButtonRight,
}

// Buttons returns DismissButtons as Bubble Tea buttons, skipping unknown names.
func (a *AttentionConfig) Buttons() []tea.MouseButton {
	var out []tea.MouseButton
	for _, name := range a.DismissButtons {
		if b, ok := mouseButtons[strings.ToLower(name)]; ok {
			out = append(out, b)
		}
	}
	return out
}

// ProgramOption returns the tea.ProgramOption for MouseMode.
func (t *TUIConfig) ProgramOption() tea.ProgramOption {
	if t.MouseMode == "all_motion" {
		return tea.WithMouseAllMotion()
	}
	return tea.WithMouseCellMotion()
}

// ResolveDir returns the resolved log directory.
// If Dir is empty, it returns StateDir()/logs.
// If Dir starts with ~, it expands to the user's home directory.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(StateDir(), "logs")
	}

	path := l.Dir
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Attention: AttentionConfig{
			DismissButtons: []string{"left"},
		},
		TUI: TUIConfig{
			MouseMode: "cell_motion",
			Widgets:   ValidWidgets(),
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("attention.dismiss_buttons", defaults.Attention.DismissButtons)

	viper.SetDefault("tui.mouse_mode", defaults.TUI.MouseMode)
	viper.SetDefault("tui.widgets", defaults.TUI.Widgets)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded configuration is invalid
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Watch reloads the configuration whenever the config file is written and
// passes the result to onChange. onChange runs on viper's watcher goroutine.
// Watch does nothing when no config file is in use.
func Watch(onChange func(*Config, error)) bool {
	if viper.ConfigFileUsed() == "" {
		return false
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(Load())
	})
	viper.WatchConfig()
	return true
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spotlight")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spotlight"
	}
	return filepath.Join(home, ".config", "spotlight")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "spotlight")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spotlight"
	}
	return filepath.Join(home, ".local", "state", "spotlight")
}
