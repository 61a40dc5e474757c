package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !slices.Equal(cfg.Attention.DismissButtons, []string{"left"}) {
		t.Errorf("Attention.DismissButtons = %v, want [left]", cfg.Attention.DismissButtons)
	}
	if cfg.TUI.MouseMode != "cell_motion" {
		t.Errorf("TUI.MouseMode = %q, want %q", cfg.TUI.MouseMode, "cell_motion")
	}
	if !slices.Equal(cfg.TUI.Widgets, ValidWidgets()) {
		t.Errorf("TUI.Widgets = %v, want %v", cfg.TUI.Widgets, ValidWidgets())
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Dir != "" {
		t.Errorf("Logging.Dir = %q, want empty", cfg.Logging.Dir)
	}
}

func TestAttentionConfig_Buttons(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []tea.MouseButton
	}{
		{"default", []string{"left"}, []tea.MouseButton{tea.MouseButtonLeft}},
		{"several", []string{"left", "right"}, []tea.MouseButton{tea.MouseButtonLeft, tea.MouseButtonRight}},
		{"case insensitive", []string{"Middle"}, []tea.MouseButton{tea.MouseButtonMiddle}},
		{"unknown skipped", []string{"wheel", "right"}, []tea.MouseButton{tea.MouseButtonRight}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AttentionConfig{DismissButtons: tt.names}
			if got := a.Buttons(); !slices.Equal(got, tt.want) {
				t.Errorf("Buttons() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoggingConfig_ResolveDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	t.Run("empty uses state dir", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/tmp/state")
		l := LoggingConfig{}
		if got, want := l.ResolveDir(), filepath.Join("/tmp/state", "spotlight", "logs"); got != want {
			t.Errorf("ResolveDir() = %q, want %q", got, want)
		}
	})

	t.Run("tilde expands", func(t *testing.T) {
		l := LoggingConfig{Dir: "~/logs"}
		if got, want := l.ResolveDir(), filepath.Join(home, "logs"); got != want {
			t.Errorf("ResolveDir() = %q, want %q", got, want)
		}
	})

	t.Run("bare tilde", func(t *testing.T) {
		l := LoggingConfig{Dir: "~"}
		if got := l.ResolveDir(); got != home {
			t.Errorf("ResolveDir() = %q, want %q", got, home)
		}
	})

	t.Run("absolute kept", func(t *testing.T) {
		l := LoggingConfig{Dir: "/var/log/spotlight"}
		if got := l.ResolveDir(); got != "/var/log/spotlight" {
			t.Errorf("ResolveDir() = %q, want /var/log/spotlight", got)
		}
	})
}

func TestConfigDir(t *testing.T) {
	t.Run("prefers XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		if got, want := ConfigDir(), filepath.Join("/tmp/xdg", "spotlight"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
		if got, want := ConfigFile(), filepath.Join("/tmp/xdg", "spotlight", "config.yaml"); got != want {
			t.Errorf("ConfigFile() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		if got, want := ConfigDir(), filepath.Join(home, ".config", "spotlight"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

// loadFile resets viper, registers defaults and reads path as the config file.
func loadFile(t *testing.T, contents string) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig failed: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.TUI.MouseMode != "cell_motion" {
			t.Errorf("TUI.MouseMode = %q, want cell_motion", cfg.TUI.MouseMode)
		}
		if !slices.Equal(cfg.Attention.DismissButtons, []string{"left"}) {
			t.Errorf("DismissButtons = %v, want [left]", cfg.Attention.DismissButtons)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		loadFile(t, `
attention:
  dismiss_buttons: [left, right]
tui:
  mouse_mode: all_motion
  widgets: [delete, help]
logging:
  level: debug
`)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if !slices.Equal(cfg.Attention.DismissButtons, []string{"left", "right"}) {
			t.Errorf("DismissButtons = %v", cfg.Attention.DismissButtons)
		}
		if cfg.TUI.MouseMode != "all_motion" {
			t.Errorf("MouseMode = %q, want all_motion", cfg.TUI.MouseMode)
		}
		if !slices.Equal(cfg.TUI.Widgets, []string{"delete", "help"}) {
			t.Errorf("Widgets = %v", cfg.TUI.Widgets)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
		}
		if !cfg.Logging.Enabled {
			t.Error("Logging.Enabled should keep its default")
		}
	})

	t.Run("invalid file returns validation errors", func(t *testing.T) {
		loadFile(t, `
tui:
  mouse_mode: sometimes
`)
		_, err := Load()
		if err == nil {
			t.Fatal("Load() should fail for an invalid mouse mode")
		}
		verrs, ok := err.(ValidationErrors)
		if !ok {
			t.Fatalf("expected ValidationErrors, got %T", err)
		}
		if len(verrs) != 1 || verrs[0].Field != "tui.mouse_mode" {
			t.Errorf("unexpected errors: %v", verrs)
		}
	})

	t.Run("Get falls back to defaults", func(t *testing.T) {
		loadFile(t, `
logging:
  level: chatty
`)
		cfg := Get()
		if cfg.Logging.Level != "info" {
			t.Errorf("Get().Logging.Level = %q, want default info", cfg.Logging.Level)
		}
	})
}

func TestWatch_NoConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	if Watch(func(*Config, error) {}) {
		t.Error("Watch() should report false when no config file is loaded")
	}
}
