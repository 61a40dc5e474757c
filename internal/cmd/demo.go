package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/spotlight/internal/attention"
	"github.com/Iron-Ham/spotlight/internal/config"
	"github.com/Iron-Ham/spotlight/internal/event"
	"github.com/Iron-Ham/spotlight/internal/logging"
	"github.com/Iron-Ham/spotlight/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive demo",
	Long: `Run the interactive demo: a row of buttons whose confirm cards
dismiss on an outside click. The "?" tooltip opts out of outside-click
dismissal and closes on any key instead.

Use --filter to pick widgets by name with a glob, e.g.:
  spotlight demo --filter 'd*'
  spotlight demo --filter '{delete,help}'`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	addDemoFlags(demoCmd)
}

func addDemoFlags(cmd *cobra.Command) {
	cmd.Flags().String("filter", "", "only show widgets whose name matches this glob")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pattern, _ := cmd.Flags().GetString("filter")
	widgets, err := selectWidgets(cfg.TUI.Widgets, pattern)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	// The watcher goroutine only touches the level, which is safe to change
	// while the program runs.
	config.Watch(func(next *config.Config, err error) {
		if err != nil {
			logger.Warn("ignoring invalid config change", "error", err)
			return
		}
		logger.SetLevel(next.Logging.Level)
		logger.Info("log level reloaded", "level", logger.Level())
	})

	bus := event.NewBus(logger)
	scope := attention.NewScope(
		attention.WithLogger(logger),
		attention.WithBus(bus),
		attention.WithButtons(cfg.Attention.Buttons()...),
	)
	defer scope.Close()

	width, height := 0, 0
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	ctx := attention.WithScope(context.Background(), scope)
	model, err := tui.New(ctx, tui.Options{
		Widgets: widgets,
		Width:   width,
		Height:  height,
		Bus:     bus,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("failed to build demo: %w", err)
	}
	defer model.Close()

	root, err := scope.Wrap(model)
	if err != nil {
		return err
	}

	logger.Info("demo started", "widgets", widgets, "mouse_mode", cfg.TUI.MouseMode)
	p := tea.NewProgram(root, tea.WithAltScreen(), cfg.TUI.ProgramOption())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	logger.Info("demo stopped")
	return nil
}

// newLogger builds the demo logger. Logging never goes to stderr while the
// TUI owns the terminal, so disabled logging discards everything.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// selectWidgets keeps the names matching pattern, in order. An empty
// pattern keeps everything.
func selectWidgets(names []string, pattern string) ([]string, error) {
	if pattern == "" {
		return names, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid --filter pattern %q: %w", pattern, err)
	}

	var out []string
	for _, name := range names {
		if g.Match(name) {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--filter %q matches no widgets", pattern)
	}
	return out, nil
}
