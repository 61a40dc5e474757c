// Package tui implements the spotlight demo: a row of buttons whose cards
// take attention when opened, so that at most one card is ever visible and
// a click anywhere else dismisses it.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/spotlight/internal/attention"
	"github.com/Iron-Ham/spotlight/internal/event"
	"github.com/Iron-Ham/spotlight/internal/logging"
	"github.com/Iron-Ham/spotlight/internal/tui/styles"
)

// Layout constants
const (
	marginX = 2
	topY    = 2
	gapX    = 2
	gapY    = 1
)

type definition struct {
	label   string
	text    string
	tooltip bool
}

// catalog maps widget names to their demo content.
var catalog = map[string]definition{
	"delete":  {label: "Delete", text: "Delete this item?\nThis cannot be undone."},
	"archive": {label: "Archive", text: "Archive 3 conversations?"},
	"rename":  {label: "Rename", text: "Rename to \"untitled\"?"},
	"share":   {label: "Share", text: "Share with the whole team?"},
	"help": {
		label:   "?",
		tooltip: true,
		text:    "Open any button, then click elsewhere to dismiss it.\nThis tip ignores clicks; press any key.",
	},
}

// WidgetNames returns every widget name the demo knows, in display order.
func WidgetNames() []string {
	return []string{"delete", "archive", "rename", "share", "help"}
}

// Options configures New.
type Options struct {
	// Widgets lists the widgets to show, in order.
	Widgets []string
	// Width and Height are the initial terminal size. A later
	// tea.WindowSizeMsg replaces them.
	Width, Height int
	// Bus feeds the status line. Optional.
	Bus    *event.Bus
	Logger *logging.Logger
}

// Model is the demo's Bubble Tea model. It must run inside an
// attention.Provider so outside clicks are resolved before it sees them.
type Model struct {
	widgets []widget
	width   int
	height  int
	keys    keyMap
	help    help.Model
	status  *statusLine
	logger  *logging.Logger
}

// New builds the widgets named in opts, binding each to the attention
// scope carried by ctx.
func New(ctx context.Context, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	m := Model{
		width:  opts.Width,
		height: opts.Height,
		keys:   defaultKeyMap(),
		help:   h,
		status: newStatusLine(opts.Bus),
		logger: logger,
	}
	m.help.Width = opts.Width

	for _, name := range opts.Widgets {
		w, err := m.newWidget(ctx, name)
		if err != nil {
			m.Close()
			return Model{}, err
		}
		m.widgets = append(m.widgets, w)
	}

	m.layout()
	return m, nil
}

func (m *Model) newWidget(ctx context.Context, name string) (widget, error) {
	def, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown widget %q", name)
	}
	if def.tooltip {
		return NewTooltip(ctx, name, def.label, def.text)
	}
	p, err := NewPopover(ctx, name, def.label, def.text)
	if err != nil {
		return nil, err
	}
	status := m.status
	p.onConfirm = func(name string) {
		status.set(name+" confirmed", "")
	}
	return p, nil
}

// Close releases every widget's claim.
func (m Model) Close() {
	for _, w := range m.widgets {
		w.Close()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// handleMouse toggles the widget whose anchor was pressed. By the time it
// runs, the provider has already reset any claim the press fell outside of.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	p := attention.Point{X: msg.X, Y: msg.Y}
	for _, w := range m.widgets {
		if w.Anchor().Contains(p) {
			m.toggle(w)
			return
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	if w := m.active(); w != nil && w.HandleKey(msg, m.keys) {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Open):
		if n := int(msg.Runes[0] - '1'); n < len(m.widgets) {
			m.toggle(m.widgets[n])
		}
	}
	return nil
}

func (m *Model) toggle(w widget) {
	if w.IsOpen() {
		w.Hide()
		return
	}
	if err := w.Show(); err != nil {
		m.logger.Error("failed to open widget", "widget", w.Name(), "error", err)
		m.status.set(err.Error(), "")
	}
}

// active returns the open widget, if any. Attention guarantees there is at
// most one.
func (m Model) active() widget {
	for _, w := range m.widgets {
		if w.IsOpen() {
			return w
		}
	}
	return nil
}

// layout flows anchors left to right, wrapping at the right margin.
func (m *Model) layout() {
	x, y := marginX, topY
	for _, w := range m.widgets {
		anchor := styles.Anchor.Render(w.Label())
		aw, ah := lipgloss.Width(anchor), lipgloss.Height(anchor)
		if x > marginX && x+aw > m.width-marginX {
			x = marginX
			y += ah + gapY
		}
		w.Place(attention.Rect{X: x, Y: y, Width: aw, Height: ah}, m.width)
		x += aw + gapX
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	c := newCanvas(m.width, m.height)
	c.place(styles.Title.Render("spotlight"), marginX, 0)

	for _, w := range m.widgets {
		style := styles.Anchor
		if w.IsOpen() {
			style = styles.AnchorActive
		}
		r := w.Anchor()
		c.place(style.Render(w.Label()), r.X, r.Y)
	}

	if w := m.active(); w != nil {
		r := w.CardRect()
		c.place(w.Card(), r.X, r.Y)
	}

	footer := m.help.View(m.keys)
	fh := lipgloss.Height(footer)
	c.place(m.status.View(m.width), 0, m.height-fh-1)
	c.place(footer, 0, m.height-fh)

	return c.String()
}
