package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/spotlight/internal/attention"
	"github.com/Iron-Ham/spotlight/internal/tui/styles"
)

// widget is a demo element with a clickable anchor and a card that is
// visible while the widget is open.
type widget interface {
	Name() string
	Label() string
	IsOpen() bool
	Show() error
	Hide()
	// HandleKey is called while the widget is open. It reports whether the
	// key was consumed.
	HandleKey(msg tea.KeyMsg, keys keyMap) bool
	Card() string
	Anchor() attention.Rect
	CardRect() attention.Rect
	Place(anchor attention.Rect, width int)
	Close()
}

// card tracks the state shared by every widget kind.
type card struct {
	name     string
	label    string
	open     bool
	anchor   attention.Rect
	rect     attention.Rect
	claimant *attention.Claimant
}

func (c *card) Name() string             { return c.name }
func (c *card) Label() string            { return c.label }
func (c *card) IsOpen() bool             { return c.open }
func (c *card) Anchor() attention.Rect   { return c.anchor }
func (c *card) CardRect() attention.Rect { return c.rect }
func (c *card) Close()                   { c.claimant.Close() }

// setOpen records the open state and syncs the claimant with it.
func (c *card) setOpen(open bool) error {
	c.open = open
	return c.claimant.Sync(open)
}

// place positions the anchor and puts the rendered card directly below it,
// shifted left when it would run off the right edge.
func (c *card) place(anchor attention.Rect, rendered string, width int) {
	c.anchor = anchor
	w, h := lipgloss.Width(rendered), lipgloss.Height(rendered)
	x := anchor.X
	if x+w > width {
		x = max(0, width-w)
	}
	c.rect = attention.Rect{X: x, Y: anchor.Y + anchor.Height, Width: w, Height: h}
}

// Popover is a confirm card. Clicking outside both its anchor and its card
// dismisses it.
type Popover struct {
	card
	prompt    string
	ref       *attention.Ref
	confirmed int
	onConfirm func(name string)
}

// NewPopover creates a popover bound to the attention scope in ctx.
func NewPopover(ctx context.Context, name, label, prompt string) (*Popover, error) {
	p := &Popover{
		card:   card{name: name, label: label},
		prompt: prompt,
		ref:    attention.NewRef(),
	}
	c, err := attention.NewClaimant(ctx, p.Hide, p.ref)
	if err != nil {
		return nil, err
	}
	p.claimant = c
	return p, nil
}

// Show opens the popover, taking attention from whoever holds it.
func (p *Popover) Show() error {
	if err := p.setOpen(true); err != nil {
		p.open = false
		return err
	}
	p.syncRef()
	return nil
}

// Hide closes the popover. It is also the popover's reset callback.
func (p *Popover) Hide() {
	p.open = false
	p.syncRef()
	_ = p.claimant.Sync(false)
}

// Confirmed returns how many times the popover was confirmed.
func (p *Popover) Confirmed() int {
	return p.confirmed
}

func (p *Popover) HandleKey(msg tea.KeyMsg, keys keyMap) bool {
	switch {
	case key.Matches(msg, keys.Confirm):
		p.confirmed++
		p.Hide()
		if p.onConfirm != nil {
			p.onConfirm(p.name)
		}
		return true
	case key.Matches(msg, keys.Dismiss):
		p.Hide()
		return true
	}
	return false
}

func (p *Popover) Card() string {
	hint := styles.CardHint.Render("enter confirm · esc cancel")
	return styles.Card.Render(p.prompt + "\n\n" + hint)
}

func (p *Popover) Place(anchor attention.Rect, width int) {
	p.place(anchor, p.Card(), width)
	p.syncRef()
}

// syncRef publishes the popover's region: the bounding box of the anchor and
// the card while open, nothing while closed.
func (p *Popover) syncRef() {
	if !p.open {
		p.ref.Clear()
		return
	}
	p.ref.Set(union(p.anchor, p.rect))
}

// Tooltip is a note that ignores outside clicks. It closes on any key, on a
// second click of its anchor, or when another widget takes attention.
type Tooltip struct {
	card
	text string
}

// NewTooltip creates a tooltip bound to the attention scope in ctx.
func NewTooltip(ctx context.Context, name, label, text string) (*Tooltip, error) {
	t := &Tooltip{card: card{name: name, label: label}, text: text}
	c, err := attention.NewClaimant(ctx, t.Hide, attention.NoBoundary)
	if err != nil {
		return nil, err
	}
	t.claimant = c
	return t, nil
}

func (t *Tooltip) Show() error {
	if err := t.setOpen(true); err != nil {
		t.open = false
		return err
	}
	return nil
}

func (t *Tooltip) Hide() {
	t.open = false
	_ = t.claimant.Sync(false)
}

// HandleKey closes the tooltip. Only the dismiss key is consumed; every
// other key keeps its normal meaning.
func (t *Tooltip) HandleKey(msg tea.KeyMsg, keys keyMap) bool {
	t.Hide()
	return key.Matches(msg, keys.Dismiss)
}

func (t *Tooltip) Card() string {
	return styles.Tooltip.Render(t.text)
}

func (t *Tooltip) Place(anchor attention.Rect, width int) {
	t.place(anchor, t.Card(), width)
}

// union returns the smallest rectangle covering a and b.
func union(a, b attention.Rect) attention.Rect {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	x0, y0 := min(a.X, b.X), min(a.Y, b.Y)
	x1 := max(a.X+a.Width, b.X+b.Width)
	y1 := max(a.Y+a.Height, b.Y+b.Height)
	return attention.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
