package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/spotlight/internal/event"
	"github.com/Iron-Ham/spotlight/internal/tui/styles"
)

// statusLine keeps the most recent attention activity for display.
// It is fed by the event bus on the Update goroutine.
type statusLine struct {
	text      string
	eventType string
	evictions int
}

func newStatusLine(bus *event.Bus) *statusLine {
	s := &statusLine{text: "click a button"}
	if bus != nil {
		bus.SubscribeAll(s.record)
	}
	return s
}

func (s *statusLine) set(text, eventType string) {
	s.text = text
	s.eventType = eventType
}

func (s *statusLine) record(e event.Event) {
	switch ev := e.(type) {
	case event.ClaimRegisteredEvent:
		text := "claimed " + shortID(ev.ClaimID)
		if ev.Evicted > 0 {
			text += fmt.Sprintf(" (displaced %d)", ev.Evicted)
		}
		s.set(text, ev.EventType())
	case event.ClaimEvictedEvent:
		s.evictions++
		s.set(fmt.Sprintf("evicted %s (%s)", shortID(ev.ClaimID), ev.Reason), ev.EventType())
	case event.ClaimReleasedEvent:
		// A release after eviction is a tolerated no-op; keep showing the eviction.
		if ev.Present {
			s.set("released "+shortID(ev.ClaimID), ev.EventType())
		}
	case event.ScopeEvent:
		if ev.EventType() == event.TypeScopeOpened {
			s.set("scope opened", ev.EventType())
		}
	}
}

// View renders the status line clipped to width.
func (s *statusLine) View(width int) string {
	style := styles.StatusBar.Foreground(styles.EventColor(s.eventType))
	line := fmt.Sprintf("%s  [evictions: %d]", s.text, s.evictions)
	return style.Render(ansi.Truncate(line, max(0, width), ""))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
