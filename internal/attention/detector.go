package attention

import tea "github.com/charmbracelet/bubbletea"

// DefaultButtons are the mouse buttons whose press dismisses a claim.
var DefaultButtons = []tea.MouseButton{tea.MouseButtonLeft}

// detector turns mouse presses into outside-click evictions. A scope owns
// at most one, created by Open and dropped by Close.
type detector struct {
	reg     *registry
	buttons map[tea.MouseButton]bool
}

func newDetector(reg *registry, buttons []tea.MouseButton) *detector {
	set := make(map[tea.MouseButton]bool, len(buttons))
	for _, b := range buttons {
		set[b] = true
	}
	return &detector{reg: reg, buttons: set}
}

// triggers reports whether msg counts as a click. Motion, release and wheel
// events never do.
func (d *detector) triggers(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	if tea.MouseEvent(msg).IsWheel() {
		return false
	}
	return d.buttons[msg.Button]
}

// handle evicts every claim the click landed outside of and returns how many
// were reset.
func (d *detector) handle(msg tea.MouseMsg) int {
	if !d.triggers(msg) {
		return 0
	}
	return d.reg.evictOutside(Point{X: msg.X, Y: msg.Y})
}
