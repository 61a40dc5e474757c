package attention

import tea "github.com/charmbracelet/bubbletea"

// Provider is a root tea.Model that routes every mouse message through its
// scope's detector before the wrapped model sees it. Stale claims are
// therefore already reset when the wrapped model handles the same click.
type Provider struct {
	scope *Scope
	inner tea.Model
}

// Wrap opens s and returns a Provider around m. Bubble Tea consumes
// tea.QuitMsg itself, so the caller closes s after Program.Run returns.
func (s *Scope) Wrap(m tea.Model) (Provider, error) {
	if err := s.Open(); err != nil {
		return Provider{}, err
	}
	return Provider{scope: s, inner: m}, nil
}

// Init implements tea.Model.
func (p Provider) Init() tea.Cmd {
	return p.inner.Init()
}

// Update implements tea.Model.
func (p Provider) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		p.scope.HandleMouse(mouse)
	}
	inner, cmd := p.inner.Update(msg)
	p.inner = inner
	return p, cmd
}

// View implements tea.Model.
func (p Provider) View() string {
	return p.inner.View()
}

// Inner returns the wrapped model as of the last Update.
func (p Provider) Inner() tea.Model {
	return p.inner
}

// Scope returns the provider's scope.
func (p Provider) Scope() *Scope {
	return p.scope
}
