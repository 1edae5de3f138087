package domain

// Pane is one of the four top-level views
type Pane string

const (
	PaneItinerary Pane = "itinerary"
	PaneInfo      Pane = "info"
	PaneBudget    Pane = "budget"
	PaneTranslate Pane = "translate"
)

// Panes lists the panes in tab bar order
var Panes = []Pane{PaneItinerary, PaneInfo, PaneBudget, PaneTranslate}

// DefaultPane is active at startup
const DefaultPane = PaneItinerary

// ParsePane resolves a pane name
func ParsePane(s string) (Pane, bool) {
	for _, p := range Panes {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Shell is the tab shell state: the active pane and its scroll offset
type Shell struct {
	Active       Pane `json:"active"`
	ScrollOffset int  `json:"scrollOffset"`
}

// NewShell returns a shell showing the default pane at the top
func NewShell() Shell {
	return Shell{Active: DefaultPane}
}

// Switch activates p and scrolls back to the top. Any pane may follow any
// pane, including itself.
func (s *Shell) Switch(p Pane) error {
	if _, ok := ParsePane(string(p)); !ok {
		return ErrUnknownPane
	}
	s.Active = p
	s.ScrollOffset = 0
	return nil
}

// Scroll records the scroll offset of the active pane
func (s *Shell) Scroll(offset int) {
	if offset < 0 {
		offset = 0
	}
	s.ScrollOffset = offset
}
