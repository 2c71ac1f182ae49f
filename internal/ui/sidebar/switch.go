package sidebar

import (
	"runtime"

	"github.com/oshokin/notes-release/internal/ui/atom"
)

// Message ids looked up in the translation catalogue.
const (
	MessageCollapse = "Collapse sidebar"
	MessageExpand   = "Expand sidebar"
)

// Keyboard shortcut hints, leading space included.
const (
	ShortcutMac     = " ⌘+/"
	ShortcutDefault = " Ctrl+/"
)

// Fixed presentation attributes of the switch.
const (
	TooltipPlacement = "right"
	TooltipZIndex    = 1000
	ButtonSize       = "large"
	IconName         = "sidebar"
)

// Translator resolves a label by message id.
type Translator interface {
	Translate(id string) string
}

// Environment describes the host the view runs in.
type Environment struct {
	// IsBrowser is set when the view runs inside a browser-hosted runtime.
	IsBrowser bool
	// IsMacOS is set on desktop Apple platforms.
	IsMacOS bool
}

// CurrentEnvironment detects the environment of this process.
func CurrentEnvironment() Environment {
	return Environment{
		IsBrowser: runtime.GOOS == "js",
		IsMacOS:   runtime.GOOS == "darwin",
	}
}

// Shortcut returns the collapse shortcut hint for env.
func (env Environment) Shortcut() string {
	if env.IsBrowser && env.IsMacOS {
		return ShortcutMac
	}

	return ShortcutDefault
}

// View is what a renderer needs to paint the switch.
type View struct {
	Open      bool
	Tooltip   string
	TestID    string
	Placement string
	ZIndex    int
	Size      string
	Icon      string
}

// Tooltip returns the tooltip text for the given flag value.
func Tooltip(open bool, t Translator, env Environment) string {
	id := MessageExpand
	if open {
		id = MessageCollapse
	}

	return t.Translate(id) + " " + env.Shortcut()
}

// TestID returns the data-testid of the button for the given flag value.
func TestID(open bool) string {
	if open {
		return "app-sidebar-arrow-button-collapse"
	}

	return "app-sidebar-arrow-button-expand"
}

// Switch binds the view to a shared flag.
type Switch struct {
	open       *atom.Atom[bool]
	translator Translator
	env        Environment
}

// NewSwitch creates a switch over the shared open flag.
func NewSwitch(open *atom.Atom[bool], t Translator, env Environment) *Switch {
	return &Switch{
		open:       open,
		translator: t,
		env:        env,
	}
}

// Render computes the view from the current flag value.
func (s *Switch) Render() View {
	return RenderState(s.open.Load(), s.translator, s.env)
}

// Click inverts the flag, reading it at the moment of the flip, and returns the new value.
func (s *Switch) Click() bool {
	return s.open.Update(func(open bool) bool {
		return !open
	})
}

// RenderState builds the view for an explicit flag value.
func RenderState(open bool, t Translator, env Environment) View {
	return View{
		Open:      open,
		Tooltip:   Tooltip(open, t, env),
		TestID:    TestID(open),
		Placement: TooltipPlacement,
		ZIndex:    TooltipZIndex,
		Size:      ButtonSize,
		Icon:      IconName,
	}
}
