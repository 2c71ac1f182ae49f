package sidebar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/notes-release/internal/ui/atom"
)

// echoTranslator returns message ids unchanged.
type echoTranslator struct{}

func (echoTranslator) Translate(id string) string { return id }

// upperTranslator stands in for a real catalogue.
type upperTranslator map[string]string

func (u upperTranslator) Translate(id string) string { return u[id] }

// TestTooltip_Platforms checks the label and shortcut concatenation per host.
func TestTooltip_Platforms(t *testing.T) {
	t.Parallel()

	macBrowser := Environment{IsBrowser: true, IsMacOS: true}
	macDesktop := Environment{IsMacOS: true}
	windows := Environment{}

	require.Equal(t, "Collapse sidebar  ⌘+/", Tooltip(true, echoTranslator{}, macBrowser))
	require.Equal(t, "Expand sidebar  ⌘+/", Tooltip(false, echoTranslator{}, macBrowser))
	require.Equal(t, "Collapse sidebar  Ctrl+/", Tooltip(true, echoTranslator{}, macDesktop))
	require.Equal(t, "Expand sidebar  Ctrl+/", Tooltip(false, echoTranslator{}, windows))

	translated := upperTranslator{MessageCollapse: "Свернуть", MessageExpand: "Развернуть"}
	require.Equal(t, "Свернуть "+ShortcutDefault, Tooltip(true, translated, windows))
}

// TestSwitch_ClickInvertsFlag flips the shared flag and updates the rendered view.
func TestSwitch_ClickInvertsFlag(t *testing.T) {
	t.Parallel()

	open := atom.New(false)
	s := NewSwitch(open, echoTranslator{}, Environment{})

	before := s.Render()
	require.False(t, before.Open)
	require.Equal(t, "Expand sidebar  Ctrl+/", before.Tooltip)
	require.Equal(t, "app-sidebar-arrow-button-expand", before.TestID)

	require.True(t, s.Click())

	after := s.Render()
	require.True(t, open.Load())
	require.Equal(t, "Collapse sidebar  Ctrl+/", after.Tooltip)
	require.Equal(t, "app-sidebar-arrow-button-collapse", after.TestID)
	require.Equal(t, TooltipPlacement, after.Placement)
	require.Equal(t, TooltipZIndex, after.ZIndex)
}

// TestSwitch_ClickUsesLatestValue ignores the value seen at the last render.
func TestSwitch_ClickUsesLatestValue(t *testing.T) {
	t.Parallel()

	open := atom.New(false)
	s := NewSwitch(open, echoTranslator{}, Environment{})

	stale := s.Render()
	require.False(t, stale.Open)

	// Another view opened the sidebar after this one rendered.
	open.Store(true)

	require.False(t, s.Click())
	require.False(t, open.Load())
}

// TestSwitch_SharedFlag keeps two switches over one flag in sync.
func TestSwitch_SharedFlag(t *testing.T) {
	t.Parallel()

	open := atom.New(true)
	header := NewSwitch(open, echoTranslator{}, Environment{})
	floating := NewSwitch(open, echoTranslator{}, Environment{})

	header.Click()
	floating.Click()
	header.Click()

	require.False(t, open.Load())
	require.Equal(t, header.Render(), floating.Render())
}
