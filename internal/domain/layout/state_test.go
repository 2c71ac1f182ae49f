package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestActorClone verifies that Clone returns a copy and handles nil safely.
func TestActorClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Actor)(nil).Clone())

	a := &Actor{
		Hostname: "build-agent-3",
		Username: "release",
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
	require.Equal(t, "release@build-agent-3", b.String())
	require.Equal(t, "<unknown>", (*Actor)(nil).String())
}

// TestStateClone verifies that State.Clone copies fields and the actor pointer.
func TestStateClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*State)(nil).Clone())

	s := &State{
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
		LastActor: &Actor{
			Hostname: "build-agent-3",
			Username: "release",
		},
		SidebarOpen: true,
	}

	c := s.Clone()
	require.Equal(t, s, c)
	require.NotSame(t, s.LastActor, c.LastActor)
}
