package layout

import "time"

// Actor identifies who changed the layout.
type Actor struct {
	// Hostname is the machine the change came from.
	Hostname string
	// Username is the system user behind the change.
	Username string
}

// Clone returns a copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// String renders the actor as username@hostname.
func (a *Actor) String() string {
	if a == nil {
		return "<unknown>"
	}

	return a.Username + "@" + a.Hostname
}

// State is the layout at a point in time.
type State struct {
	// UpdatedAt is when the layout last changed.
	UpdatedAt time.Time
	// LastActor is who made the last change.
	LastActor *Actor
	// SidebarOpen reports whether the app sidebar is expanded.
	SidebarOpen bool
}

// Clone returns a copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	return &State{
		UpdatedAt:   s.UpdatedAt,
		LastActor:   s.LastActor.Clone(),
		SidebarOpen: s.SidebarOpen,
	}
}
