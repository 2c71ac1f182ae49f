package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/oshokin/notes-release/internal/domain/layout"
	"github.com/oshokin/notes-release/internal/logger"
	repo "github.com/oshokin/notes-release/internal/repository/state"
	"github.com/oshokin/notes-release/internal/ui/atom"
	"github.com/oshokin/notes-release/internal/ui/sidebar"
)

// service owns the sidebar flag and keeps its persisted snapshot in step.
type service struct {
	// repo handles persistent storage of the layout.
	repo repo.Repository
	// open is the shared sidebar visibility flag.
	open *atom.Atom[bool]
	// snapshot is the latest persisted layout, observed by watchers.
	snapshot *atom.Atom[*domain.State]
	// toggle is the switch bound to open.
	toggle *sidebar.Switch
	// translator and env render switch views.
	translator sidebar.Translator
	env        sidebar.Environment
	// mu serializes toggle and persist.
	mu sync.Mutex
}

// newService creates a service backed by the provided repository, restoring the last saved layout.
func newService(
	ctx context.Context,
	repository repo.Repository,
	translator sidebar.Translator,
	env sidebar.Environment,
) (*service, error) {
	initial := &domain.State{
		UpdatedAt:   time.Now(),
		SidebarOpen: true,
	}

	if repository != nil {
		state, err := repository.Load(ctx)

		switch {
		case err == nil:
			if state != nil {
				initial = state
			}
		case errors.Is(err, repo.ErrNotFound):
			// Keep default layout.
		default:
			return nil, fmt.Errorf("load state: %w", err)
		}
	}

	open := atom.New(initial.SidebarOpen)

	return &service{
		repo:       repository,
		open:       open,
		snapshot:   atom.New(initial),
		toggle:     sidebar.NewSwitch(open, translator, env),
		translator: translator,
		env:        env,
	}, nil
}

// ToggleSidebar clicks the switch on behalf of actor and persists the result.
// A failed save rolls the flag back.
func (s *service) ToggleSidebar(ctx context.Context, actor *domain.Actor) (*domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open := s.toggle.Click()
	state := &domain.State{
		UpdatedAt:   time.Now(),
		LastActor:   actor.Clone(),
		SidebarOpen: open,
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, state); err != nil {
			s.open.Store(!open)
			logger.Errorf(ctx, "Failed to persist layout state: %v", err)

			return nil, fmt.Errorf("persist state: %w", err)
		}
	}

	s.snapshot.Store(state)

	view := s.toggle.Render()
	logger.InfoKV(ctx, "Sidebar toggled",
		"sidebar_open", open,
		"actor", state.LastActor,
		"tooltip", view.Tooltip)

	return state.Clone(), nil
}

// GetLayout returns the current layout.
func (s *service) GetLayout(ctx context.Context) *domain.State {
	state := s.snapshot.Load()

	logger.DebugKV(ctx, "Layout requested", "sidebar_open", state.SidebarOpen, "actor", state.LastActor)

	return state.Clone()
}

// Subscribe calls fn with every persisted layout.
func (s *service) Subscribe(fn func(*domain.State)) (cancel func()) {
	return s.snapshot.Subscribe(fn)
}

// Render builds the switch view for the given flag value.
func (s *service) Render(open bool) sidebar.View {
	return sidebar.RenderState(open, s.translator, s.env)
}
