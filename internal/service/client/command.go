package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oshokin/notes-release/internal/config"
	domain "github.com/oshokin/notes-release/internal/domain/layout"
	"github.com/oshokin/notes-release/internal/i18n"
	"github.com/oshokin/notes-release/internal/logger"
	"github.com/oshokin/notes-release/internal/service/common"
	"github.com/oshokin/notes-release/internal/ui/sidebar"
)

// Options configures the client commands.
type Options struct {
	// ConfigPath to the YAML settings file, defaults to the standard filename if empty.
	ConfigPath string
	// ServerAddress overrides the server address from the config.
	ServerAddress string
	// Language overrides the tooltip language from the config.
	Language string
	// Output receives the rendered layout lines, os.Stdout when nil.
	Output io.Writer
}

// session is a connected client with everything needed to print layouts.
type session struct {
	client     *common.Client
	translator sidebar.Translator
	env        sidebar.Environment
	out        io.Writer
}

// Toggle flips the sidebar once and prints the resulting layout.
// A failed toggle is not retried, since a retry after a lost response would flip the flag twice.
func Toggle(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "layout-state-toggle")

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer s.close()

	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	state, err := s.client.ToggleSidebar(ctx, actor)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Sidebar toggled", "sidebar_open", state.SidebarOpen, "actor", actor)
	s.print(state)

	return nil
}

// Status prints the current layout.
func Status(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "layout-state-status")

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer s.close()

	state, err := s.client.GetLayout(ctx)
	if err != nil {
		return err
	}

	s.print(state)

	return nil
}

// Watch prints the current layout and every change until ctx is canceled.
func Watch(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "layout-state-watch")

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer s.close()

	logger.Info(ctx, "Watching layout changes")

	return s.client.WatchLayout(ctx, s.print)
}

// connect loads settings, applies overrides and dials the server.
func connect(ctx context.Context, opts *Options) (*session, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	settings := &cfg.Layout
	if opts.ServerAddress != "" {
		settings.ServerAddress = opts.ServerAddress
	}

	if opts.Language != "" {
		settings.Language = opts.Language
	}

	if err = config.ValidateLayout(settings); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	client, err := common.Dial(ctx, settings.ServerAddress, common.WithCallTimeout(settings.Timeout))
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Connected to layout server", "server_address", settings.ServerAddress)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &session{
		client:     client,
		translator: catalog.Translator(settings.Language),
		env:        sidebar.CurrentEnvironment(),
		out:        out,
	}, nil
}

func (s *session) close() {
	_ = s.client.Close()
}

// print writes one line describing state.
func (s *session) print(state *domain.State) {
	view := sidebar.RenderState(state.SidebarOpen, s.translator, s.env)

	_, _ = fmt.Fprintf(s.out, "%s [%s] %s\n", formatState(state), view.TestID, view.Tooltip)
}

// formatState renders a layout as a readable line.
func formatState(state *domain.State) string {
	if state == nil {
		return "<nil state>"
	}

	timestamp := "<unknown>"
	if !state.UpdatedAt.IsZero() {
		timestamp = state.UpdatedAt.Format(time.RFC3339)
	}

	status := "collapsed"
	if state.SidebarOpen {
		status = "open"
	}

	return fmt.Sprintf("sidebar %s by %s (%s)", status, state.LastActor, timestamp)
}
