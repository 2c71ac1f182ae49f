package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	api "github.com/oshokin/notes-release/internal/api/grpc/layout"
	"github.com/oshokin/notes-release/internal/config"
	"github.com/oshokin/notes-release/internal/i18n"
	"github.com/oshokin/notes-release/internal/logger"
	pb "github.com/oshokin/notes-release/internal/pb/v1"
	repository "github.com/oshokin/notes-release/internal/repository/state"
	"github.com/oshokin/notes-release/internal/ui/sidebar"
)

// Options controls the layout-state server process.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress overrides the listen address derived from the config.
	ListenAddress string
	// StateFile overrides the path of the persisted layout.
	StateFile string
	// Language overrides the tooltip language.
	Language string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and blocks until ctx is canceled or the server stops.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "layout-state")

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings := &cfg.Layout

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	if settings.ServerAddress == "" {
		settings.ServerAddress = listenAddress
	}

	if err = config.ValidateLayout(settings); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	if opts.StateFile != "" {
		settings.StateFile = opts.StateFile
	}

	if opts.Language != "" {
		settings.Language = opts.Language
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	svc, err := newService(
		ctx,
		repository.NewFileRepository(settings.StateFile),
		catalog.Translator(settings.Language),
		sidebar.CurrentEnvironment(),
	)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterLayoutServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Layout server listening",
		"listen_address", listenAddress,
		"state_file", settings.StateFile,
		"language", settings.Language)

	// Closed once the server has fully stopped so Run outlives in-flight calls.
	done := make(chan struct{})

	go func() {
		defer close(done)

		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		shutdown(ctx, grpcServer, settings.Timeout)
	}()

	if err = grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// shutdown stops the server gracefully, cutting open watch streams once timeout elapses.
func shutdown(ctx context.Context, grpcServer *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})

	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		logger.Warn(ctx, "Graceful shutdown timed out, closing remaining streams")
		grpcServer.Stop()
		<-stopped
	}
}

// resolveListenAddress returns override when set, otherwise binds every interface on the configured port.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
