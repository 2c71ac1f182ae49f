//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oshokin/notes-release/internal/config"
	domain "github.com/oshokin/notes-release/internal/domain/layout"
	pb "github.com/oshokin/notes-release/internal/pb/v1"
)

// Client wraps the LayoutService gRPC client.
type Client struct {
	// conn is the underlying gRPC connection.
	conn *grpc.ClientConn
	// api is the LayoutService client stub.
	api pb.LayoutServiceClient

	// callTimeout bounds unary calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for unary calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when the server address is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when a toggle has no actor.
	errActorRequired = errors.New("actor must be provided")
)

// Dial creates a client for the layout server at address.
// The connection is plaintext; the server is meant for loopback or a trusted network.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial layout server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewLayoutServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetLayout retrieves the current layout.
func (c *Client) GetLayout(ctx context.Context) (*domain.State, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetLayout(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("get layout: %w", err)
	}

	return pb.StateFromStruct(resp)
}

// ToggleSidebar flips the remote sidebar flag on behalf of actor.
func (c *Client) ToggleSidebar(ctx context.Context, actor *domain.Actor) (*domain.State, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ToggleSidebar(callCtx, pb.ActorToStruct(actor))
	if err != nil {
		return nil, fmt.Errorf("toggle sidebar: %w", err)
	}

	return pb.StateFromStruct(resp)
}

// WatchLayout calls fn with the current layout and then with every change.
// It returns nil when ctx is canceled or the server ends the stream.
func (c *Client) WatchLayout(ctx context.Context, fn func(*domain.State)) error {
	stream, err := c.api.WatchLayout(ctx, new(emptypb.Empty))
	if err != nil {
		return fmt.Errorf("watch layout: %w", err)
	}

	for {
		resp, err := stream.Recv()

		switch {
		case err == nil:
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			return nil
		default:
			return fmt.Errorf("receive layout: %w", err)
		}

		state, err := pb.StateFromStruct(resp)
		if err != nil {
			return err
		}

		fn(state)
	}
}

// callContext returns ctx bounded by the call timeout, or a plain cancellable child without one.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
