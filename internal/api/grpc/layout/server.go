package layout

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/notes-release/internal/domain/layout"
	pb "github.com/oshokin/notes-release/internal/pb/v1"
	"github.com/oshokin/notes-release/internal/ui/sidebar"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	ToggleSidebar(ctx context.Context, actor *domain.Actor) (*domain.State, error)
	GetLayout(ctx context.Context) *domain.State
	Subscribe(fn func(*domain.State)) (cancel func())
	Render(open bool) sidebar.View
}

// Server implements the LayoutService gRPC API.
type Server struct {
	pb.UnimplementedLayoutServiceServer

	// service provides the layout business logic.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// GetLayout returns the current layout.
func (s *Server) GetLayout(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.toResponse(s.service.GetLayout(ctx)), nil
}

// ToggleSidebar flips the sidebar flag on behalf of the actor in the request.
func (s *Server) ToggleSidebar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := pb.ActorFromStruct(req)
	if actor == nil || actor.Hostname == "" || actor.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	state, err := s.service.ToggleSidebar(ctx, actor)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to persist state")
	}

	return s.toResponse(state), nil
}

// WatchLayout streams the current layout followed by every change until the client goes away.
// Slow watchers skip intermediate snapshots and always receive the latest one.
func (s *Server) WatchLayout(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	ctx := stream.Context()
	updates := make(chan *domain.State, 1)

	cancel := s.service.Subscribe(func(state *domain.State) {
		for {
			select {
			case updates <- state.Clone():
				return
			default:
			}

			select {
			case <-updates:
			default:
			}
		}
	})
	defer cancel()

	if err := stream.Send(s.toResponse(s.service.GetLayout(ctx))); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case state := <-updates:
			if err := stream.Send(s.toResponse(state)); err != nil {
				return err
			}
		}
	}
}

// toResponse converts a snapshot and adds the rendered switch attributes.
func (s *Server) toResponse(state *domain.State) *structpb.Struct {
	response := pb.StateToStruct(state)
	if state == nil {
		return response
	}

	view := s.service.Render(state.SidebarOpen)
	response.Fields[pb.FieldTooltip] = structpb.NewStringValue(view.Tooltip)
	response.Fields[pb.FieldTestID] = structpb.NewStringValue(view.TestID)

	return response
}
