package layout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/notes-release/internal/domain/layout"
	pb "github.com/oshokin/notes-release/internal/pb/v1"
	"github.com/oshokin/notes-release/internal/ui/sidebar"
)

var errTestPersist = errors.New("test persist error")

// fakeService implements Service for unit testing the transport.
type fakeService struct {
	mu         sync.Mutex
	state      *domain.State
	toggleErr  error
	listeners  []func(*domain.State)
	subscribed chan struct{}
}

func newFakeService() *fakeService {
	return &fakeService{
		state:      new(domain.State),
		subscribed: make(chan struct{}, 1),
	}
}

func (f *fakeService) ToggleSidebar(_ context.Context, actor *domain.Actor) (*domain.State, error) {
	if f.toggleErr != nil {
		return nil, f.toggleErr
	}

	f.mu.Lock()
	f.state = &domain.State{
		UpdatedAt:   time.Now(),
		LastActor:   actor.Clone(),
		SidebarOpen: !f.state.SidebarOpen,
	}
	state := f.state.Clone()
	listeners := append([]func(*domain.State){}, f.listeners...)
	f.mu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}

	return state, nil
}

func (f *fakeService) GetLayout(context.Context) *domain.State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.Clone()
}

func (f *fakeService) Subscribe(fn func(*domain.State)) func() {
	f.mu.Lock()
	f.listeners = append(f.listeners, fn)
	f.mu.Unlock()

	f.subscribed <- struct{}{}

	return func() {}
}

func (f *fakeService) Render(open bool) sidebar.View {
	return sidebar.View{
		Open:    open,
		Tooltip: "tooltip",
		TestID:  sidebar.TestID(open),
	}
}

// fakeStream captures messages sent by WatchLayout.
type fakeStream struct {
	grpc.ServerStream

	ctx  context.Context
	sent chan *structpb.Struct
}

func (s *fakeStream) Context() context.Context { return s.ctx }

func (s *fakeStream) Send(msg *structpb.Struct) error {
	s.sent <- msg

	return nil
}

func actorRequest() *structpb.Struct {
	return pb.ActorToStruct(&domain.Actor{
		Hostname: "test-hostname",
		Username: "test-user",
	})
}

// TestServer_ToggleSidebar_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_ToggleSidebar_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService())

	_, err := s.ToggleSidebar(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ToggleSidebar(context.Background(), new(structpb.Struct))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_ToggleSidebar_PersistFailure maps service errors to Internal.
func TestServer_ToggleSidebar_PersistFailure(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.toggleErr = errTestPersist

	_, err := NewServer(svc).ToggleSidebar(context.Background(), actorRequest())
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestServer_Roundtrip toggles the sidebar and reads the layout back.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService())

	response, err := s.ToggleSidebar(context.Background(), actorRequest())
	require.NoError(t, err)
	require.Equal(t, "app-sidebar-arrow-button-collapse", response.GetFields()[pb.FieldTestID].GetStringValue())

	response, err = s.GetLayout(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)

	state, err := pb.StateFromStruct(response)
	require.NoError(t, err)
	require.True(t, state.SidebarOpen)
	require.Equal(t, "test-user@test-hostname", state.LastActor.String())
	require.Equal(t, "tooltip", response.GetFields()[pb.FieldTooltip].GetStringValue())
}

// TestServer_WatchLayout sends the current layout, then each change, and stops with the client.
func TestServer_WatchLayout(t *testing.T) {
	t.Parallel()

	var (
		svc         = newFakeService()
		s           = NewServer(svc)
		ctx, cancel = context.WithCancel(context.Background())
		stream      = &fakeStream{ctx: ctx, sent: make(chan *structpb.Struct, 4)}
		done        = make(chan error, 1)
	)

	go func() {
		done <- s.WatchLayout(new(emptypb.Empty), stream)
	}()

	<-svc.subscribed

	initial := <-stream.sent
	require.False(t, initial.GetFields()[pb.FieldSidebarOpen].GetBoolValue())

	_, err := s.ToggleSidebar(context.Background(), actorRequest())
	require.NoError(t, err)

	changed := <-stream.sent
	require.True(t, changed.GetFields()[pb.FieldSidebarOpen].GetBoolValue())

	cancel()
	require.NoError(t, <-done)
}
