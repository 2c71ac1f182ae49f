package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Full method names of layout.v1.LayoutService.
const (
	LayoutService_GetLayout_FullMethodName     = "/layout.v1.LayoutService/GetLayout"
	LayoutService_ToggleSidebar_FullMethodName = "/layout.v1.LayoutService/ToggleSidebar"
	LayoutService_WatchLayout_FullMethodName   = "/layout.v1.LayoutService/WatchLayout"
)

// LayoutServiceClient is the client API for LayoutService.
type LayoutServiceClient interface {
	GetLayout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	ToggleSidebar(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	WatchLayout(
		ctx context.Context,
		in *emptypb.Empty,
		opts ...grpc.CallOption,
	) (grpc.ServerStreamingClient[structpb.Struct], error)
}

type layoutServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLayoutServiceClient creates a client stub over cc.
func NewLayoutServiceClient(cc grpc.ClientConnInterface) LayoutServiceClient {
	return &layoutServiceClient{cc: cc}
}

func (c *layoutServiceClient) GetLayout(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LayoutService_GetLayout_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *layoutServiceClient) ToggleSidebar(
	ctx context.Context,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LayoutService_ToggleSidebar_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *layoutServiceClient) WatchLayout(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &LayoutService_ServiceDesc.Streams[0], LayoutService_WatchLayout_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}

	x := &grpc.GenericClientStream[emptypb.Empty, structpb.Struct]{ClientStream: stream}
	if err = x.SendMsg(in); err != nil {
		return nil, err
	}

	if err = x.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

// LayoutServiceServer is the server API for LayoutService.
// Implementations must embed UnimplementedLayoutServiceServer.
type LayoutServiceServer interface {
	GetLayout(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
	ToggleSidebar(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	WatchLayout(in *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error
	mustEmbedUnimplementedLayoutServiceServer()
}

// UnimplementedLayoutServiceServer answers every method with codes.Unimplemented.
type UnimplementedLayoutServiceServer struct{}

func (UnimplementedLayoutServiceServer) GetLayout(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLayout not implemented")
}

func (UnimplementedLayoutServiceServer) ToggleSidebar(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleSidebar not implemented")
}

func (UnimplementedLayoutServiceServer) WatchLayout(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error {
	return status.Error(codes.Unimplemented, "method WatchLayout not implemented")
}

func (UnimplementedLayoutServiceServer) mustEmbedUnimplementedLayoutServiceServer() {}

// RegisterLayoutServiceServer registers srv on s.
func RegisterLayoutServiceServer(s grpc.ServiceRegistrar, srv LayoutServiceServer) {
	s.RegisterService(&LayoutService_ServiceDesc, srv)
}

func getLayoutHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(LayoutServiceServer).GetLayout(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LayoutService_GetLayout_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LayoutServiceServer).GetLayout(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func toggleSidebarHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(LayoutServiceServer).ToggleSidebar(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LayoutService_ToggleSidebar_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LayoutServiceServer).ToggleSidebar(ctx, req.(*structpb.Struct))
	}

	return interceptor(ctx, in, info, handler)
}

func watchLayoutHandler(srv any, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}

	return srv.(LayoutServiceServer).WatchLayout(in, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{
		ServerStream: stream,
	})
}

// LayoutService_ServiceDesc describes layout.v1.LayoutService for grpc.Server.RegisterService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by gRPC convention.
var LayoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "layout.v1.LayoutService",
	HandlerType: (*LayoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetLayout",
			Handler:    getLayoutHandler,
		},
		{
			MethodName: "ToggleSidebar",
			Handler:    toggleSidebarHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchLayout",
			Handler:       watchLayoutHandler,
			ServerStreams: true,
		},
	},
	Metadata: "layout/v1/layout.proto",
}
