// Package pb defines the layout.v1.LayoutService gRPC contract.
//
// Messages are protobuf well-known types: requests without input use
// emptypb.Empty and layout snapshots travel as structpb.Struct with the
// fields listed below. The service descriptor and client stub follow the
// shape protoc-gen-go-grpc emits so the server registers like any other.
package pb
