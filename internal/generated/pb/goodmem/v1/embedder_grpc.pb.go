// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.1
// - protoc             (unknown)
// source: goodmem/v1/embedder.proto

package goodmemv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	EmbedderService_CreateEmbedder_FullMethodName = "/goodmem.v1.EmbedderService/CreateEmbedder"
	EmbedderService_GetEmbedder_FullMethodName    = "/goodmem.v1.EmbedderService/GetEmbedder"
	EmbedderService_ListEmbedders_FullMethodName  = "/goodmem.v1.EmbedderService/ListEmbedders"
	EmbedderService_UpdateEmbedder_FullMethodName = "/goodmem.v1.EmbedderService/UpdateEmbedder"
	EmbedderService_DeleteEmbedder_FullMethodName = "/goodmem.v1.EmbedderService/DeleteEmbedder"
)

// EmbedderServiceClient is the client API for EmbedderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type EmbedderServiceClient interface {
	CreateEmbedder(ctx context.Context, in *CreateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error)
	GetEmbedder(ctx context.Context, in *GetEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error)
	ListEmbedders(ctx context.Context, in *ListEmbeddersRequest, opts ...grpc.CallOption) (*ListEmbeddersResponse, error)
	UpdateEmbedder(ctx context.Context, in *UpdateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error)
	DeleteEmbedder(ctx context.Context, in *DeleteEmbedderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type embedderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEmbedderServiceClient(cc grpc.ClientConnInterface) EmbedderServiceClient {
	return &embedderServiceClient{cc}
}

func (c *embedderServiceClient) CreateEmbedder(ctx context.Context, in *CreateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Embedder)
	err := c.cc.Invoke(ctx, EmbedderService_CreateEmbedder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) GetEmbedder(ctx context.Context, in *GetEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Embedder)
	err := c.cc.Invoke(ctx, EmbedderService_GetEmbedder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) ListEmbedders(ctx context.Context, in *ListEmbeddersRequest, opts ...grpc.CallOption) (*ListEmbeddersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEmbeddersResponse)
	err := c.cc.Invoke(ctx, EmbedderService_ListEmbedders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) UpdateEmbedder(ctx context.Context, in *UpdateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Embedder)
	err := c.cc.Invoke(ctx, EmbedderService_UpdateEmbedder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) DeleteEmbedder(ctx context.Context, in *DeleteEmbedderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, EmbedderService_DeleteEmbedder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EmbedderServiceServer is the server API for EmbedderService service.
// All implementations must embed UnimplementedEmbedderServiceServer
// for forward compatibility.
type EmbedderServiceServer interface {
	CreateEmbedder(context.Context, *CreateEmbedderRequest) (*Embedder, error)
	GetEmbedder(context.Context, *GetEmbedderRequest) (*Embedder, error)
	ListEmbedders(context.Context, *ListEmbeddersRequest) (*ListEmbeddersResponse, error)
	UpdateEmbedder(context.Context, *UpdateEmbedderRequest) (*Embedder, error)
	DeleteEmbedder(context.Context, *DeleteEmbedderRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedEmbedderServiceServer()
}

// UnimplementedEmbedderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEmbedderServiceServer struct{}

func (UnimplementedEmbedderServiceServer) CreateEmbedder(context.Context, *CreateEmbedderRequest) (*Embedder, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEmbedder not implemented")
}
func (UnimplementedEmbedderServiceServer) GetEmbedder(context.Context, *GetEmbedderRequest) (*Embedder, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmbedder not implemented")
}
func (UnimplementedEmbedderServiceServer) ListEmbedders(context.Context, *ListEmbeddersRequest) (*ListEmbeddersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmbedders not implemented")
}
func (UnimplementedEmbedderServiceServer) UpdateEmbedder(context.Context, *UpdateEmbedderRequest) (*Embedder, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmbedder not implemented")
}
func (UnimplementedEmbedderServiceServer) DeleteEmbedder(context.Context, *DeleteEmbedderRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEmbedder not implemented")
}
func (UnimplementedEmbedderServiceServer) mustEmbedUnimplementedEmbedderServiceServer() {}
func (UnimplementedEmbedderServiceServer) testEmbeddedByValue()                         {}

// UnsafeEmbedderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EmbedderServiceServer will
// result in compilation errors.
type UnsafeEmbedderServiceServer interface {
	mustEmbedUnimplementedEmbedderServiceServer()
}

func RegisterEmbedderServiceServer(s grpc.ServiceRegistrar, srv EmbedderServiceServer) {
	// If the following call panics, it indicates UnimplementedEmbedderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EmbedderService_ServiceDesc, srv)
}

func _EmbedderService_CreateEmbedder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).CreateEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EmbedderService_CreateEmbedder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmbedderServiceServer).CreateEmbedder(ctx, req.(*CreateEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_GetEmbedder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).GetEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EmbedderService_GetEmbedder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmbedderServiceServer).GetEmbedder(ctx, req.(*GetEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_ListEmbedders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEmbeddersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).ListEmbedders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EmbedderService_ListEmbedders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmbedderServiceServer).ListEmbedders(ctx, req.(*ListEmbeddersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_UpdateEmbedder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).UpdateEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EmbedderService_UpdateEmbedder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmbedderServiceServer).UpdateEmbedder(ctx, req.(*UpdateEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_DeleteEmbedder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).DeleteEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EmbedderService_DeleteEmbedder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmbedderServiceServer).DeleteEmbedder(ctx, req.(*DeleteEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EmbedderService_ServiceDesc is the grpc.ServiceDesc for EmbedderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EmbedderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "goodmem.v1.EmbedderService",
	HandlerType: (*EmbedderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateEmbedder",
			Handler:    _EmbedderService_CreateEmbedder_Handler,
		},
		{
			MethodName: "GetEmbedder",
			Handler:    _EmbedderService_GetEmbedder_Handler,
		},
		{
			MethodName: "ListEmbedders",
			Handler:    _EmbedderService_ListEmbedders_Handler,
		},
		{
			MethodName: "UpdateEmbedder",
			Handler:    _EmbedderService_UpdateEmbedder_Handler,
		},
		{
			MethodName: "DeleteEmbedder",
			Handler:    _EmbedderService_DeleteEmbedder_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "goodmem/v1/embedder.proto",
}
