// Package rpc serves live timeline control over gRPC.
//
// The service is declared by hand rather than generated: every request and
// response is a google.protobuf.Struct holding the same JSON documents the
// HTTP API accepts and returns.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "runsheet.v1.LiveControl"

// Method names.
const (
	MethodJumpTo          = "JumpTo"
	MethodCompleteCurrent = "CompleteCurrent"
	MethodSkipCurrent     = "SkipCurrent"
	MethodSetItemStatus   = "SetItemStatus"
	MethodSetEventStatus  = "SetEventStatus"
	MethodGetBoard        = "GetBoard"
)

// LiveControlServer is the server API for the LiveControl service.
type LiveControlServer interface {
	JumpTo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CompleteCurrent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SkipCurrent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetItemStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetEventStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBoard(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// LiveControlServiceDesc describes the LiveControl service to grpc. The
// service definition lives in proto/runsheet/v1/live_control.proto.
var LiveControlServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LiveControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodJumpTo, Handler: unaryHandler(MethodJumpTo, LiveControlServer.JumpTo)},
		{MethodName: MethodCompleteCurrent, Handler: unaryHandler(MethodCompleteCurrent, LiveControlServer.CompleteCurrent)},
		{MethodName: MethodSkipCurrent, Handler: unaryHandler(MethodSkipCurrent, LiveControlServer.SkipCurrent)},
		{MethodName: MethodSetItemStatus, Handler: unaryHandler(MethodSetItemStatus, LiveControlServer.SetItemStatus)},
		{MethodName: MethodSetEventStatus, Handler: unaryHandler(MethodSetEventStatus, LiveControlServer.SetEventStatus)},
		{MethodName: MethodGetBoard, Handler: unaryHandler(MethodGetBoard, LiveControlServer.GetBoard)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "runsheet/v1/live_control.proto",
}

// RegisterLiveControlServer registers srv on s.
func RegisterLiveControlServer(s grpc.ServiceRegistrar, srv LiveControlServer) {
	s.RegisterService(&LiveControlServiceDesc, srv)
}

type unaryMethod func(LiveControlServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, m unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return m(srv.(LiveControlServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(name),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return m(srv.(LiveControlServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// LiveControlClient calls the LiveControl service.
type LiveControlClient struct {
	cc grpc.ClientConnInterface
}

// NewLiveControlClient creates a client on cc.
func NewLiveControlClient(cc grpc.ClientConnInterface) *LiveControlClient {
	return &LiveControlClient{cc: cc}
}

// JumpTo calls LiveControl.JumpTo.
func (c *LiveControlClient) JumpTo(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodJumpTo, in, opts)
}

// CompleteCurrent calls LiveControl.CompleteCurrent.
func (c *LiveControlClient) CompleteCurrent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCompleteCurrent, in, opts)
}

// SkipCurrent calls LiveControl.SkipCurrent.
func (c *LiveControlClient) SkipCurrent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSkipCurrent, in, opts)
}

// SetItemStatus calls LiveControl.SetItemStatus.
func (c *LiveControlClient) SetItemStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSetItemStatus, in, opts)
}

// SetEventStatus calls LiveControl.SetEventStatus.
func (c *LiveControlClient) SetEventStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSetEventStatus, in, opts)
}

// GetBoard calls LiveControl.GetBoard.
func (c *LiveControlClient) GetBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetBoard, in, opts)
}

func (c *LiveControlClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
