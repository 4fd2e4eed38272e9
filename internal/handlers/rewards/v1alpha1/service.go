package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "toontown.rewards.v1alpha1.RewardService"

// Full method names
const (
	DeliverItemsMethod      = "/" + ServiceName + "/DeliverItems"
	DeliverItemMethod       = "/" + ServiceName + "/DeliverItem"
	ClaimVictoryMethod      = "/" + ServiceName + "/ClaimVictory"
	CreateAvatarMethod      = "/" + ServiceName + "/CreateAvatar"
	GetAvatarMethod         = "/" + ServiceName + "/GetAvatar"
	ListNotificationsMethod = "/" + ServiceName + "/ListNotifications"
)

// RewardServiceServer is the server API for the reward service. Messages
// are google.protobuf.Struct values keyed by snake_case field names.
type RewardServiceServer interface {
	DeliverItems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeliverItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClaimVictory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListNotifications(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterRewardServiceServer registers srv with the gRPC server
func RegisterRewardServiceServer(s grpc.ServiceRegistrar, srv RewardServiceServer) {
	s.RegisterService(&RewardServiceDesc, srv)
}

type unaryCall func(RewardServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RewardServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RewardServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RewardServiceDesc is the grpc.ServiceDesc for the reward service
var RewardServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RewardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DeliverItems",
			Handler:    unaryHandler(DeliverItemsMethod, RewardServiceServer.DeliverItems),
		},
		{
			MethodName: "DeliverItem",
			Handler:    unaryHandler(DeliverItemMethod, RewardServiceServer.DeliverItem),
		},
		{
			MethodName: "ClaimVictory",
			Handler:    unaryHandler(ClaimVictoryMethod, RewardServiceServer.ClaimVictory),
		},
		{
			MethodName: "CreateAvatar",
			Handler:    unaryHandler(CreateAvatarMethod, RewardServiceServer.CreateAvatar),
		},
		{
			MethodName: "GetAvatar",
			Handler:    unaryHandler(GetAvatarMethod, RewardServiceServer.GetAvatar),
		},
		{
			MethodName: "ListNotifications",
			Handler:    unaryHandler(ListNotificationsMethod, RewardServiceServer.ListNotifications),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "toontown/rewards/v1alpha1/rewards.proto",
}

// RewardServiceClient is the client API for the reward service
type RewardServiceClient interface {
	DeliverItems(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeliverItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClaimVictory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateAvatar(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetAvatar(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListNotifications(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type rewardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRewardServiceClient creates a client on top of an existing connection
func NewRewardServiceClient(cc grpc.ClientConnInterface) RewardServiceClient {
	return &rewardServiceClient{cc: cc}
}

func (c *rewardServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rewardServiceClient) DeliverItems(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeliverItemsMethod, in, opts)
}

func (c *rewardServiceClient) DeliverItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeliverItemMethod, in, opts)
}

func (c *rewardServiceClient) ClaimVictory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ClaimVictoryMethod, in, opts)
}

func (c *rewardServiceClient) CreateAvatar(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, CreateAvatarMethod, in, opts)
}

func (c *rewardServiceClient) GetAvatar(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetAvatarMethod, in, opts)
}

func (c *rewardServiceClient) ListNotifications(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListNotificationsMethod, in, opts)
}
