package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
	"github.com/LittlestCube/toontown-archipelago/internal/orchestrators/delivery"
	deliverymock "github.com/LittlestCube/toontown-archipelago/internal/orchestrators/delivery/mock"
	"github.com/LittlestCube/toontown-archipelago/internal/testutils"
)

func startServer(t *testing.T, svc delivery.Service, opts ...grpc.ServerOption) v1alpha1.RewardServiceClient {
	t.Helper()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{DeliveryService: svc})
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer(opts...)
	v1alpha1.RegisterRewardServiceServer(server, handler)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewRewardServiceClient(conn)
}

func TestRewardServiceOverTheWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDelivery := deliverymock.NewMockService(ctrl)

	var seen []string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = append(seen, info.FullMethod)
		return handler(ctx, req)
	}
	client := startServer(t, mockDelivery, grpc.UnaryInterceptor(interceptor))
	ctx := context.Background()

	mockDelivery.EXPECT().
		GetAvatar(gomock.Any(), &delivery.GetAvatarInput{AvatarID: "toon_1"}).
		Return(&delivery.GetAvatarOutput{Toon: testutils.CreateTestToon("toon_1")}, nil)

	req, err := structpb.NewStruct(map[string]any{"avatar_id": "toon_1"})
	require.NoError(t, err)

	resp, err := client.GetAvatar(ctx, req)
	require.NoError(t, err)

	var out v1alpha1.AvatarResponse
	require.NoError(t, v1alpha1.Decode(resp, &out))
	require.Equal(t, testutils.TestToonName, out.Toon.Name)
	require.Equal(t, []string{v1alpha1.GetAvatarMethod}, seen)
}

func TestRewardServiceErrorsOverTheWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDelivery := deliverymock.NewMockService(ctrl)
	client := startServer(t, mockDelivery)

	mockDelivery.EXPECT().
		ClaimVictory(gomock.Any(), &delivery.ClaimVictoryInput{AvatarID: "toon_1"}).
		Return(nil, errors.FailedPrecondition("toon toon_1 has not completed their goal").
			WithMeta("avatar_id", "toon_1"))

	req, err := structpb.NewStruct(map[string]any{"avatar_id": "toon_1"})
	require.NoError(t, err)

	_, err = client.ClaimVictory(context.Background(), req)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	converted := errors.FromGRPCError(err)
	require.True(t, errors.IsFailedPrecondition(converted))
	require.Equal(t, "toon_1", errors.GetMeta(converted)["avatar_id"])
}
