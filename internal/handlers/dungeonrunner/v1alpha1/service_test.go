package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/handlers/dungeonrunner/v1alpha1"
	dungeonmock "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/dungeon/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/orchestrators/inventory"
	inventorymock "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/inventory/mock"
	runmock "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/run/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/testutils"
)

func TestServiceDescRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockInventory := inventorymock.NewMockService(ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DungeonService:   dungeonmock.NewMockService(ctrl),
		RunService:       runmock.NewMockService(ctrl),
		InventoryService: mockInventory,
	})
	require.NoError(t, err)

	var intercepted []string
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.UnaryInterceptor(
		func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (interface{}, error) {
			intercepted = append(intercepted, info.FullMethod)
			return next(ctx, req)
		}))
	v1alpha1.RegisterDungeonServiceServer(server, handler)
	go func() { _ = server.Serve(listener) }()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewClient(conn)
	ctx := context.Background()

	item := testutils.CreateTestItem("item_1", "p", gear.SlotHead)
	mockInventory.EXPECT().
		ListItems(gomock.Any(), &inventory.ListItemsInput{PlayerID: "p"}).
		Return(&inventory.ListItemsOutput{Items: []*gear.Item{item}}, nil)

	req, err := structpb.NewStruct(map[string]interface{}{"player_id": "p"})
	require.NoError(t, err)

	resp, err := client.Call(ctx, v1alpha1.MethodListItems, req)
	require.NoError(t, err)
	items := resp.GetFields()["items"].GetListValue().GetValues()
	require.Len(t, items, 1)
	assert.Equal(t, "Owl's Dark Cowl", items[0].GetStructValue().GetFields()["name"].GetStringValue())
	assert.Equal(t, []string{"/dungeonrunner.v1alpha1.DungeonService/ListItems"}, intercepted)

	mockInventory.EXPECT().
		GetLoadout(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no such player"))

	_, err = client.Call(ctx, v1alpha1.MethodGetLoadout, req)
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.True(t, errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = client.Call(ctx, "Teleport", req)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
