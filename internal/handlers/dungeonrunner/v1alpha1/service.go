// Package v1alpha1 handles the dungeonrunner grpc service interface.
// Messages are google.protobuf.Struct values whose fields mirror the JSON
// form of the domain types.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified grpc service name
const ServiceName = "dungeonrunner.v1alpha1.DungeonService"

// Method names
const (
	MethodListLevels      = "ListLevels"
	MethodCompleteRun     = "CompleteRun"
	MethodStartRun        = "StartRun"
	MethodRecordPoint     = "RecordPoint"
	MethodPauseRun        = "PauseRun"
	MethodResumeRun       = "ResumeRun"
	MethodFinishRun       = "FinishRun"
	MethodListJournal     = "ListJournal"
	MethodListItems       = "ListItems"
	MethodEquipItem       = "EquipItem"
	MethodDiscardItem     = "DiscardItem"
	MethodGrantStarterKit = "GrantStarterKit"
	MethodGetLoadout      = "GetLoadout"
)

// FullMethod returns the grpc path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// DungeonServiceServer is the server API for DungeonService
type DungeonServiceServer interface {
	ListLevels(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CompleteRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StartRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordPoint(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PauseRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResumeRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FinishRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListJournal(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListItems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DiscardItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GrantStarterKit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLoadout(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(DungeonServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DungeonServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(DungeonServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc is the grpc.ServiceDesc for DungeonService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DungeonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodListLevels, DungeonServiceServer.ListLevels),
		unaryHandler(MethodCompleteRun, DungeonServiceServer.CompleteRun),
		unaryHandler(MethodStartRun, DungeonServiceServer.StartRun),
		unaryHandler(MethodRecordPoint, DungeonServiceServer.RecordPoint),
		unaryHandler(MethodPauseRun, DungeonServiceServer.PauseRun),
		unaryHandler(MethodResumeRun, DungeonServiceServer.ResumeRun),
		unaryHandler(MethodFinishRun, DungeonServiceServer.FinishRun),
		unaryHandler(MethodListJournal, DungeonServiceServer.ListJournal),
		unaryHandler(MethodListItems, DungeonServiceServer.ListItems),
		unaryHandler(MethodEquipItem, DungeonServiceServer.EquipItem),
		unaryHandler(MethodDiscardItem, DungeonServiceServer.DiscardItem),
		unaryHandler(MethodGrantStarterKit, DungeonServiceServer.GrantStarterKit),
		unaryHandler(MethodGetLoadout, DungeonServiceServer.GetLoadout),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dungeonrunner/v1alpha1/dungeon.proto",
}

// RegisterDungeonServiceServer registers srv with s
func RegisterDungeonServiceServer(s grpc.ServiceRegistrar, srv DungeonServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls DungeonService methods by name
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client over an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes method with in and returns the response struct
func (c *Client) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
