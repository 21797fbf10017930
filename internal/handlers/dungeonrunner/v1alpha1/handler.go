package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	dungeonorchestrator "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/orchestrators/inventory"
	"github.com/KirkDiggler/dungeon-runner/internal/orchestrators/run"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	DungeonService   dungeonorchestrator.Service
	RunService       run.Service
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.DungeonService == nil {
		vb.RequiredField("DungeonService")
	}
	if c.RunService == nil {
		vb.RequiredField("RunService")
	}
	if c.InventoryService == nil {
		vb.RequiredField("InventoryService")
	}
	return vb.Build()
}

// Handler implements the DungeonService grpc service
type Handler struct {
	dungeonService   dungeonorchestrator.Service
	runService       run.Service
	inventoryService inventory.Service
}

var _ DungeonServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		dungeonService:   cfg.DungeonService,
		runService:       cfg.RunService,
		inventoryService: cfg.InventoryService,
	}, nil
}

func respond(v interface{}) (*structpb.Struct, error) {
	out, err := Encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func completeRunResponse(out *dungeonorchestrator.CompleteRunOutput) *CompleteRunResponse {
	if out == nil {
		return nil
	}
	return &CompleteRunResponse{
		Record: newRecordView(out.Record),
		Item:   out.Item,
		Shape:  out.Shape,
		Reward: newRewardView(out.Reward),
	}
}

// ListLevels lists levels in ordinal order
func (h *Handler) ListLevels(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := Decode(req, &struct{}{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dungeonService.ListLevels(ctx, &dungeonorchestrator.ListLevelsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&LevelsResponse{Levels: out.Levels})
}

// CompleteRun scores a run measured by the caller
func (h *Handler) CompleteRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CompleteRunRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	elapsed := in.ElapsedSeconds
	if in.Elapsed != "" {
		if in.ElapsedSeconds != 0 {
			return nil, errors.ToGRPCError(errors.InvalidArgument("give elapsed or elapsed_seconds, not both"))
		}
		parsed, err := engine.ParseElapsed(in.Elapsed)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		elapsed = parsed
	}

	out, err := h.dungeonService.CompleteRun(ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID:       in.PlayerID,
		LevelID:        in.LevelID,
		ElapsedSeconds: elapsed,
		DistanceMeters: in.DistanceMeters,
		TemperatureF:   in.TemperatureF,
		Trace:          in.Trace,
		Skips:          in.Skips,
		Unrewarded:     in.Unrewarded,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(completeRunResponse(out))
}

// StartRun opens a tracked run
func (h *Handler) StartRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in StartRunRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.runService.StartRun(ctx, &run.StartRunInput{PlayerID: in.PlayerID, LevelID: in.LevelID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&SessionResponse{Session: out.Session})
}

// RecordPoint adds a location to the tracked run
func (h *Handler) RecordPoint(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RecordPointRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.runService.RecordPoint(ctx, &run.RecordPointInput{
		PlayerID: in.PlayerID,
		Point: dungeon.Point{
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
			Elevation: in.Elevation,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RecordPointResponse{
		Recorded: out.Recorded,
		Points:   len(out.Session.Trace),
		Paused:   out.Session.Paused(),
	})
}

// PauseRun pauses the tracked run
func (h *Handler) PauseRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in PlayerRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.runService.PauseRun(ctx, &run.PauseRunInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&SessionResponse{Session: out.Session})
}

// ResumeRun resumes the tracked run
func (h *Handler) ResumeRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in PlayerRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.runService.ResumeRun(ctx, &run.ResumeRunInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&SessionResponse{Session: out.Session})
}

// FinishRun scores and closes the tracked run
func (h *Handler) FinishRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in PlayerRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.runService.FinishRun(ctx, &run.FinishRunInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&FinishRunResponse{
		ElapsedSeconds: out.ElapsedSeconds,
		DistanceMeters: out.DistanceMeters,
		Run:            completeRunResponse(out.Result),
	})
}

// ListJournal lists a player's records, newest first
func (h *Handler) ListJournal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListJournalRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dungeonService.ListJournal(ctx, &dungeonorchestrator.ListJournalInput{
		PlayerID: in.PlayerID,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	records := make([]*RecordView, 0, len(out.Records))
	for _, record := range out.Records {
		records = append(records, newRecordView(record))
	}
	return respond(&JournalResponse{Records: records})
}

// ListItems lists a player's items
func (h *Handler) ListItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListItemsRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.ListItems(ctx, &inventory.ListItemsInput{
		PlayerID: in.PlayerID,
		Slot:     gear.SlotType(in.Slot),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ItemsResponse{Items: out.Items})
}

// EquipItem equips one of a player's items
func (h *Handler) EquipItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ItemRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.EquipItem(ctx, &inventory.EquipItemInput{PlayerID: in.PlayerID, ItemID: in.ItemID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&EquipItemResponse{Item: out.Item, Unequipped: out.Unequipped})
}

// DiscardItem removes one of a player's unequipped items
func (h *Handler) DiscardItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ItemRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.inventoryService.DiscardItem(ctx, &inventory.DiscardItemInput{
		PlayerID: in.PlayerID,
		ItemID:   in.ItemID,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// GrantStarterKit gives a new player the starter kit
func (h *Handler) GrantStarterKit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in PlayerRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.GrantStarterKit(ctx, &inventory.GrantStarterKitInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GrantStarterKitResponse{Granted: out.Granted, Items: out.Items})
}

// GetLoadout returns a player's equipped items and summed stats
func (h *Handler) GetLoadout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in PlayerRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.GetLoadout(ctx, &inventory.GetLoadoutInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&LoadoutResponse{Equipped: out.Equipped, Stats: out.Stats})
}
