package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/orchestrators/inventory"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	inventoryrepo "github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory"
	inventoryrepomock "github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/seed"
	"github.com/KirkDiggler/dungeon-runner/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockInventoryRepo *inventoryrepomock.MockRepository
	now               time.Time
	orchestrator      inventory.Service
	ctx               context.Context

	playerID string
	kit      []seed.StarterItem
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockInventoryRepo = inventoryrepomock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)
	s.playerID = "player-123"
	s.kit = []seed.StarterItem{
		{Name: "Initiate's Helmet", Slot: gear.SlotHead, Stats: gear.Stats{Armour: 8, Strength: 2}, Equipped: true},
		{Name: "Spare Helmet", Slot: gear.SlotHead, Stats: gear.Stats{Armour: 7, Strength: 1}},
	}

	orchestrator, err := inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: s.mockInventoryRepo,
		Clock:         clock.NewManual(s.now),
		StarterKit:    s.kit,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectList(items ...*gear.Item) {
	s.mockInventoryRepo.EXPECT().
		List(s.ctx, inventoryrepo.ListInput{PlayerID: s.playerID}).
		Return(&inventoryrepo.ListOutput{Items: items}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := inventory.NewOrchestrator(&inventory.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "InventoryRepo")
	s.Contains(err.Error(), "Clock")

	_, err = inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: s.mockInventoryRepo,
		Clock:         clock.New(),
		StarterKit:    []seed.StarterItem{{Name: "Oddity", Slot: "tail"}},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "StarterKit[0]")

	_, err = inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: s.mockInventoryRepo,
		Clock:         clock.New(),
	})
	s.NoError(err, "the embedded kit loads")
}

func (s *OrchestratorTestSuite) TestListItems_FiltersBySlot() {
	helmet := testutils.CreateTestItem("item_1", s.playerID, gear.SlotHead)
	knife := testutils.CreateTestItem("item_2", s.playerID, gear.SlotSharp)
	s.expectList(helmet, knife)

	out, err := s.orchestrator.ListItems(s.ctx, &inventory.ListItemsInput{PlayerID: s.playerID, Slot: gear.SlotSharp})
	s.Require().NoError(err)
	s.Equal([]*gear.Item{knife}, out.Items)

	s.expectList(helmet, knife)
	out, err = s.orchestrator.ListItems(s.ctx, &inventory.ListItemsInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Len(out.Items, 2)
}

func (s *OrchestratorTestSuite) TestListItems_InvalidSlot() {
	_, err := s.orchestrator.ListItems(s.ctx, &inventory.ListItemsInput{PlayerID: s.playerID, Slot: "tail"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEquipItem() {
	equipped := testutils.CreateTestItem("item_2", s.playerID, gear.SlotHead)
	equipped.Equipped = true
	previous := testutils.CreateTestItem("item_1", s.playerID, gear.SlotHead)

	s.mockInventoryRepo.EXPECT().
		Equip(s.ctx, inventoryrepo.EquipInput{PlayerID: s.playerID, ItemID: "item_2"}).
		Return(&inventoryrepo.EquipOutput{Item: equipped, Unequipped: previous}, nil)

	out, err := s.orchestrator.EquipItem(s.ctx, &inventory.EquipItemInput{PlayerID: s.playerID, ItemID: "item_2"})
	s.Require().NoError(err)
	s.Same(equipped, out.Item)
	s.Same(previous, out.Unequipped)
}

func (s *OrchestratorTestSuite) TestEquipItem_NotFound() {
	s.mockInventoryRepo.EXPECT().
		Equip(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("item not found"))

	_, err := s.orchestrator.EquipItem(s.ctx, &inventory.EquipItemInput{PlayerID: s.playerID, ItemID: "ghost"})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to equip item ghost")
}

func (s *OrchestratorTestSuite) TestDiscardItem() {
	item := testutils.CreateTestItem("item_1", s.playerID, gear.SlotFeet)
	ref := inventoryrepo.GetInput{PlayerID: s.playerID, ItemID: "item_1"}

	s.mockInventoryRepo.EXPECT().Get(s.ctx, ref).Return(&inventoryrepo.GetOutput{Item: item}, nil)
	s.mockInventoryRepo.EXPECT().
		Delete(s.ctx, inventoryrepo.DeleteInput{PlayerID: s.playerID, ItemID: "item_1"}).
		Return(&inventoryrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DiscardItem(s.ctx, &inventory.DiscardItemInput{PlayerID: s.playerID, ItemID: "item_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestDiscardItem_Equipped() {
	item := testutils.CreateTestItem("item_1", s.playerID, gear.SlotFeet)
	item.Equipped = true
	s.mockInventoryRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(&inventoryrepo.GetOutput{Item: item}, nil)

	_, err := s.orchestrator.DiscardItem(s.ctx, &inventory.DiscardItemInput{PlayerID: s.playerID, ItemID: "item_1"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDiscardItem_Validation() {
	_, err := s.orchestrator.DiscardItem(s.ctx, &inventory.DiscardItemInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "PlayerID")
	s.Contains(err.Error(), "ItemID")
}

func (s *OrchestratorTestSuite) TestGrantStarterKit() {
	s.mockInventoryRepo.EXPECT().
		Count(s.ctx, inventoryrepo.CountInput{PlayerID: s.playerID}).
		Return(&inventoryrepo.CountOutput{Count: 0}, nil)

	expected := []*gear.Item{
		{
			ID: "item_starter_01", PlayerID: s.playerID, Slot: gear.SlotHead, Name: "Initiate's Helmet",
			Stats: gear.Stats{Armour: 8, Strength: 2}, Points: 10, Equipped: true, CreatedAt: s.now,
		},
		{
			ID: "item_starter_02", PlayerID: s.playerID, Slot: gear.SlotHead, Name: "Spare Helmet",
			Stats: gear.Stats{Armour: 7, Strength: 1}, Points: 8, CreatedAt: s.now,
		},
	}
	s.mockInventoryRepo.EXPECT().
		Add(s.ctx, inventoryrepo.AddInput{PlayerID: s.playerID, Items: expected}).
		Return(&inventoryrepo.AddOutput{Items: expected}, nil)

	out, err := s.orchestrator.GrantStarterKit(s.ctx, &inventory.GrantStarterKitInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.True(out.Granted)
	s.Equal(expected, out.Items)
}

func (s *OrchestratorTestSuite) TestGrantStarterKit_AlreadyOwnsItems() {
	s.mockInventoryRepo.EXPECT().
		Count(s.ctx, inventoryrepo.CountInput{PlayerID: s.playerID}).
		Return(&inventoryrepo.CountOutput{Count: 3}, nil)

	out, err := s.orchestrator.GrantStarterKit(s.ctx, &inventory.GrantStarterKitInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.False(out.Granted)
	s.Empty(out.Items)
}

func (s *OrchestratorTestSuite) TestGetLoadout() {
	helmet := testutils.CreateTestItem("item_1", s.playerID, gear.SlotHead)
	helmet.Equipped = true
	helmet.Stats = gear.Stats{Armour: 8, Strength: 2}
	spare := testutils.CreateTestItem("item_2", s.playerID, gear.SlotHead)
	spare.Stats = gear.Stats{Armour: 50}
	knife := testutils.CreateTestItem("item_3", s.playerID, gear.SlotSharp)
	knife.Equipped = true
	knife.Stats = gear.Stats{Damage: 7, Agility: 3}
	s.expectList(helmet, spare, knife)

	out, err := s.orchestrator.GetLoadout(s.ctx, &inventory.GetLoadoutInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(map[gear.SlotType]*gear.Item{gear.SlotHead: helmet, gear.SlotSharp: knife}, out.Equipped)
	s.Equal(gear.Stats{Armour: 8, Damage: 7, Strength: 2, Agility: 3}, out.Stats)
}

func (s *OrchestratorTestSuite) TestGetLoadout_Empty() {
	s.expectList()

	out, err := s.orchestrator.GetLoadout(s.ctx, &inventory.GetLoadoutInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Empty(out.Equipped)
	s.Equal(gear.Stats{}, out.Stats)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
