package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/dungeon-runner/internal/handlers/dungeonrunner/v1alpha1"
)

var slotFilter string

var itemsCmd = &cobra.Command{
	Use:   "items [player-id]",
	Short: "List a player's items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]interface{}{"player_id": args[0]}
		if slotFilter != "" {
			fields["slot"] = slotFilter
		}
		return invoke(cmd, v1alpha1.MethodListItems, fields)
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip [player-id] [item-id]",
	Short: "Equip an item, unequipping the one in its slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodEquipItem, map[string]interface{}{
			"player_id": args[0],
			"item_id":   args[1],
		})
	},
}

var discardCmd = &cobra.Command{
	Use:   "discard [player-id] [item-id]",
	Short: "Discard an unequipped item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodDiscardItem, map[string]interface{}{
			"player_id": args[0],
			"item_id":   args[1],
		})
	},
}

var (
	starterKitCmd = playerCommand("starter-kit", "Grant the starter kit to a new player", v1alpha1.MethodGrantStarterKit)
	loadoutCmd    = playerCommand("loadout", "Show the equipped items and their summed stats", v1alpha1.MethodGetLoadout)
)

func init() {
	itemsCmd.Flags().StringVar(&slotFilter, "slot", "", "Only list items for this slot")
}
