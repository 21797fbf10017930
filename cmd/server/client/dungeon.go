package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/dungeon-runner/internal/handlers/dungeonrunner/v1alpha1"
)

var (
	temperature  float64
	unrewarded   bool
	journalLimit int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the dungeon levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, v1alpha1.MethodListLevels, nil)
	},
}

var completeRunCmd = &cobra.Command{
	Use:   "complete-run [player-id] [level-id] [elapsed] [distance-meters]",
	Short: "Score a run measured elsewhere",
	Long: `Score a finished run and forge its reward. Elapsed is mm:ss or hh:mm:ss.

  complete-run player-1 cave-crawl 45:10 8200 --temperature 64`,
	Args: cobra.ExactArgs(4),
	RunE: runCompleteRun,
}

var journalCmd = &cobra.Command{
	Use:   "journal [player-id]",
	Short: "List a player's completed runs, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]interface{}{"player_id": args[0]}
		if journalLimit > 0 {
			fields["limit"] = journalLimit
		}
		return invoke(cmd, v1alpha1.MethodListJournal, fields)
	},
}

func init() {
	completeRunCmd.Flags().Float64Var(&temperature, "temperature", 0, "Temperature in Fahrenheit (omit for unavailable)")
	completeRunCmd.Flags().BoolVar(&unrewarded, "unrewarded", false, "Journal the run without forging an item")
	journalCmd.Flags().IntVar(&journalLimit, "limit", 0, "Maximum records to return")
}

func runCompleteRun(cmd *cobra.Command, args []string) error {
	distance, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid distance %q: %w", args[3], err)
	}

	fields := map[string]interface{}{
		"player_id":       args[0],
		"level_id":        args[1],
		"elapsed":         args[2],
		"distance_meters": distance,
	}
	if cmd.Flags().Changed("temperature") {
		fields["temperature_f"] = temperature
	}
	if unrewarded {
		fields["unrewarded"] = true
	}

	return invoke(cmd, v1alpha1.MethodCompleteRun, fields)
}
