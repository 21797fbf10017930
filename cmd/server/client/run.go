package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/dungeon-runner/internal/handlers/dungeonrunner/v1alpha1"
)

var elevation float64

var startRunCmd = &cobra.Command{
	Use:   "start-run [player-id] [level-id]",
	Short: "Start tracking a run",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodStartRun, map[string]interface{}{
			"player_id": args[0],
			"level_id":  args[1],
		})
	},
}

var recordPointCmd = &cobra.Command{
	Use:   "record-point [player-id] [lat] [lon]",
	Short: "Record a location on the tracked run",
	Args:  cobra.ExactArgs(3),
	RunE:  runRecordPoint,
}

var (
	pauseRunCmd  = playerCommand("pause-run", "Pause the tracked run", v1alpha1.MethodPauseRun)
	resumeRunCmd = playerCommand("resume-run", "Resume the tracked run", v1alpha1.MethodResumeRun)
	finishRunCmd = playerCommand("finish-run", "Finish and score the tracked run", v1alpha1.MethodFinishRun)
)

func init() {
	recordPointCmd.Flags().Float64Var(&elevation, "ele", 0, "Elevation in metres")
}

func runRecordPoint(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", args[1], err)
	}
	lon, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q: %w", args[2], err)
	}

	return invoke(cmd, v1alpha1.MethodRecordPoint, map[string]interface{}{
		"player_id": args[0],
		"lat":       lat,
		"lon":       lon,
		"ele":       elevation,
	})
}
