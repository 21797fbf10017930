package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the embedded descriptors and levels into redis",
	Long: `Replace the stored descriptor catalog and upsert every level from the
data embedded in the binary. Player inventories and journals are untouched.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	redisClient, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	repos, err := newRepositories(redisClient, clock.New())
	if err != nil {
		return err
	}

	result, err := seedStore(ctx, repos)
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	slog.Info("seeded", "descriptors", result.Descriptors, "levels", result.Levels)
	fmt.Printf("Seeded %d descriptors and %d levels into %s\n", result.Descriptors, result.Levels, cfg.RedisAddr)
	return nil
}
