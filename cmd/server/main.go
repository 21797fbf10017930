// Package main is the entry point for the DungeonRunner gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-runner/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "dungeon-runner",
	Short: "DungeonRunner gRPC Server",
	Long:  `DungeonRunner turns real-world runs into dungeon loot: it scores runs, forges reward items and keeps each player's journal.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
