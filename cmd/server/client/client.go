// Package client provides test commands for the DungeonRunner gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	v1alpha1 "github.com/KirkDiggler/dungeon-runner/internal/handlers/dungeonrunner/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for DungeonRunner",
	Long:  `Client commands exercise a running DungeonRunner server with real gRPC requests and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Dungeon commands
	ClientCmd.AddCommand(levelsCmd)
	ClientCmd.AddCommand(completeRunCmd)
	ClientCmd.AddCommand(journalCmd)

	// Tracked run commands
	ClientCmd.AddCommand(startRunCmd)
	ClientCmd.AddCommand(recordPointCmd)
	ClientCmd.AddCommand(pauseRunCmd)
	ClientCmd.AddCommand(resumeRunCmd)
	ClientCmd.AddCommand(finishRunCmd)

	// Inventory commands
	ClientCmd.AddCommand(itemsCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(discardCmd)
	ClientCmd.AddCommand(starterKitCmd)
	ClientCmd.AddCommand(loadoutCmd)
}

// createClient creates a DungeonService client
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// invoke calls method with fields as the request and prints the response
func invoke(cmd *cobra.Command, method string, fields map[string]interface{}) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, errors.FromGRPCError(err))
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func playerCommand(use, short, method string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [player-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, method, map[string]interface{}{"player_id": args[0]})
		},
	}
}
