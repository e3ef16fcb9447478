// Package client provides commands that drive the game service over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/legends-of-revenue/internal/handlers/game/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared by most commands
	characterID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Play the game against a running server",
	Long:  `Client commands make real gRPC requests to the game service and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&characterID, "character-id", "", "Character ID")

	// Character commands
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(loadCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(resetCharacterCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
	ClientCmd.AddCommand(endSessionCmd)
	ClientCmd.AddCommand(statsCmd)
	ClientCmd.AddCommand(dismissCmd)
	ClientCmd.AddCommand(leaderboardCmd)

	// Combat commands
	ClientCmd.AddCommand(fightCmd)
	ClientCmd.AddCommand(encounterCmd)
	ClientCmd.AddCommand(attacksCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(specialCmd)
	ClientCmd.AddCommand(answerCmd)
	ClientCmd.AddCommand(fleeCmd)

	// Item and market commands
	ClientCmd.AddCommand(useCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(unequipCmd)
	ClientCmd.AddCommand(marketCmd)
	ClientCmd.AddCommand(buyCmd)
	ClientCmd.AddCommand(sellCmd)

	// World commands
	ClientCmd.AddCommand(mapCmd)
	ClientCmd.AddCommand(moveCmd)
	ClientCmd.AddCommand(stepCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGameClient creates a game service client
func createGameClient() (v1alpha1.GameServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

// call opens a client, runs fn under the request timeout and prints its response
func call[Resp any](fn func(ctx context.Context, client v1alpha1.GameServiceClient) (*Resp, error)) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requireCharacter() error {
	if characterID == "" {
		return fmt.Errorf("--character-id is required")
	}
	return nil
}
