// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/legends-of-revenue/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "legends",
	Short: "Legends of Revenue gRPC server",
	Long:  `Legends of Revenue serves a quiz-gated RPG over gRPC: characters, encounters, items, the market and the world map.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(importSRDCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
