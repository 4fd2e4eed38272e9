// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/toontown-archipelago/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "toontown-ap",
	Short: "Toontown Archipelago reward server",
	Long:  `Applies items received from an Archipelago multiworld to toons, exactly once and in order, and tells the player what they got.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
