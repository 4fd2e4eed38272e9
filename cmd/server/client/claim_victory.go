package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
)

var claimVictoryCmd = &cobra.Command{
	Use:   "claim-victory [avatar-id]",
	Short: "Talk to Flippy once the goal is met",
	Args:  cobra.ExactArgs(1),
	RunE:  claimVictory,
}

func claimVictory(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRewardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := request(&v1alpha1.AvatarRequest{AvatarID: args[0]})
	if err != nil {
		return err
	}

	resp, err := client.ClaimVictory(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to claim victory: %w", err)
	}

	var out v1alpha1.ClaimVictoryResponse
	if err := decode(resp, &out); err != nil {
		return err
	}

	fmt.Printf("%s saved Toontown! Checked location %d\n", out.Toon.Name, out.LocationID)
	return nil
}
