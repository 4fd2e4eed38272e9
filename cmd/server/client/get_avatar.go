package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
)

var getAvatarCmd = &cobra.Command{
	Use:   "get-avatar [avatar-id]",
	Short: "Show a toon's current state",
	Args:  cobra.ExactArgs(1),
	RunE:  getAvatar,
}

func getAvatar(_ *cobra.Command, args []string) error {
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

	resp, err := client.GetAvatar(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get avatar: %w", err)
	}

	var out v1alpha1.AvatarResponse
	if err := decode(resp, &out); err != nil {
		return err
	}

	printJSON(out.Toon)
	return nil
}
