package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
)

var avatarID string

var createAvatarCmd = &cobra.Command{
	Use:   "create-avatar [name]",
	Short: "Create a toon with starting stats",
	Args:  cobra.ExactArgs(1),
	RunE:  createAvatar,
}

func init() {
	createAvatarCmd.Flags().StringVar(&avatarID, "id", "", "Avatar ID (generated when empty)")
}

func createAvatar(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRewardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := request(&v1alpha1.AvatarRequest{AvatarID: avatarID, Name: args[0]})
	if err != nil {
		return err
	}

	resp, err := client.CreateAvatar(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create avatar: %w", err)
	}

	var out v1alpha1.AvatarResponse
	if err := decode(resp, &out); err != nil {
		return err
	}

	fmt.Printf("Created %s (%s) with %d laff\n", out.Toon.Name, out.Toon.ID, out.Toon.MaxHP)
	return nil
}
