package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
)

var notificationLimit int

var listNotificationsCmd = &cobra.Command{
	Use:   "list-notifications [avatar-id]",
	Short: "Show a toon's latest reward notifications",
	Args:  cobra.ExactArgs(1),
	RunE:  listNotifications,
}

func init() {
	listNotificationsCmd.Flags().IntVar(&notificationLimit, "limit", 10, "Maximum notifications to show (0 for all)")
}

func listNotifications(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRewardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := request(&v1alpha1.ListNotificationsRequest{AvatarID: args[0], Limit: notificationLimit})
	if err != nil {
		return err
	}

	resp, err := client.ListNotifications(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list notifications: %w", err)
	}

	var out v1alpha1.ListNotificationsResponse
	if err := decode(resp, &out); err != nil {
		return err
	}

	if len(out.Notifications) == 0 {
		fmt.Println("No notifications")
		return nil
	}
	for _, n := range out.Notifications {
		printNotification(n)
	}
	return nil
}
