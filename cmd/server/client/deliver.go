package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
)

var (
	originName string
	isLocal    bool
	byName     bool
)

var deliverCmd = &cobra.Command{
	Use:   "deliver [avatar-id] [start-index] [items...]",
	Short: "Deliver a received-items batch",
	Long: `Deliver items starting at a sequence index. Items are archipelago ids
unless --by-name is set. Examples:

  deliver toon_1 0 4000 4018 4034
  deliver toon_1 3 --by-name "Uber Trap" --origin "Slot 2"`,
	Args: cobra.MinimumNArgs(3),
	RunE: deliver,
}

func init() {
	deliverCmd.Flags().StringVar(&originName, "origin", "", "Name of the player who sent the items")
	deliverCmd.Flags().BoolVar(&isLocal, "local", false, "Items were found by this player")
	deliverCmd.Flags().BoolVar(&byName, "by-name", false, "Treat items as item names instead of ids")
}

func deliver(_ *cobra.Command, args []string) error {
	start, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid start index %q: %w", args[1], err)
	}

	items := make([]v1alpha1.ItemMessage, 0, len(args)-2)
	for _, arg := range args[2:] {
		item := v1alpha1.ItemMessage{OriginName: originName, IsLocal: isLocal}
		if byName {
			item.ItemName = arg
		} else {
			item.ItemID, err = strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q: %w", arg, err)
			}
		}
		items = append(items, item)
	}

	client, cleanup, err := createRewardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := request(&v1alpha1.DeliverItemsRequest{
		AvatarID:   args[0],
		StartIndex: start,
		Items:      items,
	})
	if err != nil {
		return err
	}

	resp, err := client.DeliverItems(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to deliver items: %w", err)
	}

	var out v1alpha1.DeliverItemsResponse
	if err := decode(resp, &out); err != nil {
		return err
	}

	applied := 0
	for _, r := range out.Results {
		if r.Skipped {
			fmt.Printf("\n[%d] already applied, skipped\n", r.SequenceIndex)
			continue
		}
		applied++
		if r.Notification != nil {
			printNotification(r.Notification)
		}
	}

	fmt.Printf("\nApplied %d of %d items to %s\n", applied, len(out.Results), args[0])
	return nil
}
