package delivery

import (
	"context"
	"log/slog"

	"github.com/LittlestCube/toontown-archipelago/internal/notifications"
)

// deferredNotifier holds an envelope's notifications until the avatar has
// been saved, so a player is never told about a change that was rolled back
type deferredNotifier struct {
	pending []*notifications.Notification
}

func (d *deferredNotifier) NotifyReward(_ context.Context, n *notifications.Notification) error {
	d.pending = append(d.pending, n)
	return nil
}

func (d *deferredNotifier) flush(ctx context.Context, to notifications.Notifier, logger *slog.Logger) {
	for _, n := range d.pending {
		if err := to.NotifyReward(ctx, n); err != nil {
			logger.WarnContext(ctx, "failed to send reward notification",
				"avatar_id", n.AvatarID,
				"sequence_index", n.SequenceIndex,
				"error", err.Error())
		}
	}
	d.pending = nil
}
