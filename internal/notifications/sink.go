package notifications

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// LogSink writes every notification to a structured logger
type LogSink struct {
	logger   *slog.Logger
	eventBus events.EventBus
	subID    string
}

// NewLogSink subscribes a logging handler to eventBus
func NewLogSink(eventBus events.EventBus, logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	s := &LogSink{logger: logger, eventBus: eventBus}
	s.subID = eventBus.SubscribeFunc(EventRewardNotified, 100, s.handle)
	return s
}

func (s *LogSink) handle(ctx context.Context, event events.Event) error {
	n, ok := notificationFrom(event)
	if !ok {
		return nil
	}
	s.logger.InfoContext(ctx, "reward notification",
		"notification_id", n.ID,
		"avatar_id", n.AvatarID,
		"sequence_index", n.SequenceIndex,
		"item_id", n.SourceItemID,
		"kind", n.Kind,
		"origin", n.Origin,
		"text", n.Text.Plain(),
		"cues", len(n.Cues))
	return nil
}

// Close stops logging notifications
func (s *LogSink) Close() error {
	return s.eventBus.Unsubscribe(s.subID)
}
