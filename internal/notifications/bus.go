package notifications

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/clock"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/idgen"
)

// BusConfig contains configuration for the event bus notifier
type BusConfig struct {
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate validates the BusConfig
func (cfg *BusConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.EventBus == nil {
		vb.RequiredField("event_bus")
	}
	return vb.Build()
}

// Bus publishes notifications to an rpg-toolkit event bus. Subscribers such
// as Inbox and LogSink decide where they end up.
type Bus struct {
	eventBus events.EventBus
	idGen    idgen.Generator
	clock    clock.Clock
}

var _ Notifier = (*Bus)(nil)

// NewBus creates a notifier on top of cfg.EventBus
func NewBus(cfg *BusConfig) (*Bus, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("ntf")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Bus{eventBus: cfg.EventBus, idGen: gen, clock: c}, nil
}

// NotifyReward publishes n with the notification as the event source and the
// avatar as the target
func (b *Bus) NotifyReward(ctx context.Context, n *Notification) error {
	if n == nil {
		return errors.InvalidArgument("notification cannot be nil")
	}
	if n.AvatarID == "" {
		return errors.InvalidArgument("notification avatar ID cannot be empty")
	}

	if n.ID == "" {
		n.ID = b.idGen.Generate()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.clock.Now()
	}

	event := events.NewGameEvent(EventRewardNotified, n, avatarRef(n.AvatarID))
	if err := b.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish notification %s", n.ID)
	}
	return nil
}

// notificationFrom unwraps the notification carried by a bus event
func notificationFrom(event events.Event) (*Notification, bool) {
	if event == nil || event.Type() != EventRewardNotified {
		return nil, false
	}
	n, ok := event.Source().(*Notification)
	return n, ok && n != nil
}
