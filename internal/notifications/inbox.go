package notifications

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
)

// DefaultInboxCapacity is how many notifications an avatar's inbox keeps
const DefaultInboxCapacity = 100

// InboxConfig contains configuration for the inbox
type InboxConfig struct {
	EventBus events.EventBus
	Capacity int
}

// Validate validates the InboxConfig
func (cfg *InboxConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.EventBus == nil {
		vb.RequiredField("event_bus")
	}
	errors.ValidateNonNegative("capacity", cfg.Capacity, vb)
	return vb.Build()
}

// Inbox keeps the most recent notifications per avatar so a client that
// reconnects can replay the popups it missed
type Inbox struct {
	mu       sync.RWMutex
	capacity int
	byAvatar map[string][]*Notification

	eventBus events.EventBus
	subID    string
}

// NewInbox creates an inbox subscribed to cfg.EventBus
func NewInbox(cfg *InboxConfig) (*Inbox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = DefaultInboxCapacity
	}

	in := &Inbox{
		capacity: capacity,
		byAvatar: make(map[string][]*Notification),
		eventBus: cfg.EventBus,
	}
	in.subID = cfg.EventBus.SubscribeFunc(EventRewardNotified, 0, in.handle)
	return in, nil
}

func (in *Inbox) handle(_ context.Context, event events.Event) error {
	n, ok := notificationFrom(event)
	if !ok {
		return nil
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	list := append(in.byAvatar[n.AvatarID], n)
	if len(list) > in.capacity {
		list = list[len(list)-in.capacity:]
	}
	in.byAvatar[n.AvatarID] = list
	return nil
}

// List returns up to limit of the avatar's latest notifications, oldest
// first. A limit of zero returns everything kept.
func (in *Inbox) List(avatarID string, limit int) []*Notification {
	in.mu.RLock()
	defer in.mu.RUnlock()

	list := in.byAvatar[avatarID]
	if limit > 0 && len(list) > limit {
		list = list[len(list)-limit:]
	}
	out := make([]*Notification, len(list))
	copy(out, list)
	return out
}

// Close stops receiving notifications
func (in *Inbox) Close() error {
	return in.eventBus.Unsubscribe(in.subID)
}
