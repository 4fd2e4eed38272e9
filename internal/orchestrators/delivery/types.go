package delivery

import (
	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/notifications"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
)

// Item is one received item as reported by the network layer
type Item struct {
	ItemID int64
	// ItemName resolves the reward by name instead of through the catalog
	ItemName   string
	OriginName string
	IsLocal    bool
}

// ItemResult reports what happened to one item
type ItemResult struct {
	SequenceIndex int64
	ItemID        int64
	Kind          rewards.Kind
	// Skipped is set when the sequence index had already been applied
	Skipped      bool
	Notification *notifications.Notification
}

// DeliverItemInput defines the request for delivering a single item
type DeliverItemInput struct {
	AvatarID      string
	SequenceIndex int64
	Item          Item
}

// DeliverItemOutput defines the response for delivering a single item
type DeliverItemOutput struct {
	Result *ItemResult
	Toon   *toon.Toon
}

// DeliverItemsInput defines the request for delivering a received-items
// batch. Item i carries sequence index StartIndex+i.
type DeliverItemsInput struct {
	AvatarID   string
	StartIndex int64
	Items      []Item
}

// DeliverItemsOutput defines the response for delivering a batch
type DeliverItemsOutput struct {
	Results []*ItemResult
	Toon    *toon.Toon
}

// ClaimVictoryInput defines the request for claiming the victory location
type ClaimVictoryInput struct {
	AvatarID string
}

// ClaimVictoryOutput defines the response for claiming the victory location
type ClaimVictoryOutput struct {
	Toon       *toon.Toon
	LocationID int
}

// CreateAvatarInput defines the request for creating an avatar
type CreateAvatarInput struct {
	AvatarID string // Optional, generated when empty
	Name     string
}

// CreateAvatarOutput defines the response for creating an avatar
type CreateAvatarOutput struct {
	Toon *toon.Toon
}

// GetAvatarInput defines the request for getting an avatar
type GetAvatarInput struct {
	AvatarID string
}

// GetAvatarOutput defines the response for getting an avatar
type GetAvatarOutput struct {
	Toon *toon.Toon
}

// ListNotificationsInput defines the request for listing notifications
type ListNotificationsInput struct {
	AvatarID string
	Limit    int
}

// ListNotificationsOutput defines the response for listing notifications
type ListNotificationsOutput struct {
	Notifications []*notifications.Notification
}
