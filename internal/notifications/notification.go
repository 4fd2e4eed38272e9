// Package notifications carries the popup shown to a player when a reward is
// delivered, along with any client cues the reward produced.
package notifications

//go:generate mockgen -destination=mock/mock_notifier.go -package=notificationsmock github.com/LittlestCube/toontown-archipelago/internal/notifications Notifier

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
)

// EventRewardNotified is published on the event bus for every notification
const EventRewardNotified = "reward.notified"

// Notification is one reward popup addressed to an avatar
type Notification struct {
	ID            string       `json:"id"`
	AvatarID      string       `json:"avatar_id"`
	SequenceIndex int64        `json:"sequence_index"`
	SourceItemID  int64        `json:"source_item_id"`
	Kind          string       `json:"kind"`
	Origin        string       `json:"origin"`
	IsLocal       bool         `json:"is_local"`
	Text          rewards.Text `json:"text"`
	Markup        string       `json:"markup"`
	Cues          []toon.Cue   `json:"cues,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

var _ core.Entity = (*Notification)(nil)

// GetID returns the notification ID
func (n *Notification) GetID() string { return n.ID }

// GetType returns the entity type for rpg-toolkit
func (n *Notification) GetType() string { return "notification" }

// Notifier delivers reward notifications to the player
type Notifier interface {
	// NotifyReward sends the notification. ID and CreatedAt are filled in
	// when empty.
	// Returns errors.InvalidArgument when the notification has no avatar
	NotifyReward(ctx context.Context, n *Notification) error
}

// avatarRef lets an avatar ID stand in as an event target
type avatarRef string

func (a avatarRef) GetID() string   { return string(a) }
func (a avatarRef) GetType() string { return "toon" }
