// Package delivery pairs a resolved reward with the metadata of the item
// event that carried it, and sequences the state change with the player's
// notification.
package delivery

import (
	"context"
	"log/slog"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/notifications"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
)

// LocalOrigin is shown in place of the sender's name for items the player
// found in their own world
const LocalOrigin = "You"

// Envelope is one reward-grant event. It is consumed by a single Apply call
// and never stored.
type Envelope struct {
	Avatar        *toon.Toon
	Reward        rewards.Reward
	SequenceIndex int64
	SourceItemID  int64
	OriginName    string
	IsLocal       bool
}

// Validate checks the envelope carries everything Apply needs
func (e *Envelope) Validate() error {
	if e == nil {
		return errors.InvalidArgument("envelope cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if e.Avatar == nil {
		vb.RequiredField("avatar")
	}
	if e.Reward == nil {
		vb.RequiredField("reward")
	}
	if e.SequenceIndex < 0 {
		vb.InvalidField("sequence_index", "cannot be negative")
	}
	return vb.Build()
}

// Origin is the display name for the notification footer
func (e *Envelope) Origin() string {
	if e.IsLocal {
		return LocalOrigin
	}
	return e.OriginName
}

// Apply mutates the avatar with the reward and then notifies the player.
// Undefined and Ignore rewards still notify. A reward error aborts before
// the notification; the caller must not persist the avatar.
func (e *Envelope) Apply(ctx context.Context, env *rewards.Env, notifier notifications.Notifier) (*notifications.Notification, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if env == nil {
		return nil, errors.InvalidArgument("reward environment cannot be nil")
	}
	if notifier == nil {
		return nil, errors.InvalidArgument("notifier cannot be nil")
	}

	if err := e.Reward.Apply(env, e.Avatar); err != nil {
		// Cues raised before the failure belong to a change that is discarded
		e.Avatar.DrainCues()
		return nil, errors.Wrapf(err, "failed to apply %s", e.Reward.Kind()).
			WithMeta("avatar_id", e.Avatar.GetID()).
			WithMeta("sequence_index", e.SequenceIndex).
			WithMeta("item_id", e.SourceItemID)
	}

	text := e.Reward.Describe(env, e.Avatar).WithFooter(e.OriginName, e.IsLocal)
	n := &notifications.Notification{
		AvatarID:      e.Avatar.GetID(),
		SequenceIndex: e.SequenceIndex,
		SourceItemID:  e.SourceItemID,
		Kind:          e.Reward.Kind().String(),
		Origin:        e.Origin(),
		IsLocal:       e.IsLocal,
		Text:          text,
		Markup:        text.Markup(),
		Cues:          e.Avatar.DrainCues(),
	}

	if err := notifier.NotifyReward(ctx, n); err != nil {
		// Notification is fire-and-forget; the reward stays applied
		logger(env).WarnContext(ctx, "failed to send reward notification",
			"avatar_id", n.AvatarID,
			"sequence_index", n.SequenceIndex,
			"error", err.Error())
	}

	return n, nil
}

func logger(env *rewards.Env) *slog.Logger {
	if env.Logger == nil {
		return slog.Default()
	}
	return env.Logger
}
