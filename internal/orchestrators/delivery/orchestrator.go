// Package delivery implements the orchestrator that applies received items
// to avatars exactly once and in order
package delivery

//go:generate mockgen -destination=mock/mock_service.go -package=deliverymock github.com/LittlestCube/toontown-archipelago/internal/orchestrators/delivery Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	envelope "github.com/LittlestCube/toontown-archipelago/internal/delivery"
	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/notifications"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/idgen"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/keylock"
	"github.com/LittlestCube/toontown-archipelago/internal/repositories/applied"
	toonrepo "github.com/LittlestCube/toontown-archipelago/internal/repositories/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

// DefaultVictoryLocationID is the "Saved Toontown" location checked when a
// toon that met its goal talks to Flippy
const DefaultVictoryLocationID = 4500

// releaseTimeout bounds the unmark issued after a failed envelope
const releaseTimeout = 5 * time.Second

// Service defines the interface for reward delivery operations
type Service interface {
	// Item delivery
	DeliverItem(ctx context.Context, input *DeliverItemInput) (*DeliverItemOutput, error)
	DeliverItems(ctx context.Context, input *DeliverItemsInput) (*DeliverItemsOutput, error)

	// Goal completion
	ClaimVictory(ctx context.Context, input *ClaimVictoryInput) (*ClaimVictoryOutput, error)

	// Avatar administration
	CreateAvatar(ctx context.Context, input *CreateAvatarInput) (*CreateAvatarOutput, error)
	GetAvatar(ctx context.Context, input *GetAvatarInput) (*GetAvatarOutput, error)
	ListNotifications(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error)
}

// History lists notifications already sent to an avatar
type History interface {
	List(avatarID string, limit int) []*notifications.Notification
}

// Config holds the dependencies for the delivery orchestrator
type Config struct {
	Registry    *rewards.Registry
	Tables      *tables.Tables
	ToonRepo    toonrepo.Repository
	AppliedRepo applied.Repository
	Notifier    notifications.Notifier

	History           History         // Optional, ListNotifications is unimplemented without it
	Roller            dice.Roller     // Optional, defaults to dice.DefaultRoller
	IDGenerator       idgen.Generator // Optional, for avatars created without an ID
	Logger            *slog.Logger    // Optional
	VictoryLocationID int             // Optional, defaults to DefaultVictoryLocationID
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.ToonRepo == nil {
		vb.RequiredField("ToonRepo")
	}
	if c.AppliedRepo == nil {
		vb.RequiredField("AppliedRepo")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	errors.ValidateNonNegative("VictoryLocationID", c.VictoryLocationID, vb)

	return vb.Build()
}

// Orchestrator implements the delivery Service
type Orchestrator struct {
	registry    *rewards.Registry
	toonRepo    toonrepo.Repository
	appliedRepo applied.Repository
	notifier    notifications.Notifier
	history     History
	idGen       idgen.Generator
	logger      *slog.Logger
	env         *rewards.Env
	victoryID   int

	// one delivery context per avatar at a time
	locks *keylock.Map
}

// New creates a new delivery orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("toon")
	}
	victoryID := cfg.VictoryLocationID
	if victoryID == 0 {
		victoryID = DefaultVictoryLocationID
	}

	return &Orchestrator{
		registry:    cfg.Registry,
		toonRepo:    cfg.ToonRepo,
		appliedRepo: cfg.AppliedRepo,
		notifier:    cfg.Notifier,
		history:     cfg.History,
		idGen:       gen,
		logger:      logger,
		env:         &rewards.Env{Tables: cfg.Tables, Roller: roller, Logger: logger},
		victoryID:   victoryID,
		locks:       keylock.New(),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// DeliverItem applies one item at an explicit sequence index
func (o *Orchestrator) DeliverItem(ctx context.Context, input *DeliverItemInput) (*DeliverItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.DeliverItems(ctx, &DeliverItemsInput{
		AvatarID:   input.AvatarID,
		StartIndex: input.SequenceIndex,
		Items:      []Item{input.Item},
	})
	if err != nil {
		return nil, err
	}

	return &DeliverItemOutput{Result: out.Results[0], Toon: out.Toon}, nil
}

// DeliverItems applies a received-items batch in order. Items already
// applied are skipped without a notification. The first failing item stops
// the batch; items before it stay applied.
func (o *Orchestrator) DeliverItems(ctx context.Context, input *DeliverItemsInput) (*DeliverItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("avatarID", input.AvatarID, vb)
	if input.StartIndex < 0 {
		vb.InvalidField("startIndex", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(input.AvatarID)
	defer unlock()

	getOut, err := o.toonRepo.Get(ctx, toonrepo.GetInput{ID: input.AvatarID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load toon %s", input.AvatarID)
	}
	current := getOut.Toon

	results := make([]*ItemResult, 0, len(input.Items))
	for offset, item := range input.Items {
		seq := input.StartIndex + int64(offset)

		result, next, err := o.deliverOne(ctx, current, seq, item)
		if err != nil {
			o.logger.ErrorContext(ctx, "item delivery failed",
				"avatar_id", input.AvatarID,
				"sequence_index", seq,
				"item_id", item.ItemID,
				"delivered", len(results),
				"error", err.Error())
			return nil, err
		}
		results = append(results, result)
		current = next
	}

	o.logger.InfoContext(ctx, "delivered items",
		"avatar_id", input.AvatarID,
		"start_index", input.StartIndex,
		"count", len(results))

	return &DeliverItemsOutput{Results: results, Toon: current}, nil
}

// deliverOne runs a single envelope. It returns the toon state to carry into
// the next item.
func (o *Orchestrator) deliverOne(ctx context.Context, current *toon.Toon, seq int64, item Item) (*ItemResult, *toon.Toon, error) {
	// Resolve before marking so a catalog outage does not consume the index
	reward, err := o.resolve(ctx, item)
	if err != nil {
		return nil, current, err
	}

	result := &ItemResult{SequenceIndex: seq, ItemID: item.ItemID, Kind: reward.Kind()}

	mark, err := o.appliedRepo.TryMarkApplied(ctx, applied.TryMarkAppliedInput{
		AvatarID:      current.ID,
		SequenceIndex: seq,
	})
	if err != nil {
		return nil, current, errors.Wrapf(err, "failed to mark sequence index %d", seq)
	}
	if !mark.Marked {
		o.logger.DebugContext(ctx, "skipping already applied item",
			"avatar_id", current.ID,
			"sequence_index", seq,
			"item_id", item.ItemID)
		result.Skipped = true
		return result, current, nil
	}

	working := current.Clone()
	pending := &deferredNotifier{}
	ev := &envelope.Envelope{
		Avatar:        working,
		Reward:        reward,
		SequenceIndex: seq,
		SourceItemID:  item.ItemID,
		OriginName:    item.OriginName,
		IsLocal:       item.IsLocal,
	}

	// The mark and the save are separate writes. A crash between them leaves
	// the index marked with the toon unchanged.
	n, err := ev.Apply(ctx, o.env, pending)
	if err != nil {
		o.release(ctx, current.ID, seq)
		return nil, current, err
	}

	if _, err := o.toonRepo.Update(ctx, toonrepo.UpdateInput{Toon: working}); err != nil {
		o.release(ctx, current.ID, seq)
		return nil, current, errors.Wrapf(err, "failed to save toon %s", current.ID)
	}

	pending.flush(ctx, o.notifier, o.logger)
	result.Notification = n

	return result, working, nil
}

func (o *Orchestrator) resolve(ctx context.Context, item Item) (rewards.Reward, error) {
	if item.ItemName != "" {
		return o.registry.ResolveByName(item.ItemName), nil
	}
	reward, err := o.registry.ResolveByID(ctx, item.ItemID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve item %d", item.ItemID)
	}
	return reward, nil
}

// release drops a mark so an upstream retry can apply the item again. It
// runs detached from the request context, which may already be cancelled.
func (o *Orchestrator) release(ctx context.Context, avatarID string, seq int64) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	_, err := o.appliedRepo.Unmark(ctx, applied.UnmarkInput{AvatarID: avatarID, SequenceIndex: seq})
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to release applied mark",
			"avatar_id", avatarID,
			"sequence_index", seq,
			"error", err.Error())
	}
}

// ClaimVictory records the victory location for a toon that met its goal
func (o *Orchestrator) ClaimVictory(ctx context.Context, input *ClaimVictoryInput) (*ClaimVictoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("avatarID", input.AvatarID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(input.AvatarID)
	defer unlock()

	getOut, err := o.toonRepo.Get(ctx, toonrepo.GetInput{ID: input.AvatarID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load toon %s", input.AvatarID)
	}
	t := getOut.Toon

	if !t.HasWon() {
		return nil, errors.FailedPreconditionf("toon %s has not completed their goal", input.AvatarID).
			WithMeta("avatar_id", input.AvatarID)
	}

	t.AddCheckedLocation(o.victoryID)
	if _, err := o.toonRepo.Update(ctx, toonrepo.UpdateInput{Toon: t}); err != nil {
		return nil, errors.Wrapf(err, "failed to save toon %s", input.AvatarID)
	}

	o.logger.InfoContext(ctx, "toon saved toontown",
		"avatar_id", input.AvatarID,
		"location_id", o.victoryID)

	return &ClaimVictoryOutput{Toon: t, LocationID: o.victoryID}, nil
}

// CreateAvatar stores a new toon with starting stats
func (o *Orchestrator) CreateAvatar(ctx context.Context, input *CreateAvatarInput) (*CreateAvatarOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	id := input.AvatarID
	if id == "" {
		id = o.idGen.Generate()
	}

	created, err := o.toonRepo.Create(ctx, toonrepo.CreateInput{Toon: toon.New(id, input.Name)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create toon")
	}

	return &CreateAvatarOutput{Toon: created.Toon}, nil
}

// GetAvatar retrieves a toon by ID
func (o *Orchestrator) GetAvatar(ctx context.Context, input *GetAvatarInput) (*GetAvatarOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("avatarID", input.AvatarID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOut, err := o.toonRepo.Get(ctx, toonrepo.GetInput{ID: input.AvatarID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get toon")
	}

	return &GetAvatarOutput{Toon: getOut.Toon}, nil
}

// ListNotifications returns the toon's most recent notifications
func (o *Orchestrator) ListNotifications(_ context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.history == nil {
		return nil, errors.Unimplemented("notification history is not configured")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("avatarID", input.AvatarID, vb)
	errors.ValidateNonNegative("limit", input.Limit, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &ListNotificationsOutput{Notifications: o.history.List(input.AvatarID, input.Limit)}, nil
}
