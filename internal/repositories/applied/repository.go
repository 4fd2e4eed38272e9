// Package applied records which delivery envelopes have already been applied
// to an avatar, so a redelivered item never grants its reward twice.
package applied

//go:generate mockgen -destination=mock/mock_repository.go -package=appliedmock github.com/LittlestCube/toontown-archipelago/internal/repositories/applied Repository

import (
	"context"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
)

// Repository is the idempotency guard for delivered items
type Repository interface {
	// TryMarkApplied records the envelope as applied.
	// Marked is true only for the first call per (avatar, sequence index) pair.
	// Returns errors.InvalidArgument for an empty avatar ID or negative index
	// Returns errors.Internal for storage failures
	TryMarkApplied(ctx context.Context, input TryMarkAppliedInput) (*TryMarkAppliedOutput, error)

	// Unmark releases a mark so a failed envelope can be applied on retry.
	// Unmarking an index that was never marked is not an error.
	// Returns errors.InvalidArgument for an empty avatar ID or negative index
	// Returns errors.Internal for storage failures
	Unmark(ctx context.Context, input UnmarkInput) (*UnmarkOutput, error)
}

// TryMarkAppliedInput defines the input for marking an envelope
type TryMarkAppliedInput struct {
	AvatarID      string
	SequenceIndex int64
}

// TryMarkAppliedOutput defines the output for marking an envelope
type TryMarkAppliedOutput struct {
	Marked bool
}

// UnmarkInput defines the input for releasing a mark
type UnmarkInput struct {
	AvatarID      string
	SequenceIndex int64
}

// UnmarkOutput defines the output for releasing a mark
type UnmarkOutput struct{}

const (
	errAvatarIDEmpty = "avatar ID cannot be empty"
	errNegativeIndex = "sequence index cannot be negative"
)

func validateKey(avatarID string, sequenceIndex int64) error {
	if avatarID == "" {
		return errors.InvalidArgument(errAvatarIDEmpty)
	}
	if sequenceIndex < 0 {
		return errors.InvalidArgument(errNegativeIndex)
	}
	return nil
}
