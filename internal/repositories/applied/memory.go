package applied

import (
	"context"
	"sync"
)

type markKey struct {
	avatarID      string
	sequenceIndex int64
}

type memoryRepository struct {
	mu    sync.Mutex
	marks map[markKey]struct{}
}

// NewInMemory creates a process-local guard. Marks are lost on restart.
func NewInMemory() Repository {
	return &memoryRepository{marks: make(map[markKey]struct{})}
}

func (r *memoryRepository) TryMarkApplied(_ context.Context, input TryMarkAppliedInput) (*TryMarkAppliedOutput, error) {
	if err := validateKey(input.AvatarID, input.SequenceIndex); err != nil {
		return nil, err
	}

	key := markKey{avatarID: input.AvatarID, sequenceIndex: input.SequenceIndex}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.marks[key]; ok {
		return &TryMarkAppliedOutput{Marked: false}, nil
	}
	r.marks[key] = struct{}{}
	return &TryMarkAppliedOutput{Marked: true}, nil
}

func (r *memoryRepository) Unmark(_ context.Context, input UnmarkInput) (*UnmarkOutput, error) {
	if err := validateKey(input.AvatarID, input.SequenceIndex); err != nil {
		return nil, err
	}

	r.mu.Lock()
	delete(r.marks, markKey{avatarID: input.AvatarID, sequenceIndex: input.SequenceIndex})
	r.mu.Unlock()

	return &UnmarkOutput{}, nil
}
