package rewards_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

// scriptedRoller returns queued rolls in order, clamped to the die size,
// and 1 once the queue is empty. Every requested size is recorded.
type scriptedRoller struct {
	rolls []int
	sizes []int
}

var _ dice.Roller = (*scriptedRoller)(nil)

func newScriptedRoller(rolls ...int) *scriptedRoller {
	return &scriptedRoller{rolls: rolls}
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if len(r.rolls) == 0 {
		return 1, nil
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return max(1, min(v, size)), nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, _ := r.Roll(size)
		out = append(out, v)
	}
	return out, nil
}

func newEnv(t *testing.T, roller dice.Roller) *rewards.Env {
	t.Helper()
	tbl, err := tables.Default()
	require.NoError(t, err)
	return &rewards.Env{
		Tables: tbl,
		Roller: roller,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newToon() *toon.Toon {
	return toon.New("toon_1", "Flippy")
}
