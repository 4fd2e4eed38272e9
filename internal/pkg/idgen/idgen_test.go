package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LittlestCube/toontown-archipelago/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("notif")
	assert.Equal(t, "notif_1", gen.Generate())
	assert.Equal(t, "notif_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("notif")
	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "notif_"))
	assert.NotEqual(t, first, second)
	assert.Len(t, first, len("notif_")+36)
}
