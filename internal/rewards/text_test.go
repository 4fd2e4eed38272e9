package rewards_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/toontown-archipelago/internal/clients/catalog"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"))
}

func TestDescriptionsGolden(t *testing.T) {
	tbl, err := tables.Default()
	require.NoError(t, err)
	static, err := catalog.New(&catalog.Config{})
	require.NoError(t, err)
	registry, err := rewards.NewRegistry(&rewards.RegistryConfig{Tables: tbl, Catalog: static})
	require.NoError(t, err)

	env := newEnv(t, newScriptedRoller())
	names := []string{
		"+2 Laff Boost",
		"Throw Training Frame",
		"Acorn Acres Teleport Access",
		"Donald's Dock HQ Access",
		"The Brrrgh Fishing License",
		"Coin Mint Key",
		"Lawbot Disguise",
		"500 Jellybeans",
		"15% Experience Bundle",
		"Random Pink Slips",
		"Proof of First CJ Defeat",
		"Victory",
		"Fish",
		"Uber Trap",
		"Drip Trap",
		"Gag Shuffle Trap",
		"Mystery Box",
	}

	var b strings.Builder
	for _, name := range names {
		text := registry.ResolveByName(name).Describe(env, newToon()).WithFooter("Flippy", false)
		fmt.Fprintf(&b, "== %s ==\n%s\n", name, text.Plain())
	}

	newGoldie(t).Assert(t, "descriptions", []byte(b.String()))
}

func TestMarkupGolden(t *testing.T) {
	env := newEnv(t, newScriptedRoller())
	tn := newToon()

	var b strings.Builder
	b.WriteString(rewards.LaffBoost{Amount: 2}.Describe(env, tn).WithFooter("Flippy", false).Markup())
	b.WriteString("\n")
	b.WriteString(rewards.Victory{}.Describe(env, tn).WithFooter("Flippy", true).Markup())
	b.WriteString("\n")

	newGoldie(t).Assert(t, "markup", []byte(b.String()))
}

func TestWithFooterKeepsIcon(t *testing.T) {
	env := newEnv(t, newScriptedRoller())
	frame := rewards.GagTrainingFrame{Track: 4}.Describe(env, newToon())

	footed := frame.WithFooter("Slot 2", false)

	assert.Equal(t, frame.Icon, footed.Icon)
	assert.Len(t, footed.Parts, len(frame.Parts)+2)
	assert.Len(t, frame.Parts, 3, "the original text is not modified")
	assert.True(t, strings.HasSuffix(footed.Plain(), "\n\nFrom: Slot 2"))
}

func TestMarkupWithoutColor(t *testing.T) {
	env := newEnv(t, newScriptedRoller())
	text := rewards.Ignore{}.Describe(env, newToon())

	assert.Equal(t, text.Plain(), text.Markup())
	assert.Equal(t, rewards.DefaultIcon, text.Icon)
}
