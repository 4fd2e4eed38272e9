package toon_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
)

func TestNew(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")

	assert.Equal(t, "toon_1", tn.GetID())
	assert.Equal(t, "toon", tn.GetType())
	assert.Equal(t, toon.DefaultMaxHP, tn.GetHP())
	assert.Equal(t, toon.DefaultMaxCarry, tn.GetMaxCarry())
	for track := 0; track < toon.NumTracks; track++ {
		assert.Equal(t, 0, tn.GetTrackAccessLevel(track))
		assert.Equal(t, toon.NoBonus, tn.GetTrackBonusLevel(track))
		assert.Equal(t, -1, tn.ExperienceLevel(track))
	}
	assert.Empty(t, tn.AllowedGags())
}

func TestHealth(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")

	tn.SetMaxHP(20)
	tn.ToonUp(100)
	assert.Equal(t, 20, tn.GetHP())

	tn.TakeDamage(25)
	assert.Equal(t, 0, tn.GetHP())

	tn.ToonUp(5)
	tn.SetMaxHP(3)
	assert.Equal(t, 3, tn.GetHP())
}

func TestAddMoneyOverflowsToBank(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")

	tn.AddMoney(30)
	tn.AddMoney(30)

	assert.Equal(t, 40, tn.Money)
	assert.Equal(t, 20, tn.BankMoney)
	assert.Equal(t, 60, tn.TotalMoney())
}

func TestExperienceCaps(t *testing.T) {
	testCases := []struct {
		access   int
		expected int
	}{
		{0, 0},
		{1, 19},
		{2, 199},
		{4, 1999},
		{6, 9999},
		{7, toon.RegMaxSkill},
		{8, toon.OverflowMaxSkill},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, toon.ExperienceCapFor(tc.access), "access %d", tc.access)
	}

	tn := toon.New("toon_1", "Flippy")
	tn.AddExperience(toon.TrackThrow, 500)
	assert.Equal(t, 0, tn.GetExperience(toon.TrackThrow), "locked tracks gain nothing")

	tn.SetTrackAccessLevel(toon.TrackThrow, 3)
	tn.AddExperience(toon.TrackThrow, 5000)
	assert.Equal(t, 799, tn.GetExperience(toon.TrackThrow))
	assert.Equal(t, 2, tn.ExperienceLevel(toon.TrackThrow))

	tn.SetTrackAccessLevel(toon.TrackThrow, 1)
	assert.Equal(t, 19, tn.GetExperience(toon.TrackThrow), "lowering access clamps experience")
	assert.Equal(t, 0, tn.ExperienceLevel(toon.TrackThrow))
}

func TestInventoryLimits(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")
	tn.SetTrackAccessLevel(toon.TrackSquirt, 2)
	tn.AddExperience(toon.TrackSquirt, 100)

	require.Equal(t, 1, tn.ExperienceLevel(toon.TrackSquirt))
	assert.Equal(t, 10, tn.CarryLimit(toon.TrackSquirt, 0))
	assert.Equal(t, 5, tn.CarryLimit(toon.TrackSquirt, 1))
	assert.Equal(t, 0, tn.CarryLimit(toon.TrackSquirt, 2))

	assert.Equal(t, 0, tn.AddGag(toon.TrackSquirt, 2), "level above experience")
	assert.Equal(t, 0, tn.AddGag(toon.TrackThrow, 0), "locked track")
	assert.Equal(t, 1, tn.AddGag(toon.TrackSquirt, 1))
	assert.Equal(t, 4, tn.AddGagsToMax(toon.TrackSquirt, 1))
	assert.Equal(t, 0, tn.AddGag(toon.TrackSquirt, 1))

	tn.SetMaxCarry(8)
	assert.Equal(t, 3, tn.AddGagsToMax(toon.TrackSquirt, 0), "total carry limit")
	assert.Equal(t, 8, tn.TotalGags())

	tn.ClearGags()
	assert.Equal(t, 0, tn.TotalGags())
}

func TestRestockFillsLowLevelsFirst(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")
	tn.SetMaxCarry(25)
	for _, track := range []int{toon.TrackToonUp, toon.TrackThrow} {
		tn.SetTrackAccessLevel(track, 3)
		tn.AddExperience(track, 1000)
	}

	tn.RestockGags()

	assert.Equal(t, 25, tn.TotalGags())
	assert.Equal(t, 15, tn.GagCount(toon.TrackToonUp, 0))
	assert.Equal(t, 10, tn.GagCount(toon.TrackThrow, 0))
	assert.Equal(t, 0, tn.GagCount(toon.TrackToonUp, 1))
	assert.Len(t, tn.AllowedGags(), 6)
}

func TestAccessAndRewards(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")

	tn.AddTeleportAccess(2000)
	tn.AddTeleportAccess(2000)
	tn.AddAccessKey(100)
	assert.Equal(t, []int{2000}, tn.TeleportAccess)
	assert.True(t, tn.HasAccessKey(100))
	assert.False(t, tn.HasAccessKey(200))

	tn.SetFishingRod(9)
	assert.Equal(t, toon.MaxRodID, tn.GetFishingRod())

	tn.SetCogParts(3, 0xff)
	tn.SetCogParts(4, 0xff)
	assert.Equal(t, uint32(0xff), tn.GetCogParts(3))
	assert.Equal(t, uint32(0), tn.GetCogParts(4))

	for i := 0; i < toon.MaxNPCFriendSOS; i++ {
		require.True(t, tn.AddNPCFriend(1001))
	}
	assert.False(t, tn.AddNPCFriend(1001))

	tn.AddPinkSlips(300)
	assert.Equal(t, toon.MaxPinkSlips, tn.PinkSlips)

	assert.False(t, tn.HasWon())
	tn.MarkVictory()
	assert.True(t, tn.HasWon())
}

func TestCues(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")

	tn.BroadcastHPString("UBERFIED!", toon.Color{R: .35, G: .7, B: .35})
	tn.PlayEmote("Cry")
	tn.SendSystemMessage("hello")

	cues := tn.DrainCues()
	require.Len(t, cues, 3)
	assert.Equal(t, toon.CueHPString, cues[0].Kind)
	assert.Equal(t, .7, cues[0].Color.G)
	assert.Equal(t, toon.CueEmote, cues[1].Kind)
	assert.Empty(t, tn.PendingCues())
}

func TestCloneAndJSON(t *testing.T) {
	tn := toon.New("toon_1", "Flippy")
	tn.AddTeleportAccess(2000)
	tn.AddNPCFriend(1001)
	tn.PlayEmote("Cry")

	clone := tn.Clone()
	clone.AddTeleportAccess(1000)
	clone.AddNPCFriend(1001)

	assert.Equal(t, []int{2000}, tn.TeleportAccess)
	assert.Equal(t, 1, tn.NPCFriends[1001])
	assert.Empty(t, clone.PendingCues())

	data, err := json.Marshal(tn)
	require.NoError(t, err)

	var decoded toon.Toon
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tn.TrackBonus, decoded.TrackBonus)
	assert.Equal(t, 1, decoded.NPCFriends[1001])
	assert.Empty(t, decoded.PendingCues())
}
