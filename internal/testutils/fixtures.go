package testutils

import (
	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
)

// Toon progress stages for testing
const (
	StageFresh    = "fresh"
	StageMidGame  = "mid_game"
	StageEndGame  = "end_game"
	StageFinished = "finished"

	// TestToonName is the default toon name for test fixtures
	TestToonName = "Flippy Doodlesplat"
)

// CreateTestToon creates a brand new toon with sensible defaults
func CreateTestToon(id string) *toon.Toon {
	return toon.New(id, TestToonName)
}

// CreateTestToonAtStage creates a toon with progress matching the stage
func CreateTestToonAtStage(id, stage string) *toon.Toon {
	t := CreateTestToon(id)

	switch stage {
	case StageMidGame:
		t.SetMaxHP(45)
		t.SetMaxCarry(40)
		t.SetMaxMoney(2000)
		t.SetTrackAccessLevel(toon.TrackToonUp, 3)
		t.SetTrackAccessLevel(toon.TrackThrow, 4)
		t.SetTrackAccessLevel(toon.TrackSquirt, 4)
		t.AddExperience(toon.TrackThrow, 1500)
		t.AddExperience(toon.TrackSquirt, 900)
		t.AddTeleportAccess(2000)
		t.AddTeleportAccess(1000)
		t.RestockGags()
	case StageEndGame, StageFinished:
		t.SetMaxHP(120)
		t.SetMaxCarry(80)
		t.SetMaxMoney(10000)
		for track := 0; track < toon.NumTracks; track++ {
			t.SetTrackAccessLevel(track, 7)
			t.AddExperience(track, toon.RegMaxSkill)
		}
		t.RestockGags()
		if stage == StageFinished {
			t.MarkVictory()
		}
	}

	return t
}
