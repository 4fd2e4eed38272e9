package rewards_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
)

type GrantsTestSuite struct {
	suite.Suite
	roller *scriptedRoller
	env    *rewards.Env
	toon   *toon.Toon
}

func TestGrantsSuite(t *testing.T) {
	suite.Run(t, new(GrantsTestSuite))
}

func (s *GrantsTestSuite) SetupTest() {
	s.roller = newScriptedRoller()
	s.env = newEnv(s.T(), s.roller)
	s.toon = newToon()
}

func (s *GrantsTestSuite) TestCurrencyGrantOverflowsToBank() {
	s.Require().NoError(rewards.CurrencyGrant{Amount: 250}.Apply(s.env, s.toon))

	s.Equal(toon.DefaultMaxMoney, s.toon.Money)
	s.Equal(250, s.toon.TotalMoney())
}

func (s *GrantsTestSuite) TestExperienceBundle() {
	s.toon.SetTrackAccessLevel(toon.TrackThrow, 3)
	s.toon.SetTrackAccessLevel(toon.TrackToonUp, 7)
	s.toon.SetTrackAccessLevel(toon.TrackDrop, toon.MaxTrackAccess)

	s.Require().NoError(rewards.ExperienceBundle{Percent: 15}.Apply(s.env, s.toon))

	s.Equal(120, s.toon.GetExperience(toon.TrackThrow), "ceil(799 * 0.15)")
	s.Equal(1500, s.toon.GetExperience(toon.TrackToonUp))
	s.Equal(1500, s.toon.GetExperience(toon.TrackDrop), "overflow caps count as the regular max")
	s.Equal(0, s.toon.GetExperience(toon.TrackSquirt), "locked")
}

func (s *GrantsTestSuite) TestExperienceBundleStaysUnderCap() {
	s.toon.SetTrackAccessLevel(toon.TrackThrow, 1)

	for i := 0; i < 20; i++ {
		s.Require().NoError(rewards.ExperienceBundle{Percent: 20}.Apply(s.env, s.toon))
	}

	s.Equal(19, s.toon.GetExperience(toon.TrackThrow))
}

func (s *GrantsTestSuite) TestPinkSlipsFromScript() {
	s.roller.rolls = []int{2, 1}
	r := rewards.BossRewardChoice{Choice: rewards.BossChoicePinkSlip}

	s.Require().NoError(r.Apply(s.env, s.toon))
	s.Equal(2, s.toon.PinkSlips)
	s.Require().NoError(r.Apply(s.env, s.toon))
	s.Equal(3, s.toon.PinkSlips)
	s.Equal([]int{2, 2}, s.roller.sizes)
}

func (s *GrantsTestSuite) TestPinkSlipsAlwaysWithinBounds() {
	env := newEnv(s.T(), dice.DefaultRoller)
	r := rewards.BossRewardChoice{Choice: rewards.BossChoicePinkSlip}

	for i := 0; i < 200; i++ {
		tn := newToon()
		s.Require().NoError(r.Apply(env, tn))
		s.GreaterOrEqual(tn.PinkSlips, rewards.PinkSlipMin)
		s.LessOrEqual(tn.PinkSlips, rewards.PinkSlipMax)
	}
}

func (s *GrantsTestSuite) TestSOSPicksEligibleFriend() {
	s.roller.rolls = []int{2}

	s.Require().NoError(rewards.BossRewardChoice{Choice: rewards.BossChoiceSOS}.Apply(s.env, s.toon))

	eligible := s.env.Tables.NPCFriendsByStars(3, 4)
	s.Equal([]int{len(eligible)}, s.roller.sizes)
	s.Equal(1, s.toon.NPCFriends[eligible[1].ID])
	s.Len(s.toon.NPCFriends, 1)
}

func (s *GrantsTestSuite) TestUnitePicksCategoryThenItem() {
	s.roller.rolls = []int{2, 3}

	s.Require().NoError(rewards.BossRewardChoice{Choice: rewards.BossChoiceUnite}.Apply(s.env, s.toon))

	s.Equal(map[int]int{102: 1}, s.toon.ResistanceMessages)
	s.Equal([]int{2, 8}, s.roller.sizes)
}

func (s *GrantsTestSuite) TestUnknownBossChoice() {
	s.Error(rewards.BossRewardChoice{Choice: 7}.Apply(s.env, s.toon))
}

func (s *GrantsTestSuite) TestProofOfDefeatChangesNothing() {
	before := s.toon.Clone()

	s.Require().NoError(rewards.ProofOfDefeat{Proof: rewards.ProofLawbotBossFirstTime}.Apply(s.env, s.toon))

	s.Equal(before, s.toon.Clone())
	s.Equal("Proof Obtained!\nFirst CJ Defeated",
		rewards.ProofOfDefeat{Proof: rewards.ProofLawbotBossFirstTime}.Describe(s.env, s.toon).Plain())
}

func (s *GrantsTestSuite) TestVictory() {
	s.Require().NoError(rewards.Victory{}.Apply(s.env, s.toon))
	s.True(s.toon.HasWon())
}

func (s *GrantsTestSuite) TestUndefinedOnlyReports() {
	before := s.toon.Clone()

	s.Require().NoError(rewards.Undefined{Descriptor: "Mystery Box"}.Apply(s.env, s.toon))

	cues := s.toon.DrainCues()
	s.Require().Len(cues, 1)
	s.Equal(toon.CueSystemMessage, cues[0].Kind)
	s.Equal("Unknown AP reward: Mystery Box", cues[0].Text)
	s.Equal(before, s.toon.Clone())
}

func (s *GrantsTestSuite) TestIgnore() {
	before := s.toon.Clone()
	s.Require().NoError(rewards.Ignore{}.Apply(s.env, s.toon))
	s.Equal(before, s.toon.Clone())
	s.Empty(s.toon.PendingCues())
}
