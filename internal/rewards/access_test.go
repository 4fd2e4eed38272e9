package rewards_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
)

type AccessTestSuite struct {
	suite.Suite
	env  *rewards.Env
	toon *toon.Toon
}

func TestAccessSuite(t *testing.T) {
	suite.Run(t, new(AccessTestSuite))
}

func (s *AccessTestSuite) SetupTest() {
	s.env = newEnv(s.T(), newScriptedRoller())
	s.toon = newToon()
}

func (s *AccessTestSuite) TestTeleportAccessGrantsLinkedZones() {
	s.Require().NoError(rewards.TeleportAccess{Zone: rewards.ZoneAcornAcres}.Apply(s.env, s.toon))

	s.True(s.toon.HasTeleportAccess(rewards.ZoneAcornAcres))
	s.True(s.toon.HasTeleportAccess(rewards.ZoneGolf))
	s.Len(s.toon.TeleportAccess, 2)
}

func (s *AccessTestSuite) TestTeleportAccessPlainZone() {
	r := rewards.TeleportAccess{Zone: rewards.ZoneToontownCentral}
	s.Require().NoError(r.Apply(s.env, s.toon))
	s.Require().NoError(r.Apply(s.env, s.toon))

	s.Equal([]int{rewards.ZoneToontownCentral}, s.toon.TeleportAccess)
	s.Equal("You can now teleport\nto Toontown Central!", r.Describe(s.env, s.toon).Plain())
}

func (s *AccessTestSuite) TestKeys() {
	testCases := []struct {
		name   string
		reward rewards.Reward
		key    int
	}{
		{"task access", rewards.TaskAccess{Zone: rewards.ZoneDonaldsDock}, 101},
		{"fishing license", rewards.FishingLicense{Zone: rewards.ZoneDonaldsDreamland}, 205},
		{"facility", rewards.FacilityAccess{Key: rewards.FacilityBullionMint}, rewards.FacilityBullionMint},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(tc.reward.Apply(s.env, s.toon))
			s.True(s.toon.HasAccessKey(tc.key))
		})
	}
}

func (s *AccessTestSuite) TestMissingTableEntryIsInternal() {
	testCases := []struct {
		name   string
		reward rewards.Reward
	}{
		{"task access for an HQ", rewards.TaskAccess{Zone: rewards.ZoneSellbotHQ}},
		{"fishing license for an unknown zone", rewards.FishingLicense{Zone: 7777}},
		{"teleport to an unknown zone", rewards.TeleportAccess{Zone: 7777}},
		{"unknown facility", rewards.FacilityAccess{Key: 99}},
		{"unknown department", rewards.CogDisguise{Department: 9}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.reward.Apply(s.env, s.toon)
			s.Require().Error(err)
			s.True(errors.IsInternal(err))
			s.Equal(tc.reward.Kind().String(), errors.GetMeta(err)["reward"])
		})
	}

	s.Empty(s.toon.AccessKeys)
	s.Empty(s.toon.TeleportAccess)
}

func (s *AccessTestSuite) TestMissingTablesIsInternal() {
	err := rewards.TaskAccess{Zone: rewards.ZoneToontownCentral}.Apply(&rewards.Env{}, s.toon)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *AccessTestSuite) TestCogDisguiseMergesMask() {
	s.toon.SetCogParts(rewards.DepartmentSellbot, 1<<20)
	r := rewards.CogDisguise{Department: rewards.DepartmentSellbot}

	s.Require().NoError(r.Apply(s.env, s.toon))
	s.Require().NoError(r.Apply(s.env, s.toon))

	s.Equal(uint32(56339|1<<20), s.toon.GetCogParts(rewards.DepartmentSellbot))
	s.Equal(uint32(0), s.toon.GetCogParts(rewards.DepartmentBossbot))
	s.Equal("You were given\nyour Sellbot Disguise!", r.Describe(s.env, s.toon).Plain())
}

func (s *AccessTestSuite) TestDescribeUnknownFacility() {
	text := rewards.FacilityAccess{Key: 99}.Describe(s.env, s.toon)
	s.Equal("You may now infiltrate\nthe UNKNOWN-KEY[99] facility!", text.Plain())
}
