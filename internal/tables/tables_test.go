package tables_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

type TablesTestSuite struct {
	suite.Suite
	tables *tables.Tables
}

func TestTablesSuite(t *testing.T) {
	suite.Run(t, new(TablesTestSuite))
}

func (s *TablesTestSuite) SetupTest() {
	var err error
	s.tables, err = tables.Default()
	s.Require().NoError(err)
}

func (s *TablesTestSuite) TestZones() {
	zone, ok := s.tables.Zone(2000)
	s.Require().True(ok)
	s.Equal("Toontown Central", zone.Name)

	s.Equal([]int{17000}, s.tables.LinkedZones(6000))
	s.Empty(s.tables.LinkedZones(2000))
	s.Len(s.tables.ZoneIDs(), 13)

	golf, ok := s.tables.Zone(17000)
	s.Require().True(ok, "linked zones must resolve")
	s.Equal("Chip 'n Dale's MiniGolf", golf.Name)

	_, ok = s.tables.Zone(7000)
	s.False(ok)
}

func (s *TablesTestSuite) TestKeys() {
	key, ok := s.tables.TaskKey(2000)
	s.True(ok)
	s.Equal(100, key)

	key, ok = s.tables.FishingKey(9000)
	s.True(ok)
	s.Equal(205, key)

	_, ok = s.tables.TaskKey(11000)
	s.False(ok, "HQs have no task key")

	facility, ok := s.tables.Facility(22)
	s.True(ok)
	s.Equal("Coin Mint", facility.Name)
}

func (s *TablesTestSuite) TestDepartmentsAndRewards() {
	for id := 0; id < 4; id++ {
		dept, ok := s.tables.Department(id)
		s.Require().True(ok)
		s.NotZero(dept.PartsMask)
	}

	for _, friend := range s.tables.NPCFriendsByStars(tables.SOSMinStars, tables.SOSMaxStars) {
		s.GreaterOrEqual(friend.Stars, 3)
		s.LessOrEqual(friend.Stars, 4)
	}

	categories := s.tables.UniteCategories()
	s.Len(categories, 2)
	s.Equal(104, tables.EncodeUnite(1, 4))
}

func (s *TablesTestSuite) TestParseRejects() {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			name: "missing sections",
			yaml: "zones: []\n",
		},
		{
			name: "unknown zone field",
			yaml: validWith("  - id: 1\n    name: Nowhere\n    colour: red\n", ""),
		},
		{
			name: "duplicate zone",
			yaml: validWith("  - id: 1\n    name: A\n  - id: 1\n    name: B\n", ""),
		},
		{
			name: "link to unknown zone",
			yaml: validWith("  - id: 1\n    name: A\n    linked: [17000]\n", ""),
		},
		{
			name: "self link",
			yaml: validWith("  - id: 1\n    name: A\n    linked: [1]\n", ""),
		},
		{
			name: "no SOS candidates",
			yaml: validWith("  - id: 1\n    name: A\n", "  - id: 1\n    name: Low\n    stars: 1\n"),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := tables.Parse([]byte(tc.yaml))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *TablesTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "tables.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(validWith("  - id: 1\n    name: A\n", "")), 0o600))

	t, err := tables.LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]int{1}, t.ZoneIDs())

	_, err = tables.LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}

// validWith builds a minimal tables document around the given zone and
// NPC friend entries
func validWith(zones, friends string) string {
	if friends == "" {
		friends = "  - id: 1\n    name: Helper\n    stars: 3\n"
	}
	return "zones:\n" + zones +
		"facilities: []\n" +
		"departments:\n" +
		"  - {id: 0, name: Bossbot, parts_mask: 1}\n" +
		"  - {id: 1, name: Lawbot, parts_mask: 1}\n" +
		"  - {id: 2, name: Cashbot, parts_mask: 1}\n" +
		"  - {id: 3, name: Sellbot, parts_mask: 1}\n" +
		"npc_friends:\n" + friends +
		"unite_categories:\n" +
		"  - {id: 0, name: Toon-Up, items: [0]}\n"
}
