// Package tables holds the read-only linkage data rewards are parameterised
// against: zones and their links and keys, facility keys, disguise masks,
// NPC friends and unite phrases.
package tables

import (
	_ "embed"
	"os"
	"slices"
	"sort"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/datafile"
)

//go:embed data/tables.yaml
var defaultTables []byte

//go:embed data/tables.schema.json
var tablesSchema string

// Zone is a playground or HQ a teleport, task or fishing reward can target
type Zone struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Linked     []int  `yaml:"linked"`
	TaskKey    *int   `yaml:"task_key"`
	FishingKey *int   `yaml:"fishing_key"`
}

// Facility is a cog facility gated by an access key
type Facility struct {
	Key  int    `yaml:"key"`
	Name string `yaml:"name"`
}

// Department is a cog department and its complete disguise
type Department struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	PartsMask uint32 `yaml:"parts_mask"`
}

// NPCFriend is an SOS card candidate
type NPCFriend struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Stars int    `yaml:"stars"`
}

// UniteCategory is one menu of unite phrases
type UniteCategory struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Items []int  `yaml:"items"`
}

type file struct {
	Zones           []Zone          `yaml:"zones"`
	Facilities      []Facility      `yaml:"facilities"`
	Departments     []Department    `yaml:"departments"`
	NPCFriends      []NPCFriend     `yaml:"npc_friends"`
	UniteCategories []UniteCategory `yaml:"unite_categories"`
}

// Tables is the immutable, indexed form of the data file. All methods are
// safe for concurrent use.
type Tables struct {
	zones           map[int]Zone
	facilities      map[int]Facility
	departments     map[int]Department
	npcFriends      []NPCFriend
	uniteCategories []UniteCategory
}

// Default loads the embedded tables
func Default() (*Tables, error) {
	return Parse(defaultTables)
}

// LoadFile loads tables from a YAML file on disk
func LoadFile(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tables file %s", path)
	}
	return Parse(raw)
}

// Parse validates raw YAML against the tables schema, then checks the
// cross-references the schema cannot express
func Parse(raw []byte) (*Tables, error) {
	schema, err := datafile.CompileSchema("tables.schema.json", tablesSchema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile tables schema")
	}

	var f file
	if err := schema.Decode(raw, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid tables")
	}

	t := &Tables{
		zones:           make(map[int]Zone, len(f.Zones)),
		facilities:      make(map[int]Facility, len(f.Facilities)),
		departments:     make(map[int]Department, len(f.Departments)),
		npcFriends:      f.NPCFriends,
		uniteCategories: f.UniteCategories,
	}

	vb := errors.NewValidationBuilder()
	for _, z := range f.Zones {
		if _, dup := t.zones[z.ID]; dup {
			vb.Fieldf("zones", "duplicate zone %d", z.ID)
		}
		t.zones[z.ID] = z
	}
	for _, z := range f.Zones {
		for _, linked := range z.Linked {
			if linked == z.ID {
				vb.Fieldf("zones", "zone %d links to itself", z.ID)
			} else if _, ok := t.zones[linked]; !ok {
				vb.Fieldf("zones", "zone %d links to unknown zone %d", z.ID, linked)
			}
		}
	}
	for _, fac := range f.Facilities {
		if _, dup := t.facilities[fac.Key]; dup {
			vb.Fieldf("facilities", "duplicate facility key %d", fac.Key)
		}
		t.facilities[fac.Key] = fac
	}
	for _, d := range f.Departments {
		if _, dup := t.departments[d.ID]; dup {
			vb.Fieldf("departments", "duplicate department %d", d.ID)
		}
		t.departments[d.ID] = d
	}
	seenCategories := map[int]bool{}
	for _, c := range f.UniteCategories {
		if seenCategories[c.ID] {
			vb.Fieldf("unite_categories", "duplicate category %d", c.ID)
		}
		seenCategories[c.ID] = true
	}
	if len(t.NPCFriendsByStars(SOSMinStars, SOSMaxStars)) == 0 {
		vb.InvalidField("npc_friends", "no NPC friends eligible for SOS rewards")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid tables")
	}

	return t, nil
}

// SOS rewards draw from NPC friends in this star range
const (
	SOSMinStars = 3
	SOSMaxStars = 4
)

// Zone looks up a zone by id
func (t *Tables) Zone(id int) (Zone, bool) {
	z, ok := t.zones[id]
	return z, ok
}

// ZoneIDs returns every zone id in ascending order
func (t *Tables) ZoneIDs() []int {
	ids := make([]int, 0, len(t.zones))
	for id := range t.zones {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LinkedZones returns the zones unlocked together with zone
func (t *Tables) LinkedZones(zone int) []int {
	return slices.Clone(t.zones[zone].Linked)
}

// TaskKey returns the task access key for a playground
func (t *Tables) TaskKey(zone int) (int, bool) {
	z, ok := t.zones[zone]
	if !ok || z.TaskKey == nil {
		return 0, false
	}
	return *z.TaskKey, true
}

// FishingKey returns the fishing license key for a playground
func (t *Tables) FishingKey(zone int) (int, bool) {
	z, ok := t.zones[zone]
	if !ok || z.FishingKey == nil {
		return 0, false
	}
	return *z.FishingKey, true
}

// Facility looks up a facility by its access key
func (t *Tables) Facility(key int) (Facility, bool) {
	f, ok := t.facilities[key]
	return f, ok
}

// Department looks up a cog department
func (t *Tables) Department(id int) (Department, bool) {
	d, ok := t.departments[id]
	return d, ok
}

// NPCFriendsByStars returns NPC friends rated within [minStars, maxStars],
// in file order
func (t *Tables) NPCFriendsByStars(minStars, maxStars int) []NPCFriend {
	var out []NPCFriend
	for _, n := range t.npcFriends {
		if n.Stars >= minStars && n.Stars <= maxStars {
			out = append(out, n)
		}
	}
	return out
}

// UniteCategories returns the unite phrase menus in file order
func (t *Tables) UniteCategories() []UniteCategory {
	return slices.Clone(t.uniteCategories)
}

// EncodeUnite packs a category and item into a resistance message id
func EncodeUnite(category, item int) int {
	return category*100 + item
}
