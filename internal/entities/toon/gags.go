package toon

// Gag tracks
const (
	TrackToonUp = 0
	TrackTrap   = 1
	TrackLure   = 2
	TrackSound  = 3
	TrackThrow  = 4
	TrackSquirt = 5
	TrackDrop   = 6

	NumTracks = 7
)

// Track access ladder. Access level N unlocks gag levels 0..N-1; the last
// step past the seventh gag unlocks experience overflow.
const (
	NumGagLevels     = 7
	MaxTrackAccess   = 8
	OverflowUnlocked = MaxTrackAccess
)

// Track bonus markers
const (
	NoBonus      = -1
	OrganicBonus = 7
)

// Experience limits
const (
	RegMaxSkill      = 10000
	OverflowMaxSkill = 15000
)

// Levels holds the experience needed to use each gag level
var Levels = [NumGagLevels]int{0, 20, 200, 800, 2000, 6000, 10000}

// CarryLimits[expLevel][gagLevel] is the most of one gag a toon can hold
// given the highest gag level its experience has reached on that track.
var CarryLimits = [NumGagLevels][NumGagLevels]int{
	{10, 0, 0, 0, 0, 0, 0},
	{10, 5, 0, 0, 0, 0, 0},
	{15, 10, 5, 0, 0, 0, 0},
	{20, 15, 10, 5, 0, 0, 0},
	{25, 20, 15, 10, 3, 0, 0},
	{30, 25, 20, 15, 7, 3, 0},
	{30, 25, 20, 15, 7, 3, 1},
}

// Gag identifies one (track, level) slot of the inventory
type Gag struct {
	Track int `json:"track"`
	Level int `json:"level"`
}

// ValidTrack reports whether track names one of the seven gag tracks
func ValidTrack(track int) bool {
	return track >= 0 && track < NumTracks
}

// ValidGag reports whether the slot exists in the inventory grid
func ValidGag(track, level int) bool {
	return ValidTrack(track) && level >= 0 && level < NumGagLevels
}

// ExperienceCapFor returns the experience ceiling for a track at the given
// access level. Below level 7 the cap sits one point short of the next gag.
func ExperienceCapFor(accessLevel int) int {
	switch {
	case accessLevel <= 0:
		return 0
	case accessLevel < NumGagLevels:
		return Levels[accessLevel] - 1
	case accessLevel == NumGagLevels:
		return RegMaxSkill
	default:
		return OverflowMaxSkill
	}
}
