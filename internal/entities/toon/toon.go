// Package toon holds the authoritative server-side record of one player's
// toon and the gameplay rules that guard its fields.
package toon

import "slices"

// Starting values for a fresh toon
const (
	DefaultMaxHP    = 15
	DefaultMaxCarry = 20
	DefaultMaxMoney = 40

	MaxRodID            = 4
	MaxPinkSlips        = 255
	MaxNPCFriendSOS     = 7
	NumDepartments      = 4
	DefaultXPMultiplier = 1
)

// Cosmetic slot ranges, inclusive, index 0 meaning "none"
const (
	MaxShoes    = 48
	MaxBackpack = 24
	MaxGlasses  = 21
	MaxHat      = 56
)

// Toon is one player's avatar state. Fields are exported for storage; the
// reward engine goes through the methods.
type Toon struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`

	MaxCarry  int                          `json:"max_carry"`
	Inventory [NumTracks][NumGagLevels]int `json:"inventory"`

	Money     int `json:"money"`
	BankMoney int `json:"bank_money"`
	MaxMoney  int `json:"max_money"`

	TrackAccess        [NumTracks]int `json:"track_access"`
	TrackBonus         [NumTracks]int `json:"track_bonus"`
	Experience         [NumTracks]int `json:"experience"`
	GagSkillMultiplier int            `json:"gag_skill_multiplier"`

	FishingRod     int   `json:"fishing_rod"`
	TeleportAccess []int `json:"teleport_access"`
	AccessKeys     []int `json:"access_keys"`

	CogParts [NumDepartments]uint32 `json:"cog_parts"`

	Shoes    int `json:"shoes"`
	Backpack int `json:"backpack"`
	Glasses  int `json:"glasses"`
	Hat      int `json:"hat"`

	PinkSlips          int         `json:"pink_slips"`
	NPCFriends         map[int]int `json:"npc_friends"`
	ResistanceMessages map[int]int `json:"resistance_messages"`

	CheckedLocations []int `json:"checked_locations"`
	Victory          bool  `json:"victory"`

	cues []Cue
}

// New creates a toon with starting stats and no tracks unlocked
func New(id, name string) *Toon {
	t := &Toon{
		ID:                 id,
		Name:               name,
		HP:                 DefaultMaxHP,
		MaxHP:              DefaultMaxHP,
		MaxCarry:           DefaultMaxCarry,
		MaxMoney:           DefaultMaxMoney,
		GagSkillMultiplier: DefaultXPMultiplier,
		NPCFriends:         map[int]int{},
		ResistanceMessages: map[int]int{},
	}
	for track := range t.TrackBonus {
		t.TrackBonus[track] = NoBonus
	}
	return t
}

// GetID returns the toon's ID
func (t *Toon) GetID() string {
	return t.ID
}

// GetType returns the entity type for rpg-toolkit
func (t *Toon) GetType() string {
	return "toon"
}

// Clone returns a deep copy with no pending cues
func (t *Toon) Clone() *Toon {
	c := *t
	c.TeleportAccess = slices.Clone(t.TeleportAccess)
	c.AccessKeys = slices.Clone(t.AccessKeys)
	c.CheckedLocations = slices.Clone(t.CheckedLocations)
	c.NPCFriends = make(map[int]int, len(t.NPCFriends))
	for k, v := range t.NPCFriends {
		c.NPCFriends[k] = v
	}
	c.ResistanceMessages = make(map[int]int, len(t.ResistanceMessages))
	for k, v := range t.ResistanceMessages {
		c.ResistanceMessages[k] = v
	}
	c.cues = nil
	return &c
}

// Health

func (t *Toon) GetHP() int    { return t.HP }
func (t *Toon) GetMaxHP() int { return t.MaxHP }

// SetMaxHP changes max laff, pulling current laff down if it now exceeds it
func (t *Toon) SetMaxHP(maxHP int) {
	t.MaxHP = maxHP
	if t.HP > maxHP {
		t.HP = maxHP
	}
}

// ToonUp heals up to max laff
func (t *Toon) ToonUp(amount int) {
	if amount <= 0 {
		return
	}
	t.HP = min(t.HP+amount, t.MaxHP)
}

// TakeDamage lowers laff, never below zero
func (t *Toon) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	t.HP = max(t.HP-amount, 0)
}

// Capacities and currency

func (t *Toon) GetMaxCarry() int         { return t.MaxCarry }
func (t *Toon) SetMaxCarry(maxCarry int) { t.MaxCarry = maxCarry }
func (t *Toon) GetMaxMoney() int         { return t.MaxMoney }
func (t *Toon) SetMaxMoney(maxMoney int) { t.MaxMoney = maxMoney }

// AddMoney fills the jar and banks whatever does not fit
func (t *Toon) AddMoney(amount int) {
	if amount <= 0 {
		return
	}
	room := max(t.MaxMoney-t.Money, 0)
	toJar := min(amount, room)
	t.Money += toJar
	t.BankMoney += amount - toJar
}

// TotalMoney is jar plus bank
func (t *Toon) TotalMoney() int {
	return t.Money + t.BankMoney
}

// Fishing, travel and keys

func (t *Toon) GetFishingRod() int { return t.FishingRod }

// SetFishingRod sets the rod tier, clamped to the available rods
func (t *Toon) SetFishingRod(rod int) {
	t.FishingRod = max(0, min(rod, MaxRodID))
}

// AddTeleportAccess grants teleport access to a zone
func (t *Toon) AddTeleportAccess(zone int) {
	if !slices.Contains(t.TeleportAccess, zone) {
		t.TeleportAccess = append(t.TeleportAccess, zone)
	}
}

// HasTeleportAccess reports whether the toon can teleport to zone
func (t *Toon) HasTeleportAccess(zone int) bool {
	return slices.Contains(t.TeleportAccess, zone)
}

// AddAccessKey grants an access key
func (t *Toon) AddAccessKey(key int) {
	if !slices.Contains(t.AccessKeys, key) {
		t.AccessKeys = append(t.AccessKeys, key)
	}
}

// HasAccessKey reports whether the toon holds key
func (t *Toon) HasAccessKey(key int) bool {
	return slices.Contains(t.AccessKeys, key)
}

// Cog disguises

// GetCogParts returns the part bitmask for a department
func (t *Toon) GetCogParts(dept int) uint32 {
	if dept < 0 || dept >= NumDepartments {
		return 0
	}
	return t.CogParts[dept]
}

// SetCogParts replaces the part bitmask for a department
func (t *Toon) SetCogParts(dept int, parts uint32) {
	if dept < 0 || dept >= NumDepartments {
		return
	}
	t.CogParts[dept] = parts
}

// Cosmetics

func (t *Toon) SetShoes(index int)    { t.Shoes = index }
func (t *Toon) SetBackpack(index int) { t.Backpack = index }
func (t *Toon) SetGlasses(index int)  { t.Glasses = index }
func (t *Toon) SetHat(index int)      { t.Hat = index }

// Boss rewards

// AddNPCFriend adds one SOS card for npcID. It returns false when the toon
// already holds the maximum for that NPC.
func (t *Toon) AddNPCFriend(npcID int) bool {
	if t.NPCFriends == nil {
		t.NPCFriends = map[int]int{}
	}
	if t.NPCFriends[npcID] >= MaxNPCFriendSOS {
		return false
	}
	t.NPCFriends[npcID]++
	return true
}

// AddResistanceMessage adds one unite phrase, keyed by its encoded id
func (t *Toon) AddResistanceMessage(code int) {
	if t.ResistanceMessages == nil {
		t.ResistanceMessages = map[int]int{}
	}
	t.ResistanceMessages[code]++
}

// AddPinkSlips adds pink slips up to the carry limit
func (t *Toon) AddPinkSlips(count int) {
	if count <= 0 {
		return
	}
	t.PinkSlips = min(t.PinkSlips+count, MaxPinkSlips)
}

// Goal tracking

// MarkVictory records that the toon completed its goal
func (t *Toon) MarkVictory() {
	t.Victory = true
}

// HasWon reports whether the win condition has been met
func (t *Toon) HasWon() bool {
	return t.Victory
}

// AddCheckedLocation records a checked location once
func (t *Toon) AddCheckedLocation(location int) {
	if !slices.Contains(t.CheckedLocations, location) {
		t.CheckedLocations = append(t.CheckedLocations, location)
	}
}
