package toon

// GetTrackAccessLevel returns the access level of a track, 0 if locked
func (t *Toon) GetTrackAccessLevel(track int) int {
	if !ValidTrack(track) {
		return 0
	}
	return t.TrackAccess[track]
}

// SetTrackAccessLevel sets a track's access level and pulls experience down
// to the new cap
func (t *Toon) SetTrackAccessLevel(track, level int) {
	if !ValidTrack(track) {
		return
	}
	t.TrackAccess[track] = max(0, min(level, MaxTrackAccess))
	t.Experience[track] = min(t.Experience[track], t.GetExperienceCap(track))
}

// GetTrackBonusLevel returns the organic bonus level of a track
func (t *Toon) GetTrackBonusLevel(track int) int {
	if !ValidTrack(track) {
		return NoBonus
	}
	return t.TrackBonus[track]
}

// SetTrackBonusLevel sets the organic bonus level of a track
func (t *Toon) SetTrackBonusLevel(track, bonus int) {
	if !ValidTrack(track) {
		return
	}
	t.TrackBonus[track] = bonus
}

// GetExperience returns experience on a track
func (t *Toon) GetExperience(track int) int {
	if !ValidTrack(track) {
		return 0
	}
	return t.Experience[track]
}

// GetExperienceCap returns the experience ceiling for a track at its
// current access level
func (t *Toon) GetExperienceCap(track int) int {
	if !ValidTrack(track) {
		return 0
	}
	return ExperienceCapFor(t.TrackAccess[track])
}

// AddExperience adds experience on a track up to its cap
func (t *Toon) AddExperience(track, amount int) {
	if !ValidTrack(track) || amount <= 0 {
		return
	}
	t.Experience[track] = min(t.Experience[track]+amount, t.GetExperienceCap(track))
}

// ExperienceLevel returns the highest gag level usable on a track, or -1
// when the track is locked
func (t *Toon) ExperienceLevel(track int) int {
	access := t.GetTrackAccessLevel(track)
	if access == 0 {
		return -1
	}
	exp := t.Experience[track]
	level := 0
	for i := NumGagLevels - 1; i >= 0; i-- {
		if exp >= Levels[i] {
			level = i
			break
		}
	}
	return min(level, access-1, NumGagLevels-1)
}

// GetGagSkillMultiplier returns the experience multiplier
func (t *Toon) GetGagSkillMultiplier() int { return t.GagSkillMultiplier }

// SetGagSkillMultiplier sets the experience multiplier
func (t *Toon) SetGagSkillMultiplier(multiplier int) { t.GagSkillMultiplier = multiplier }

// CarryLimit returns how many of a gag the toon may hold right now
func (t *Toon) CarryLimit(track, level int) int {
	if !ValidGag(track, level) {
		return 0
	}
	expLevel := t.ExperienceLevel(track)
	if expLevel < 0 || level > expLevel {
		return 0
	}
	return CarryLimits[expLevel][level]
}

// GagCount returns how many of a gag the toon holds
func (t *Toon) GagCount(track, level int) int {
	if !ValidGag(track, level) {
		return 0
	}
	return t.Inventory[track][level]
}

// TotalGags counts every gag held
func (t *Toon) TotalGags() int {
	total := 0
	for track := range t.Inventory {
		for _, n := range t.Inventory[track] {
			total += n
		}
	}
	return total
}

// ClearGags empties the inventory
func (t *Toon) ClearGags() {
	t.Inventory = [NumTracks][NumGagLevels]int{}
}

// AllowedGags lists every gag the toon may currently carry
func (t *Toon) AllowedGags() []Gag {
	var gags []Gag
	for track := 0; track < NumTracks; track++ {
		for level := 0; level <= t.ExperienceLevel(track); level++ {
			gags = append(gags, Gag{Track: track, Level: level})
		}
	}
	return gags
}

// AddGag adds one gag if both the slot limit and the total carry limit
// allow it. It returns the number added, 0 or 1.
func (t *Toon) AddGag(track, level int) int {
	if t.room(track, level) <= 0 {
		return 0
	}
	t.Inventory[track][level]++
	return 1
}

// AddGagsToMax fills one slot as far as the limits allow and returns the
// number added
func (t *Toon) AddGagsToMax(track, level int) int {
	n := t.room(track, level)
	if n <= 0 {
		return 0
	}
	t.Inventory[track][level] += n
	return n
}

// RestockGags fills every allowed slot, lowest gag levels first
func (t *Toon) RestockGags() {
	for level := 0; level < NumGagLevels; level++ {
		for track := 0; track < NumTracks; track++ {
			t.AddGagsToMax(track, level)
		}
	}
}

func (t *Toon) room(track, level int) int {
	if !ValidGag(track, level) {
		return 0
	}
	slot := t.CarryLimit(track, level) - t.Inventory[track][level]
	total := t.MaxCarry - t.TotalGags()
	return min(slot, total)
}
