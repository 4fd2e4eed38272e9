package rewards

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

// LaffBoost raises max laff and heals by the same amount
type LaffBoost struct {
	Amount int
}

func (LaffBoost) Kind() Kind { return KindLaffBoost }

func (r LaffBoost) Apply(_ *Env, av Avatar) error {
	av.SetMaxHP(av.GetMaxHP() + r.Amount)
	av.ToonUp(r.Amount)
	return nil
}

func (r LaffBoost) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("Increased your\nmax laff by "),
		colored(fmt.Sprintf("+%d", r.Amount), ColorGreen),
		plain("!"),
	)
}

func (r LaffBoost) validate(_ *tables.Tables) error {
	return validateAmount(r.Amount)
}

// GagCapacity raises the gag pouch size
type GagCapacity struct {
	Amount int
}

func (GagCapacity) Kind() Kind { return KindGagCapacity }

func (r GagCapacity) Apply(_ *Env, av Avatar) error {
	av.SetMaxCarry(av.GetMaxCarry() + r.Amount)
	return nil
}

func (r GagCapacity) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("Increased your gag\npouch capacity by "),
		colored(fmt.Sprintf("+%d", r.Amount), ColorGreen),
		plain("!"),
	)
}

func (r GagCapacity) validate(_ *tables.Tables) error {
	return validateAmount(r.Amount)
}

// CurrencyCapUpgrade raises the jellybean jar size
type CurrencyCapUpgrade struct {
	Amount int
}

func (CurrencyCapUpgrade) Kind() Kind { return KindCurrencyCapUpgrade }

func (r CurrencyCapUpgrade) Apply(_ *Env, av Avatar) error {
	av.SetMaxMoney(av.GetMaxMoney() + r.Amount)
	return nil
}

func (r CurrencyCapUpgrade) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("Increased your jellybean\njar capacity by "),
		colored(fmt.Sprintf("+%d", r.Amount), ColorGreen),
		plain("!"),
	)
}

func (r CurrencyCapUpgrade) validate(_ *tables.Tables) error {
	return validateAmount(r.Amount)
}

// GagTrainingMultiplier raises the global experience multiplier
type GagTrainingMultiplier struct {
	Amount int
}

func (GagTrainingMultiplier) Kind() Kind { return KindGagTrainingMultiplier }

func (r GagTrainingMultiplier) Apply(_ *Env, av Avatar) error {
	av.SetGagSkillMultiplier(av.GetGagSkillMultiplier() + r.Amount)
	return nil
}

func (r GagTrainingMultiplier) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("Increased your global XP\nmultiplier by "),
		colored(fmt.Sprintf("+%d", r.Amount), ColorGreen),
		plain("!"),
	)
}

func (r GagTrainingMultiplier) validate(_ *tables.Tables) error {
	return validateAmount(r.Amount)
}

// FishingRodUpgrade moves the fishing rod up one tier
type FishingRodUpgrade struct{}

func (FishingRodUpgrade) Kind() Kind { return KindFishingRodUpgrade }

func (FishingRodUpgrade) Apply(_ *Env, av Avatar) error {
	av.SetFishingRod(min(av.GetFishingRod()+1, toon.MaxRodID))
	return nil
}

func (FishingRodUpgrade) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("Your "),
		colored("Fishing Rod", ColorPlum),
		plain("\nhas been upgraded!"),
	)
}

func (FishingRodUpgrade) validate(_ *tables.Tables) error { return nil }

var trackNames = [toon.NumTracks]string{
	toon.TrackToonUp: "Toon-Up",
	toon.TrackTrap:   "Trap",
	toon.TrackLure:   "Lure",
	toon.TrackSound:  "Sound",
	toon.TrackThrow:  "Throw",
	toon.TrackSquirt: "Squirt",
	toon.TrackDrop:   "Drop",
}

var trackColors = [toon.NumTracks]Color{
	toon.TrackToonUp: ColorSlateBlue,
	toon.TrackTrap:   ColorYellow,
	toon.TrackLure:   ColorGreen,
	toon.TrackSound:  ColorPlum,
	toon.TrackThrow:  ColorYellow,
	toon.TrackSquirt: ColorSlateBlue,
	toon.TrackDrop:   ColorCyan,
}

var trackIcons = [toon.NumTracks]string{
	toon.TrackToonUp: "toonup",
	toon.TrackTrap:   "trap",
	toon.TrackLure:   "lure",
	toon.TrackSound:  "sound",
	toon.TrackThrow:  "throw",
	toon.TrackSquirt: "squirt",
	toon.TrackDrop:   "drop",
}

var upper = cases.Upper(language.English)

// TrackName returns the display name of a gag track
func TrackName(track int) string {
	if !toon.ValidTrack(track) {
		return fmt.Sprintf("track %d", track)
	}
	return trackNames[track]
}

// GagTrainingFrame unlocks the next level of a gag track. Past the overflow
// level further frames make the track organic.
type GagTrainingFrame struct {
	Track int
}

func (GagTrainingFrame) Kind() Kind { return KindGagTrainingFrame }

func (r GagTrainingFrame) Apply(_ *Env, av Avatar) error {
	if !toon.ValidTrack(r.Track) {
		return errors.Internalf("invalid gag track %d", r.Track).
			WithMeta("reward", KindGagTrainingFrame.String())
	}

	newLevel := av.GetTrackAccessLevel(r.Track) + 1
	if newLevel > toon.MaxTrackAccess {
		av.SetTrackBonusLevel(r.Track, toon.OrganicBonus)
		return nil
	}

	// Unlocking overflow is not a reason to hand out gags
	wasCapped := av.GetExperience(r.Track) == av.GetExperienceCap(r.Track) &&
		newLevel != toon.OverflowUnlocked

	av.SetTrackAccessLevel(r.Track, newLevel)
	av.SetTrackBonusLevel(r.Track, toon.NoBonus)

	switch {
	case newLevel == 1:
		av.AddGagsToMax(r.Track, 0)
	case wasCapped:
		av.AddExperience(r.Track, 1)
		av.AddGagsToMax(r.Track, newLevel-1)
	}
	return nil
}

func (r GagTrainingFrame) Describe(_ *Env, av AvatarView) Text {
	if !toon.ValidTrack(r.Track) {
		return text(plain("Received a training frame!"))
	}

	level := av.GetTrackAccessLevel(r.Track)
	suffix := " experience can now overflow!"
	switch {
	case av.GetTrackBonusLevel(r.Track) == toon.OrganicBonus:
		suffix = " Gags are now organic!"
	case level <= toon.NumGagLevels:
		suffix = " Gags have more potential!"
	}

	t := text(
		plain("Received a training frame!\nYour "),
		colored(upper.String(trackNames[r.Track]), trackColors[r.Track]),
		plain(suffix),
	)
	t.Icon.Path = fmt.Sprintf("phase_14/maps/gags/%s_%d.png", trackIcons[r.Track], min(level, toon.NumGagLevels))
	return t
}

func (r GagTrainingFrame) validate(_ *tables.Tables) error {
	if !toon.ValidTrack(r.Track) {
		return errors.InvalidArgumentf("invalid gag track %d", r.Track)
	}
	return nil
}

func validateAmount(amount int) error {
	if amount <= 0 {
		return errors.InvalidArgumentf("amount must be positive, got %d", amount)
	}
	return nil
}
