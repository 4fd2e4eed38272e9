package rewards

import (
	"slices"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

// Emotes played by traps
const (
	EmoteCry      = "Cry"
	EmoteSurprise = "Surprise"
	EmoteConfused = "Confused"
)

// DripSound plays when a drip trap fires
const DripSound = "phase_4/audio/sfx/avatar_emotion_drip.ogg"

// UberTrapHP is the laff an uber trap leaves a healthy toon with
const UberTrapHP = 15

// UberTrap knocks laff down to 15, or 1 if already at or below 15, then
// restocks every gag
type UberTrap struct{}

func (UberTrap) Kind() Kind { return KindUberTrap }

func (UberTrap) Apply(_ *Env, av Avatar) error {
	hp := av.GetHP()
	target := 1
	if hp > UberTrapHP {
		target = UberTrapHP
	}
	if hp > 0 {
		av.TakeDamage(hp - target)
	}
	av.RestockGags()

	av.BroadcastHPString("UBERFIED!", toon.Color{R: .35, G: .7, B: .35})
	av.PlayEmote(EmoteCry)
	return nil
}

func (UberTrap) Describe(_ *Env, _ AvatarView) Text {
	return text(
		colored("UBER TRAP\n", ColorSalmon),
		plain("Don't get hit!"),
	)
}

func (UberTrap) validate(_ *tables.Tables) error { return nil }

// DripTrap randomises the toon's clothing accessories
type DripTrap struct{}

func (DripTrap) Kind() Kind { return KindDripTrap }

func (DripTrap) Apply(env *Env, av Avatar) error {
	av.PlaySound(DripSound)

	slots := []struct {
		max int
		set func(int)
	}{
		{toon.MaxShoes, av.SetShoes},
		{toon.MaxBackpack, av.SetBackpack},
		{toon.MaxGlasses, av.SetGlasses},
		{toon.MaxHat, av.SetHat},
	}
	for _, slot := range slots {
		index, err := env.between(1, slot.max)
		if err != nil {
			return err
		}
		slot.set(index)
	}

	av.BroadcastHPString("FASHION STATEMENT!", toon.Color{R: .9, G: .8, B: .2})
	av.PlayEmote(EmoteSurprise)
	return nil
}

func (DripTrap) Describe(_ *Env, _ AvatarView) Text {
	return text(
		colored("DRIP TRAP\n", ColorSalmon),
		plain("Did someone say the door to drip?"),
	)
}

func (DripTrap) validate(_ *tables.Tables) error { return nil }

// GagShuffleTrap empties the gag pouch and refills it with as many random
// allowed gags as it held before. Each draw either adds one gag or drops
// that gag from the pool, so the refill takes at most that many draws.
type GagShuffleTrap struct{}

func (GagShuffleTrap) Kind() Kind { return KindGagShuffleTrap }

func (GagShuffleTrap) Apply(env *Env, av Avatar) error {
	target := av.TotalGags()
	pool := slices.Clone(av.AllowedGags())
	av.ClearGags()

	for i := 0; i < target && len(pool) > 0; i++ {
		idx, err := env.pick(len(pool))
		if err != nil {
			return err
		}
		gag := pool[idx]
		if av.AddGag(gag.Track, gag.Level) <= 0 {
			pool = slices.Delete(pool, idx, idx+1)
		}
	}

	av.BroadcastHPString("GAG SHUFFLE!", toon.Color{R: .3, G: .5, B: .8})
	av.PlayEmote(EmoteConfused)
	return nil
}

func (GagShuffleTrap) Describe(_ *Env, _ AvatarView) Text {
	return text(
		colored("GAG SHUFFLE TRAP\n", ColorSalmon),
		plain("Got gags?"),
	)
}

func (GagShuffleTrap) validate(_ *tables.Tables) error { return nil }
