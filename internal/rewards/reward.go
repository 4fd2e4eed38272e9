// Package rewards turns items received from the randomizer into changes to
// a toon. Each variant is a small value type that knows how to apply itself
// to an Avatar and how to describe what it did.
package rewards

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

// Reward is one effect variant. The interface is sealed by validate so the
// set of variants stays closed to this package.
type Reward interface {
	// Kind returns the variant tag
	Kind() Kind

	// Apply mutates the avatar. An error means a data or programming fault
	// and the delivery must not be persisted.
	Apply(env *Env, av Avatar) error

	// Describe renders the notification header. It must not mutate
	// anything; av reflects the state after Apply.
	Describe(env *Env, av AvatarView) Text

	// validate checks parameters against the linkage tables once, when the
	// registry is built
	validate(t *tables.Tables) error
}

// Env carries the read-only collaborators a reward may consult
type Env struct {
	Tables *tables.Tables
	Roller dice.Roller
	Logger *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e == nil || e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e *Env) roller() dice.Roller {
	if e == nil || e.Roller == nil {
		return dice.DefaultRoller
	}
	return e.Roller
}

// pick returns a uniformly random index in [0, n)
func (e *Env) pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Internalf("cannot pick from %d choices", n)
	}
	roll, err := e.roller().Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return roll - 1, nil
}

// between returns a uniformly random integer in [lo, hi]
func (e *Env) between(lo, hi int) (int, error) {
	idx, err := e.pick(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + idx, nil
}

func (e *Env) requireTables() (*tables.Tables, error) {
	if e == nil || e.Tables == nil {
		return nil, errors.Internal("reward environment has no linkage tables")
	}
	return e.Tables, nil
}

// AvatarView is the read side of a toon used when rendering descriptions
type AvatarView interface {
	GetID() string
	GetTrackAccessLevel(track int) int
	GetTrackBonusLevel(track int) int
}

// Avatar is the accessor contract rewards mutate a toon through
type Avatar interface {
	AvatarView

	GetHP() int
	GetMaxHP() int
	SetMaxHP(maxHP int)
	ToonUp(amount int)
	TakeDamage(amount int)

	GetMaxCarry() int
	SetMaxCarry(maxCarry int)
	GetMaxMoney() int
	SetMaxMoney(maxMoney int)
	AddMoney(amount int)

	SetTrackAccessLevel(track, level int)
	SetTrackBonusLevel(track, bonus int)
	GetExperience(track int) int
	GetExperienceCap(track int) int
	AddExperience(track, amount int)
	GetGagSkillMultiplier() int
	SetGagSkillMultiplier(multiplier int)

	TotalGags() int
	ClearGags()
	AllowedGags() []toon.Gag
	AddGag(track, level int) int
	AddGagsToMax(track, level int) int
	RestockGags()

	GetFishingRod() int
	SetFishingRod(rod int)
	AddTeleportAccess(zone int)
	AddAccessKey(key int)
	GetCogParts(dept int) uint32
	SetCogParts(dept int, parts uint32)

	SetShoes(index int)
	SetBackpack(index int)
	SetGlasses(index int)
	SetHat(index int)

	AddNPCFriend(npcID int) bool
	AddResistanceMessage(code int)
	AddPinkSlips(count int)
	MarkVictory()

	BroadcastHPString(text string, color toon.Color)
	PlayEmote(emote string)
	PlaySound(path string)
	SendSystemMessage(text string)
}

var _ Avatar = (*toon.Toon)(nil)
