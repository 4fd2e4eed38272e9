package rewards

import (
	"fmt"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

// CurrencyGrant adds jellybeans
type CurrencyGrant struct {
	Amount int
}

func (CurrencyGrant) Kind() Kind { return KindCurrencyGrant }

func (r CurrencyGrant) Apply(_ *Env, av Avatar) error {
	av.AddMoney(r.Amount)
	return nil
}

func (r CurrencyGrant) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("You were given\n"),
		colored(fmt.Sprintf("+%d jellybeans", r.Amount), ColorCyan),
		plain("!"),
	)
}

func (r CurrencyGrant) validate(_ *tables.Tables) error {
	return validateAmount(r.Amount)
}

// ExperienceBundle fills a percentage of every track's experience cap
type ExperienceBundle struct {
	Percent int
}

func (ExperienceBundle) Kind() Kind { return KindExperienceBundle }

func (r ExperienceBundle) Apply(_ *Env, av Avatar) error {
	for track := 0; track < toon.NumTracks; track++ {
		limit := min(av.GetExperienceCap(track), toon.RegMaxSkill)
		av.AddExperience(track, ceilPercent(limit, r.Percent))
	}
	return nil
}

func (r ExperienceBundle) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("You were given a fill of\n"),
		colored(fmt.Sprintf("%d%% experience", r.Percent), ColorCyan),
		plain(" in each Gag Track!"),
	)
}

func (r ExperienceBundle) validate(_ *tables.Tables) error {
	if r.Percent <= 0 || r.Percent > 100 {
		return errors.InvalidArgumentf("percent must be within 1..100, got %d", r.Percent)
	}
	return nil
}

// ceilPercent returns ceil(value * percent / 100) without floating point
func ceilPercent(value, percent int) int {
	if value <= 0 || percent <= 0 {
		return 0
	}
	return (value*percent + 99) / 100
}

// BossChoice selects which random boss reward is granted
type BossChoice int

const (
	BossChoiceSOS BossChoice = iota
	BossChoiceUnite
	BossChoicePinkSlip
)

func (c BossChoice) String() string {
	switch c {
	case BossChoiceSOS:
		return "SOS Card"
	case BossChoiceUnite:
		return "Unite"
	case BossChoicePinkSlip:
		return "amount of Pink Slips"
	default:
		return fmt.Sprintf("boss reward %d", int(c))
	}
}

// Pink slip rewards grant between these many slips, inclusive
const (
	PinkSlipMin = 1
	PinkSlipMax = 2
)

// BossRewardChoice grants a random SOS card, unite or pink slips
type BossRewardChoice struct {
	Choice BossChoice
}

func (BossRewardChoice) Kind() Kind { return KindBossRewardChoice }

func (r BossRewardChoice) Apply(env *Env, av Avatar) error {
	switch r.Choice {
	case BossChoiceSOS:
		return r.grantSOS(env, av)
	case BossChoiceUnite:
		return r.grantUnite(env, av)
	case BossChoicePinkSlip:
		slips, err := env.between(PinkSlipMin, PinkSlipMax)
		if err != nil {
			return err
		}
		av.AddPinkSlips(slips)
		return nil
	default:
		return errors.Internalf("unknown boss reward choice %d", int(r.Choice)).
			WithMeta("reward", KindBossRewardChoice.String())
	}
}

func (r BossRewardChoice) grantSOS(env *Env, av Avatar) error {
	t, err := env.requireTables()
	if err != nil {
		return err
	}
	friends := t.NPCFriendsByStars(tables.SOSMinStars, tables.SOSMaxStars)
	idx, err := env.pick(len(friends))
	if err != nil {
		return err
	}
	if !av.AddNPCFriend(friends[idx].ID) {
		env.logger().Info("SOS card not added, roster full",
			"avatar_id", av.GetID(),
			"npc_id", friends[idx].ID)
	}
	return nil
}

func (r BossRewardChoice) grantUnite(env *Env, av Avatar) error {
	t, err := env.requireTables()
	if err != nil {
		return err
	}
	categories := t.UniteCategories()
	c, err := env.pick(len(categories))
	if err != nil {
		return err
	}
	category := categories[c]
	i, err := env.pick(len(category.Items))
	if err != nil {
		return err
	}
	av.AddResistanceMessage(tables.EncodeUnite(category.ID, category.Items[i]))
	return nil
}

func (r BossRewardChoice) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("You were given a\nrandom "),
		colored(r.Choice.String(), ColorCyan),
		plain("!"),
	)
}

func (r BossRewardChoice) validate(t *tables.Tables) error {
	switch r.Choice {
	case BossChoiceSOS:
		if len(t.NPCFriendsByStars(tables.SOSMinStars, tables.SOSMaxStars)) == 0 {
			return errors.InvalidArgument("no NPC friends eligible for SOS rewards")
		}
	case BossChoiceUnite:
		if len(t.UniteCategories()) == 0 {
			return errors.InvalidArgument("no unite categories")
		}
	case BossChoicePinkSlip:
	default:
		return errors.InvalidArgumentf("unknown boss reward choice %d", int(r.Choice))
	}
	return nil
}

// Proof is a boss milestone
type Proof int

const (
	ProofSellbotBossFirstTime Proof = iota
	ProofCashbotBossFirstTime
	ProofLawbotBossFirstTime
	ProofBossbotBossFirstTime
)

func (p Proof) String() string {
	switch p {
	case ProofSellbotBossFirstTime:
		return "First VP Defeated"
	case ProofCashbotBossFirstTime:
		return "First CFO Defeated"
	case ProofLawbotBossFirstTime:
		return "First CJ Defeated"
	case ProofBossbotBossFirstTime:
		return "First CEO Defeated"
	default:
		return fmt.Sprintf("Unknown Proof (%d)", int(p))
	}
}

// ProofOfDefeat marks a boss milestone. Milestones are not tracked yet, so
// applying one only logs it.
type ProofOfDefeat struct {
	Proof Proof
}

func (ProofOfDefeat) Kind() Kind { return KindProofOfDefeat }

func (r ProofOfDefeat) Apply(env *Env, av Avatar) error {
	env.logger().Info("proof of defeat received, milestone tracking not wired",
		"avatar_id", av.GetID(),
		"proof", r.Proof.String())
	return nil
}

func (r ProofOfDefeat) Describe(_ *Env, _ AvatarView) Text {
	return text(
		colored("Proof Obtained!\n", ColorGreen),
		plain(r.Proof.String()),
	)
}

func (r ProofOfDefeat) validate(_ *tables.Tables) error {
	if r.Proof < ProofSellbotBossFirstTime || r.Proof > ProofBossbotBossFirstTime {
		return errors.InvalidArgumentf("unknown proof %d", int(r.Proof))
	}
	return nil
}

// Victory marks the toon's run as complete
type Victory struct{}

func (Victory) Kind() Kind { return KindVictory }

func (Victory) Apply(_ *Env, av Avatar) error {
	av.MarkVictory()
	return nil
}

func (Victory) Describe(_ *Env, _ AvatarView) Text {
	return text(
		colored("VICTORY!\n", ColorGreen),
		plain("You have completed your goal!"),
	)
}

func (Victory) validate(_ *tables.Tables) error { return nil }

// Undefined stands in for an item the registry could not resolve. It leaves
// the toon untouched and tells the player about the unknown item.
type Undefined struct {
	Descriptor string
}

func (Undefined) Kind() Kind { return KindUndefined }

func (r Undefined) Apply(env *Env, av Avatar) error {
	env.logger().Warn("unresolved reward",
		"avatar_id", av.GetID(),
		"descriptor", r.Descriptor)
	av.SendSystemMessage("Unknown AP reward: " + r.Descriptor)
	return nil
}

func (r Undefined) Describe(_ *Env, _ AvatarView) Text {
	return text(
		plain("Received an unknown item!\n"),
		colored(r.Descriptor, ColorSalmon),
	)
}

func (Undefined) validate(_ *tables.Tables) error { return nil }

// Ignore is an item with no server-side effect
type Ignore struct{}

func (Ignore) Kind() Kind { return KindIgnore }

func (Ignore) Apply(_ *Env, _ Avatar) error { return nil }

func (Ignore) Describe(_ *Env, _ AvatarView) Text {
	return text(plain("You received an item!"))
}

func (Ignore) validate(_ *tables.Tables) error { return nil }
