package rewards

// Kind tags a reward variant. The set is closed: every Kind has exactly one
// struct in this package.
type Kind int

const (
	KindUndefined Kind = iota
	KindIgnore
	KindLaffBoost
	KindGagCapacity
	KindCurrencyCapUpgrade
	KindGagTrainingFrame
	KindGagTrainingMultiplier
	KindFishingRodUpgrade
	KindTeleportAccess
	KindTaskAccess
	KindFishingLicense
	KindFacilityAccess
	KindCogDisguise
	KindCurrencyGrant
	KindExperienceBundle
	KindBossRewardChoice
	KindProofOfDefeat
	KindVictory
	KindUberTrap
	KindDripTrap
	KindGagShuffleTrap

	numKinds
)

var kindNames = [numKinds]string{
	KindUndefined:             "undefined",
	KindIgnore:                "ignore",
	KindLaffBoost:             "laff_boost",
	KindGagCapacity:           "gag_capacity",
	KindCurrencyCapUpgrade:    "currency_cap_upgrade",
	KindGagTrainingFrame:      "gag_training_frame",
	KindGagTrainingMultiplier: "gag_training_multiplier",
	KindFishingRodUpgrade:     "fishing_rod_upgrade",
	KindTeleportAccess:        "teleport_access",
	KindTaskAccess:            "task_access",
	KindFishingLicense:        "fishing_license",
	KindFacilityAccess:        "facility_access",
	KindCogDisguise:           "cog_disguise",
	KindCurrencyGrant:         "currency_grant",
	KindExperienceBundle:      "experience_bundle",
	KindBossRewardChoice:      "boss_reward_choice",
	KindProofOfDefeat:         "proof_of_defeat",
	KindVictory:               "victory",
	KindUberTrap:              "uber_trap",
	KindDripTrap:              "drip_trap",
	KindGagShuffleTrap:        "gag_shuffle_trap",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// IsTrap reports whether the kind is an adversarial trap
func (k Kind) IsTrap() bool {
	switch k {
	case KindUberTrap, KindDripTrap, KindGagShuffleTrap:
		return true
	default:
		return false
	}
}

// AllKinds lists every reward kind
func AllKinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
