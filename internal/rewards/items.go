package rewards

import "github.com/LittlestCube/toontown-archipelago/internal/entities/toon"

// Zone ids referenced by the default item table
const (
	ZoneDonaldsDock       = 1000
	ZoneToontownCentral   = 2000
	ZoneTheBrrrgh         = 3000
	ZoneMinniesMelodyland = 4000
	ZoneDaisyGardens      = 5000
	ZoneAcornAcres        = 6000
	ZoneGoofySpeedway     = 8000
	ZoneDonaldsDreamland  = 9000
	ZoneBossbotHQ         = 10000
	ZoneSellbotHQ         = 11000
	ZoneCashbotHQ         = 12000
	ZoneLawbotHQ          = 13000
	ZoneGolf              = 17000
)

// Facility access keys
const (
	FacilityFrontFactory = 20 + iota
	FacilitySideFactory
	FacilityCoinMint
	FacilityDollarMint
	FacilityBullionMint
	FacilityOfficeA
	FacilityOfficeB
	FacilityOfficeC
	FacilityOfficeD
	FacilityFrontOne
	FacilityMiddleTwo
	FacilityBackThree
)

// DefaultItems returns the item name table the registry is built from
func DefaultItems() map[string]Reward {
	items := map[string]Reward{
		"+1 Laff Boost": LaffBoost{Amount: 1},
		"+2 Laff Boost": LaffBoost{Amount: 2},
		"+3 Laff Boost": LaffBoost{Amount: 3},
		"+4 Laff Boost": LaffBoost{Amount: 4},
		"+5 Laff Boost": LaffBoost{Amount: 5},

		"+5 Gag Capacity":  GagCapacity{Amount: 5},
		"+10 Gag Capacity": GagCapacity{Amount: 10},
		"+15 Gag Capacity": GagCapacity{Amount: 15},

		"+750 Jellybean Jar Capacity":  CurrencyCapUpgrade{Amount: 750},
		"+1000 Jellybean Jar Capacity": CurrencyCapUpgrade{Amount: 1000},
		"+1250 Jellybean Jar Capacity": CurrencyCapUpgrade{Amount: 1250},
		"+1500 Jellybean Jar Capacity": CurrencyCapUpgrade{Amount: 1500},
		"+2000 Jellybean Jar Capacity": CurrencyCapUpgrade{Amount: 2000},
		"+2500 Jellybean Jar Capacity": CurrencyCapUpgrade{Amount: 2500},

		"+1 Gag XP Multiplier": GagTrainingMultiplier{Amount: 1},
		"+2 Gag XP Multiplier": GagTrainingMultiplier{Amount: 2},

		"Progressive Fishing Rod": FishingRodUpgrade{},

		"Toontown Central Teleport Access":    TeleportAccess{Zone: ZoneToontownCentral},
		"Donald's Dock Teleport Access":       TeleportAccess{Zone: ZoneDonaldsDock},
		"Daisy Gardens Teleport Access":       TeleportAccess{Zone: ZoneDaisyGardens},
		"Minnie's Melodyland Teleport Access": TeleportAccess{Zone: ZoneMinniesMelodyland},
		"The Brrrgh Teleport Access":          TeleportAccess{Zone: ZoneTheBrrrgh},
		"Donald's Dreamland Teleport Access":  TeleportAccess{Zone: ZoneDonaldsDreamland},
		"Sellbot HQ Teleport Access":          TeleportAccess{Zone: ZoneSellbotHQ},
		"Cashbot HQ Teleport Access":          TeleportAccess{Zone: ZoneCashbotHQ},
		"Lawbot HQ Teleport Access":           TeleportAccess{Zone: ZoneLawbotHQ},
		"Bossbot HQ Teleport Access":          TeleportAccess{Zone: ZoneBossbotHQ},
		"Acorn Acres Teleport Access":         TeleportAccess{Zone: ZoneAcornAcres},
		"Goofy Speedway Teleport Access":      TeleportAccess{Zone: ZoneGoofySpeedway},

		"Fish": Ignore{},

		"Front Factory Key": FacilityAccess{Key: FacilityFrontFactory},
		"Side Factory Key":  FacilityAccess{Key: FacilitySideFactory},
		"Coin Mint Key":     FacilityAccess{Key: FacilityCoinMint},
		"Dollar Mint Key":   FacilityAccess{Key: FacilityDollarMint},
		"Bullion Mint Key":  FacilityAccess{Key: FacilityBullionMint},
		"Office A Key":      FacilityAccess{Key: FacilityOfficeA},
		"Office B Key":      FacilityAccess{Key: FacilityOfficeB},
		"Office C Key":      FacilityAccess{Key: FacilityOfficeC},
		"Office D Key":      FacilityAccess{Key: FacilityOfficeD},
		"Front One Key":     FacilityAccess{Key: FacilityFrontOne},
		"Middle Two Key":    FacilityAccess{Key: FacilityMiddleTwo},
		"Back Three Key":    FacilityAccess{Key: FacilityBackThree},

		"Sellbot Disguise": CogDisguise{Department: DepartmentSellbot},
		"Cashbot Disguise": CogDisguise{Department: DepartmentCashbot},
		"Lawbot Disguise":  CogDisguise{Department: DepartmentLawbot},
		"Bossbot Disguise": CogDisguise{Department: DepartmentBossbot},

		"250 Jellybeans":  CurrencyGrant{Amount: 250},
		"500 Jellybeans":  CurrencyGrant{Amount: 500},
		"1000 Jellybeans": CurrencyGrant{Amount: 1000},
		"2000 Jellybeans": CurrencyGrant{Amount: 2000},

		"10% Experience Bundle": ExperienceBundle{Percent: 10},
		"15% Experience Bundle": ExperienceBundle{Percent: 15},
		"20% Experience Bundle": ExperienceBundle{Percent: 20},

		"Random SOS Card":   BossRewardChoice{Choice: BossChoiceSOS},
		"Random Unite":      BossRewardChoice{Choice: BossChoiceUnite},
		"Random Pink Slips": BossRewardChoice{Choice: BossChoicePinkSlip},

		"Uber Trap":        UberTrap{},
		"Drip Trap":        DripTrap{},
		"Gag Shuffle Trap": GagShuffleTrap{},

		"Proof of First VP Defeat":  ProofOfDefeat{Proof: ProofSellbotBossFirstTime},
		"Proof of First CFO Defeat": ProofOfDefeat{Proof: ProofCashbotBossFirstTime},
		"Proof of First CJ Defeat":  ProofOfDefeat{Proof: ProofLawbotBossFirstTime},
		"Proof of First CEO Defeat": ProofOfDefeat{Proof: ProofBossbotBossFirstTime},

		"Victory": Victory{},
	}

	for track := 0; track < toon.NumTracks; track++ {
		items[trackNames[track]+" Training Frame"] = GagTrainingFrame{Track: track}
	}

	playgrounds := map[string]int{
		"Toontown Central":    ZoneToontownCentral,
		"Donald's Dock":       ZoneDonaldsDock,
		"Daisy Gardens":       ZoneDaisyGardens,
		"Minnie's Melodyland": ZoneMinniesMelodyland,
		"The Brrrgh":          ZoneTheBrrrgh,
		"Donald's Dreamland":  ZoneDonaldsDreamland,
	}
	for name, zone := range playgrounds {
		items[name+" HQ Access"] = TaskAccess{Zone: zone}
		items[name+" Fishing License"] = FishingLicense{Zone: zone}
	}

	return items
}
