package rewards

import (
	"fmt"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

func zoneName(env *Env, zone int) string {
	if env != nil && env.Tables != nil {
		if z, ok := env.Tables.Zone(zone); ok {
			return z.Name
		}
	}
	return fmt.Sprintf("unknown zone: %d", zone)
}

func missingEntry(kind Kind, what string, id int) error {
	return errors.Internalf("no %s for %d", what, id).
		WithMeta("reward", kind.String()).
		WithMeta(what, id)
}

// TeleportAccess lets the toon teleport to a zone and the zones linked to it
type TeleportAccess struct {
	Zone int
}

func (TeleportAccess) Kind() Kind { return KindTeleportAccess }

func (r TeleportAccess) Apply(env *Env, av Avatar) error {
	t, err := env.requireTables()
	if err != nil {
		return err
	}
	if _, ok := t.Zone(r.Zone); !ok {
		return missingEntry(KindTeleportAccess, "zone", r.Zone)
	}

	av.AddTeleportAccess(r.Zone)
	for _, linked := range t.LinkedZones(r.Zone) {
		av.AddTeleportAccess(linked)
	}
	return nil
}

func (r TeleportAccess) Describe(env *Env, _ AvatarView) Text {
	return text(
		plain("You can now teleport\nto "),
		colored(zoneName(env, r.Zone), ColorGreen),
		plain("!"),
	)
}

func (r TeleportAccess) validate(t *tables.Tables) error {
	if _, ok := t.Zone(r.Zone); !ok {
		return errors.InvalidArgumentf("zone %d has no table entry", r.Zone)
	}
	return nil
}

// TaskAccess grants the key that allows ToonTasks in a playground
type TaskAccess struct {
	Zone int
}

func (TaskAccess) Kind() Kind { return KindTaskAccess }

func (r TaskAccess) Apply(env *Env, av Avatar) error {
	t, err := env.requireTables()
	if err != nil {
		return err
	}
	key, ok := t.TaskKey(r.Zone)
	if !ok {
		return missingEntry(KindTaskAccess, "zone", r.Zone)
	}
	av.AddAccessKey(key)
	return nil
}

func (r TaskAccess) Describe(env *Env, _ AvatarView) Text {
	return text(
		plain("You may now complete ToonTasks\nin "),
		colored(zoneName(env, r.Zone), ColorGreen),
		plain("!"),
	)
}

func (r TaskAccess) validate(t *tables.Tables) error {
	if _, ok := t.TaskKey(r.Zone); !ok {
		return errors.InvalidArgumentf("zone %d has no task key", r.Zone)
	}
	return nil
}

// FishingLicense grants the key that allows fishing in a playground
type FishingLicense struct {
	Zone int
}

func (FishingLicense) Kind() Kind { return KindFishingLicense }

func (r FishingLicense) Apply(env *Env, av Avatar) error {
	t, err := env.requireTables()
	if err != nil {
		return err
	}
	key, ok := t.FishingKey(r.Zone)
	if !ok {
		return missingEntry(KindFishingLicense, "zone", r.Zone)
	}
	av.AddAccessKey(key)
	return nil
}

func (r FishingLicense) Describe(env *Env, _ AvatarView) Text {
	return text(
		plain("You may now Fish\nin "),
		colored(zoneName(env, r.Zone), ColorGreen),
		plain("!"),
	)
}

func (r FishingLicense) validate(t *tables.Tables) error {
	if _, ok := t.FishingKey(r.Zone); !ok {
		return errors.InvalidArgumentf("zone %d has no fishing license key", r.Zone)
	}
	return nil
}

// FacilityAccess grants a cog facility key
type FacilityAccess struct {
	Key int
}

func (FacilityAccess) Kind() Kind { return KindFacilityAccess }

func (r FacilityAccess) Apply(env *Env, av Avatar) error {
	t, err := env.requireTables()
	if err != nil {
		return err
	}
	if _, ok := t.Facility(r.Key); !ok {
		return missingEntry(KindFacilityAccess, "facility", r.Key)
	}
	av.AddAccessKey(r.Key)
	return nil
}

func (r FacilityAccess) Describe(env *Env, _ AvatarView) Text {
	name := fmt.Sprintf("UNKNOWN-KEY[%d]", r.Key)
	if env != nil && env.Tables != nil {
		if f, ok := env.Tables.Facility(r.Key); ok {
			name = f.Name
		}
	}
	return text(
		plain("You may now infiltrate\nthe "),
		colored(name, ColorSalmon),
		plain(" facility!"),
	)
}

func (r FacilityAccess) validate(t *tables.Tables) error {
	if _, ok := t.Facility(r.Key); !ok {
		return errors.InvalidArgumentf("facility key %d has no table entry", r.Key)
	}
	return nil
}

// Cog departments
const (
	DepartmentBossbot = 0
	DepartmentLawbot  = 1
	DepartmentCashbot = 2
	DepartmentSellbot = 3
)

// CogDisguise completes the disguise for one cog department
type CogDisguise struct {
	Department int
}

func (CogDisguise) Kind() Kind { return KindCogDisguise }

func (r CogDisguise) Apply(env *Env, av Avatar) error {
	t, err := env.requireTables()
	if err != nil {
		return err
	}
	dept, ok := t.Department(r.Department)
	if !ok {
		return missingEntry(KindCogDisguise, "department", r.Department)
	}
	av.SetCogParts(r.Department, av.GetCogParts(r.Department)|dept.PartsMask)
	return nil
}

func (r CogDisguise) Describe(env *Env, _ AvatarView) Text {
	name := fmt.Sprintf("Department %d", r.Department)
	if env != nil && env.Tables != nil {
		if d, ok := env.Tables.Department(r.Department); ok {
			name = d.Name
		}
	}
	return text(
		plain("You were given\nyour "),
		colored(name+" Disguise", ColorPlum),
		plain("!"),
	)
}

func (r CogDisguise) validate(t *tables.Tables) error {
	if _, ok := t.Department(r.Department); !ok {
		return errors.InvalidArgumentf("department %d has no table entry", r.Department)
	}
	return nil
}
