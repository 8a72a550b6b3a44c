// Package tables holds the static category lookups the combat core consults:
// terrain movement cost and defense, armor damage reduction, weapon base damage
// and unit movement distance. A Tables value never changes after it is built.
package tables

import (
	"errors"
	"fmt"
	"sync"

	"gridtactics/internal/config"
)

// Impassable is the movement cost of a tile a move type cannot enter. The
// search never enters a tile at this cost, whatever the budget.
const Impassable = 1 << 24

// DefaultDamage is the base damage of a weapon the table does not know.
const DefaultDamage = 10

var (
	ErrNegativeCost = errors.New("movement cost must be non-negative")
	ErrOutOfRange   = errors.New("percentage must be within 0..100")
)

type weapon struct {
	base   int
	damage DamageType
}

type Tables struct {
	moveCost  [tileTypeCount][moveTypeCount]int
	defense   [tileTypeCount]int
	reduction [damageTypeCount][armorTypeCount]int
	weapons   [weaponTypeCount]weapon
	moveDist  [unitTypeCount]int
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the shared built-in tables.
func Default() *Tables {
	defaultOnce.Do(func() { defaultTables = builtin() })
	return defaultTables
}

func builtin() *Tables {
	t := &Tables{}
	const x = Impassable
	//                      foot mounted flying
	t.moveCost[Plains] = [moveTypeCount]int{1, 1, 1}
	t.moveCost[Road] = [moveTypeCount]int{1, 1, 1}
	t.moveCost[Bridge] = [moveTypeCount]int{1, 1, 1}
	t.moveCost[Forest] = [moveTypeCount]int{2, 3, 1}
	t.moveCost[Hill] = [moveTypeCount]int{2, 3, 1}
	t.moveCost[Mountain] = [moveTypeCount]int{3, x, 2}
	t.moveCost[Water] = [moveTypeCount]int{x, x, 1}
	t.moveCost[Wall] = [moveTypeCount]int{x, x, x}

	t.defense[Forest] = 20
	t.defense[Hill] = 15
	t.defense[Mountain] = 30

	//                       unarmored light heavy fortified
	t.reduction[Slash] = [armorTypeCount]int{0, 10, 30, 50}
	t.reduction[Pierce] = [armorTypeCount]int{0, 20, 10, 40}
	t.reduction[Blunt] = [armorTypeCount]int{0, 0, 20, 20}
	t.reduction[Arcane] = [armorTypeCount]int{0, 10, 10, 0}

	t.weapons[Sword] = weapon{base: 10, damage: Slash}
	t.weapons[Spear] = weapon{base: 10, damage: Pierce}
	t.weapons[Bow] = weapon{base: 8, damage: Pierce}
	t.weapons[Hammer] = weapon{base: 12, damage: Blunt}
	t.weapons[Staff] = weapon{base: 9, damage: Arcane}

	t.moveDist[Infantry] = 4
	t.moveDist[Cavalry] = 6
	t.moveDist[Archer] = 4
	t.moveDist[Knight] = 3
	t.moveDist[Mage] = 4
	t.moveDist[Flier] = 5
	return t
}

// New builds tables from the built-in defaults with cfg applied on top.
// A nil cfg yields a copy of the defaults. Costs above Impassable are
// stored as Impassable.
func New(cfg *config.RulesConfig) (*Tables, error) {
	t := *Default()
	if cfg == nil {
		return &t, nil
	}
	for _, td := range cfg.Terrain {
		tile, err := ParseTileType(td.ID)
		if err != nil {
			return nil, fmt.Errorf("terrain: %w", err)
		}
		if td.Defense != nil {
			if *td.Defense < 0 || *td.Defense > 100 {
				return nil, fmt.Errorf("terrain %s defense %d: %w", tile, *td.Defense, ErrOutOfRange)
			}
			t.defense[tile] = *td.Defense
		}
		for name, cost := range td.Cost {
			mv, err := ParseMoveType(name)
			if err != nil {
				return nil, fmt.Errorf("terrain %s: %w", tile, err)
			}
			if cost < 0 {
				return nil, fmt.Errorf("terrain %s %s cost %d: %w", tile, mv, cost, ErrNegativeCost)
			}
			t.moveCost[tile][mv] = min(cost, Impassable)
		}
		for _, name := range td.Impassable {
			mv, err := ParseMoveType(name)
			if err != nil {
				return nil, fmt.Errorf("terrain %s: %w", tile, err)
			}
			t.moveCost[tile][mv] = Impassable
		}
	}
	for _, wd := range cfg.Weapons {
		w, err := ParseWeaponType(wd.ID)
		if err != nil {
			return nil, fmt.Errorf("weapons: %w", err)
		}
		if wd.BaseDamage != nil {
			t.weapons[w].base = *wd.BaseDamage
		}
		if wd.DamageType != "" {
			dt, err := ParseDamageType(wd.DamageType)
			if err != nil {
				return nil, fmt.Errorf("weapon %s: %w", w, err)
			}
			t.weapons[w].damage = dt
		}
	}
	for _, ad := range cfg.Armor {
		a, err := ParseArmorType(ad.ID)
		if err != nil {
			return nil, fmt.Errorf("armor: %w", err)
		}
		for name, pct := range ad.Reduction {
			dt, err := ParseDamageType(name)
			if err != nil {
				return nil, fmt.Errorf("armor %s: %w", a, err)
			}
			if pct < 0 || pct > 100 {
				return nil, fmt.Errorf("armor %s %s reduction %d: %w", a, dt, pct, ErrOutOfRange)
			}
			t.reduction[dt][a] = pct
		}
	}
	for _, ud := range cfg.Units {
		u, err := ParseUnitType(ud.ID)
		if err != nil {
			return nil, fmt.Errorf("units: %w", err)
		}
		if ud.Move != nil {
			if *ud.Move < 0 {
				return nil, fmt.Errorf("unit %s move %d: %w", u, *ud.Move, ErrNegativeCost)
			}
			t.moveDist[u] = *ud.Move
		}
	}
	return &t, nil
}

// MovementCost is the cost for a unit of move type mv to enter a tile.
// Unknown categories are impassable.
func (t *Tables) MovementCost(tile TileType, mv MoveType) int {
	if tile >= tileTypeCount || mv >= moveTypeCount {
		return Impassable
	}
	return t.moveCost[tile][mv]
}

// DefenseBonus is the percent damage reduction granted by standing on tile.
func (t *Tables) DefenseBonus(tile TileType) int {
	if tile >= tileTypeCount {
		return 0
	}
	return t.defense[tile]
}

// DamageReduction is the percent of dt damage that armor a absorbs.
func (t *Tables) DamageReduction(dt DamageType, a ArmorType) int {
	if dt >= damageTypeCount || a >= armorTypeCount {
		return 0
	}
	return t.reduction[dt][a]
}

func (t *Tables) BaseDamage(w WeaponType) int {
	if w >= weaponTypeCount {
		return DefaultDamage
	}
	return t.weapons[w].base
}

func (t *Tables) DamageType(w WeaponType) DamageType {
	if w >= weaponTypeCount {
		return Blunt
	}
	return t.weapons[w].damage
}

func (t *Tables) UnitMoveDistance(u UnitType) int {
	if u >= unitTypeCount {
		return 0
	}
	return t.moveDist[u]
}
