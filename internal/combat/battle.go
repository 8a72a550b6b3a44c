package combat

import (
	"math"

	"gridtactics/internal/tables"
)

// damageEpsilon keeps float noise such as 7.0000000000000001 from rounding
// up to the next point.
const damageEpsilon = 1e-9

type Outcome struct {
	Damage           int
	DefenderHealth   int
	DefenderDefeated bool
}

// Damage computes the points attacker deals to defender standing on tile.
// Every factor is multiplicative and the result is rounded up.
func Damage(attacker, defender *Unit, tile Tile, rules *tables.Tables) int {
	if rules == nil {
		rules = tables.Default()
	}
	ratio := 0.0
	if attacker.MaxHealth > 0 {
		ratio = float64(attacker.Health) / float64(attacker.MaxHealth)
	}
	dmg := float64(rules.BaseDamage(attacker.Weapon)) * ratio
	reduction := rules.DamageReduction(rules.DamageType(attacker.Weapon), defender.Armor)
	dmg *= float64(100-reduction) / 100
	dmg *= float64(100-tile.DefenseBonus()) / 100
	for _, m := range attacker.DamageMultipliers() {
		dmg *= m
	}
	if dmg <= 0 {
		return 0
	}
	n := int(math.Ceil(dmg - damageEpsilon))
	if n < 1 {
		n = 1
	}
	return n
}

// Resolve applies one attack. The defender takes no action in return. A
// defender at or below zero health is removed from bf.
func Resolve(attacker, defender *Unit, defenderTile Tile, bf *Battlefield) Outcome {
	dmg := Damage(attacker, defender, defenderTile, bf.Rules)
	defender.Health -= dmg
	bf.emit(EventHit, map[string]any{
		"attacker": attacker.ID, "target": defender.ID,
		"dmg": dmg, "hp": defender.Health, "max_hp": defender.MaxHealth,
	})
	out := Outcome{Damage: dmg, DefenderHealth: defender.Health}
	if defender.Health <= 0 {
		bf.Remove(defender)
		out.DefenderDefeated = true
	}
	return out
}
