package combat

import (
	"fmt"

	"github.com/google/uuid"

	"gridtactics/internal/tables"
)

const DefaultHealth = 100

// Unit is an actor on the grid. Its categories are fixed at creation; health,
// buffs and the moved flag change during play.
type Unit struct {
	ID     string
	Name   string
	Kind   tables.UnitType
	Armor  tables.ArmorType
	Weapon tables.WeaponType
	Move   tables.MoveType

	Health    int
	MaxHealth int
	Buffs     []Buff

	HasMovedThisTurn bool
}

func NewUnit(kind tables.UnitType, armor tables.ArmorType, weapon tables.WeaponType, move tables.MoveType) *Unit {
	id := uuid.NewString()
	return &Unit{
		ID: id, Name: kind.String() + "-" + id[:8],
		Kind: kind, Armor: armor, Weapon: weapon, Move: move,
		Health: DefaultHealth, MaxHealth: DefaultHealth,
	}
}

func (u *Unit) Alive() bool { return u.Health > 0 }

func (u *Unit) AddBuff(b Buff) { u.Buffs = append(u.Buffs, b) }

// DamageMultipliers lists the factor of every buff that affects outgoing
// damage, in buff order.
func (u *Unit) DamageMultipliers() []float64 {
	var out []float64
	for _, b := range u.Buffs {
		if m, ok := b.DamageMultiplier(); ok {
			out = append(out, m)
		}
	}
	return out
}

// TickBuffs ages expiring buffs and returns the ones that ran out.
func (u *Unit) TickBuffs() []Buff {
	var expired []Buff
	kept := u.Buffs[:0]
	for _, b := range u.Buffs {
		if e, ok := b.(Expirer); ok && e.Tick() {
			expired = append(expired, b)
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(u.Buffs); i++ {
		u.Buffs[i] = nil
	}
	u.Buffs = kept
	return expired
}

// Character returns the owner of u on bf, or nil when u is unowned.
func (u *Unit) Character(bf *Battlefield) *Character { return bf.OwnerOf(u) }

// MoveBudget is how much movement cost u may spend in one move.
func (u *Unit) MoveBudget(bf *Battlefield) int { return bf.Rules.UnitMoveDistance(u.Kind) }

// ValidMoves is the set of cells u could reach from origin.
func (u *Unit) ValidMoves(origin Coord, bf *Battlefield) CoordSet { return Reachable(u, origin, bf) }

// Targets lists enemy units u could engage from origin on behalf of acting.
func (u *Unit) Targets(origin Coord, bf *Battlefield, acting *Character) []*Unit {
	return Targets(u, origin, bf, acting)
}

// DoBattleWith attacks enemy standing on enemyTile and reports whether the
// enemy was destroyed.
func (u *Unit) DoBattleWith(enemy *Unit, enemyTile Tile, bf *Battlefield) bool {
	return Resolve(u, enemy, enemyTile, bf).DefenderDefeated
}

// MoveTo relocates u to a reachable, empty cell and marks it as moved.
func (u *Unit) MoveTo(bf *Battlefield, to Coord) error {
	from, ok := bf.PositionOf(u)
	if !ok {
		return fmt.Errorf("move %s: %w", u.Name, ErrNotOnField)
	}
	if u.HasMovedThisTurn {
		return fmt.Errorf("move %s: %w", u.Name, ErrAlreadyMoved)
	}
	if !bf.InBounds(to) {
		return fmt.Errorf("move %s to %v: %w", u.Name, to, ErrOutOfBounds)
	}
	if to == from {
		u.HasMovedThisTurn = true
		return nil
	}
	if other, ok := bf.UnitAt(to); ok {
		return fmt.Errorf("move %s to %v held by %s: %w", u.Name, to, other.Name, ErrOccupied)
	}
	if !u.ValidMoves(from, bf).Contains(to) {
		return fmt.Errorf("move %s to %v: %w", u.Name, to, ErrUnreachable)
	}
	bf.relocate(u, to)
	u.HasMovedThisTurn = true
	return nil
}
