package tables

import (
	"errors"
	"fmt"
	"strings"
)

// TileType classifies the terrain of a single tile.
type TileType uint8

const (
	Plains TileType = iota
	Road
	Bridge
	Forest
	Hill
	Mountain
	Water
	Wall
	tileTypeCount
)

// MoveType classifies how a unit travels.
type MoveType uint8

const (
	Foot MoveType = iota
	Mounted
	Flying
	moveTypeCount
)

// ArmorType classifies what a unit wears.
type ArmorType uint8

const (
	Unarmored ArmorType = iota
	LightArmor
	HeavyArmor
	Fortified
	armorTypeCount
)

// DamageType classifies what a weapon deals.
type DamageType uint8

const (
	Slash DamageType = iota
	Pierce
	Blunt
	Arcane
	damageTypeCount
)

// WeaponType classifies what a unit carries.
type WeaponType uint8

const (
	Sword WeaponType = iota
	Spear
	Bow
	Hammer
	Staff
	weaponTypeCount
)

// UnitType is the class of a unit; it fixes the movement budget.
type UnitType uint8

const (
	Infantry UnitType = iota
	Cavalry
	Archer
	Knight
	Mage
	Flier
	unitTypeCount
)

var (
	ErrUnknownTile   = errors.New("unknown tile type")
	ErrUnknownMove   = errors.New("unknown move type")
	ErrUnknownArmor  = errors.New("unknown armor type")
	ErrUnknownDamage = errors.New("unknown damage type")
	ErrUnknownWeapon = errors.New("unknown weapon type")
	ErrUnknownUnit   = errors.New("unknown unit type")
)

var tileNames = [tileTypeCount]string{"plains", "road", "bridge", "forest", "hill", "mountain", "water", "wall"}
var moveNames = [moveTypeCount]string{"foot", "mounted", "flying"}
var armorNames = [armorTypeCount]string{"unarmored", "light", "heavy", "fortified"}
var damageNames = [damageTypeCount]string{"slash", "pierce", "blunt", "arcane"}
var weaponNames = [weaponTypeCount]string{"sword", "spear", "bow", "hammer", "staff"}
var unitNames = [unitTypeCount]string{"infantry", "cavalry", "archer", "knight", "mage", "flier"}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func indexOf(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

func (t TileType) String() string   { return nameOf(tileNames[:], int(t)) }
func (m MoveType) String() string   { return nameOf(moveNames[:], int(m)) }
func (a ArmorType) String() string  { return nameOf(armorNames[:], int(a)) }
func (d DamageType) String() string { return nameOf(damageNames[:], int(d)) }
func (w WeaponType) String() string { return nameOf(weaponNames[:], int(w)) }
func (u UnitType) String() string   { return nameOf(unitNames[:], int(u)) }

func ParseTileType(s string) (TileType, error) {
	if i, ok := indexOf(tileNames[:], s); ok {
		return TileType(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, s)
}

func ParseMoveType(s string) (MoveType, error) {
	if i, ok := indexOf(moveNames[:], s); ok {
		return MoveType(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

func ParseArmorType(s string) (ArmorType, error) {
	if i, ok := indexOf(armorNames[:], s); ok {
		return ArmorType(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArmor, s)
}

func ParseDamageType(s string) (DamageType, error) {
	if i, ok := indexOf(damageNames[:], s); ok {
		return DamageType(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDamage, s)
}

func ParseWeaponType(s string) (WeaponType, error) {
	if i, ok := indexOf(weaponNames[:], s); ok {
		return WeaponType(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeapon, s)
}

func ParseUnitType(s string) (UnitType, error) {
	if i, ok := indexOf(unitNames[:], s); ok {
		return UnitType(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}
