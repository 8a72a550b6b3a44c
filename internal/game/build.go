package game

import (
	"errors"
	"fmt"

	"gridtactics/internal/combat"
	"gridtactics/internal/config"
	"gridtactics/internal/objective"
	"gridtactics/internal/tables"
)

// DefaultHalfTurnCap bounds a run whose objective sets no half-turn budget.
const DefaultHalfTurnCap = 200

var (
	ErrEmptyGrid          = errors.New("grid must have positive width and height")
	ErrDuplicateCharacter = errors.New("duplicate character id")
	ErrNoTurnOrder        = errors.New("turn order is empty")
	ErrHealthRange        = errors.New("health must be within 1..max_health")
)

// Scenario is a ready-to-run battle built from configuration.
type Scenario struct {
	ID           string
	Battlefield  *combat.Battlefield
	Order        []*combat.Character
	Player       *combat.Character
	Objective    objective.Objective
	Goals        map[string][]combat.Coord
	MaxHalfTurns int
}

// Build turns loaded configuration into a scenario. rc and bc may be nil.
func Build(rc *config.RulesConfig, bc *config.BuffsConfig, sc *config.ScenarioConfig) (*Scenario, error) {
	rules, err := tables.New(rc)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	if sc.Grid.W <= 0 || sc.Grid.H <= 0 {
		return nil, fmt.Errorf("scenario %s: %w", sc.ID, ErrEmptyGrid)
	}
	base, err := tables.ParseTileType(sc.Grid.Base)
	if err != nil {
		return nil, fmt.Errorf("grid base: %w", err)
	}
	bf := combat.NewBattlefield(sc.Grid.W, sc.Grid.H, rules, base)
	if err := layTerrain(bf, sc.Terrain); err != nil {
		return nil, err
	}

	for _, cd := range sc.Characters {
		if bf.CharacterByID(cd.ID) != nil {
			return nil, fmt.Errorf("character %q: %w", cd.ID, ErrDuplicateCharacter)
		}
		bf.AddCharacter(combat.NewCharacter(cd.ID, cd.Name))
	}
	var order []*combat.Character
	for _, id := range sc.TurnOrder {
		ch := bf.CharacterByID(id)
		if ch == nil {
			return nil, fmt.Errorf("turn order %q: %w", id, combat.ErrUnknownCharacter)
		}
		order = append(order, ch)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("scenario %s: %w", sc.ID, ErrNoTurnOrder)
	}

	book := combat.NewBuffBook(bc)
	for _, ud := range sc.Units {
		if err := placeUnit(bf, book, ud); err != nil {
			return nil, err
		}
	}

	objCfg := sc.Objective
	if objCfg.MaxHalfTurns <= 0 {
		objCfg.MaxHalfTurns = DefaultHalfTurnCap
	}
	player := bf.CharacterByID(objCfg.Player)
	obj, err := objective.New(objCfg, bf, player)
	if err != nil {
		return nil, err
	}
	goals := map[string][]combat.Coord{}
	if c, ok := obj.(*objective.Capture); ok {
		goals[player.ID] = append([]combat.Coord(nil), c.Points...)
	}
	return &Scenario{
		ID:           sc.ID,
		Battlefield:  bf,
		Order:        order,
		Player:       player,
		Objective:    obj,
		Goals:        goals,
		MaxHalfTurns: objCfg.MaxHalfTurns,
	}, nil
}

func layTerrain(bf *combat.Battlefield, layers []config.TerrainLayer) error {
	for _, l := range layers {
		tile, err := tables.ParseTileType(l.Tile)
		if err != nil {
			return fmt.Errorf("terrain at %v: %w", l.At, err)
		}
		to := l.At
		if l.To != nil {
			to = *l.To
		}
		x0, x1 := minMax(l.At[0], to[0])
		y0, y1 := minMax(l.At[1], to[1])
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if err := bf.PushTile(combat.Coord{X: x, Y: y}, tile); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func placeUnit(bf *combat.Battlefield, book *combat.BuffBook, ud config.UnitDef) error {
	kind, err := parseOr(ud.Kind, tables.Infantry, tables.ParseUnitType)
	if err != nil {
		return fmt.Errorf("unit %s: %w", ud.Name, err)
	}
	armor, err := parseOr(ud.Armor, tables.Unarmored, tables.ParseArmorType)
	if err != nil {
		return fmt.Errorf("unit %s: %w", ud.Name, err)
	}
	weapon, err := parseOr(ud.Weapon, tables.Sword, tables.ParseWeaponType)
	if err != nil {
		return fmt.Errorf("unit %s: %w", ud.Name, err)
	}
	move, err := parseOr(ud.Move, tables.Foot, tables.ParseMoveType)
	if err != nil {
		return fmt.Errorf("unit %s: %w", ud.Name, err)
	}
	u := combat.NewUnit(kind, armor, weapon, move)
	if ud.ID != "" {
		u.ID = ud.ID
	}
	if ud.Name != "" {
		u.Name = ud.Name
	}
	if ud.MaxHealth > 0 {
		u.MaxHealth = ud.MaxHealth
	}
	if ud.Health > 0 {
		u.Health = ud.Health
	}
	if u.Health > u.MaxHealth {
		return fmt.Errorf("unit %s health %d/%d: %w", u.Name, u.Health, u.MaxHealth, ErrHealthRange)
	}
	for _, id := range ud.Buffs {
		b, err := book.Instantiate(id)
		if err != nil {
			return fmt.Errorf("unit %s: %w", u.Name, err)
		}
		u.AddBuff(b)
	}
	owner := bf.CharacterByID(ud.Owner)
	if owner == nil {
		return fmt.Errorf("unit %s owner %q: %w", u.Name, ud.Owner, combat.ErrUnknownCharacter)
	}
	return bf.Place(u, owner, combat.Coord{X: ud.At[0], Y: ud.At[1]})
}

func parseOr[T any](s string, def T, parse func(string) (T, error)) (T, error) {
	if s == "" {
		return def, nil
	}
	return parse(s)
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
