package combat

import (
	"errors"
	"fmt"

	"gridtactics/internal/tables"
)

var (
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrOccupied         = errors.New("cell is occupied")
	ErrNotOnField       = errors.New("unit is not on the battlefield")
	ErrAlreadyPlaced    = errors.New("unit is already on the battlefield")
	ErrUnknownCharacter = errors.New("character is not registered")
	ErrUnreachable      = errors.New("cell is not reachable")
	ErrAlreadyMoved     = errors.New("unit has already moved this turn")
)

// Battlefield owns the tile grid, the occupancy map and the roster of every
// character. It is not safe for concurrent use.
type Battlefield struct {
	W, H  int
	Rules *tables.Tables

	// Emit receives every simulation event. It may be nil.
	Emit func(Event)
	// HalfTurn stamps emitted events; the driver advances it.
	HalfTurn int

	tiles      [][]Tile
	occupant   map[Coord]*Unit
	position   map[*Unit]Coord
	owner      map[*Unit]*Character
	rosters    map[*Character][]*Unit
	characters []*Character
}

// NewBattlefield builds a w×h grid where every cell holds a single base tile.
func NewBattlefield(w, h int, rules *tables.Tables, base tables.TileType) *Battlefield {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if rules == nil {
		rules = tables.Default()
	}
	bf := &Battlefield{
		W: w, H: h, Rules: rules,
		tiles:    make([][]Tile, w*h),
		occupant: map[Coord]*Unit{},
		position: map[*Unit]Coord{},
		owner:    map[*Unit]*Character{},
		rosters:  map[*Character][]*Unit{},
	}
	for i := range bf.tiles {
		bf.tiles[i] = []Tile{NewTile(base, rules)}
	}
	return bf
}

func (bf *Battlefield) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < bf.W && c.Y < bf.H
}

func (bf *Battlefield) index(c Coord) int { return c.Y*bf.W + c.X }

func (bf *Battlefield) emit(typ string, payload map[string]any) {
	if bf.Emit == nil {
		return
	}
	bf.Emit(Event{Turn: bf.HalfTurn, Type: typ, Payload: payload})
}

// PushTile layers a new tile on top of the stack at c.
func (bf *Battlefield) PushTile(c Coord, typ tables.TileType) error {
	if !bf.InBounds(c) {
		return fmt.Errorf("push tile at %v: %w", c, ErrOutOfBounds)
	}
	i := bf.index(c)
	bf.tiles[i] = append(bf.tiles[i], NewTile(typ, bf.Rules))
	return nil
}

// PopTile removes and returns the top tile at c.
func (bf *Battlefield) PopTile(c Coord) (Tile, bool) {
	if !bf.InBounds(c) {
		return Tile{}, false
	}
	i := bf.index(c)
	n := len(bf.tiles[i])
	if n == 0 {
		return Tile{}, false
	}
	top := bf.tiles[i][n-1]
	bf.tiles[i] = bf.tiles[i][:n-1]
	return top, true
}

// TopTile returns the tile consulted for cost and defense at c. It reports
// false for out-of-bounds cells and empty stacks.
func (bf *Battlefield) TopTile(c Coord) (Tile, bool) {
	if !bf.InBounds(c) {
		return Tile{}, false
	}
	stack := bf.tiles[bf.index(c)]
	if len(stack) == 0 {
		return Tile{}, false
	}
	return stack[len(stack)-1], true
}

// Stack returns a copy of the tiles at c, bottom first.
func (bf *Battlefield) Stack(c Coord) []Tile {
	if !bf.InBounds(c) {
		return nil
	}
	return append([]Tile(nil), bf.tiles[bf.index(c)]...)
}

// AddCharacter registers ch. Registration order is kept for Characters.
func (bf *Battlefield) AddCharacter(ch *Character) {
	if ch == nil {
		return
	}
	if _, ok := bf.rosters[ch]; ok {
		return
	}
	bf.rosters[ch] = nil
	bf.characters = append(bf.characters, ch)
}

func (bf *Battlefield) Characters() []*Character {
	return append([]*Character(nil), bf.characters...)
}

// CharacterByID returns nil when no registered character has that id.
func (bf *Battlefield) CharacterByID(id string) *Character {
	for _, ch := range bf.characters {
		if ch.ID == id {
			return ch
		}
	}
	return nil
}

// Place puts u on the grid at c and adds it to ch's roster.
func (bf *Battlefield) Place(u *Unit, ch *Character, c Coord) error {
	if _, ok := bf.rosters[ch]; !ok || ch == nil {
		return fmt.Errorf("place %s: %w", u.Name, ErrUnknownCharacter)
	}
	if !bf.InBounds(c) {
		return fmt.Errorf("place %s at %v: %w", u.Name, c, ErrOutOfBounds)
	}
	if _, ok := bf.position[u]; ok {
		return fmt.Errorf("place %s: %w", u.Name, ErrAlreadyPlaced)
	}
	if other, ok := bf.occupant[c]; ok {
		return fmt.Errorf("place %s at %v held by %s: %w", u.Name, c, other.Name, ErrOccupied)
	}
	bf.occupant[c] = u
	bf.position[u] = c
	bf.owner[u] = ch
	bf.rosters[ch] = append(bf.rosters[ch], u)
	bf.emit(EventPlace, map[string]any{
		"unit": u.ID, "owner": ch.ID, "x": c.X, "y": c.Y,
		"hp": u.Health, "max_hp": u.MaxHealth,
	})
	return nil
}

// UnitAt returns the unit standing on c. An empty cell is not an error.
func (bf *Battlefield) UnitAt(c Coord) (*Unit, bool) {
	u, ok := bf.occupant[c]
	return u, ok
}

func (bf *Battlefield) PositionOf(u *Unit) (Coord, bool) {
	c, ok := bf.position[u]
	return c, ok
}

// OwnerOf returns the character whose roster holds u, or nil when u is
// unowned.
func (bf *Battlefield) OwnerOf(u *Unit) *Character {
	return bf.owner[u]
}

// UnitsOf returns a copy of ch's roster in placement order.
func (bf *Battlefield) UnitsOf(ch *Character) []*Unit {
	return append([]*Unit(nil), bf.rosters[ch]...)
}

func (bf *Battlefield) relocate(u *Unit, to Coord) {
	from := bf.position[u]
	delete(bf.occupant, from)
	bf.occupant[to] = u
	bf.position[u] = to
	bf.emit(EventMove, map[string]any{
		"unit": u.ID, "from": []int{from.X, from.Y}, "to": []int{to.X, to.Y},
	})
}

// Remove takes u off the grid and out of its owner's roster. It reports
// false when u was already gone, so a defeat is only applied once.
func (bf *Battlefield) Remove(u *Unit) bool {
	c, ok := bf.position[u]
	if !ok {
		return false
	}
	delete(bf.occupant, c)
	delete(bf.position, u)
	ch := bf.owner[u]
	delete(bf.owner, u)
	roster := bf.rosters[ch]
	for i, x := range roster {
		if x == u {
			bf.rosters[ch] = append(roster[:i:i], roster[i+1:]...)
			break
		}
	}
	bf.emit(EventDefeated, map[string]any{
		"unit": u.ID, "owner": ch.String(), "x": c.X, "y": c.Y,
	})
	return true
}

// BeginHalfTurn clears the moved flag on every unit ch owns.
func (bf *Battlefield) BeginHalfTurn(ch *Character) {
	for _, u := range bf.rosters[ch] {
		u.HasMovedThisTurn = false
	}
	bf.emit(EventTurnStart, map[string]any{"character": ch.String()})
}

// EndHalfTurn ages the buffs of every unit ch owns and drops expired ones.
func (bf *Battlefield) EndHalfTurn(ch *Character) {
	for _, u := range bf.rosters[ch] {
		for _, b := range u.TickBuffs() {
			bf.emit(EventBuffExpire, map[string]any{"unit": u.ID, "buff": b.ID()})
		}
	}
}
