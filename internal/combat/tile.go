package combat

import "gridtactics/internal/tables"

// Tile is one layer of terrain in a cell.
type Tile struct {
	Type  tables.TileType
	rules *tables.Tables
}

// NewTile binds a terrain type to the tables it is priced by. A nil rules
// value uses tables.Default().
func NewTile(typ tables.TileType, rules *tables.Tables) Tile {
	return Tile{Type: typ, rules: rules}
}

func (t Tile) table() *tables.Tables {
	if t.rules == nil {
		return tables.Default()
	}
	return t.rules
}

func (t Tile) MovementCost(mv tables.MoveType) int { return t.table().MovementCost(t.Type, mv) }
func (t Tile) DefenseBonus() int                   { return t.table().DefenseBonus(t.Type) }
