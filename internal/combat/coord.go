package combat

import "sort"

// Coord is a grid cell. It is comparable and used directly as a map key.
type Coord struct{ X, Y int }

func (a Coord) Add(b Coord) Coord { return Coord{a.X + b.X, a.Y + b.Y} }
func (a Coord) Sub(b Coord) Coord { return Coord{a.X - b.X, a.Y - b.Y} }

// Manhattan is the 4-connected grid distance between a and b.
func (a Coord) Manhattan(b Coord) int {
	d := a.Sub(b)
	if d.X < 0 {
		d.X = -d.X
	}
	if d.Y < 0 {
		d.Y = -d.Y
	}
	return d.X + d.Y
}

var orthogonal = [4]Coord{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Neighbors returns the four orthogonal neighbors of a. Bounds are not checked.
func (a Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, d := range orthogonal {
		out[i] = a.Add(d)
	}
	return out
}

// CoordSet is an unordered set of cells.
type CoordSet map[Coord]struct{}

func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }

func (s CoordSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the cells ordered by row, then column.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return lessCoord(out[i], out[j]) })
	return out
}

func lessCoord(a, b Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
