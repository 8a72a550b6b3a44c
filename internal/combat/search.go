package combat

import (
	"container/heap"

	"gridtactics/internal/tables"
)

type searchNode struct {
	at   Coord
	cost int
}

// nodeQueue is a min-heap of search nodes ordered by cost, then cell.
type nodeQueue []searchNode

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return lessCoord(q[i].at, q[j].at)
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)   { *q = append(*q, x.(searchNode)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// MoveCosts runs a uniform-cost search from origin and returns every cell u
// can reach within its movement budget, with the cheapest cost to get there.
// Occupancy is ignored. An out-of-bounds origin yields an empty map.
func MoveCosts(u *Unit, origin Coord, bf *Battlefield) map[Coord]int {
	done := map[Coord]int{}
	if u == nil || !bf.InBounds(origin) {
		return done
	}
	budget := u.MoveBudget(bf)
	best := map[Coord]int{origin: 0}
	q := &nodeQueue{{at: origin}}
	for q.Len() > 0 {
		n := heap.Pop(q).(searchNode)
		if _, ok := done[n.at]; ok {
			continue
		}
		done[n.at] = n.cost
		for _, next := range n.at.Neighbors() {
			if !bf.InBounds(next) {
				continue
			}
			if _, ok := done[next]; ok {
				continue
			}
			tile, ok := bf.TopTile(next)
			if !ok {
				continue
			}
			step := tile.MovementCost(u.Move)
			if step >= tables.Impassable || step > budget-n.cost {
				continue
			}
			cost := n.cost + step
			if prev, seen := best[next]; seen && prev <= cost {
				continue
			}
			best[next] = cost
			heap.Push(q, searchNode{at: next, cost: cost})
		}
	}
	return done
}

// Reachable is the set of cells u could end a move on, starting at origin.
func Reachable(u *Unit, origin Coord, bf *Battlefield) CoordSet {
	costs := MoveCosts(u, origin, bf)
	out := make(CoordSet, len(costs))
	for c := range costs {
		out.Add(c)
	}
	return out
}

// Targets lists the units on u's reachable cells that acting does not own,
// ordered by cell. Weapon range is not modelled: reach is the only criterion.
func Targets(u *Unit, origin Coord, bf *Battlefield, acting *Character) []*Unit {
	var out []*Unit
	for _, c := range Reachable(u, origin, bf).Sorted() {
		other, ok := bf.UnitAt(c)
		if !ok || other == u {
			continue
		}
		if bf.OwnerOf(other) != acting {
			out = append(out, other)
		}
	}
	return out
}
