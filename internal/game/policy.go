package game

import (
	"math/rand"

	"gridtactics/internal/combat"
	"gridtactics/internal/util"
)

type Env struct {
	HalfTurn int
	Rng      *rand.Rand
}

// Action is what a unit does with its half-turn. A nil Target and a nil
// MoveTo means the unit holds position.
type Action struct {
	Target *combat.Unit
	MoveTo *combat.Coord
}

// Policy picks the action of one unit for the acting character.
type Policy interface {
	Decide(env *Env, bf *combat.Battlefield, u *combat.Unit, acting *combat.Character) Action
}

// GreedyPolicy strikes the weakest enemy in reach, otherwise walks toward
// its character's goal cells or, lacking goals, the nearest enemy.
type GreedyPolicy struct {
	Goals map[string][]combat.Coord
}

func (p *GreedyPolicy) Decide(env *Env, bf *combat.Battlefield, u *combat.Unit, acting *combat.Character) Action {
	pos, ok := bf.PositionOf(u)
	if !ok {
		return Action{}
	}
	if t := weakest(env, u.Targets(pos, bf, acting)); t != nil {
		return Action{Target: t}
	}

	dests := p.destinations(bf, u, acting)
	if len(dests) == 0 {
		return Action{}
	}
	costs := combat.MoveCosts(u, pos, bf)
	best := nearest(pos, dests)
	var picks []combat.Coord
	bestCost := 0
	for _, c := range combat.Reachable(u, pos, bf).Sorted() {
		if other, taken := bf.UnitAt(c); taken && other != u {
			continue
		}
		d := nearest(c, dests)
		switch {
		case d < best || (d == best && len(picks) > 0 && costs[c] < bestCost):
			best, bestCost, picks = d, costs[c], []combat.Coord{c}
		case d == best && len(picks) > 0 && costs[c] == bestCost:
			picks = append(picks, c)
		}
	}
	if len(picks) == 0 {
		return Action{}
	}
	var rng *rand.Rand
	if env != nil {
		rng = env.Rng
	}
	dest := picks[util.Pick(rng, len(picks))]
	return Action{MoveTo: &dest}
}

// destinations are the goal cells not yet held by another of acting's
// units, or every enemy position when acting has no open goal.
func (p *GreedyPolicy) destinations(bf *combat.Battlefield, u *combat.Unit, acting *combat.Character) []combat.Coord {
	var out []combat.Coord
	if acting != nil {
		for _, g := range p.Goals[acting.ID] {
			if other, ok := bf.UnitAt(g); ok && other != u && bf.OwnerOf(other) == acting {
				continue
			}
			out = append(out, g)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, ch := range bf.Characters() {
		if ch == acting {
			continue
		}
		for _, e := range bf.UnitsOf(ch) {
			if c, ok := bf.PositionOf(e); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// weakest returns the target with the least health; ties are broken by rng,
// or by list order when no rng is set.
func weakest(env *Env, targets []*combat.Unit) *combat.Unit {
	var low []*combat.Unit
	for _, t := range targets {
		switch {
		case len(low) == 0 || t.Health < low[0].Health:
			low = []*combat.Unit{t}
		case t.Health == low[0].Health:
			low = append(low, t)
		}
	}
	if len(low) == 0 {
		return nil
	}
	var rng *rand.Rand
	if env != nil {
		rng = env.Rng
	}
	return low[util.Pick(rng, len(low))]
}

func nearest(from combat.Coord, cells []combat.Coord) int {
	best := -1
	for _, c := range cells {
		if d := from.Manhattan(c); best < 0 || d < best {
			best = d
		}
	}
	return best
}
