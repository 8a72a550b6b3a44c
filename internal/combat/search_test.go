package combat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridtactics/internal/config"
	"gridtactics/internal/tables"
)

func rulesWithMove(t *testing.T, kind string, move int) *tables.Tables {
	t.Helper()
	rules, err := tables.New(&config.RulesConfig{
		Units: []config.UnitClassDef{{ID: kind, Move: &move}},
	})
	require.NoError(t, err)
	return rules
}

func footUnit() *Unit {
	return NewUnit(tables.Infantry, tables.Unarmored, tables.Sword, tables.Foot)
}

// bruteCosts relaxes every edge until nothing changes.
func bruteCosts(u *Unit, origin Coord, bf *Battlefield) map[Coord]int {
	budget := u.MoveBudget(bf)
	dist := map[Coord]int{origin: 0}
	for changed := true; changed; {
		changed = false
		for c, d := range dist {
			for _, n := range c.Neighbors() {
				tile, ok := bf.TopTile(n)
				if !ok {
					continue
				}
				nd := d + tile.MovementCost(u.Move)
				if nd > budget {
					continue
				}
				if old, seen := dist[n]; !seen || nd < old {
					dist[n] = nd
					changed = true
				}
			}
		}
	}
	return dist
}

func TestReachable_FiveByFiveBudgetTwo(t *testing.T) {
	bf := NewBattlefield(5, 5, rulesWithMove(t, "infantry", 2), tables.Plains)
	u := footUnit()

	got := Reachable(u, Coord{2, 2}, bf)

	assert.Len(t, got, 13)
	assert.True(t, got.Contains(Coord{2, 2}))
	assert.True(t, got.Contains(Coord{2, 0}))
	assert.True(t, got.Contains(Coord{1, 1}))
	assert.False(t, got.Contains(Coord{0, 0}))
}

func TestReachable_UniformGridIsClippedDiamond(t *testing.T) {
	for _, tc := range []struct {
		w, h, budget int
		origin       Coord
	}{
		{5, 5, 2, Coord{0, 0}},
		{7, 4, 3, Coord{6, 1}},
		{3, 9, 4, Coord{1, 4}},
		{6, 6, 0, Coord{3, 3}},
		{1, 1, 5, Coord{0, 0}},
	} {
		bf := NewBattlefield(tc.w, tc.h, rulesWithMove(t, "infantry", tc.budget), tables.Road)
		got := Reachable(footUnit(), tc.origin, bf)

		want := CoordSet{}
		for y := 0; y < tc.h; y++ {
			for x := 0; x < tc.w; x++ {
				if (Coord{x, y}).Manhattan(tc.origin) <= tc.budget {
					want.Add(Coord{x, y})
				}
			}
		}
		assert.Equal(t, want, got, "grid %dx%d budget %d from %v", tc.w, tc.h, tc.budget, tc.origin)
	}
}

func TestReachable_RandomTerrainMatchesRelaxation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	terrain := []tables.TileType{tables.Plains, tables.Forest, tables.Hill, tables.Mountain, tables.Water}

	for i := 0; i < 50; i++ {
		w, h := 1+rng.Intn(8), 1+rng.Intn(8)
		budget := rng.Intn(7)
		bf := NewBattlefield(w, h, rulesWithMove(t, "infantry", budget), tables.Plains)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				require.NoError(t, bf.PushTile(Coord{x, y}, terrain[rng.Intn(len(terrain))]))
			}
		}
		u := footUnit()
		origin := Coord{rng.Intn(w), rng.Intn(h)}

		costs := MoveCosts(u, origin, bf)

		assert.Contains(t, costs, origin)
		assert.Equal(t, 0, costs[origin])
		for c, cost := range costs {
			assert.True(t, bf.InBounds(c), "cell %v out of bounds", c)
			assert.LessOrEqual(t, cost, budget, "cell %v over budget", c)
		}
		assert.Equal(t, bruteCosts(u, origin, bf), costs)
	}
}

func TestReachable_TerrainCostLimitsRange(t *testing.T) {
	bf := NewBattlefield(5, 1, rulesWithMove(t, "infantry", 3), tables.Plains)
	require.NoError(t, bf.PushTile(Coord{2, 0}, tables.Forest))
	require.NoError(t, bf.PushTile(Coord{4, 0}, tables.Water))

	got := Reachable(footUnit(), Coord{0, 0}, bf)

	assert.ElementsMatch(t, []Coord{{0, 0}, {1, 0}, {2, 0}}, got.Sorted())
}

func TestMoveCosts_HugeTileCostStaysOutOfReach(t *testing.T) {
	move := 3
	rules, err := tables.New(&config.RulesConfig{
		Terrain: []config.TerrainDef{{ID: "wall", Cost: map[string]int{"foot": math.MaxInt}}},
		Units:   []config.UnitClassDef{{ID: "infantry", Move: &move}},
	})
	require.NoError(t, err)
	bf := NewBattlefield(4, 1, rules, tables.Plains)
	require.NoError(t, bf.PushTile(Coord{2, 0}, tables.Wall))

	costs := MoveCosts(footUnit(), Coord{0, 0}, bf)

	assert.Equal(t, map[Coord]int{{0, 0}: 0, {1, 0}: 1}, costs)
}

func TestMoveCosts_BudgetNearMaxIntDoesNotWrap(t *testing.T) {
	bf := NewBattlefield(3, 1, rulesWithMove(t, "infantry", math.MaxInt), tables.Plains)
	require.NoError(t, bf.PushTile(Coord{1, 0}, tables.Wall))

	costs := MoveCosts(footUnit(), Coord{0, 0}, bf)

	assert.Equal(t, map[Coord]int{{0, 0}: 0}, costs)
}

func TestReachable_OnlyTopTileCounts(t *testing.T) {
	bf := NewBattlefield(3, 1, rulesWithMove(t, "infantry", 2), tables.Plains)
	require.NoError(t, bf.PushTile(Coord{1, 0}, tables.Water))
	require.NoError(t, bf.PushTile(Coord{1, 0}, tables.Bridge))

	got := Reachable(footUnit(), Coord{0, 0}, bf)
	assert.True(t, got.Contains(Coord{2, 0}))

	_, ok := bf.PopTile(Coord{1, 0})
	require.True(t, ok)
	got = Reachable(footUnit(), Coord{0, 0}, bf)
	assert.Equal(t, []Coord{{0, 0}}, got.Sorted())
}

func TestReachable_IgnoresOccupancy(t *testing.T) {
	bf := NewBattlefield(3, 1, rulesWithMove(t, "infantry", 2), tables.Plains)
	red := NewCharacter("red", "")
	bf.AddCharacter(red)
	require.NoError(t, bf.Place(footUnit(), red, Coord{1, 0}))

	got := Reachable(footUnit(), Coord{0, 0}, bf)
	assert.Len(t, got, 3)
}

func TestReachable_OutOfBoundsOrigin(t *testing.T) {
	bf := NewBattlefield(3, 3, nil, tables.Plains)
	assert.Empty(t, Reachable(footUnit(), Coord{-1, 0}, bf))
	assert.Empty(t, Reachable(footUnit(), Coord{3, 3}, bf))
}

func TestTargets_EnemiesInReachOnly(t *testing.T) {
	bf := NewBattlefield(6, 1, rulesWithMove(t, "infantry", 2), tables.Plains)
	blue, red := NewCharacter("blue", ""), NewCharacter("red", "")
	bf.AddCharacter(blue)
	bf.AddCharacter(red)

	me := footUnit()
	ally := footUnit()
	near := footUnit()
	far := footUnit()
	require.NoError(t, bf.Place(me, blue, Coord{0, 0}))
	require.NoError(t, bf.Place(ally, blue, Coord{1, 0}))
	require.NoError(t, bf.Place(near, red, Coord{2, 0}))
	require.NoError(t, bf.Place(far, red, Coord{5, 0}))

	assert.Equal(t, []*Unit{near}, me.Targets(Coord{0, 0}, bf, blue))
	assert.Equal(t, []*Unit{ally, near}, Targets(me, Coord{0, 0}, bf, nil), "nobody belongs to a nil actor")
}
