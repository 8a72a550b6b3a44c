package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridtactics/internal/combat"
	"gridtactics/internal/config"
	"gridtactics/internal/tables"
)

type field struct {
	bf   *combat.Battlefield
	blue *combat.Character
	red  *combat.Character
}

func newField(t *testing.T) *field {
	t.Helper()
	f := &field{
		bf:   combat.NewBattlefield(5, 5, nil, tables.Plains),
		blue: combat.NewCharacter("blue", ""),
		red:  combat.NewCharacter("red", ""),
	}
	f.bf.AddCharacter(f.blue)
	f.bf.AddCharacter(f.red)
	return f
}

func (f *field) place(t *testing.T, ch *combat.Character, at combat.Coord) *combat.Unit {
	t.Helper()
	u := combat.NewUnit(tables.Infantry, tables.Unarmored, tables.Sword, tables.Foot)
	require.NoError(t, f.bf.Place(u, ch, at))
	return u
}

func TestCapture_WinsAfterHoldingForTimeToHold(t *testing.T) {
	f := newField(t)
	f.place(t, f.blue, combat.Coord{X: 2, Y: 2})
	c := NewCapture(Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 20}, []combat.Coord{{X: 2, Y: 2}}, 2)

	assert.False(t, c.IsWinCondition(1))
	assert.Equal(t, Contesting, c.State())
	assert.True(t, c.IsWinCondition(2))
	assert.Equal(t, Held, c.State())
}

func TestCapture_SameHalfTurnCountsOnce(t *testing.T) {
	f := newField(t)
	f.place(t, f.blue, combat.Coord{X: 0, Y: 0})
	c := NewCapture(Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 20}, []combat.Coord{{X: 0, Y: 0}}, 2)

	for i := 0; i < 5; i++ {
		assert.False(t, c.IsWinCondition(3))
	}
	assert.Equal(t, 1, c.TimeHeld())
}

func TestCapture_NonIncreasingTurnStalls(t *testing.T) {
	f := newField(t)
	f.place(t, f.blue, combat.Coord{X: 0, Y: 0})
	c := NewCapture(Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 20}, []combat.Coord{{X: 0, Y: 0}}, 3)

	c.IsWinCondition(5)
	c.IsWinCondition(4)
	c.IsWinCondition(5)
	assert.Equal(t, 1, c.TimeHeld())
	c.IsWinCondition(6)
	assert.Equal(t, 2, c.TimeHeld())
}

func TestCapture_LosingAPointResets(t *testing.T) {
	f := newField(t)
	holder := f.place(t, f.blue, combat.Coord{X: 1, Y: 1})
	f.place(t, f.blue, combat.Coord{X: 3, Y: 3})
	points := []combat.Coord{{X: 1, Y: 1}, {X: 3, Y: 3}}
	c := NewCapture(Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 20}, points, 3)

	c.IsWinCondition(1)
	c.IsWinCondition(2)
	require.Equal(t, 2, c.TimeHeld())

	require.NoError(t, holder.MoveTo(f.bf, combat.Coord{X: 1, Y: 2}))
	assert.False(t, c.IsWinCondition(2), "reset applies even on a repeated turn index")
	assert.Equal(t, 0, c.TimeHeld())

	f.bf.BeginHalfTurn(f.blue)
	require.NoError(t, holder.MoveTo(f.bf, combat.Coord{X: 1, Y: 1}))
	assert.False(t, c.IsWinCondition(3))
	assert.Equal(t, 1, c.TimeHeld())
}

func TestCapture_EnemyOnPointIsNotHeld(t *testing.T) {
	f := newField(t)
	f.place(t, f.red, combat.Coord{X: 2, Y: 2})
	c := NewCapture(Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 20}, []combat.Coord{{X: 2, Y: 2}}, 1)

	assert.False(t, c.IsWinCondition(1))
	assert.Equal(t, 0, c.TimeHeld())
}

func TestBase_LoseConditions(t *testing.T) {
	f := newField(t)
	u := f.place(t, f.blue, combat.Coord{X: 0, Y: 0})
	b := &Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 10}

	assert.False(t, b.IsLoseCondition(9))
	assert.True(t, b.IsLoseCondition(10))

	require.True(t, f.bf.Remove(u))
	assert.True(t, b.IsLoseCondition(0))
}

func TestRout(t *testing.T) {
	f := newField(t)
	f.place(t, f.blue, combat.Coord{X: 0, Y: 0})
	enemy := f.place(t, f.red, combat.Coord{X: 4, Y: 4})
	r := &Rout{Base: Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 10}}

	assert.False(t, r.IsWinCondition(1))
	f.bf.Remove(enemy)
	assert.True(t, r.IsWinCondition(2))
	assert.True(t, r.IsLoseCondition(10))
}

func TestSurvive(t *testing.T) {
	f := newField(t)
	u := f.place(t, f.blue, combat.Coord{X: 0, Y: 0})
	s := &Survive{Base: Base{Battlefield: f.bf, Player: f.blue, MaxHalfTurns: 4}, HalfTurns: 4}

	assert.False(t, s.IsWinCondition(3))
	assert.True(t, s.IsWinCondition(4))
	assert.False(t, s.IsLoseCondition(4), "the clock running out is not a loss")

	f.bf.Remove(u)
	assert.False(t, s.IsWinCondition(5))
	assert.True(t, s.IsLoseCondition(5))
}

func TestNew_SelectsVariant(t *testing.T) {
	f := newField(t)

	obj, err := New(config.ObjectiveConfig{Kind: "Capture", MaxHalfTurns: 8, Points: [][2]int{{1, 2}}, TimeToHold: 2}, f.bf, f.blue)
	require.NoError(t, err)
	c, ok := obj.(*Capture)
	require.True(t, ok)
	assert.Equal(t, []combat.Coord{{X: 1, Y: 2}}, c.Points)
	assert.Equal(t, 2, c.TimeToHold)
	assert.Equal(t, 8, c.MaxHalfTurns)

	obj, err = New(config.ObjectiveConfig{Kind: "rout"}, f.bf, f.blue)
	require.NoError(t, err)
	assert.IsType(t, &Rout{}, obj)

	obj, err = New(config.ObjectiveConfig{Kind: "survive", SurviveHalfTurns: 6}, f.bf, f.blue)
	require.NoError(t, err)
	assert.Equal(t, 6, obj.(*Survive).HalfTurns)

	_, err = New(config.ObjectiveConfig{Kind: "escort"}, f.bf, f.blue)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = New(config.ObjectiveConfig{Kind: "rout"}, f.bf, nil)
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}
