package objective

import "gridtactics/internal/combat"

// CaptureState is the progress of a Capture objective.
type CaptureState int

const (
	Contesting CaptureState = iota
	Held
)

func (s CaptureState) String() string {
	if s == Held {
		return "held"
	}
	return "contesting"
}

// Capture is won by keeping a player unit on every capture point for
// TimeToHold consecutive half-turns.
type Capture struct {
	Base
	Points     []combat.Coord
	TimeToHold int

	timeHeld     int
	lastHalfTurn int
}

func NewCapture(base Base, points []combat.Coord, timeToHold int) *Capture {
	return &Capture{Base: base, Points: points, TimeToHold: timeToHold, lastHalfTurn: -1}
}

// IsWinCondition counts at most one held half-turn per distinct, increasing
// halfTurnsElapsed. Losing any point resets the count on that call. Passing
// a turn index that does not increase stalls progress; it is not an error.
func (c *Capture) IsWinCondition(halfTurnsElapsed int) bool {
	for _, p := range c.Points {
		if !c.holds(p) {
			c.timeHeld = 0
			return false
		}
	}
	if c.lastHalfTurn < halfTurnsElapsed {
		c.timeHeld++
		c.lastHalfTurn = halfTurnsElapsed
	}
	return c.timeHeld >= c.TimeToHold
}

func (c *Capture) TimeHeld() int { return c.timeHeld }

func (c *Capture) State() CaptureState {
	if c.timeHeld >= c.TimeToHold {
		return Held
	}
	return Contesting
}
