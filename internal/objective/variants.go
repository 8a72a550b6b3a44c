package objective

// Rout is won when no other character has a unit left.
type Rout struct {
	Base
}

func (r *Rout) IsWinCondition(int) bool {
	for _, ch := range r.Battlefield.Characters() {
		if ch == r.Player {
			continue
		}
		if len(r.Battlefield.UnitsOf(ch)) > 0 {
			return false
		}
	}
	return true
}

// Survive is won by keeping at least one unit alive for HalfTurns. Running
// out the clock is the goal here, so only an empty roster loses.
type Survive struct {
	Base
	HalfTurns int
}

func (s *Survive) IsWinCondition(halfTurnsElapsed int) bool {
	return halfTurnsElapsed >= s.HalfTurns && len(s.Battlefield.UnitsOf(s.Player)) > 0
}

func (s *Survive) IsLoseCondition(int) bool {
	return len(s.Battlefield.UnitsOf(s.Player)) == 0
}
