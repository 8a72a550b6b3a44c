// Package objective evaluates scenario win and lose conditions once per
// half-turn.
package objective

import (
	"errors"
	"fmt"
	"strings"

	"gridtactics/internal/combat"
	"gridtactics/internal/config"
)

var (
	ErrUnknownKind   = errors.New("unknown objective kind")
	ErrUnknownPlayer = errors.New("objective player is not a registered character")
)

// Objective decides whether the scenario is won or lost after
// halfTurnsElapsed half-turns. Implementations may keep progress between
// calls, so each playthrough needs its own value.
type Objective interface {
	IsWinCondition(halfTurnsElapsed int) bool
	IsLoseCondition(halfTurnsElapsed int) bool
}

// Base carries what every objective needs and supplies the default lose
// condition.
type Base struct {
	Battlefield  *combat.Battlefield
	Player       *combat.Character
	MaxHalfTurns int
	Note         string
}

// IsLoseCondition is true once the player has no units left or the
// half-turn budget is spent.
func (b *Base) IsLoseCondition(halfTurnsElapsed int) bool {
	if len(b.Battlefield.UnitsOf(b.Player)) == 0 {
		return true
	}
	return halfTurnsElapsed >= b.MaxHalfTurns
}

// holds reports whether the player has a unit standing on c.
func (b *Base) holds(c combat.Coord) bool {
	u, ok := b.Battlefield.UnitAt(c)
	return ok && b.Battlefield.OwnerOf(u) == b.Player
}

// New builds the objective variant named by cfg.Kind for player.
func New(cfg config.ObjectiveConfig, bf *combat.Battlefield, player *combat.Character) (Objective, error) {
	if player == nil {
		return nil, fmt.Errorf("objective %q: %w", cfg.Player, ErrUnknownPlayer)
	}
	base := Base{Battlefield: bf, Player: player, MaxHalfTurns: cfg.MaxHalfTurns, Note: cfg.Note}
	switch strings.ToLower(cfg.Kind) {
	case "capture":
		points := make([]combat.Coord, 0, len(cfg.Points))
		for _, p := range cfg.Points {
			points = append(points, combat.Coord{X: p[0], Y: p[1]})
		}
		return NewCapture(base, points, cfg.TimeToHold), nil
	case "rout":
		return &Rout{Base: base}, nil
	case "survive":
		return &Survive{Base: base, HalfTurns: cfg.SurviveHalfTurns}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}
