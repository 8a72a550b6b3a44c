package game

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gridtactics/internal/combat"
)

const (
	VerdictWin       = "win"
	VerdictLose      = "lose"
	VerdictUndecided = "undecided"
)

type Result struct {
	RunID             string         `json:"run_id"`
	Scenario          string         `json:"scenario"`
	Verdict           string         `json:"verdict"`
	HalfTurns         int            `json:"half_turns"`
	Events            []combat.Event `json:"events,omitempty"`
	DamageByCharacter map[string]int `json:"damage_by_character"`
	Losses            map[string]int `json:"losses"`
	Survivors         map[string]int `json:"survivors"`
}

// Win reports whether the objective's player won the run.
func (r Result) Win() bool { return r.Verdict == VerdictWin }

// RunSingle plays sc to a verdict. Characters act in turn order, one per
// half-turn; after each half-turn the objective is checked, win first.
// A run that exhausts sc.MaxHalfTurns without a verdict is undecided.
// A nil env runs without an rng, so ties go to the first candidate.
func RunSingle(env *Env, sc *Scenario, policy Policy, log zerolog.Logger, record bool) Result {
	if env == nil {
		env = &Env{}
	}
	bf := sc.Battlefield
	res := Result{
		RunID:             uuid.NewString(),
		Scenario:          sc.ID,
		Verdict:           VerdictUndecided,
		DamageByCharacter: map[string]int{},
		Losses:            map[string]int{},
		Survivors:         map[string]int{},
	}
	owners := map[string]string{}
	bf.Emit = func(ev combat.Event) {
		switch ev.Type {
		case combat.EventDefeated:
			if owner, ok := ev.Payload["owner"].(string); ok {
				res.Losses[owner]++
			}
		case combat.EventHit:
			if id, ok := ev.Payload["attacker"].(string); ok {
				if dmg, ok := ev.Payload["dmg"].(int); ok {
					res.DamageByCharacter[owners[id]] += dmg
				}
			}
		}
		if record {
			res.Events = append(res.Events, ev)
		}
	}
	log = log.With().Str("run", res.RunID).Str("scenario", sc.ID).Logger()

	for _, ch := range bf.Characters() {
		for _, u := range bf.UnitsOf(ch) {
			owners[u.ID] = ch.ID
			if record {
				c, _ := bf.PositionOf(u)
				res.Events = append(res.Events, combat.Event{Type: combat.EventPlace, Payload: map[string]any{
					"unit": u.ID, "name": u.Name, "owner": ch.ID, "kind": u.Kind.String(),
					"x": c.X, "y": c.Y, "hp": u.Health, "max_hp": u.MaxHealth,
				}})
			}
		}
	}

	limit := sc.MaxHalfTurns
	if limit <= 0 {
		limit = DefaultHalfTurnCap
	}
	for h := 1; h <= limit; h++ {
		env.HalfTurn = h
		bf.HalfTurn = h
		acting := sc.Order[(h-1)%len(sc.Order)]
		bf.BeginHalfTurn(acting)
		for _, u := range bf.UnitsOf(acting) {
			if _, ok := bf.PositionOf(u); !ok {
				continue
			}
			act := policy.Decide(env, bf, u, acting)
			apply(bf, u, act, log)
		}
		bf.EndHalfTurn(acting)
		res.HalfTurns = h

		if sc.Objective.IsWinCondition(h) {
			res.Verdict = VerdictWin
			break
		}
		if sc.Objective.IsLoseCondition(h) {
			res.Verdict = VerdictLose
			break
		}
	}

	for _, ch := range bf.Characters() {
		res.Survivors[ch.ID] = len(bf.UnitsOf(ch))
	}
	log.Info().Str("verdict", res.Verdict).Int("half_turns", res.HalfTurns).Msg("run finished")
	return res
}

func apply(bf *combat.Battlefield, u *combat.Unit, act Action, log zerolog.Logger) {
	switch {
	case act.Target != nil:
		at, ok := bf.PositionOf(act.Target)
		if !ok {
			return
		}
		tile, _ := bf.TopTile(at)
		out := combat.Resolve(u, act.Target, tile, bf)
		u.HasMovedThisTurn = true
		log.Debug().Str("unit", u.Name).Str("target", act.Target.Name).
			Int("dmg", out.Damage).Bool("defeated", out.DefenderDefeated).Msg("attack")
	case act.MoveTo != nil:
		if err := u.MoveTo(bf, *act.MoveTo); err != nil {
			log.Warn().Err(err).Str("unit", u.Name).Msg("move rejected")
		}
	}
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
