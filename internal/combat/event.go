package combat

// Event types emitted by the battlefield. Presentation layers subscribe
// through Battlefield.Emit; the simulation never reads them back.
const (
	EventPlace      = "Place"
	EventMove       = "Move"
	EventHit        = "Hit"
	EventDefeated   = "Defeated"
	EventBuffExpire = "BuffExpire"
	EventTurnStart  = "TurnStart"
)

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}
