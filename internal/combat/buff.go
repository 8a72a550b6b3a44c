package combat

import (
	"errors"
	"fmt"

	"gridtactics/internal/config"
)

var ErrUnknownBuff = errors.New("unknown buff")

// Buff is attached to a unit. Combat only asks a buff what it contributes;
// it never inspects the concrete type.
type Buff interface {
	ID() string
	// DamageMultiplier reports the factor applied to the holder's outgoing
	// damage, and false when the buff does not affect damage.
	DamageMultiplier() (float64, bool)
}

// Expirer is implemented by buffs that run out. Tick is called once at the
// end of each of the holder's half-turns and reports whether the buff is spent.
type Expirer interface {
	Tick() bool
}

// DamageBuff scales outgoing damage. Remaining counts the holder's
// half-turns left; zero means permanent.
type DamageBuff struct {
	Name       string
	Multiplier float64
	Remaining  int
}

func (b *DamageBuff) ID() string                        { return b.Name }
func (b *DamageBuff) DamageMultiplier() (float64, bool) { return b.Multiplier, true }
func (b *DamageBuff) Tick() bool                        { return tickRemaining(&b.Remaining) }

// MarkerBuff carries no combat effect; scenarios use it to tag units.
type MarkerBuff struct {
	Name      string
	Remaining int
}

func (b *MarkerBuff) ID() string                        { return b.Name }
func (b *MarkerBuff) DamageMultiplier() (float64, bool) { return 0, false }
func (b *MarkerBuff) Tick() bool                        { return tickRemaining(&b.Remaining) }

func tickRemaining(n *int) bool {
	if *n <= 0 {
		return false
	}
	*n--
	return *n == 0
}

type BuffTemplate struct {
	ID         string
	Name       string
	Multiplier float64
	Duration   int
	Note       string
}

// BuffBook instantiates buffs by id from a catalog.
type BuffBook struct {
	byID map[string]BuffTemplate
}

var builtinBuffs = []BuffTemplate{
	{ID: "rally", Name: "Rally", Multiplier: 1.5, Duration: 2},
	{ID: "whetstone", Name: "Whetstone", Multiplier: 1.2},
	{ID: "banner", Name: "Banner"},
}

// NewBuffBook loads cfg on top of the built-in catalog. Entries in cfg
// replace built-ins with the same id.
func NewBuffBook(cfg *config.BuffsConfig) *BuffBook {
	bb := &BuffBook{byID: map[string]BuffTemplate{}}
	for _, tpl := range builtinBuffs {
		bb.byID[tpl.ID] = tpl
	}
	if cfg == nil {
		return bb
	}
	for _, d := range cfg.Buffs {
		if d.ID == "" {
			continue
		}
		name := d.Name
		if name == "" {
			name = d.ID
		}
		bb.byID[d.ID] = BuffTemplate{
			ID:         d.ID,
			Name:       name,
			Multiplier: d.DamageMultiplier,
			Duration:   d.Duration,
			Note:       d.Note,
		}
	}
	return bb
}

func (bb *BuffBook) Template(id string) (BuffTemplate, bool) {
	tpl, ok := bb.byID[id]
	return tpl, ok
}

// Instantiate returns a fresh buff for id. Templates without a multiplier
// become markers.
func (bb *BuffBook) Instantiate(id string) (Buff, error) {
	tpl, ok := bb.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuff, id)
	}
	if tpl.Multiplier == 0 {
		return &MarkerBuff{Name: tpl.ID, Remaining: tpl.Duration}, nil
	}
	return &DamageBuff{Name: tpl.ID, Multiplier: tpl.Multiplier, Remaining: tpl.Duration}, nil
}
