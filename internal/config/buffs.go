package config

type BuffsConfig struct {
	Buffs []BuffDef `yaml:"buffs"`
}

// BuffDef describes a buff template. A zero DamageMultiplier means the buff
// does not touch outgoing damage; a zero Duration means it never expires.
type BuffDef struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	Duration         int     `yaml:"duration"`
	Note             string  `yaml:"note"`
}
