package config

// RulesConfig overrides the built-in lookup tables. Every section is optional;
// entries that are absent keep their default values.
type RulesConfig struct {
	Terrain []TerrainDef   `yaml:"terrain"`
	Weapons []WeaponDef    `yaml:"weapons"`
	Armor   []ArmorDef     `yaml:"armor"`
	Units   []UnitClassDef `yaml:"units"`
}

type TerrainDef struct {
	ID         string         `yaml:"id"`
	Defense    *int           `yaml:"defense"`
	Cost       map[string]int `yaml:"cost"`
	Impassable []string       `yaml:"impassable"`
	Note       string         `yaml:"note"`
}

type WeaponDef struct {
	ID         string `yaml:"id"`
	BaseDamage *int   `yaml:"base_damage"`
	DamageType string `yaml:"damage_type"`
	Note       string `yaml:"note"`
}

// ArmorDef maps damage type -> percent reduction for one armor type.
type ArmorDef struct {
	ID        string         `yaml:"id"`
	Reduction map[string]int `yaml:"reduction"`
	Note      string         `yaml:"note"`
}

type UnitClassDef struct {
	ID   string `yaml:"id"`
	Move *int   `yaml:"move"`
	Note string `yaml:"note"`
}
