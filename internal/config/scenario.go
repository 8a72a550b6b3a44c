package config

type ScenarioConfig struct {
	ID         string          `yaml:"id"`
	Note       string          `yaml:"note"`
	Grid       GridDef         `yaml:"grid"`
	Terrain    []TerrainLayer  `yaml:"terrain"`
	Characters []CharacterDef  `yaml:"characters"`
	TurnOrder  []string        `yaml:"turn_order"`
	Units      []UnitDef       `yaml:"units"`
	Objective  ObjectiveConfig `yaml:"objective"`
}

type GridDef struct {
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
	Base string `yaml:"base"`
}

// TerrainLayer pushes one tile onto every cell of the rectangle At..To
// (inclusive). When To is omitted only At is covered.
type TerrainLayer struct {
	At   [2]int  `yaml:"at"`
	To   *[2]int `yaml:"to"`
	Tile string  `yaml:"tile"`
}

type CharacterDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type UnitDef struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Owner     string   `yaml:"owner"`
	Kind      string   `yaml:"kind"`
	Armor     string   `yaml:"armor"`
	Weapon    string   `yaml:"weapon"`
	Move      string   `yaml:"move"`
	At        [2]int   `yaml:"at"`
	Health    int      `yaml:"health"`
	MaxHealth int      `yaml:"max_health"`
	Buffs     []string `yaml:"buffs"`
}

type ObjectiveConfig struct {
	Kind             string   `yaml:"kind"`
	Player           string   `yaml:"player"`
	MaxHalfTurns     int      `yaml:"max_half_turns"`
	Points           [][2]int `yaml:"points"`
	TimeToHold       int      `yaml:"time_to_hold"`
	SurviveHalfTurns int      `yaml:"survive_half_turns"`
	Note             string   `yaml:"note"`
}
