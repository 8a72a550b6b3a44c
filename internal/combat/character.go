package combat

// Character is a faction that owns units. The roster itself lives on the
// Battlefield so ownership stays exclusive.
type Character struct {
	ID   string
	Name string
}

func NewCharacter(id, name string) *Character {
	if name == "" {
		name = id
	}
	return &Character{ID: id, Name: name}
}

func (c *Character) String() string {
	if c == nil {
		return "unowned"
	}
	return c.ID
}
