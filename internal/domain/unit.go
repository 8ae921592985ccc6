package domain

// Unit (patrulla) is a small peer group of members within a branch. It is the
// entity ranked by score.
type Unit struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Totem  string `json:"totem,omitempty"`
	Branch Branch `json:"branch"`
}

// Member is a scout in the troop roster.
type Member struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Branch Branch `json:"branch"`
	UnitID *uint  `json:"unit_id,omitempty"`
}
