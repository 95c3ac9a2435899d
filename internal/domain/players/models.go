package players

// Player is the normalized fantasy-platform player shape.
type Player struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Team         string `json:"team"`
	Position     string `json:"position"`
	Status       string `json:"status"`
	InjuryStatus string `json:"injuryStatus,omitempty"`
}

// HasName reports whether the player can be used for name resolution.
func (p Player) HasName() bool {
	return p.ID != "" && p.FullName != ""
}
