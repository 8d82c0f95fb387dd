package roster

// GroupTeam is a team entry of groups.json
type GroupTeam struct {
	Team        string `json:"Team"`
	ISOCode     string `json:"ISOCode"`
	FIBARanking int    `json:"FIBARanking"`
}

// GroupsData maps a group name to its teams in seeding order
type GroupsData map[string][]GroupTeam

// Exhibition is a match entry of exibitions.json
type Exhibition struct {
	Date     string `json:"Date"`
	Opponent string `json:"Opponent"`
	Result   string `json:"Result"`
}

// ExhibitionsData maps a team code to its exhibition matches
type ExhibitionsData map[string][]Exhibition

// SourceError represents a failed fetch from a remote data source
type SourceError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	URL        string `json:"url,omitempty"`
}

func (e *SourceError) Error() string {
	return e.Message
}
