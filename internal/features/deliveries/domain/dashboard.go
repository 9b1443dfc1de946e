package domain

// FilterOptions are the choices offered by the filter controls.
type FilterOptions struct {
	// Dates lists every available service date (YYYY-MM-DD), ascending.
	Dates []string `json:"dates"`
	// SelectedDate is the requested date, or the latest one.
	SelectedDate string `json:"selected_date"`
	// Agents is AllOption followed by the sorted agents of the selected date.
	Agents []string `json:"agents"`
	// Trips is AllOption followed by the sorted trips of the selected date and agent.
	Trips []string `json:"trips"`
}

// Dashboard is the full output of one render cycle.
type Dashboard struct {
	Selection Selection     `json:"selection"`
	Options   FilterOptions `json:"options"`
	// Map is nil when no record has usable coordinates; MapError says why.
	Map      *MapView       `json:"map,omitempty"`
	MapError string         `json:"map_error,omitempty"`
	Summary  Summary        `json:"summary"`
	Charts   Charts         `json:"charts"`
	Records  []JoinedRecord `json:"records"`
}
