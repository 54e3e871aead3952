package tower

// Airport mirrors one entry of /airports.
type Airport struct {
	ID   string `json:"airportID"`
	Name string `json:"airportName"`
}

// StatusResponse mirrors /airport-status/{airportID}.
// TimeRemaining is nil when the server omits it.
type StatusResponse struct {
	IsBusy        bool     `json:"isBusy"`
	TimeRemaining *float64 `json:"timeRemaining,omitempty"`
}

// LandResponse mirrors POST /land/{airportID}.
type LandResponse struct {
	IsBusy  bool   `json:"isBusy"`
	Message string `json:"message"`
}

// DisplayName returns the airport name, or its id when the name is blank.
func (a Airport) DisplayName() string {
	if a.Name == "" {
		return a.ID
	}
	return a.Name
}
