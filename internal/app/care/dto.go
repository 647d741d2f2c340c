package care

import (
	"lovepet/internal/app/petstate"
)

type Request struct {
	PetID string
	// Action is an action kind such as comfort, or a caretaker verb such as talk.
	Action string
	// Event describes the moment for any memory it forms. Empty uses the action default.
	Event string
}

type Response struct {
	State          petstate.View `json:"state"`
	Result         Result        `json:"result"`
	SettledMinutes int           `json:"settled_minutes"`
}

type TickResponse struct {
	State          petstate.View `json:"state"`
	SettledMinutes int           `json:"settled_minutes"`
	Transitioned   bool          `json:"transitioned"`
}
