package replay

import (
	"lovepet/internal/domain/event"
	"lovepet/internal/domain/growth"
)

type Request struct {
	PetID string
	Limit int
	// OccurredFrom and OccurredTo are unix seconds; zero leaves that side open.
	OccurredFrom int64
	OccurredTo   int64
	Type         string
}

type Response struct {
	Events      []event.Event `json:"events"`
	LatestState LatestState   `json:"latest_state"`
}

// LatestState is the pet as of the newest action in the window.
type LatestState struct {
	PetID       string       `json:"pet_id"`
	Phase       growth.Phase `json:"phase"`
	Energy      int          `json:"energy"`
	Sleeping    bool         `json:"sleeping"`
	Happiness   int          `json:"happiness"`
	Frustration int          `json:"frustration"`
	Anxiety     int          `json:"anxiety"`
	Security    int          `json:"security"`
}
