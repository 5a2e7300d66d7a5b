package store

import (
	"github.com/google/uuid"
)

// Stage identifies the current position of a session in the dialogue graph.
// The set is closed: the conversation service only ever assigns these values.
type Stage string

const (
	StageStart        Stage = "start"
	StageAskName      Stage = "ask_name"
	StageAskPhone     Stage = "ask_phone"
	StageAskEmail     Stage = "ask_email"
	StageChooseIntent Stage = "choose_intent"

	StageRentalLocation     Stage = "rental_location"
	StageRentalPropertyType Stage = "rental_property_type"
	StageRentalBedrooms     Stage = "rental_bedrooms"
	StageRentalBudget       Stage = "rental_budget"
	StageRentalFurnished    Stage = "rental_furnished"
	StageRentalGarden       Stage = "rental_garden"
	StageRentalParking      Stage = "rental_parking"

	StageRepairCategory        Stage = "repair_category"
	StageRepairAddress         Stage = "repair_address"
	StageRepairDescription     Stage = "repair_description"
	StageRepairProviderConfirm Stage = "repair_provider_confirm"
)

// RentalDraft accumulates one rental requirement across turns. Nil pointer
// fields mean the user never expressed a preference; they score zero and
// never penalize during matching.
type RentalDraft struct {
	Location     string
	PropertyType string
	Bedrooms     *int
	Budget       *int
	Furnished    *bool
	Garden       *bool
	Parking      *bool
}

// RepairDraft accumulates one repair request across turns. RequestId is set
// once the request has been persisted so a later provider choice can be
// recorded against it.
type RepairDraft struct {
	Category    string
	Address     string
	Description string
	RequestId   *uuid.UUID
}

// Session is the in-memory conversation state, one per websocket connection.
// The transport serializes turns per connection, so no locking here; the
// repository holding these is safe for concurrent sessions.
type Session struct {
	ID         string
	Stage      Stage
	UserID     *uuid.UUID
	Name       string
	Phone      string
	Email      string
	Transcript string
	Rental     RentalDraft
	Repair     RepairDraft
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		Stage: StageStart,
	}
}

// AppendTranscript records one exchange line for later LLM grounding.
// Unbounded growth over a session's lifetime is a known limitation.
func (s *Session) AppendTranscript(speaker, utterance string) {
	s.Transcript += speaker + ": " + utterance + "\n"
}
