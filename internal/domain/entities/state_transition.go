package entities

import "time"

// StateTransition is one append-only audit record of a lifecycle change.
//
// Storage model (DynamoDB):
//   - PK: policy_id
//   - SK: sequence
//
// Sequence equals the policy version produced by the transition, so the
// records of a policy ordered by Sequence replay every state it held.
type StateTransition struct {
	ID        string      `json:"id"`
	PolicyID  string      `json:"policy_id"`
	Sequence  int         `json:"sequence"`
	FromState PolicyState `json:"from_state"`
	ToState   PolicyState `json:"to_state"`
	Reason    string      `json:"reason"`
	Actor     string      `json:"actor"`
	CreatedAt time.Time   `json:"created_at"`
}

// TransitionCommit groups every write a lifecycle step needs. Stores apply it
// all-or-nothing, conditioned on the policy still holding FromState and
// FromVersion.
type TransitionCommit struct {
	PolicyID    string
	FromState   PolicyState
	FromVersion int
	ToState     PolicyState
	ToVersion   int
	UpdatedAt   time.Time
	Transitions []StateTransition

	// SelectOfferID, when set, marks that offer selected and clears the
	// flag on UnselectOfferIDs in the same write.
	SelectOfferID    string
	UnselectOfferIDs []string
}
