package response

import (
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase"
)

type TransitionResponse struct {
	ID        string    `json:"id"`
	PolicyID  string    `json:"policy_id"`
	Sequence  int       `json:"sequence"`
	FromState string    `json:"from_state"`
	ToState   string    `json:"to_state"`
	Reason    string    `json:"reason"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTransition(t entities.StateTransition) TransitionResponse {
	return TransitionResponse{
		ID:        t.ID,
		PolicyID:  t.PolicyID,
		Sequence:  t.Sequence,
		FromState: string(t.FromState),
		ToState:   string(t.ToState),
		Reason:    t.Reason,
		Actor:     t.Actor,
		CreatedAt: t.CreatedAt,
	}
}

func FromTransitions(ts []entities.StateTransition) []TransitionResponse {
	out := make([]TransitionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTransition(t))
	}
	return out
}

type TransitionOutcomeResponse struct {
	Applied    bool                `json:"applied"`
	Policy     PolicyResponse      `json:"policy"`
	Transition *TransitionResponse `json:"transition,omitempty"`
}

func FromTransitionOutcome(o usecase.TransitionOutcome) TransitionOutcomeResponse {
	resp := TransitionOutcomeResponse{Applied: o.Applied, Policy: FromPolicy(o.Policy)}
	if o.Transition.ID != "" {
		t := FromTransition(o.Transition)
		resp.Transition = &t
	}
	return resp
}
