package lifecycle

import (
	"fmt"

	"aseguraopen/internal/domain/entities"
)

// Assistant identifies the conversational assistant that owns a state. The
// value is also recorded as the actor of the transitions it performs.
type Assistant string

const (
	AssistantIntake    Assistant = "IntakeAgent"
	AssistantQuotation Assistant = "QuotationAgent"
	AssistantPayment   Assistant = "PaymentAgent"
	AssistantIssuance  Assistant = "IssuanceAgent"
	// AssistantNone answers for terminal policies; nothing acts on them.
	AssistantNone Assistant = "none"
)

var routes = map[entities.PolicyState]Assistant{
	entities.PolicyStateIntake:    AssistantIntake,
	entities.PolicyStateLoaded:    AssistantQuotation,
	entities.PolicyStateQuotation: AssistantQuotation,
	entities.PolicyStatePayment:   AssistantPayment,
	entities.PolicyStateIssued:    AssistantIssuance,
	entities.PolicyStateCompleted: AssistantNone,
}

func init() {
	if err := validateRoutes(routes); err != nil {
		panic(err)
	}
}

func validateRoutes(r map[entities.PolicyState]Assistant) error {
	for _, st := range Order {
		if a, ok := r[st]; !ok || a == "" {
			return fmt.Errorf("lifecycle: state %q has no assistant", st)
		}
	}
	if len(r) != len(Order) {
		return fmt.Errorf("lifecycle: routing table has %d entries for %d states", len(r), len(Order))
	}
	return nil
}

// Route returns the assistant responsible for s. Unknown states are a
// configuration error.
func Route(s entities.PolicyState) (Assistant, error) {
	a, ok := routes[s]
	if !ok {
		return "", fmt.Errorf("lifecycle: unknown policy state %q", s)
	}
	return a, nil
}
