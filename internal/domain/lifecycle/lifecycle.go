// Package lifecycle holds the fixed topology of the policy lifecycle and the
// state to assistant routing table.
package lifecycle

import "aseguraopen/internal/domain/entities"

// Order is the only legal progression. No state may be skipped and no step
// goes backward.
var Order = []entities.PolicyState{
	entities.PolicyStateIntake,
	entities.PolicyStateLoaded,
	entities.PolicyStateQuotation,
	entities.PolicyStatePayment,
	entities.PolicyStateIssued,
	entities.PolicyStateCompleted,
}

// Initial is the state every policy is created in.
const Initial = entities.PolicyStateIntake

// Next returns the immediate successor of s. It reports false for the
// terminal state and for values outside Order.
func Next(s entities.PolicyState) (entities.PolicyState, bool) {
	for i, st := range Order {
		if st == s && i+1 < len(Order) {
			return Order[i+1], true
		}
	}
	return "", false
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s entities.PolicyState) bool {
	return s == Order[len(Order)-1]
}

// CanStep reports whether from -> to is a single legal forward step.
func CanStep(from, to entities.PolicyState) bool {
	next, ok := Next(from)
	return ok && next == to
}

// Path returns the states strictly after from up to and including to, or
// nil when to is not ahead of from.
func Path(from, to entities.PolicyState) []entities.PolicyState {
	start, end := index(from), index(to)
	if start < 0 || end <= start {
		return nil
	}
	out := make([]entities.PolicyState, 0, end-start)
	out = append(out, Order[start+1:end+1]...)
	return out
}

func index(s entities.PolicyState) int {
	for i, st := range Order {
		if st == s {
			return i
		}
	}
	return -1
}
