package request

import "testing"

func TestTransitionRequest_ResolveReason(t *testing.T) {
	r := TransitionRequest{ToState: "loaded", Reason: "  client data complete "}
	if got := r.ResolveReason(); got != "client data complete" {
		t.Fatalf("expected trimmed reason, got %q", got)
	}

	r2 := TransitionRequest{ToState: "loaded", Reason: "   "}
	if got := r2.ResolveReason(); got != "requested via api" {
		t.Fatalf("expected fallback reason, got %q", got)
	}
}
