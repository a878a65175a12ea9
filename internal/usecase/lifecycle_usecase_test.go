package usecase

import (
	"context"
	"sync"
	"testing"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleUseCase_Transition_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.policies.CreatePolicy(ctx)
	require.NoError(t, err)

	_, err = f.lifecycle.Transition(ctx, p.ID, "archived", "", "")
	assert.ErrorIs(t, err, ErrUnknownState)

	_, err = f.lifecycle.Transition(ctx, p.ID, entities.PolicyStateLoaded, "", "")
	assert.ErrorIs(t, err, ErrMissingIntention)

	_, err = f.policies.SetIntention(ctx, p.ID, "auto")
	require.NoError(t, err)
	_, err = f.lifecycle.Transition(ctx, p.ID, entities.PolicyStateLoaded, "", "")
	assert.ErrorIs(t, err, ErrMissingClientData)

	_, err = f.policies.SaveClientField(ctx, p.ID, "name", "Ana")
	require.NoError(t, err)
	_, err = f.lifecycle.Transition(ctx, p.ID, entities.PolicyStateLoaded, "", "")
	assert.ErrorIs(t, err, ErrMissingClientData)
	assert.Contains(t, err.Error(), "email, phone")

	_, err = f.lifecycle.Transition(ctx, p.ID, entities.PolicyStateQuotation, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition, "states cannot be skipped")

	ts, err := f.lifecycle.GetTransitions(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, ts, "rejected transitions leave no audit record")
}

func TestLifecycleUseCase_Transition_Applied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loaded := f.loadedPolicy(t, "auto")
	assert.Equal(t, entities.PolicyStateLoaded, loaded.State)
	assert.Equal(t, 1, loaded.Version)

	ts, err := f.lifecycle.GetTransitions(ctx, loaded.ID)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, 1, ts[0].Sequence)
	assert.Equal(t, entities.PolicyStateIntake, ts[0].FromState)
	assert.Equal(t, entities.PolicyStateLoaded, ts[0].ToState)
	assert.Equal(t, "client data complete", ts[0].Reason)
	assert.Equal(t, string(lifecycle.AssistantIntake), ts[0].Actor, "actor defaults to the owning assistant")

	out, err := f.lifecycle.Transition(ctx, loaded.ID, entities.PolicyStateIntake, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition, "no step goes backward")
	assert.False(t, out.Applied)

	out, err = f.lifecycle.Transition(ctx, loaded.ID, entities.PolicyStateQuotation, "offers presented", "QuotationAgent")
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, 2, out.Transition.Sequence)
	assert.Equal(t, out.Policy.Version, out.Transition.Sequence)

	_, err = f.lifecycle.Transition(ctx, loaded.ID, entities.PolicyStatePayment, "", "")
	assert.ErrorIs(t, err, ErrInvalidSelection, "payment needs a selected offer")
}

func TestLifecycleUseCase_Transition_SameStateIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loaded := f.loadedPolicy(t, "moto")

	out, err := f.lifecycle.Transition(ctx, loaded.ID, entities.PolicyStateLoaded, "again", "")
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.Equal(t, 1, out.Transition.Sequence, "no-op returns the latest transition")
	assert.Equal(t, loaded.Version, out.Policy.Version)

	ts, err := f.lifecycle.GetTransitions(ctx, loaded.ID)
	require.NoError(t, err)
	assert.Len(t, ts, 1)
}

func TestLifecycleUseCase_Transition_Conflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loaded := f.loadedPolicy(t, "auto")

	repos := f.repos
	repos.Policies = conflictingPolicyRepo{f.repos.Policies}
	lc := NewLifecycleUseCase(repos, nil, f.lifecycle.log)

	_, err := lc.Transition(ctx, loaded.ID, entities.PolicyStateQuotation, "", "")
	assert.ErrorIs(t, err, ErrConflict)
	assert.True(t, IsRetryable(err))
}

func TestLifecycleUseCase_Transition_ConcurrentWritersApplyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loaded := f.loadedPolicy(t, "auto")

	const writers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.lifecycle.Transition(ctx, loaded.ID, entities.PolicyStateQuotation, "race", "")
			if err != nil {
				assert.ErrorIs(t, err, ErrConflict)
				return
			}
			if out.Applied {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, applied)
	ts, err := f.lifecycle.GetTransitions(ctx, loaded.ID)
	require.NoError(t, err)
	assert.Len(t, ts, 2)

	p, err := f.policies.GetPolicy(ctx, loaded.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PolicyStateQuotation, p.State)
	assert.Equal(t, 2, p.Version)
}

func TestLifecycleUseCase_ListTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.loadedPolicy(t, "auto")
	f.loadedPolicy(t, "moto")

	ts, err := f.lifecycle.ListTransitions(ctx)
	require.NoError(t, err)
	assert.Len(t, ts, 2)
}
