package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shivanshkc/integrator/pkg/flow"
	"github.com/shivanshkc/integrator/pkg/flowstate"
)

// mockOrchestrator is a testify mock of Orchestrator.
type mockOrchestrator struct {
	mock.Mock
}

func (m *mockOrchestrator) Handle(ctx context.Context, store flowstate.Store, req flow.Request) flow.Outcome {
	return m.Called(ctx, store, req).Get(0).(flow.Outcome)
}

// mockStore counts clears and always succeeds.
type mockStore struct {
	state  flowstate.FlowState
	clears int
}

func (m *mockStore) Load(context.Context) (flowstate.FlowState, error) { return m.state, nil }

func (m *mockStore) Save(_ context.Context, state flowstate.FlowState) error {
	m.state = state
	return nil
}

func (m *mockStore) Clear(context.Context) error {
	m.clears++
	m.state = flowstate.FlowState{}
	return nil
}
