package flow

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shivanshkc/integrator/pkg/flowstate"
	"github.com/shivanshkc/integrator/pkg/provider"
)

// mockAdapter is a testify mock of provider.Adapter.
type mockAdapter struct {
	mock.Mock
	id provider.ID
}

func (m *mockAdapter) ID() provider.ID {
	return m.id
}

func (m *mockAdapter) AuthorizeURL(params provider.AuthorizeParams) string {
	return m.Called(params).String(0)
}

func (m *mockAdapter) ExchangeToken(ctx context.Context, params provider.ExchangeParams) (provider.Tokens, error) {
	args := m.Called(ctx, params)
	tokens, _ := args.Get(0).(provider.Tokens)
	return tokens, args.Error(1)
}

// memoryStore is a flowstate.Store over a plain variable, with injectable failures.
type memoryStore struct {
	state    flowstate.FlowState
	saves    int
	clears   int
	loadErr  error
	saveErr  error
	clearErr error
}

func (m *memoryStore) Load(context.Context) (flowstate.FlowState, error) {
	return m.state, m.loadErr
}

func (m *memoryStore) Save(_ context.Context, state flowstate.FlowState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.state = state
	return nil
}

func (m *memoryStore) Clear(context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.clears++
	m.state = flowstate.FlowState{}
	return nil
}
