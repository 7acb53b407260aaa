package solver

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Solution Solution
	Usage    Usage
	Err      error
}

// MockProvider is a deterministic offline Provider. With no canned
// responses queued it answers every problem with a generic solution, so
// the solve flow works without any API key; tests queue responses (or
// errors) in FIFO order.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Problem
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Solve(_ context.Context, prob Problem) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, prob)

	if len(m.responses) == 0 {
		return &Result{Solution: genericSolution(prob), Model: "mock"}, nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Result{Solution: resp.Solution, Usage: resp.Usage, Model: "mock"}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Solve calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func genericSolution(prob Problem) Solution {
	sol := Solution{
		Answer: "See the worked steps.",
		Steps: []string{
			"Restate the problem in your own words.",
			"Identify the concept it exercises and the relevant formula.",
			"Apply the formula carefully, one operation at a time.",
			"Check the result against the original statement.",
		},
		Explanation: "Offline mode: configure a solver provider for a real worked solution.",
	}
	if prob.Topic != "" {
		sol.Knowledge = []string{prob.Topic}
	}
	return sol
}
