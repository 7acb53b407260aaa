// Package solver answers free-form math problems through an LLM
// provider, returning a structured solution: final answer, worked
// steps, and the knowledge points involved. A mock provider keeps the
// rest of the app usable without any API key.
package solver

import (
	"context"
	"fmt"
	"strings"
)

// Problem is one math problem to solve.
type Problem struct {
	// Statement is the problem text as the learner typed it.
	Statement string

	// Topic optionally names the knowledge point the problem relates
	// to, which steers the explanation.
	Topic string
}

// Solution is the structured answer to a Problem.
type Solution struct {
	Answer      string   `json:"answer"`
	Steps       []string `json:"steps"`
	Explanation string   `json:"explanation"`
	Knowledge   []string `json:"knowledge"`
}

// Usage tracks token consumption for a single solve call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Result bundles a solution with call metadata.
type Result struct {
	Solution Solution
	Usage    Usage
	Model    string
}

// Provider solves problems. Implementations wrap one LLM backend; the
// retry decorator layers transient-error handling on top.
type Provider interface {
	// Solve answers the problem. The returned solution has been
	// validated against the solution schema.
	Solve(ctx context.Context, p Problem) (*Result, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

const systemPrompt = `You are a patient math tutor. Solve the given problem
step by step. Respond with JSON only: the final answer, the ordered list of
solution steps, a short explanation of the key idea, and the knowledge
points the problem exercises.`

// userPrompt renders a problem as the single user message.
func userPrompt(p Problem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", strings.TrimSpace(p.Statement))
	if p.Topic != "" {
		fmt.Fprintf(&b, "Related knowledge point: %s\n", p.Topic)
	}
	return b.String()
}
