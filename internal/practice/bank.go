package practice

import (
	"fmt"

	"github.com/rchau/learnloop/internal/store"
)

// QuestionsFor returns the question set for a weak point. Points with a
// curated set get it; everything else falls back to a templated set so
// a session always has five questions.
func QuestionsFor(point store.WeakPoint) []Question {
	if qs, ok := curatedSets[point.ID]; ok {
		out := make([]Question, len(qs))
		copy(out, qs)
		for i := range out {
			out[i].Topic = point.Name
		}
		return out
	}
	return templatedSet(point.Name)
}

var curatedSets = map[string][]Question{
	// Algebraic Equations
	"1": {
		{
			ID:            "q1",
			Prompt:        "Solve for x: 2x + 5 = 13",
			Type:          MultipleChoice,
			Options:       []string{"x = 3", "x = 4", "x = 5", "x = 6"},
			CorrectAnswer: "x = 4",
			Explanation:   "Subtract 5 from both sides: 2x = 8, then divide by 2: x = 4",
		},
		{
			ID:            "q2",
			Prompt:        "If 3(x - 2) = 15, what is the value of x?",
			Type:          MultipleChoice,
			Options:       []string{"x = 5", "x = 7", "x = 9", "x = 11"},
			CorrectAnswer: "x = 7",
			Explanation:   "First expand: 3x - 6 = 15, add 6: 3x = 21, divide by 3: x = 7",
		},
		{
			ID:            "q3",
			Prompt:        "Solve: (x + 4)/2 = 6",
			Type:          MultipleChoice,
			Options:       []string{"x = 6", "x = 8", "x = 10", "x = 12"},
			CorrectAnswer: "x = 8",
			Explanation:   "Multiply both sides by 2: x + 4 = 12, subtract 4: x = 8",
		},
		{
			ID:            "q4",
			Prompt:        "What is the solution to 5x - 3 = 2x + 9?",
			Type:          MultipleChoice,
			Options:       []string{"x = 2", "x = 3", "x = 4", "x = 5"},
			CorrectAnswer: "x = 4",
			Explanation:   "Subtract 2x from both sides: 3x - 3 = 9, add 3: 3x = 12, divide by 3: x = 4",
		},
		{
			ID:            "q5",
			Prompt:        "If 2(x + 3) - 4 = 10, find x",
			Type:          MultipleChoice,
			Options:       []string{"x = 3", "x = 4", "x = 5", "x = 6"},
			CorrectAnswer: "x = 4",
			Explanation:   "Expand: 2x + 6 - 4 = 10, simplify: 2x + 2 = 10, subtract 2: 2x = 8, divide by 2: x = 4",
		},
	},
	// Quadratic Functions
	"2": {
		{
			ID:     "q1",
			Prompt: "What is the vertex form of y = x^2 + 6x + 8?",
			Type:   MultipleChoice,
			Options: []string{
				"y = (x + 3)^2 - 1",
				"y = (x + 3)^2 + 1",
				"y = (x - 3)^2 - 1",
				"y = (x - 3)^2 + 1",
			},
			CorrectAnswer: "y = (x + 3)^2 - 1",
			Explanation:   "Complete the square: y = (x^2 + 6x + 9) - 9 + 8 = (x + 3)^2 - 1",
		},
		{
			ID:            "q2",
			Prompt:        "Find the roots of x^2 - 5x + 6 = 0",
			Type:          MultipleChoice,
			Options:       []string{"x = 1, 6", "x = 2, 3", "x = -2, -3", "x = -1, -6"},
			CorrectAnswer: "x = 2, 3",
			Explanation:   "Factor: (x - 2)(x - 3) = 0, so x = 2 or x = 3",
		},
		{
			ID:            "q3",
			Prompt:        "What is the axis of symmetry for y = 2x^2 - 8x + 5?",
			Type:          MultipleChoice,
			Options:       []string{"x = 1", "x = 2", "x = 3", "x = 4"},
			CorrectAnswer: "x = 2",
			Explanation:   "The axis of symmetry is x = -b/(2a) = -(-8)/(2*2) = 8/4 = 2",
		},
		{
			ID:     "q4",
			Prompt: "Which quadratic has a minimum value of -4 at x = 1?",
			Type:   MultipleChoice,
			Options: []string{
				"y = (x - 1)^2 - 4",
				"y = (x + 1)^2 - 4",
				"y = -(x - 1)^2 - 4",
				"y = -(x + 1)^2 + 4",
			},
			CorrectAnswer: "y = (x - 1)^2 - 4",
			Explanation:   "Vertex form y = a(x - h)^2 + k with vertex (1, -4) and a > 0 for minimum",
		},
		{
			ID:            "q5",
			Prompt:        "Solve x^2 + 4x - 5 = 0 using the quadratic formula",
			Type:          MultipleChoice,
			Options:       []string{"x = 1, -5", "x = -1, 5", "x = 1, 5", "x = -1, -5"},
			CorrectAnswer: "x = 1, -5",
			Explanation:   "x = (-4 +/- sqrt(16+20))/2 = (-4 +/- 6)/2, giving x = 1 or x = -5",
		},
	},
}

// templatedSet builds a generic five-question set around a topic name.
// Placeholder content until every seeded weak point has a curated set.
func templatedSet(topic string) []Question {
	return []Question{
		{
			ID:            "q1",
			Prompt:        fmt.Sprintf("What is a fundamental concept in %s?", topic),
			Type:          MultipleChoice,
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
			Explanation:   "This is a sample question; real sets are curated per knowledge point.",
			Topic:         topic,
		},
		{
			ID:            "q2",
			Prompt:        fmt.Sprintf("Apply %s to solve this problem", topic),
			Type:          MultipleChoice,
			Options:       []string{"Answer 1", "Answer 2", "Answer 3", "Answer 4"},
			CorrectAnswer: "Answer 2",
			Explanation:   "This demonstrates the application of the concept with step-by-step reasoning.",
			Topic:         topic,
		},
		{
			ID:            "q3",
			Prompt:        fmt.Sprintf("Which statement about %s is correct?", topic),
			Type:          MultipleChoice,
			Options:       []string{"Statement A", "Statement B", "Statement C", "Statement D"},
			CorrectAnswer: "Statement C",
			Explanation:   "Understanding this principle is key to mastering the topic.",
			Topic:         topic,
		},
		{
			ID:            "q4",
			Prompt:        fmt.Sprintf("Advanced problem involving %s", topic),
			Type:          MultipleChoice,
			Options:       []string{"Solution 1", "Solution 2", "Solution 3", "Solution 4"},
			CorrectAnswer: "Solution 2",
			Explanation:   "This problem requires deeper understanding and multi-step reasoning.",
			Topic:         topic,
		},
		{
			ID:            "q5",
			Prompt:        fmt.Sprintf("Critical thinking: %s application", topic),
			Type:          MultipleChoice,
			Options:       []string{"Result A", "Result B", "Result C", "Result D"},
			CorrectAnswer: "Result D",
			Explanation:   "This tests your ability to apply the concept in novel situations.",
			Topic:         topic,
		},
	}
}
