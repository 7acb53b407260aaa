// Package corpus provides the bundled question bank that seeds the
// knowledge graph and the practice question pool.
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed questions.json
var questionsJSON []byte

// Question is the inner question payload of a corpus record.
type Question struct {
	Content    string   `json:"content"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Knowledge  []string `json:"knowledge"`
}

// Record is one entry of the bundled corpus: a question together with
// its reference answer and worked analysis.
type Record struct {
	Question Question `json:"question"`
	Answer   string   `json:"answer"`
	Analysis string   `json:"analysis"`
}

// Load parses the embedded corpus.
func Load() ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(questionsJSON, &records); err != nil {
		return nil, fmt.Errorf("parse embedded corpus: %w", err)
	}
	return records, nil
}

// Topics returns the distinct knowledge-point ids across all records,
// in first-seen order.
func Topics(records []Record) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, r := range records {
		for _, k := range r.Question.Knowledge {
			if !seen[k] {
				seen[k] = true
				topics = append(topics, k)
			}
		}
	}
	return topics
}

// ByKnowledge returns the records tagged with the given knowledge point.
func ByKnowledge(records []Record, topic string) []Record {
	var out []Record
	for _, r := range records {
		for _, k := range r.Question.Knowledge {
			if k == topic {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ByDifficulty returns the records matching the given difficulty label
// (case-insensitive).
func ByDifficulty(records []Record, difficulty string) []Record {
	var out []Record
	for _, r := range records {
		if strings.EqualFold(r.Question.Difficulty, difficulty) {
			out = append(out, r)
		}
	}
	return out
}
