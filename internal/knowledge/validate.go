package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// ValidateTable checks the curriculum relation table for structural
// problems: prerequisites that reference topics missing from the table,
// and dependency cycles. It is meant for tests and for guarding manual
// edits to the table.
func ValidateTable() error {
	var problems []string

	topics := make([]string, 0, len(relations))
	for topic := range relations {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	for _, topic := range topics {
		seen := make(map[string]bool)
		for _, prereq := range relations[topic].Prerequisites {
			if prereq == topic {
				problems = append(problems, fmt.Sprintf("%q lists itself as a prerequisite", topic))
			}
			if seen[prereq] {
				problems = append(problems, fmt.Sprintf("%q lists duplicate prerequisite %q", topic, prereq))
			}
			seen[prereq] = true
			if _, ok := relations[prereq]; !ok {
				problems = append(problems, fmt.Sprintf("%q requires unknown topic %q", topic, prereq))
			}
		}
	}

	if cycle := findCycle(); len(cycle) > 0 {
		problems = append(problems, fmt.Sprintf("dependency cycle: %s", strings.Join(cycle, " -> ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("relation table invalid:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// findCycle runs Kahn's algorithm over the relation table and returns
// the topics left unprocessed, which together contain at least one
// cycle. An empty result means the table is acyclic.
func findCycle() []string {
	indegree := make(map[string]int, len(relations))
	dependents := make(map[string][]string, len(relations))
	for topic, rel := range relations {
		if _, ok := indegree[topic]; !ok {
			indegree[topic] = 0
		}
		for _, prereq := range rel.Prerequisites {
			if _, ok := relations[prereq]; !ok {
				continue
			}
			indegree[topic]++
			dependents[prereq] = append(dependents[prereq], topic)
		}
	}

	var queue []string
	for topic, deg := range indegree {
		if deg == 0 {
			queue = append(queue, topic)
		}
	}

	processed := 0
	for len(queue) > 0 {
		topic := queue[0]
		queue = queue[1:]
		processed++
		for _, dep := range dependents[topic] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if processed == len(indegree) {
		return nil
	}
	var stuck []string
	for topic, deg := range indegree {
		if deg > 0 {
			stuck = append(stuck, topic)
		}
	}
	sort.Strings(stuck)
	return stuck
}
