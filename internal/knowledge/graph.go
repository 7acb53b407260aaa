// Package knowledge builds the topic dependency graph that drives
// personalized practice selection. Nodes are knowledge points extracted
// from the question corpus; links carry prerequisite and followup
// relations plus a mesh of same-category and curated cross-category
// connections.
package knowledge

import (
	"math/rand/v2"
	"sort"

	"github.com/rchau/learnloop/internal/corpus"
)

// LinkType distinguishes pedagogical dependency links from looser
// "related topic" followup links.
type LinkType string

const (
	LinkPrerequisite LinkType = "prerequisite"
	LinkFollowup     LinkType = "followup"
)

// Node is one knowledge point in the graph.
type Node struct {
	ID                string
	Name              string
	Category          Category
	WeaknessLevel     int
	CorrectRate       int
	QuestionsAnswered int
	Prerequisites     []string
	Followups         []string
}

// Link is a directed edge between two nodes. Source and target are
// fixed node ids, never mutated after construction.
type Link struct {
	SourceID string
	TargetID string
	Type     LinkType
}

// Graph is the full node and link set.
type Graph struct {
	Nodes []Node
	Links []Link
}

// Generate builds the knowledge graph from a question corpus. The node
// set is exactly the distinct topic ids found in the records; topology
// is deterministic for a seeded rng, while weakness values draw from it.
// An empty corpus yields an empty graph.
func Generate(records []corpus.Record, rng *rand.Rand) Graph {
	topics := corpus.Topics(records)
	if len(topics) == 0 {
		return Graph{}
	}

	nodes := make([]Node, 0, len(topics))
	byID := make(map[string]int, len(topics))
	for _, topic := range topics {
		rel := RelationFor(topic)
		est := SimulateWeakness(len(rel.Prerequisites), rng)
		byID[topic] = len(nodes)
		nodes = append(nodes, Node{
			ID:                topic,
			Name:              topic,
			Category:          rel.Category,
			WeaknessLevel:     est.WeaknessLevel,
			CorrectRate:       est.CorrectRate,
			QuestionsAnswered: est.QuestionsAnswered,
			Prerequisites:     rel.Prerequisites,
		})
	}

	// Followups are the exact inverse of prerequisites, restricted to
	// nodes present in the graph.
	for i := range nodes {
		for _, prereq := range nodes[i].Prerequisites {
			if j, ok := byID[prereq]; ok {
				nodes[j].Followups = append(nodes[j].Followups, nodes[i].ID)
			}
		}
	}

	var links []Link
	seen := make(map[[2]string]bool)

	addLink := func(source, target string, typ LinkType) {
		key := [2]string{source, target}
		if source > target {
			key = [2]string{target, source}
		}
		if seen[key] {
			return
		}
		seen[key] = true
		links = append(links, Link{SourceID: source, TargetID: target, Type: typ})
	}

	// Prerequisite edges; references to topics outside the node set are
	// dropped silently.
	for i := range nodes {
		for _, prereq := range nodes[i].Prerequisites {
			if _, ok := byID[prereq]; ok {
				addLink(prereq, nodes[i].ID, LinkPrerequisite)
			}
		}
	}

	// Same-category mesh: chain consecutive nodes, plus an occasional
	// extra link when the category is big enough.
	for _, cat := range AllCategories() {
		var group []int
		for i := range nodes {
			if nodes[i].Category == cat {
				group = append(group, i)
			}
		}
		if len(group) < 2 {
			continue
		}
		for gi, i := range group {
			if gi < len(group)-1 {
				addLink(nodes[i].ID, nodes[group[gi+1]].ID, LinkFollowup)
			}
			if len(group) > 2 && rng.Float64() > 0.7 {
				other := group[rng.IntN(len(group))]
				if other != i {
					addLink(nodes[i].ID, nodes[other].ID, LinkFollowup)
				}
			}
		}
	}

	// Curated cross-category connections.
	for _, pair := range crossCategoryPairs {
		if _, ok := byID[pair[0]]; !ok {
			continue
		}
		if _, ok := byID[pair[1]]; !ok {
			continue
		}
		addLink(pair[0], pair[1], LinkFollowup)
	}

	return Graph{Nodes: nodes, Links: links}
}

// NodeByID returns the node with the given id, or nil.
func (g Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// WeakestNodes returns up to limit nodes ordered weakest first.
// Ties keep corpus order so results are stable.
func (g Graph) WeakestNodes(limit int) []Node {
	sorted := make([]Node, len(g.Nodes))
	copy(sorted, g.Nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeaknessLevel > sorted[j].WeaknessLevel
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// Related resolves a node's prerequisite and followup nodes. Missing
// ids resolve to empty slices, never an error.
func (g Graph) Related(id string) (prereqs, followups []Node, current *Node) {
	current = g.NodeByID(id)
	if current == nil {
		return nil, nil, nil
	}
	for _, pid := range current.Prerequisites {
		if n := g.NodeByID(pid); n != nil {
			prereqs = append(prereqs, *n)
		}
	}
	for _, fid := range current.Followups {
		if n := g.NodeByID(fid); n != nil {
			followups = append(followups, *n)
		}
	}
	return prereqs, followups, current
}

// ByCategory groups the graph's nodes by category, in category display
// order. Categories with no nodes are omitted.
func (g Graph) ByCategory() map[Category][]Node {
	out := make(map[Category][]Node)
	for _, n := range g.Nodes {
		out[n.Category] = append(out[n.Category], n)
	}
	return out
}
