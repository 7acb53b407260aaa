package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rchau/learnloop/internal/corpus"
	"github.com/rchau/learnloop/internal/knowledge"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect the knowledge graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		seed, _ := cmd.Flags().GetUint64("seed")

		if err := knowledge.ValidateTable(); err != nil {
			return fmt.Errorf("relationship table: %w", err)
		}

		records, err := corpus.Load()
		if err != nil {
			return err
		}

		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g := knowledge.Generate(records, rand.New(rand.NewPCG(seed, 0)))

		fmt.Printf("%d topics, %d links\n\n", len(g.Nodes), len(g.Links))

		fmt.Printf("%-30s  %-14s  %8s  %7s  %8s\n",
			"Topic", "Category", "Weakness", "Correct", "Answered")
		fmt.Println(strings.Repeat("─", 78))

		for _, n := range g.WeakestNodes(limit) {
			name := n.Name
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			fmt.Printf("%-30s  %-14s  %7d%%  %6d%%  %8d\n",
				name, n.Category, n.WeaknessLevel, n.CorrectRate, n.QuestionsAnswered)
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().Int("limit", 10, "Number of weakest topics to show")
	graphCmd.Flags().Uint64("seed", 0, "Seed for the weakness simulation (0 = random)")
}
