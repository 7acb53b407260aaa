package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rchau/learnloop/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [problem]",
	Short: "Solve a math problem with a configured provider",
	Long: "Solve a math problem using the provider configured through\n" +
		"LEARNLOOP_SOLVER_PROVIDER and the matching API key variables.\n" +
		"Without any configuration the offline mock provider answers.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		verbose, _ := cmd.Flags().GetBool("verbose")

		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		cfg := solver.ConfigFromEnv()
		provider, err := solver.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		problem := solver.Problem{
			Statement: strings.Join(args, " "),
			Topic:     topic,
		}

		result, err := provider.Solve(cmd.Context(), problem)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		fmt.Printf("Answer: %s\n\n", result.Solution.Answer)
		for i, step := range result.Solution.Steps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
		if result.Solution.Explanation != "" {
			fmt.Printf("\n%s\n", result.Solution.Explanation)
		}
		if len(result.Solution.Knowledge) > 0 {
			fmt.Printf("\nKnowledge points: %s\n", strings.Join(result.Solution.Knowledge, ", "))
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().String("topic", "", "Topic hint for the solver")
	solveCmd.Flags().Bool("verbose", false, "Log provider calls")
}
