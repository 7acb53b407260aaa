package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rchau/learnloop/internal/library"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Query the companion library service",
}

var libraryBriefsCmd = &cobra.Command{
	Use:   "briefs [keyword...]",
	Short: "List reading briefs matching keywords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		c := newLibraryClient(cmd)
		briefs, err := c.QueryBriefs(cmd.Context(), args, limit)
		if err != nil {
			return err
		}
		if len(briefs) == 0 {
			fmt.Println("No briefs matched.")
			return nil
		}

		for _, b := range briefs {
			fmt.Printf("%s\n", b.Title)
			if b.Summary != "" {
				fmt.Printf("  %s\n", b.Summary)
			}
			if len(b.Tags) > 0 {
				fmt.Printf("  tags: %s\n", strings.Join(b.Tags, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

var libraryAnalysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "List stored mistake analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")

		c := newLibraryClient(cmd)
		result, err := c.FetchAnalysis(cmd.Context(), page, size)
		if err != nil {
			return err
		}

		fmt.Printf("Page %d/%d (%d total)\n\n", result.Page, (result.Total+result.Size-1)/max(result.Size, 1), result.Total)
		for _, item := range result.Items {
			fmt.Printf("Q: %s\n", item.Question)
			fmt.Printf("A: %s\n", item.Answer)
			if len(item.Knowledge) > 0 {
				fmt.Printf("   knowledge: %s\n", strings.Join(item.Knowledge, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

var libraryStatsCmd = &cobra.Command{
	Use:   "stats <knowledge-point>",
	Short: "Show stored stats for one knowledge point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newLibraryClient(cmd)
		stats, err := c.FetchKnowledgeStats(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d answered, %d correct (%.0f%%)\n",
			stats.Knowledge, stats.Total, stats.Correct, stats.Accuracy)
		return nil
	},
}

func newLibraryClient(cmd *cobra.Command) *library.Client {
	var opts []library.Option
	if base, _ := cmd.Flags().GetString("base-url"); base != "" {
		opts = append(opts, library.WithBaseURL(base))
	}
	return library.NewClient(opts...)
}

func init() {
	libraryCmd.PersistentFlags().String("base-url", "", "Library service base URL (default "+library.DefaultBaseURL+")")

	libraryBriefsCmd.Flags().Int("limit", 20, "Maximum briefs to return")
	libraryAnalysisCmd.Flags().Int("page", 1, "Page number")
	libraryAnalysisCmd.Flags().Int("size", 10, "Page size")

	libraryCmd.AddCommand(libraryBriefsCmd)
	libraryCmd.AddCommand(libraryAnalysisCmd)
	libraryCmd.AddCommand(libraryStatsCmd)
}
