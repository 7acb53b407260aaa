package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rchau/learnloop/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rangeDays, _ := cmd.Flags().GetInt("range")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.Records().List(cmd.Context(), 0)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No practice history yet.")
			return nil
		}

		s := analytics.Aggregate(records, rangeDays, time.Now())

		fmt.Printf("Sessions:      %d\n", s.Totals.Sessions)
		fmt.Printf("Questions:     %d\n", s.Totals.Questions)
		fmt.Printf("Correct:       %d\n", s.Totals.Correct)
		fmt.Printf("Minutes:       %d\n", s.Totals.Minutes)
		fmt.Printf("Avg accuracy:  %.0f%%\n", s.Totals.AverageAccuracy)

		if len(s.Time) > 0 {
			fmt.Printf("\nPractice time, last %d days:\n", rangeDays)
			for _, p := range s.Time {
				fmt.Printf("  %s  %3d min\n", p.Date.Format("2006-01-02"), p.Minutes)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("range", 30, "Trailing range in days for the time series")
}
