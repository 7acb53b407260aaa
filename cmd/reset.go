package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all practice history and weak-point progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes all learner data; re-run with --yes to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All learner data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the wipe")
}
