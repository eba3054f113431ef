package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Soumo04/TalentNest/internal/portal"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List open positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, view, err := oneShot(cmd, portal.SectionJobs)
		if err != nil {
			return err
		}

		err = c.LoadJobs(cmd.Context())
		view.Flush()
		if err != nil {
			return fmt.Errorf("load jobs: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
