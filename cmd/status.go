package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Soumo04/TalentNest/internal/api"
	"github.com/Soumo04/TalentNest/internal/app"
	"github.com/Soumo04/TalentNest/internal/portal"
)

var statusCmd = &cobra.Command{
	Use:   "status <application-id>",
	Short: "Check the status of an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, view, err := oneShot(cmd, portal.SectionStatus)
		if err != nil {
			return err
		}

		err = c.CheckStatus(cmd.Context(), args[0])
		view.Flush()
		if api.IsNotFound(err) {
			return fmt.Errorf("check status %s: %w", args[0], app.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("check status: %w", err)
		}
		return nil
	},
}

var updateStatusCmd = &cobra.Command{
	Use:     "update <application-id>",
	Short:   "Set a new status on an application",
	Args:    cobra.ExactArgs(1),
	Example: `  careerportal status update 3f2c9a1e --status Reviewed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")

		c, view, err := oneShot(cmd, portal.SectionAdmin)
		if err != nil {
			return err
		}

		err = c.UpdateStatus(cmd.Context(), args[0], status)
		view.Flush()
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(updateStatusCmd)

	updateStatusCmd.Flags().String("status", "", "New status (Pending, Reviewed, Rejected, Accepted)")
}
