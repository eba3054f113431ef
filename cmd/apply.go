package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Soumo04/TalentNest/internal/portal"
	"github.com/Soumo04/TalentNest/pkg/models"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit an application for a position",
	Example: `  careerportal apply --job 1 --name "Ada Lovelace" --email ada@example.com
  careerportal apply --job 2 --name "Ada Lovelace" --email ada@example.com --resume https://cv.example.com/ada`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobID, _ := cmd.Flags().GetString("job")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		resume, _ := cmd.Flags().GetString("resume")

		c, view, err := oneShot(cmd, portal.SectionApply)
		if err != nil {
			return err
		}

		err = c.SubmitApplication(cmd.Context(), models.ApplicationInput{
			JobID:      jobID,
			Name:       name,
			Email:      email,
			ResumeLink: resume,
		})
		view.Flush()
		if err != nil {
			return fmt.Errorf("submit application: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().String("job", "", "Job ID to apply for")
	applyCmd.Flags().String("name", "", "Full name")
	applyCmd.Flags().String("email", "", "Email address")
	applyCmd.Flags().String("resume", "", "Resume link (optional)")
}
