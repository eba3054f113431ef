package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Soumo04/TalentNest/internal/app"
	"github.com/Soumo04/TalentNest/internal/portal"
	"github.com/Soumo04/TalentNest/internal/terminal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
)

var apiBaseURL string

var rootCmd = &cobra.Command{
	Use:   "careerportal",
	Short: "Browse open positions, apply and track applications",
	Long: `careerportal is a terminal client for a jobs and applications API.
List open positions, submit an application, look up its status, or
update a status as an administrator. Run 'careerportal portal' for the
interactive page.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(cmd.Context(), apiBaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application := app.GetAppFromContext(cmd.Context()); application != nil {
			application.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "API base URL (overrides api_base_url)")
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// oneShot builds a controller whose view prints only the given sections
func oneShot(cmd *cobra.Command, sections ...portal.Section) (*portal.Controller, *terminal.View, error) {
	application, err := app.FromContext(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	view := terminal.New(cmd.OutOrStdout(), terminal.WithSections(sections...))
	return application.Portal(view), view, nil
}
