package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Soumo04/TalentNest/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.AppConfig
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, titleStyle.Render("Configuration"))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("API Base URL:"), cfg.APIBaseURL)
		if cfg.RequestTimeout > 0 {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Request Timeout:"), cfg.RequestTimeout)
		} else {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Request Timeout:"), "none")
		}
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Time Zone:"), cfg.TimeZone)
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Demo Database:"), cfg.DemoDBPath)
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Demo Address:"), cfg.DemoListenAddr)
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  careerportal config set --key api_base_url --value https://careers.example.com/api
  careerportal config set --key time_zone --value Europe/Berlin
  careerportal config set --key request_timeout --value 15s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("both --key and --value are required")
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("update config: %w", err)
		}

		cmd.Printf("✓ Configuration updated: %s\n", key)

		if err := config.Initialize(); err != nil {
			cmd.PrintErrf("Warning: Could not reload config: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
