package cmd

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Soumo04/TalentNest/internal/app"
	"github.com/Soumo04/TalentNest/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Local stand-in for the jobs API",
}

var demoServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the jobs/applications API from a local SQLite file",
	Long: `Serve GET /api/jobs, POST /api/applications, GET /api/applications/:id and
PATCH /api/applications/:id/status from a SQLite database seeded with two
demo positions. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = application.Config.DemoListenAddr
		}
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = application.Config.DemoDBPath
		}

		store, err := demo.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open demo store: %w", err)
		}
		defer store.Close()

		gin.SetMode(gin.ReleaseMode)
		srv := demo.NewServer(store, application.Logger, os.Stderr)

		application.Logger.Printf("demo API listening on %s (database %s)", addr, dbPath)
		if err := srv.ListenAndServe(cmd.Context(), addr); err != nil {
			return fmt.Errorf("demo server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.AddCommand(demoServeCmd)

	demoServeCmd.Flags().String("addr", "", "Listen address (default demo_listen_addr)")
	demoServeCmd.Flags().String("db", "", "SQLite file (default demo_db_path)")
}
