package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title                       CareWave API
// @version                     1.0
// @description                 Clinic management API: patients, appointments, staff, inventory, billing, todos and dashboard analytics.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token from /api/auth/login, sent as "Bearer <token>".
func main() {
	rootCmd := &cobra.Command{
		Use:           "carewave",
		Short:         "CareWave clinic management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(addUserCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
