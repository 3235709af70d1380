package main

import (
	"fmt"
	"os"

	"jewelry_backend/internals/configs"

	"github.com/spf13/cobra"
)

var envFile string

// rootCmd runs the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "jewelry",
	Short: "Jewelry CMS backend",
	Long: `Jewelry CMS backend: content API, admin auth, analytics and uploads.

Commands:
  serve   - run the HTTP API (default)
  migrate - create or update the database schema
  seed    - load the first admin and sample content
  admin   - manage content against a running server`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configs.LoadEnv(envFile)
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
