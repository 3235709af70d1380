package main

import (
	"fmt"
	"os"

	"jewelry_backend/internals/seeds"
	"jewelry_backend/internals/seeds/admins"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedMigrate bool
	seedFile    string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if err := seeds.Initialize(cmd.Context(), db, seeds.Options{Migrate: true}, log); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("✅ migrations applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the first admin and sample content",
	Long: `Seed the super_admin from ADMIN_EMAIL, ADMIN_USERNAME and ADMIN_PASSWORD,
then fill every empty content table with sample rows. Tables that already
have rows are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		opt := seeds.Options{
			Migrate: seedMigrate,
			Seed:    true,
			Admin: admins.AdminSeed{
				Email:    cfg.AdminEmail,
				Username: cfg.AdminUsername,
				Password: cfg.AdminPassword,
			},
		}
		if seedFile != "" {
			raw, err := os.ReadFile(seedFile)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			opt.Content = raw
		}
		if err := seeds.Initialize(cmd.Context(), db, opt, log); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info("✅ seed complete", zap.Bool("migrated", seedMigrate))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", true, "run migrations in the same transaction first")
	seedCmd.Flags().StringVar(&seedFile, "file", "", "JSON file with sample content, keyed by resource name")
}
