package seeds

import (
	"context"
	"errors"

	"jewelry_backend/internals/databases/migrations"
	"jewelry_backend/internals/seeds/admins"
	"jewelry_backend/internals/seeds/content"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	Migrate bool
	Seed    bool
	Admin   admins.AdminSeed
	// Content overrides the embedded sample content; nil keeps the default.
	Content []byte
}

// Initialize runs migrations and/or seeders in one transaction. Any failure
// rolls back everything.
func Initialize(ctx context.Context, db *gorm.DB, opt Options, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if !opt.Migrate && !opt.Seed {
		log.Info("nothing to do: neither migrate nor seed requested")
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opt.Migrate {
			log.Info("🛠️ running migrations")
			if err := migrations.RunInOrder(tx, log); err != nil {
				return err
			}
		}
		if opt.Seed {
			log.Info("🌱 running seeders")
			if err := RunAllSeeds(ctx, tx, opt, log); err != nil {
				return err
			}
		}
		return nil
	})
}

func RunAllSeeds(ctx context.Context, db *gorm.DB, opt Options, log *zap.Logger) error {
	if err := admins.SeedAdmin(db, opt.Admin, log); err != nil {
		return errors.Join(errors.New("admin seed failed"), err)
	}
	return content.SeedContent(ctx, db, opt.Content, log)
}
