// Package migrations creates the schema with ordered AutoMigrate steps.
package migrations

import (
	"fmt"

	analyticsModel "jewelry_backend/internals/features/analytics/model"
	contentModel "jewelry_backend/internals/features/content/model"
	authModel "jewelry_backend/internals/features/users/auth/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type step struct {
	name   string
	models []any
}

// steps run in order; parents before children.
func steps() []step {
	return []step{
		{"admins", []any{&authModel.AdminModel{}}},
		{"content", contentModel.All()},
		{"analytics", analyticsModel.All()},
	}
}

func RunInOrder(db *gorm.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for _, s := range steps() {
		log.Info(" -> migrating", zap.String("step", s.name))
		if err := db.AutoMigrate(s.models...); err != nil {
			log.Error("migration failed", zap.String("step", s.name), zap.Error(err))
			return fmt.Errorf("migrate %s: %w", s.name, err)
		}
	}
	log.Info("✅ migrations complete")
	return nil
}

// Tables lists every table the migrations own, in creation order.
func Tables(db *gorm.DB) ([]string, error) {
	var out []string
	for _, s := range steps() {
		for _, m := range s.models {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(m); err != nil {
				return nil, err
			}
			out = append(out, stmt.Schema.Table)
		}
	}
	return out, nil
}
