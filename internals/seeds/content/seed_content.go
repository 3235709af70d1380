package content

import (
	"context"
	_ "embed"
	"fmt"

	"jewelry_backend/internals/features/content/model"
	"jewelry_backend/internals/features/content/resources"
	"jewelry_backend/internals/features/resource/repository"
	"jewelry_backend/internals/features/resource/schema"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed data_content.json
var defaultData []byte

// seeder inserts validated rows for one resource unless its table already
// has data. It returns the number of rows inserted.
type seeder func(ctx context.Context, db *gorm.DB, rows []map[string]any) (int, error)

func seederFor[T repository.Model](s *schema.Schema) seeder {
	return func(ctx context.Context, db *gorm.DB, rows []map[string]any) (int, error) {
		repo := repository.New[T](db, s)
		_, total, err := repo.ListAdmin(ctx, repository.ListParams{Limit: 1})
		if err != nil {
			return 0, err
		}
		if total > 0 {
			return 0, nil
		}
		for i, row := range rows {
			vals, errs := s.Validate(row, schema.Create)
			if len(errs) > 0 {
				return 0, fmt.Errorf("%s[%d]: %s", s.Name, i, errs[0].Message)
			}
			if _, err := repo.Create(ctx, vals); err != nil {
				return 0, fmt.Errorf("%s[%d]: %w", s.Name, i, err)
			}
		}
		return len(rows), nil
	}
}

var seeders = map[string]seeder{
	resources.Banners.Name:              seederFor[model.BannerModel](resources.Banners),
	resources.TopBanners.Name:           seederFor[model.TopBannerModel](resources.TopBanners),
	resources.Cultures.Name:             seederFor[model.CultureModel](resources.Cultures),
	resources.Quotes.Name:               seederFor[model.QuoteModel](resources.Quotes),
	resources.FAQs.Name:                 seederFor[model.FAQModel](resources.FAQs),
	resources.Testimonials.Name:         seederFor[model.TestimonialModel](resources.Testimonials),
	resources.TestimonialSections.Name:  seederFor[model.TestimonialSectionModel](resources.TestimonialSections),
	resources.WeddingPlanner.Name:       seederFor[model.WeddingPlannerModel](resources.WeddingPlanner),
	resources.RingCustomization.Name:    seederFor[model.RingCustomizationModel](resources.RingCustomization),
	resources.DiamondCertification.Name: seederFor[model.DiamondCertificationModel](resources.DiamondCertification),
	resources.CelebrationProcess.Name:   seederFor[model.CelebrationProcessModel](resources.CelebrationProcess),
	resources.Galleries.Name:            seederFor[model.GalleryModel](resources.Galleries),
}

// SeedContent loads sample rows keyed by resource name. A nil data uses the
// embedded defaults. Resources that already hold rows are skipped.
func SeedContent(ctx context.Context, db *gorm.DB, data []byte, log *zap.Logger) error {
	if data == nil {
		data = defaultData
	}
	var input map[string][]map[string]any
	if err := sonic.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("decode content seed: %w", err)
	}
	for name := range input {
		if _, ok := seeders[name]; !ok {
			return fmt.Errorf("unknown resource %q in content seed", name)
		}
	}

	for _, s := range resources.All {
		rows := input[s.Name]
		if len(rows) == 0 {
			continue
		}
		n, err := seeders[s.Name](ctx, db, rows)
		if err != nil {
			return err
		}
		if n == 0 {
			log.Info("ℹ️ already has rows, skipped", zap.String("resource", s.Name))
			continue
		}
		log.Info("✅ seeded", zap.String("resource", s.Name), zap.Int("rows", n))
	}
	return nil
}
