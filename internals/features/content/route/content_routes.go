package route

import (
	"jewelry_backend/internals/features/content/model"
	"jewelry_backend/internals/features/content/resources"
	resourceRoute "jewelry_backend/internals/features/resource/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContentRoutes mounts every content resource under api. auth guards the
// admin routes of each resource.
func ContentRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	resourceRoute.Mount[model.BannerModel](api, db, resources.Banners, auth)
	resourceRoute.Mount[model.TopBannerModel](api, db, resources.TopBanners, auth)
	resourceRoute.Mount[model.CultureModel](api, db, resources.Cultures, auth)
	resourceRoute.Mount[model.QuoteModel](api, db, resources.Quotes, auth)
	resourceRoute.Mount[model.FAQModel](api, db, resources.FAQs, auth)
	resourceRoute.Mount[model.TestimonialModel](api, db, resources.Testimonials, auth)
	resourceRoute.Mount[model.TestimonialSectionModel](api, db, resources.TestimonialSections, auth)
	resourceRoute.Mount[model.WeddingPlannerModel](api, db, resources.WeddingPlanner, auth)
	resourceRoute.Mount[model.RingCustomizationModel](api, db, resources.RingCustomization, auth)
	resourceRoute.Mount[model.DiamondCertificationModel](api, db, resources.DiamondCertification, auth)
	resourceRoute.Mount[model.CelebrationProcessModel](api, db, resources.CelebrationProcess, auth)
	resourceRoute.Mount[model.GalleryModel](api, db, resources.Galleries, auth)
}
