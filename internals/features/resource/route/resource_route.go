package route

import (
	"jewelry_backend/internals/features/resource/controller"
	"jewelry_backend/internals/features/resource/repository"
	"jewelry_backend/internals/features/resource/schema"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Mount registers the public and admin routes of one resource under
// /<schema.Name>. Literal segments are registered before /:id.
func Mount[T repository.Model](api fiber.Router, db *gorm.DB, s *schema.Schema, auth fiber.Handler) *controller.ResourceController[T] {
	ctrl := controller.NewResourceController(repository.New[T](db, s))

	g := api.Group("/" + s.Name)

	g.Get("/", ctrl.ListPublic)               // 🌐 active rows
	g.Get("/admin", auth, ctrl.ListAdmin)     // 🔐 paginated listing
	g.Get("/admin/all", auth, ctrl.ListAll)   // 🔐 every row
	g.Get("/admin/:id", auth, ctrl.GetAdmin)  // 🔐 any row
	g.Put("/reorder", auth, ctrl.Reorder)     // 🔐 bulk sortOrder
	g.Get("/:id", ctrl.GetPublic)             // 🌐 active row
	g.Post("/", auth, ctrl.Create)            // ➕
	g.Put("/:id", auth, ctrl.Update)          // ✏️
	g.Delete("/:id", auth, ctrl.Delete)       // 🗑️
	g.Patch("/:id/toggle", auth, ctrl.Toggle) // 🔁 isActive

	return ctrl
}
