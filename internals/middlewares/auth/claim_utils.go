// internals/middlewares/auth/claim_utils.go
package auth

import (
	"strings"

	authModel "jewelry_backend/internals/features/users/auth/model"

	"github.com/gofiber/fiber/v2"
)

const (
	LocAdmin   = "admin"
	LocAdminID = "admin_id"
	LocRole    = "admin_role"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, bool) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", false
	}
	// tolerate repeated spaces and any casing of the scheme
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	return tok, tok != ""
}

/* ======== Locals ======== */

func storeAdmin(c *fiber.Ctx, admin *authModel.AdminModel) {
	c.Locals(LocAdmin, admin)
	c.Locals(LocAdminID, admin.ID.String())
	c.Locals(LocRole, admin.Role)
}

// CurrentAdmin returns the admin stored by AdminAuth, or nil.
func CurrentAdmin(c *fiber.Ctx) *authModel.AdminModel {
	admin, _ := c.Locals(LocAdmin).(*authModel.AdminModel)
	return admin
}
