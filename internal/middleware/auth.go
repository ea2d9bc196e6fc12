package middleware

import (
	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/utils"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// JWTMiddleware verifies staff tokens on reporting and administration routes.
// There is no login flow in this application; tokens are issued out of band
// by the operators and only verified here.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		ContextKey:   "staff",
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token := c.Locals("staff").(*jwt.Token)
			claims := token.Claims.(jwt.MapClaims)
			c.Locals("staff_role", claims["role"])
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
}

// AdminOnly restricts destructive operations (hierarchy deletes, settings) to
// administrators.
func AdminOnly(c *fiber.Ctx) error {
	role, ok := c.Locals("staff_role").(string)
	if !ok || role != "admin" {
		return utils.Error(c, "Admin access required", fiber.StatusForbidden)
	}
	return c.Next()
}

// StaffOrAdmin guards results and export views.
func StaffOrAdmin(c *fiber.Ctx) error {
	role, ok := c.Locals("staff_role").(string)
	if !ok || (role != "admin" && role != "staff") {
		return utils.Error(c, "Staff access required", fiber.StatusForbidden)
	}
	return c.Next()
}
