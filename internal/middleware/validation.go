package middleware

import (
	"github.com/msumanth960/Votingapp/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateBody parses and validates the request body into dest. Handlers
// invoke it inline at the top of the route handler, so on success it returns
// nil rather than advancing the handler chain. Domain-level validation
// (candidate/vote consistency) happens in the services; this only covers
// request shape.
func ValidateBody(dest interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.BodyParser(dest); err != nil {
			return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
		}

		if err := validate.Struct(dest); err != nil {
			validationErrors := err.(validator.ValidationErrors)
			firstError := validationErrors[0]

			var errorMessage string
			switch firstError.Tag() {
			case "required":
				errorMessage = firstError.Field() + " is required"
			case "email":
				errorMessage = "Invalid email format"
			case "min":
				errorMessage = firstError.Field() + " is too small"
			case "max":
				errorMessage = firstError.Field() + " is too large"
			case "len":
				errorMessage = firstError.Field() + " must be exactly " + firstError.Param() + " characters"
			case "uuid":
				errorMessage = "Invalid UUID format"
			case "oneof":
				errorMessage = firstError.Field() + " must be one of: " + firstError.Param()
			case "numeric":
				errorMessage = firstError.Field() + " must contain only digits"
			default:
				errorMessage = "Validation failed for " + firstError.Field()
			}

			return utils.Error(c, errorMessage, fiber.StatusBadRequest)
		}

		c.Locals("validatedBody", dest)
		return nil
	}
}
