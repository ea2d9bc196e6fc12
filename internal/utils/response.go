package utils

import "github.com/gofiber/fiber/v2"

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Success(c *fiber.Ctx, data interface{}, message string, statusCode ...int) error {
	code := fiber.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	resp := Response{
		Success: true,
		Message: message,
		Data:    data,
	}

	return c.Status(code).JSON(resp)
}

func Error(c *fiber.Ctx, message string, statusCode ...int) error {
	code := fiber.StatusBadRequest
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	resp := Response{
		Success: false,
		Error:   message,
	}

	return c.Status(code).JSON(resp)
}

// FieldErrors reports a validation failure with per-field messages so the
// caller can re-render the form.
func FieldErrors(c *fiber.Ctx, message string, fields map[string]string) error {
	resp := Response{
		Success: false,
		Error:   message,
		Fields:  fields,
	}

	return c.Status(fiber.StatusBadRequest).JSON(resp)
}
