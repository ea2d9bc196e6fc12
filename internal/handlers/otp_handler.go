package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msumanth960/Votingapp/internal/middleware"
	"github.com/msumanth960/Votingapp/internal/utils"
)

type RequestOTPRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
}

type VerifyOTPRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	Code         string `json:"code" validate:"required,len=6,numeric"`
}

// RequestOTP issues a one-time code for the mobile number. Delivery is
// stubbed; the response carries only the expiry.
func (h *Handler) RequestOTP(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&RequestOTPRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*RequestOTPRequest)

	expiresAt, err := h.otpSvc.RequestOTP(req.MobileNumber)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"expires_at": expiresAt}, "OTP issued successfully")
}

func (h *Handler) VerifyOTP(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&VerifyOTPRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*VerifyOTPRequest)

	if err := h.otpSvc.VerifyOTP(req.MobileNumber, req.Code); err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, nil, "OTP verified successfully")
}
