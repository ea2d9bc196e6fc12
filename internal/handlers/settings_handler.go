package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msumanth960/Votingapp/internal/middleware"
	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/internal/utils"
)

type UpdateSettingsRequest struct {
	SiteName     string `json:"site_name" validate:"required,min=1,max=200"`
	SiteTagline  string `json:"site_tagline" validate:"max=200"`
	FooterText   string `json:"footer_text" validate:"max=500"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"max=20"`
	AboutText    string `json:"about_text"`
}

// GetSettings serves the site branding from the in-memory snapshot.
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	return utils.Success(c, h.settingsSvc.Get(), "Settings retrieved successfully")
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&UpdateSettingsRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*UpdateSettingsRequest)

	settings, err := h.settingsSvc.Update(services.UpdateSettingsRequest{
		SiteName:     req.SiteName,
		SiteTagline:  req.SiteTagline,
		FooterText:   req.FooterText,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		AboutText:    req.AboutText,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, settings, "Settings updated successfully")
}

// RefreshSettings re-reads the stored settings row into the snapshot.
func (h *Handler) RefreshSettings(c *fiber.Ctx) error {
	settings, err := h.settingsSvc.Refresh()
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, settings, "Settings refreshed successfully")
}
