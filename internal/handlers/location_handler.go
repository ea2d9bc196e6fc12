package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msumanth960/Votingapp/internal/middleware"
	"github.com/msumanth960/Votingapp/internal/utils"
)

type CreateDistrictRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateMandalRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateVillageRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateWardRequest struct {
	Number uint   `json:"number" validate:"required,min=1"`
	Name   string `json:"name" validate:"max=100"`
}

type SetVillageActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type RenameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func (h *Handler) ListDistricts(c *fiber.Ctx) error {
	districts, err := h.locationSvc.ListDistricts()
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, districts, "Districts retrieved successfully")
}

func (h *Handler) CreateDistrict(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&CreateDistrictRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*CreateDistrictRequest)

	district, err := h.locationSvc.CreateDistrict(req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, district, "District created successfully", fiber.StatusCreated)
}

func (h *Handler) RenameDistrict(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&RenameRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*RenameRequest)

	district, err := h.locationSvc.RenameDistrict(c.Params("id"), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, district, "District updated successfully")
}

func (h *Handler) DeleteDistrict(c *fiber.Ctx) error {
	if err := h.locationSvc.DeleteDistrict(c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, nil, "District deleted successfully")
}

func (h *Handler) ListMandals(c *fiber.Ctx) error {
	mandals, err := h.locationSvc.ListMandals(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, mandals, "Mandals retrieved successfully")
}

func (h *Handler) CreateMandal(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&CreateMandalRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*CreateMandalRequest)

	mandal, err := h.locationSvc.CreateMandal(c.Params("id"), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, mandal, "Mandal created successfully", fiber.StatusCreated)
}

func (h *Handler) RenameMandal(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&RenameRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*RenameRequest)

	mandal, err := h.locationSvc.RenameMandal(c.Params("id"), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, mandal, "Mandal updated successfully")
}

func (h *Handler) DeleteMandal(c *fiber.Ctx) error {
	if err := h.locationSvc.DeleteMandal(c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, nil, "Mandal deleted successfully")
}

func (h *Handler) ListVillages(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("include_inactive", false)
	villages, err := h.locationSvc.ListVillages(c.Params("id"), includeInactive)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, villages, "Villages retrieved successfully")
}

func (h *Handler) CreateVillage(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&CreateVillageRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*CreateVillageRequest)

	village, err := h.locationSvc.CreateVillage(c.Params("id"), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, village, "Village created successfully", fiber.StatusCreated)
}

func (h *Handler) SetVillageActive(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&SetVillageActiveRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*SetVillageActiveRequest)

	village, err := h.locationSvc.SetVillageActive(c.Params("id"), *req.IsActive)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, village, "Village updated successfully")
}

func (h *Handler) RenameVillage(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&RenameRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*RenameRequest)

	village, err := h.locationSvc.RenameVillage(c.Params("id"), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, village, "Village updated successfully")
}

func (h *Handler) DeleteVillage(c *fiber.Ctx) error {
	if err := h.locationSvc.DeleteVillage(c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, nil, "Village deleted successfully")
}

func (h *Handler) ListWards(c *fiber.Ctx) error {
	wards, err := h.locationSvc.ListWards(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, wards, "Wards retrieved successfully")
}

func (h *Handler) CreateWard(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&CreateWardRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*CreateWardRequest)

	ward, err := h.locationSvc.CreateWard(c.Params("id"), req.Number, req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, ward, "Ward created successfully", fiber.StatusCreated)
}

func (h *Handler) RenameWard(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&RenameRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*RenameRequest)

	ward, err := h.locationSvc.RenameWard(c.Params("id"), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, ward, "Ward updated successfully")
}

func (h *Handler) DeleteWard(c *fiber.Ctx) error {
	if err := h.locationSvc.DeleteWard(c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, nil, "Ward deleted successfully")
}
