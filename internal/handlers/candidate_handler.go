package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msumanth960/Votingapp/internal/middleware"
	"github.com/msumanth960/Votingapp/internal/repositories"
	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/internal/utils"
)

type CandidateRequest struct {
	ElectionID   string `json:"election_id" validate:"required,uuid"`
	VillageID    string `json:"village_id" validate:"required,uuid"`
	WardID       string `json:"ward_id" validate:"omitempty,uuid"`
	FullName     string `json:"full_name" validate:"required,min=2,max=200"`
	PositionType string `json:"position_type" validate:"required,oneof=SARPANCH WARD_MEMBER"`
	PartyName    string `json:"party_name" validate:"max=200"`
	Symbol       string `json:"symbol" validate:"max=100"`
	Bio          string `json:"bio"`
	Promises     string `json:"promises"`
	IsActive     *bool  `json:"is_active"`
}

func (r *CandidateRequest) toService() services.CandidateRequest {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return services.CandidateRequest{
		ElectionID:   r.ElectionID,
		VillageID:    r.VillageID,
		WardID:       r.WardID,
		FullName:     r.FullName,
		PositionType: r.PositionType,
		PartyName:    r.PartyName,
		Symbol:       r.Symbol,
		Bio:          r.Bio,
		Promises:     r.Promises,
		IsActive:     isActive,
	}
}

func (h *Handler) CreateCandidate(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&CandidateRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*CandidateRequest)

	candidate, err := h.candidateSvc.CreateCandidate(req.toService())
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, candidate, "Candidate created successfully", fiber.StatusCreated)
}

func (h *Handler) UpdateCandidate(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&CandidateRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*CandidateRequest)

	candidate, err := h.candidateSvc.UpdateCandidate(c.Params("id"), req.toService())
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, candidate, "Candidate updated successfully")
}

func (h *Handler) GetCandidate(c *fiber.Ctx) error {
	candidate, err := h.candidateSvc.GetCandidate(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, candidate, "Candidate retrieved successfully")
}

// ListCandidates is the staff listing with optional filters on election,
// village, ward and position.
func (h *Handler) ListCandidates(c *fiber.Ctx) error {
	filters := repositories.CandidateFilters{
		ElectionID:   c.Query("election_id"),
		VillageID:    c.Query("village_id"),
		WardID:       c.Query("ward_id"),
		PositionType: c.Query("position"),
		ActiveOnly:   c.QueryBool("active_only", false),
	}

	candidates, err := h.candidateSvc.ListCandidates(filters)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, candidates, "Candidates retrieved successfully")
}

// ListSarpanchCandidates serves the ballot for a village's Sarpanch race.
func (h *Handler) ListSarpanchCandidates(c *fiber.Ctx) error {
	electionID := c.Query("election_id")
	if electionID == "" {
		return utils.Error(c, "election_id query parameter is required", fiber.StatusBadRequest)
	}

	candidates, err := h.candidateSvc.ListSarpanchCandidates(electionID, c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, candidates, "Candidates retrieved successfully")
}

// ListWardCandidates serves the ballot for one ward's Ward Member race.
func (h *Handler) ListWardCandidates(c *fiber.Ctx) error {
	electionID := c.Query("election_id")
	if electionID == "" {
		return utils.Error(c, "election_id query parameter is required", fiber.StatusBadRequest)
	}

	candidates, err := h.candidateSvc.ListWardCandidates(electionID, c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, candidates, "Candidates retrieved successfully")
}

func (h *Handler) UploadCandidatePhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return utils.Error(c, "Photo file is required", fiber.StatusBadRequest)
	}

	if file.Size > h.cfg.MaxUploadSize {
		return utils.Error(c, "Photo exceeds the maximum upload size", fiber.StatusBadRequest)
	}
	if err := utils.ValidateImageFile(file); err != nil {
		return utils.Error(c, err.Error(), fiber.StatusBadRequest)
	}

	filename := utils.GenerateUniqueFilename(file.Filename)
	if err := utils.SaveUploadedFile(file, h.cfg.PhotoDir, filename); err != nil {
		return utils.Error(c, "Failed to save photo", fiber.StatusInternalServerError)
	}

	candidate, err := h.candidateSvc.SetCandidatePhoto(c.Params("id"), "/candidates/"+filename)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, candidate, "Photo uploaded successfully")
}

func (h *Handler) DeleteCandidate(c *fiber.Ctx) error {
	if err := h.candidateSvc.DeleteCandidate(c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, nil, "Candidate deleted successfully")
}
