package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/msumanth960/Votingapp/internal/middleware"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/internal/utils"
)

type ElectionRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=200"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	IsActive    bool      `json:"is_active"`
}

type electionResponse struct {
	models.Election
	Status models.ElectionStatus `json:"status"`
}

func electionView(e models.Election, now time.Time) electionResponse {
	return electionResponse{Election: e, Status: e.Status(now)}
}

func (h *Handler) ListElections(c *fiber.Ctx) error {
	elections, err := h.electionSvc.ListElections()
	if err != nil {
		return h.respondError(c, err)
	}

	now := time.Now()
	views := make([]electionResponse, 0, len(elections))
	for _, e := range elections {
		views = append(views, electionView(e, now))
	}
	return utils.Success(c, views, "Elections retrieved successfully")
}

func (h *Handler) GetElection(c *fiber.Ctx) error {
	election, err := h.electionSvc.GetElection(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, electionView(*election, time.Now()), "Election retrieved successfully")
}

// GetActiveElection serves the landing page: the ongoing election if one is
// open, otherwise the next few upcoming ones.
func (h *Handler) GetActiveElection(c *fiber.Ctx) error {
	election, err := h.electionSvc.GetActiveElection()
	if err != nil {
		return h.respondError(c, err)
	}

	if election != nil {
		return utils.Success(c, fiber.Map{
			"election": electionView(*election, time.Now()),
			"upcoming": []electionResponse{},
		}, "Active election retrieved successfully")
	}

	upcoming, err := h.electionSvc.ListUpcomingElections(3)
	if err != nil {
		return h.respondError(c, err)
	}

	now := time.Now()
	views := make([]electionResponse, 0, len(upcoming))
	for _, e := range upcoming {
		views = append(views, electionView(e, now))
	}
	return utils.Success(c, fiber.Map{
		"election": nil,
		"upcoming": views,
	}, "No election is currently open for voting")
}

func (h *Handler) CreateElection(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&ElectionRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*ElectionRequest)

	election, err := h.electionSvc.CreateElection(services.CreateElectionRequest{
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, electionView(*election, time.Now()), "Election created successfully", fiber.StatusCreated)
}

func (h *Handler) UpdateElection(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&ElectionRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*ElectionRequest)

	election, err := h.electionSvc.UpdateElection(c.Params("id"), services.CreateElectionRequest{
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, electionView(*election, time.Now()), "Election updated successfully")
}

func (h *Handler) DeleteElection(c *fiber.Ctx) error {
	if err := h.electionSvc.DeleteElection(c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, nil, "Election deleted successfully")
}
