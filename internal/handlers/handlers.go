package handlers

import (
	"strings"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/middleware"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locationSvc  *services.LocationService
	electionSvc  *services.ElectionService
	candidateSvc *services.CandidateService
	voteSvc      *services.VoteService
	resultsSvc   *services.ResultsService
	settingsSvc  *services.SettingsService
	otpSvc       *services.OTPService
	cfg          *config.Config
}

func NewHandler(
	locationSvc *services.LocationService,
	electionSvc *services.ElectionService,
	candidateSvc *services.CandidateService,
	voteSvc *services.VoteService,
	resultsSvc *services.ResultsService,
	settingsSvc *services.SettingsService,
	otpSvc *services.OTPService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		locationSvc:  locationSvc,
		electionSvc:  electionSvc,
		candidateSvc: candidateSvc,
		voteSvc:      voteSvc,
		resultsSvc:   resultsSvc,
		settingsSvc:  settingsSvc,
		otpSvc:       otpSvc,
		cfg:          cfg,
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	// Public: site info and the voting flow
	router.Get("/settings", h.GetSettings)

	elections := router.Group("/elections")
	{
		elections.Get("/", h.ListElections)
		elections.Get("/active", h.GetActiveElection)
		elections.Get("/:id", h.GetElection)
	}

	// Cascading location selection: district -> mandal -> village -> ward
	router.Get("/districts", h.ListDistricts)
	router.Get("/districts/:id/mandals", h.ListMandals)
	router.Get("/mandals/:id/villages", h.ListVillages)
	router.Get("/villages/:id/wards", h.ListWards)

	router.Get("/villages/:id/candidates", h.ListSarpanchCandidates)
	router.Get("/wards/:id/candidates", h.ListWardCandidates)

	router.Post("/votes", h.CastVote)
	router.Get("/votes/status", h.VoteStatus)

	otp := router.Group("/otp")
	{
		otp.Post("/request", h.RequestOTP)
		otp.Post("/verify", h.VerifyOTP)
	}

	// Staff routes (token verified; tokens issued out of band)
	staff := router.Group("/admin", middleware.JWTMiddleware(h.cfg))
	{
		results := staff.Group("/results", middleware.StaffOrAdmin)
		{
			results.Get("/dashboard", h.ResultsDashboard)
			results.Get("/villages/:id", h.VillageResults)
			results.Get("/villages/:id/export", h.ExportVotesCSV)
		}

		admin := staff.Group("", middleware.AdminOnly)
		{
			admin.Post("/districts", h.CreateDistrict)
			admin.Put("/districts/:id", h.RenameDistrict)
			admin.Delete("/districts/:id", h.DeleteDistrict)
			admin.Post("/districts/:id/mandals", h.CreateMandal)
			admin.Put("/mandals/:id", h.RenameMandal)
			admin.Delete("/mandals/:id", h.DeleteMandal)
			admin.Post("/mandals/:id/villages", h.CreateVillage)
			admin.Put("/villages/:id", h.RenameVillage)
			admin.Patch("/villages/:id/active", h.SetVillageActive)
			admin.Delete("/villages/:id", h.DeleteVillage)
			admin.Post("/villages/:id/wards", h.CreateWard)
			admin.Put("/wards/:id", h.RenameWard)
			admin.Delete("/wards/:id", h.DeleteWard)

			admin.Post("/elections", h.CreateElection)
			admin.Put("/elections/:id", h.UpdateElection)
			admin.Delete("/elections/:id", h.DeleteElection)

			admin.Post("/candidates", h.CreateCandidate)
			admin.Get("/candidates", h.ListCandidates)
			admin.Get("/candidates/:id", h.GetCandidate)
			admin.Put("/candidates/:id", h.UpdateCandidate)
			admin.Post("/candidates/:id/photo", h.UploadCandidatePhoto)
			admin.Delete("/candidates/:id", h.DeleteCandidate)

			admin.Put("/settings", h.UpdateSettings)
			admin.Post("/settings/refresh", h.RefreshSettings)
		}
	}
}

// ErrorHandler is the global fiber error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		logrus.Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return utils.Error(c, message, code)
}

// respondError maps service errors onto HTTP responses. Every error the core
// raises is a per-request recoverable condition.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case *models.ValidationError:
		return utils.FieldErrors(c, "Validation failed", e.FieldMessages())
	case *models.DuplicateVoteError:
		return utils.Error(c, e.Error(), fiber.StatusConflict)
	case *models.NotFoundError:
		return utils.Error(c, e.Error(), fiber.StatusNotFound)
	case *models.StorageConstraintError:
		logrus.Errorf("storage constraint error: %v", e)
		return utils.Error(c, "An unexpected error occurred while saving. Please try again.", fiber.StatusInternalServerError)
	default:
		logrus.Errorf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
		return utils.Error(c, "An unexpected error occurred. Please try again.", fiber.StatusInternalServerError)
	}
}

// clientIP extracts the caller's address, honoring the first entry of any
// X-Forwarded-For header set by a proxy.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.IP()
}
