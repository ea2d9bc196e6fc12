package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"
	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testJWTSecret = "handler-test-secret"

type testApp struct {
	app  *fiber.App
	repo *repositories.Repository

	village  *models.Village
	ward     *models.Ward
	election *models.Election
}

// newTestApp wires the full HTTP stack against an in-memory database, the
// same assembly main performs.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := repositories.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		Env:        "test",
		JWTSecret:  testJWTSecret,
		ReceiptDir: t.TempDir(),
		PhotoDir:   t.TempDir(),
		OTPTTL:     5 * time.Minute,
	}
	repo := repositories.NewRepository(db)

	locationSvc := services.NewLocationService(repo, cfg)
	electionSvc := services.NewElectionService(repo, cfg)
	candidateSvc := services.NewCandidateService(repo, cfg)
	voteSvc := services.NewVoteService(repo, cfg)
	resultsSvc := services.NewResultsService(repo, cfg)
	settingsSvc := services.NewSettingsService(repo, cfg)
	otpSvc := services.NewOTPService(repo, cfg)

	if err := settingsSvc.Load(); err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h := NewHandler(locationSvc, electionSvc, candidateSvc, voteSvc, resultsSvc, settingsSvc, otpSvc, cfg)
	h.RegisterRoutes(app.Group("/api/v1"))

	// Seeded location tree and an ongoing election.
	district := &models.District{ID: uuid.New(), Name: "Nalgonda"}
	if err := repo.LocationRepo.CreateDistrict(district); err != nil {
		t.Fatalf("seed district: %v", err)
	}
	mandal := &models.Mandal{ID: uuid.New(), DistrictID: district.ID, Name: "Devarakonda"}
	if err := repo.LocationRepo.CreateMandal(mandal); err != nil {
		t.Fatalf("seed mandal: %v", err)
	}
	village := &models.Village{ID: uuid.New(), MandalID: mandal.ID, Name: "Dindi", IsActive: true}
	if err := repo.LocationRepo.CreateVillage(village); err != nil {
		t.Fatalf("seed village: %v", err)
	}
	ward := &models.Ward{ID: uuid.New(), VillageID: village.ID, Number: 1}
	if err := repo.LocationRepo.CreateWard(ward); err != nil {
		t.Fatalf("seed ward: %v", err)
	}
	election := &models.Election{
		ID:        uuid.New(),
		Name:      "GP 2026",
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
		IsActive:  true,
	}
	if err := repo.ElectionRepo.CreateElection(election); err != nil {
		t.Fatalf("seed election: %v", err)
	}

	return &testApp{app: app, repo: repo, village: village, ward: ward, election: election}
}

func (ta *testApp) request(t *testing.T, method, path, body, token string) (int, utils.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var envelope utils.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return resp.StatusCode, envelope
}

func staffToken(t *testing.T, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (ta *testApp) voteBody(mobile string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"election_id":   ta.election.ID.String(),
		"village_id":    ta.village.ID.String(),
		"mobile_number": mobile,
	})
	return string(body)
}

func TestCastVoteEndpoint(t *testing.T) {
	ta := newTestApp(t)

	t.Run("valid ballot is recorded", func(t *testing.T) {
		status, envelope := ta.request(t, http.MethodPost, "/api/v1/votes", ta.voteBody("9876543210"), "")
		if status != fiber.StatusCreated {
			t.Fatalf("status = %d, want %d (%s)", status, fiber.StatusCreated, envelope.Error)
		}
		if !envelope.Success {
			t.Error("success = false, want true")
		}
		data, ok := envelope.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("data = %T, want an object", envelope.Data)
		}
		if data["receipt_code"] == "" {
			t.Error("response carries no receipt code")
		}
	})

	t.Run("second ballot from the same voter is a conflict", func(t *testing.T) {
		status, envelope := ta.request(t, http.MethodPost, "/api/v1/votes", ta.voteBody("9876543210"), "")
		if status != fiber.StatusConflict {
			t.Fatalf("status = %d, want %d", status, fiber.StatusConflict)
		}
		if !strings.Contains(envelope.Error, "******3210") {
			t.Errorf("error = %q, want it to name the masked mobile", envelope.Error)
		}
	})

	t.Run("invalid mobile gets field-tagged 400", func(t *testing.T) {
		status, envelope := ta.request(t, http.MethodPost, "/api/v1/votes", ta.voteBody("12345"), "")
		if status != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want %d", status, fiber.StatusBadRequest)
		}
		if envelope.Fields["mobile_number"] == "" {
			t.Errorf("fields = %v, want a mobile_number message", envelope.Fields)
		}
	})

	t.Run("missing election_id is rejected by request validation", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"village_id":    ta.village.ID.String(),
			"mobile_number": "9876543210",
		})
		status, _ := ta.request(t, http.MethodPost, "/api/v1/votes", string(body), "")
		if status != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want %d", status, fiber.StatusBadRequest)
		}
	})
}

func TestVoteStatusEndpoint(t *testing.T) {
	ta := newTestApp(t)

	path := "/api/v1/votes/status?election_id=" + ta.election.ID.String() +
		"&village_id=" + ta.village.ID.String() + "&mobile_number=9876543210"

	status, envelope := ta.request(t, http.MethodGet, path, "", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
	}
	data := envelope.Data.(map[string]interface{})
	if data["has_voted"] != false {
		t.Errorf("has_voted = %v, want false", data["has_voted"])
	}

	if status, _ := ta.request(t, http.MethodPost, "/api/v1/votes", ta.voteBody("9876543210"), ""); status != fiber.StatusCreated {
		t.Fatalf("vote status = %d, want %d", status, fiber.StatusCreated)
	}

	_, envelope = ta.request(t, http.MethodGet, path, "", "")
	data = envelope.Data.(map[string]interface{})
	if data["has_voted"] != true {
		t.Errorf("has_voted = %v, want true after casting", data["has_voted"])
	}
}

func TestPublicReadEndpoints(t *testing.T) {
	ta := newTestApp(t)

	t.Run("settings", func(t *testing.T) {
		status, envelope := ta.request(t, http.MethodGet, "/api/v1/settings", "", "")
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
		}
		data := envelope.Data.(map[string]interface{})
		if data["site_name"] != "Local Elections" {
			t.Errorf("site_name = %v, want the default", data["site_name"])
		}
	})

	t.Run("active election", func(t *testing.T) {
		status, envelope := ta.request(t, http.MethodGet, "/api/v1/elections/active", "", "")
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
		}
		data := envelope.Data.(map[string]interface{})
		if data["election"] == nil {
			t.Error("election = nil, want the ongoing one")
		}
	})

	t.Run("districts", func(t *testing.T) {
		status, envelope := ta.request(t, http.MethodGet, "/api/v1/districts", "", "")
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
		}
		list, ok := envelope.Data.([]interface{})
		if !ok || len(list) != 1 {
			t.Errorf("data = %v, want one district", envelope.Data)
		}
	})

	t.Run("unknown village lists no wards", func(t *testing.T) {
		status, envelope := ta.request(t, http.MethodGet, "/api/v1/villages/"+uuid.NewString()+"/wards", "", "")
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
		}
		if list, ok := envelope.Data.([]interface{}); ok && len(list) != 0 {
			t.Errorf("data = %v, want an empty list", envelope.Data)
		}
	})

	t.Run("vote for unknown election is a 404", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"election_id":   uuid.NewString(),
			"village_id":    ta.village.ID.String(),
			"mobile_number": "9876543210",
		})
		status, _ := ta.request(t, http.MethodPost, "/api/v1/votes", string(body), "")
		if status != fiber.StatusNotFound {
			t.Fatalf("status = %d, want %d", status, fiber.StatusNotFound)
		}
	})
}

func TestStaffRouteAuthorization(t *testing.T) {
	ta := newTestApp(t)
	body := `{"name":"Warangal"}`

	t.Run("no token", func(t *testing.T) {
		status, _ := ta.request(t, http.MethodPost, "/api/v1/admin/districts", body, "")
		if status != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", status, fiber.StatusUnauthorized)
		}
	})

	t.Run("staff role cannot administer", func(t *testing.T) {
		status, _ := ta.request(t, http.MethodPost, "/api/v1/admin/districts", body, staffToken(t, "staff"))
		if status != fiber.StatusForbidden {
			t.Fatalf("status = %d, want %d", status, fiber.StatusForbidden)
		}
	})

	t.Run("staff role can read results", func(t *testing.T) {
		status, _ := ta.request(t, http.MethodGet, "/api/v1/admin/results/dashboard", "", staffToken(t, "staff"))
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
		}
	})

	t.Run("admin can create and duplicate is field-tagged", func(t *testing.T) {
		token := staffToken(t, "admin")
		status, _ := ta.request(t, http.MethodPost, "/api/v1/admin/districts", body, token)
		if status != fiber.StatusCreated {
			t.Fatalf("status = %d, want %d", status, fiber.StatusCreated)
		}

		status, envelope := ta.request(t, http.MethodPost, "/api/v1/admin/districts", body, token)
		if status != fiber.StatusBadRequest {
			t.Fatalf("duplicate status = %d, want %d", status, fiber.StatusBadRequest)
		}
		if envelope.Fields["name"] == "" {
			t.Errorf("fields = %v, want a name message", envelope.Fields)
		}
	})
}

func TestUnexpectedErrorsAreGeneric500s(t *testing.T) {
	ta := newTestApp(t)

	h := &Handler{}
	ta.app.Get("/boom", func(c *fiber.Ctx) error {
		return h.respondError(c, errors.New("driver: connection reset"))
	})

	status, envelope := ta.request(t, http.MethodGet, "/boom", "", "")
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", status, fiber.StatusInternalServerError)
	}
	if strings.Contains(envelope.Error, "driver") {
		t.Errorf("error = %q, want the driver detail hidden", envelope.Error)
	}
}
