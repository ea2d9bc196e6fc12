package services

import (
	"testing"
	"time"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestEnv opens an in-memory database with the real schema, including the
// unique indexes the duplicate-vote guarantee relies on. A single connection
// keeps the in-memory database alive and serializes concurrent access.
func newTestEnv(t *testing.T) (*repositories.Repository, *config.Config) {
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
		ReceiptDir: t.TempDir(),
		PhotoDir:   t.TempDir(),
		OTPTTL:     5 * time.Minute,
	}
	return repositories.NewRepository(db), cfg
}

// fixture is a seeded location tree with one ongoing election.
type fixture struct {
	District *models.District
	Mandal   *models.Mandal
	Village  *models.Village
	Ward     *models.Ward
	Election *models.Election
}

func seedFixture(t *testing.T, repo *repositories.Repository) *fixture {
	t.Helper()

	district := &models.District{ID: uuid.New(), Name: "Ranga Reddy"}
	if err := repo.LocationRepo.CreateDistrict(district); err != nil {
		t.Fatalf("failed to seed district: %v", err)
	}
	mandal := &models.Mandal{ID: uuid.New(), DistrictID: district.ID, Name: "Shamshabad"}
	if err := repo.LocationRepo.CreateMandal(mandal); err != nil {
		t.Fatalf("failed to seed mandal: %v", err)
	}
	village := &models.Village{ID: uuid.New(), MandalID: mandal.ID, Name: "Kothwalguda", IsActive: true}
	if err := repo.LocationRepo.CreateVillage(village); err != nil {
		t.Fatalf("failed to seed village: %v", err)
	}
	ward := &models.Ward{ID: uuid.New(), VillageID: village.ID, Number: 1}
	if err := repo.LocationRepo.CreateWard(ward); err != nil {
		t.Fatalf("failed to seed ward: %v", err)
	}

	now := time.Now()
	election := &models.Election{
		ID:        uuid.New(),
		Name:      "Gram Panchayat 2026",
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
		IsActive:  true,
	}
	if err := repo.ElectionRepo.CreateElection(election); err != nil {
		t.Fatalf("failed to seed election: %v", err)
	}

	return &fixture{
		District: district,
		Mandal:   mandal,
		Village:  village,
		Ward:     ward,
		Election: election,
	}
}

func seedCandidate(t *testing.T, repo *repositories.Repository, f *fixture, name, position string, wardID *uuid.UUID) *models.Candidate {
	t.Helper()

	candidate := &models.Candidate{
		ID:           uuid.New(),
		ElectionID:   f.Election.ID,
		VillageID:    f.Village.ID,
		WardID:       wardID,
		FullName:     name,
		PositionType: position,
		IsActive:     true,
	}
	if err := repo.CandidateRepo.CreateCandidate(candidate); err != nil {
		t.Fatalf("failed to seed candidate %s: %v", name, err)
	}
	return candidate
}
