package services

import (
	"time"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"

	"github.com/google/uuid"
)

type ElectionService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewElectionService(repo *repositories.Repository, cfg *config.Config) *ElectionService {
	return &ElectionService{repo: repo, cfg: cfg}
}

type CreateElectionRequest struct {
	Name        string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	IsActive    bool
}

func (s *ElectionService) CreateElection(req CreateElectionRequest) (*models.Election, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, models.NewValidationError(models.FieldError{
			Field:   "end_time",
			Message: "End time must be after start time.",
		})
	}

	election := &models.Election{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsActive:    req.IsActive,
	}
	if err := s.repo.ElectionRepo.CreateElection(election); err != nil {
		return nil, err
	}
	return election, nil
}

func (s *ElectionService) UpdateElection(id string, req CreateElectionRequest) (*models.Election, error) {
	election, err := s.repo.ElectionRepo.GetElectionByID(id)
	if err != nil {
		return nil, err
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, models.NewValidationError(models.FieldError{
			Field:   "end_time",
			Message: "End time must be after start time.",
		})
	}

	election.Name = req.Name
	election.Description = req.Description
	election.StartTime = req.StartTime
	election.EndTime = req.EndTime
	election.IsActive = req.IsActive

	if err := s.repo.ElectionRepo.UpdateElection(election); err != nil {
		return nil, err
	}
	return election, nil
}

func (s *ElectionService) GetElection(id string) (*models.Election, error) {
	return s.repo.ElectionRepo.GetElectionByID(id)
}

func (s *ElectionService) ListElections() ([]models.Election, error) {
	return s.repo.ElectionRepo.ListElections()
}

func (s *ElectionService) ListUpcomingElections(limit int) ([]models.Election, error) {
	if limit <= 0 || limit > 20 {
		limit = 3
	}
	return s.repo.ElectionRepo.ListUpcomingElections(limit)
}

// GetActiveElection returns the election currently open for voting, or nil.
func (s *ElectionService) GetActiveElection() (*models.Election, error) {
	return s.repo.ElectionRepo.GetActiveOngoingElection()
}

func (s *ElectionService) DeleteElection(id string) error {
	if _, err := s.repo.ElectionRepo.GetElectionByID(id); err != nil {
		return err
	}
	return s.repo.ElectionRepo.DeleteElection(id)
}
