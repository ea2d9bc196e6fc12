package services

import (
	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"

	"github.com/google/uuid"
)

// CandidateService creates and updates candidacies. Position/ward consistency
// is validated in full before anything is persisted; an invalid candidate is
// never written.
type CandidateService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewCandidateService(repo *repositories.Repository, cfg *config.Config) *CandidateService {
	return &CandidateService{repo: repo, cfg: cfg}
}

type CandidateRequest struct {
	ElectionID   string
	VillageID    string
	WardID       string
	FullName     string
	PositionType string
	PartyName    string
	Symbol       string
	Bio          string
	Promises     string
	IsActive     bool
}

func (s *CandidateService) CreateCandidate(req CandidateRequest) (*models.Candidate, error) {
	candidate, ward, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	candidate.ID = uuid.New()

	if errs := candidate.Validate(ward); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	if err := s.repo.CandidateRepo.CreateCandidate(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *CandidateService) UpdateCandidate(id string, req CandidateRequest) (*models.Candidate, error) {
	existing, err := s.repo.CandidateRepo.GetCandidateByID(id)
	if err != nil {
		return nil, err
	}

	candidate, ward, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	candidate.ID = existing.ID
	candidate.PhotoPath = existing.PhotoPath
	candidate.CreatedAt = existing.CreatedAt

	if errs := candidate.Validate(ward); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	if err := s.repo.CandidateRepo.UpdateCandidate(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// resolve checks referenced rows exist and builds the candidate to validate.
func (s *CandidateService) resolve(req CandidateRequest) (*models.Candidate, *models.Ward, error) {
	election, err := s.repo.ElectionRepo.GetElectionByID(req.ElectionID)
	if err != nil {
		return nil, nil, err
	}
	village, err := s.repo.LocationRepo.GetVillageByID(req.VillageID)
	if err != nil {
		return nil, nil, err
	}

	var ward *models.Ward
	var wardID *uuid.UUID
	if req.WardID != "" {
		ward, err = s.repo.LocationRepo.GetWardByID(req.WardID)
		if err != nil {
			return nil, nil, err
		}
		wardID = &ward.ID
	}

	candidate := &models.Candidate{
		ElectionID:   election.ID,
		VillageID:    village.ID,
		WardID:       wardID,
		FullName:     req.FullName,
		PositionType: req.PositionType,
		PartyName:    req.PartyName,
		Symbol:       req.Symbol,
		Bio:          req.Bio,
		Promises:     req.Promises,
		IsActive:     req.IsActive,
	}
	return candidate, ward, nil
}

func (s *CandidateService) GetCandidate(id string) (*models.Candidate, error) {
	return s.repo.CandidateRepo.GetCandidateByID(id)
}

// ListSarpanchCandidates returns the active Sarpanch candidates for a
// village's race, ordered by name.
func (s *CandidateService) ListSarpanchCandidates(electionID, villageID string) ([]models.Candidate, error) {
	return s.repo.CandidateRepo.ListCandidates(repositories.CandidateFilters{
		ElectionID:   electionID,
		VillageID:    villageID,
		PositionType: models.PositionSarpanch,
		ActiveOnly:   true,
	})
}

// ListWardCandidates returns the active Ward Member candidates for one ward.
func (s *CandidateService) ListWardCandidates(electionID, wardID string) ([]models.Candidate, error) {
	return s.repo.CandidateRepo.ListCandidates(repositories.CandidateFilters{
		ElectionID:   electionID,
		WardID:       wardID,
		PositionType: models.PositionWardMember,
		ActiveOnly:   true,
	})
}

func (s *CandidateService) ListCandidates(f repositories.CandidateFilters) ([]models.Candidate, error) {
	return s.repo.CandidateRepo.ListCandidates(f)
}

func (s *CandidateService) SetCandidatePhoto(id, photoPath string) (*models.Candidate, error) {
	candidate, err := s.repo.CandidateRepo.GetCandidateByID(id)
	if err != nil {
		return nil, err
	}
	candidate.PhotoPath = photoPath
	if err := s.repo.CandidateRepo.UpdateCandidate(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *CandidateService) DeleteCandidate(id string) error {
	if _, err := s.repo.CandidateRepo.GetCandidateByID(id); err != nil {
		return err
	}
	return s.repo.CandidateRepo.DeleteCandidate(id)
}
