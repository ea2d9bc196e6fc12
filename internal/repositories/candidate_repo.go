package repositories

import (
	"errors"

	"github.com/msumanth960/Votingapp/internal/models"

	"gorm.io/gorm"
)

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) CreateCandidate(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepo) GetCandidateByID(id string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "candidate", ID: id}
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) ListCandidates(f CandidateFilters) ([]models.Candidate, error) {
	query := r.db.Model(&models.Candidate{})

	if f.ElectionID != "" {
		query = query.Where("election_id = ?", f.ElectionID)
	}
	if f.VillageID != "" {
		query = query.Where("village_id = ?", f.VillageID)
	}
	if f.WardID != "" {
		query = query.Where("ward_id = ?", f.WardID)
	}
	if f.PositionType != "" {
		query = query.Where("position_type = ?", f.PositionType)
	}
	if f.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var candidates []models.Candidate
	if err := query.Order("full_name ASC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepo) UpdateCandidate(candidate *models.Candidate) error {
	return r.db.Save(candidate).Error
}

func (r *candidateRepo) DeleteCandidate(id string) error {
	return r.db.Delete(&models.Candidate{}, "id = ?", id).Error
}
