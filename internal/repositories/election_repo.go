package repositories

import (
	"errors"
	"time"

	"github.com/msumanth960/Votingapp/internal/models"

	"gorm.io/gorm"
)

type electionRepo struct {
	db *gorm.DB
}

func NewElectionRepository(db *gorm.DB) ElectionRepository {
	return &electionRepo{db: db}
}

func (r *electionRepo) CreateElection(election *models.Election) error {
	return r.db.Create(election).Error
}

func (r *electionRepo) GetElectionByID(id string) (*models.Election, error) {
	var election models.Election
	if err := r.db.Where("id = ?", id).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "election", ID: id}
		}
		return nil, err
	}
	return &election, nil
}

func (r *electionRepo) ListElections() ([]models.Election, error) {
	var elections []models.Election
	if err := r.db.Order("start_time DESC").Find(&elections).Error; err != nil {
		return nil, err
	}
	return elections, nil
}

func (r *electionRepo) ListUpcomingElections(limit int) ([]models.Election, error) {
	var elections []models.Election
	err := r.db.
		Where("is_active = ? AND start_time > ?", true, time.Now()).
		Order("start_time ASC").
		Limit(limit).
		Find(&elections).Error
	if err != nil {
		return nil, err
	}
	return elections, nil
}

// GetActiveOngoingElection returns the election whose voting window contains
// the current instant, or nil when no election is open.
func (r *electionRepo) GetActiveOngoingElection() (*models.Election, error) {
	now := time.Now()

	var election models.Election
	err := r.db.
		Where("is_active = ? AND start_time <= ? AND end_time >= ?", true, now, now).
		Order("start_time DESC").
		First(&election).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &election, nil
}

// GetLatestElectionWithVotesForVillage is the reporting fallback when no
// election is ongoing: the most recent election that has votes for the village.
func (r *electionRepo) GetLatestElectionWithVotesForVillage(villageID string) (*models.Election, error) {
	var election models.Election
	err := r.db.
		Joins("JOIN votes ON votes.election_id = elections.id").
		Where("votes.village_id = ?", villageID).
		Order("elections.start_time DESC").
		First(&election).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &election, nil
}

func (r *electionRepo) UpdateElection(election *models.Election) error {
	return r.db.Save(election).Error
}

func (r *electionRepo) DeleteElection(id string) error {
	return r.db.Delete(&models.Election{}, "id = ?", id).Error
}
