package repositories

import (
	"errors"

	"github.com/msumanth960/Votingapp/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type voterRepo struct {
	db *gorm.DB
}

func NewVoterRepository(db *gorm.DB) VoterRepository {
	return &voterRepo{db: db}
}

// GetOrCreateByMobile looks up the voter for a mobile number, inserting one on
// first use. The second return value reports whether a row was created. The
// only mutation allowed on an existing voter is backfilling an empty name.
func (r *voterRepo) GetOrCreateByMobile(mobile, name string) (*models.Voter, bool, error) {
	var voter models.Voter
	err := r.db.Where("mobile_number = ?", mobile).First(&voter).Error
	if err == nil {
		if name != "" && voter.Name == "" {
			if err := r.db.Model(&voter).Update("name", name).Error; err != nil {
				return nil, false, err
			}
			voter.Name = name
		}
		return &voter, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	voter = models.Voter{
		ID:           uuid.New(),
		MobileNumber: mobile,
		Name:         name,
	}
	if err := r.db.Create(&voter).Error; err != nil {
		// A concurrent request may have inserted the same mobile between the
		// lookup and the insert; fall back to reading the winner's row.
		if isUniqueViolation(err) {
			var existing models.Voter
			if ferr := r.db.Where("mobile_number = ?", mobile).First(&existing).Error; ferr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &voter, true, nil
}

func (r *voterRepo) GetVoterByMobile(mobile string) (*models.Voter, error) {
	var voter models.Voter
	if err := r.db.Where("mobile_number = ?", mobile).First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "voter", ID: models.MaskMobile(mobile)}
		}
		return nil, err
	}
	return &voter, nil
}

func (r *voterRepo) CountVoters() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Voter{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
