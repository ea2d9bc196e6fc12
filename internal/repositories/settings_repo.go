package repositories

import (
	"errors"

	"github.com/msumanth960/Votingapp/internal/models"

	"gorm.io/gorm"
)

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// LoadOrCreate returns the single settings row, inserting the defaults on
// first access. The row is keyed by a fixed ID so there is exactly one.
func (r *settingsRepo) LoadOrCreate() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.Where("id = ?", models.SiteSettingsID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.SiteSettings{
		ID:          models.SiteSettingsID,
		SiteName:    "Local Elections",
		SiteTagline: "Voting System",
		FooterText:  "Gram Panchayat Elections Management",
	}
	if err := r.db.Create(&settings).Error; err != nil {
		// Lost a race with another process creating the row; read theirs.
		if isUniqueViolation(err) {
			var existing models.SiteSettings
			if ferr := r.db.Where("id = ?", models.SiteSettingsID).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Update(settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	return r.db.Save(settings).Error
}
