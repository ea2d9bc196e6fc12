package repositories

import (
	"errors"
	"fmt"

	"github.com/msumanth960/Votingapp/internal/models"

	"gorm.io/gorm"
)

// duplicateNameError is the field-tagged error for a name already taken
// within its parent scope. Used both by the pre-insert check and when a
// concurrent create slips past it into the unique index.
func duplicateNameError(field, message string) error {
	return models.NewValidationError(models.FieldError{Field: field, Message: message})
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

// Districts

func (r *locationRepo) CreateDistrict(district *models.District) error {
	message := fmt.Sprintf("District '%s' already exists.", district.Name)

	var existing models.District
	if err := r.db.Where("name = ?", district.Name).First(&existing).Error; err == nil {
		return duplicateNameError("name", message)
	}
	if err := r.db.Create(district).Error; err != nil {
		if isUniqueViolation(err) {
			return duplicateNameError("name", message)
		}
		return err
	}
	return nil
}

func (r *locationRepo) GetDistrictByID(id string) (*models.District, error) {
	var district models.District
	if err := r.db.Where("id = ?", id).First(&district).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "district", ID: id}
		}
		return nil, err
	}
	return &district, nil
}

func (r *locationRepo) ListDistricts() ([]models.District, error) {
	var districts []models.District
	if err := r.db.Order("name ASC").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *locationRepo) UpdateDistrict(district *models.District) error {
	return r.db.Save(district).Error
}

// DeleteDistrict removes the district and cascades to all mandals, villages,
// wards, candidates and votes below it. Destructive; callers must be explicit.
func (r *locationRepo) DeleteDistrict(id string) error {
	return r.db.Select("Mandals").Delete(&models.District{}, "id = ?", id).Error
}

// Mandals

func (r *locationRepo) CreateMandal(mandal *models.Mandal) error {
	message := fmt.Sprintf("Mandal '%s' already exists in this district.", mandal.Name)

	var existing models.Mandal
	err := r.db.Where("district_id = ? AND name = ?", mandal.DistrictID, mandal.Name).First(&existing).Error
	if err == nil {
		return duplicateNameError("name", message)
	}
	if err := r.db.Create(mandal).Error; err != nil {
		if isUniqueViolation(err) {
			return duplicateNameError("name", message)
		}
		return err
	}
	return nil
}

func (r *locationRepo) GetMandalByID(id string) (*models.Mandal, error) {
	var mandal models.Mandal
	if err := r.db.Preload("District").Where("id = ?", id).First(&mandal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "mandal", ID: id}
		}
		return nil, err
	}
	return &mandal, nil
}

func (r *locationRepo) ListMandalsByDistrict(districtID string) ([]models.Mandal, error) {
	var mandals []models.Mandal
	if err := r.db.Where("district_id = ?", districtID).Order("name ASC").Find(&mandals).Error; err != nil {
		return nil, err
	}
	return mandals, nil
}

func (r *locationRepo) UpdateMandal(mandal *models.Mandal) error {
	return r.db.Save(mandal).Error
}

func (r *locationRepo) DeleteMandal(id string) error {
	return r.db.Select("Villages").Delete(&models.Mandal{}, "id = ?", id).Error
}

// Villages

func (r *locationRepo) CreateVillage(village *models.Village) error {
	message := fmt.Sprintf("Village '%s' already exists in this mandal.", village.Name)

	var existing models.Village
	err := r.db.Where("mandal_id = ? AND name = ?", village.MandalID, village.Name).First(&existing).Error
	if err == nil {
		return duplicateNameError("name", message)
	}
	if err := r.db.Create(village).Error; err != nil {
		if isUniqueViolation(err) {
			return duplicateNameError("name", message)
		}
		return err
	}
	return nil
}

func (r *locationRepo) GetVillageByID(id string) (*models.Village, error) {
	var village models.Village
	if err := r.db.Preload("Mandal.District").Where("id = ?", id).First(&village).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "village", ID: id}
		}
		return nil, err
	}
	return &village, nil
}

func (r *locationRepo) ListVillagesByMandal(mandalID string, activeOnly bool) ([]models.Village, error) {
	query := r.db.Where("mandal_id = ?", mandalID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var villages []models.Village
	if err := query.Order("name ASC").Find(&villages).Error; err != nil {
		return nil, err
	}
	return villages, nil
}

func (r *locationRepo) UpdateVillage(village *models.Village) error {
	return r.db.Save(village).Error
}

func (r *locationRepo) DeleteVillage(id string) error {
	return r.db.Select("Wards").Delete(&models.Village{}, "id = ?", id).Error
}

// Wards

func (r *locationRepo) CreateWard(ward *models.Ward) error {
	message := fmt.Sprintf("Ward %d already exists in this village.", ward.Number)

	var existing models.Ward
	err := r.db.Where("village_id = ? AND number = ?", ward.VillageID, ward.Number).First(&existing).Error
	if err == nil {
		return duplicateNameError("number", message)
	}
	if err := r.db.Create(ward).Error; err != nil {
		if isUniqueViolation(err) {
			return duplicateNameError("number", message)
		}
		return err
	}
	return nil
}

func (r *locationRepo) GetWardByID(id string) (*models.Ward, error) {
	var ward models.Ward
	if err := r.db.Preload("Village").Where("id = ?", id).First(&ward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "ward", ID: id}
		}
		return nil, err
	}
	return &ward, nil
}

func (r *locationRepo) ListWardsByVillage(villageID string) ([]models.Ward, error) {
	var wards []models.Ward
	if err := r.db.Where("village_id = ?", villageID).Order("number ASC").Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

func (r *locationRepo) UpdateWard(ward *models.Ward) error {
	return r.db.Save(ward).Error
}

func (r *locationRepo) DeleteWard(id string) error {
	return r.db.Delete(&models.Ward{}, "id = ?", id).Error
}
