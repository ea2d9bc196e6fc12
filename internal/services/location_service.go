package services

import (
	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LocationService manages the District -> Mandal -> Village -> Ward hierarchy
// and the child queries behind the cascading selection menus.
type LocationService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewLocationService(repo *repositories.Repository, cfg *config.Config) *LocationService {
	return &LocationService{repo: repo, cfg: cfg}
}

func (s *LocationService) CreateDistrict(name string) (*models.District, error) {
	district := &models.District{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.repo.LocationRepo.CreateDistrict(district); err != nil {
		return nil, err
	}
	return district, nil
}

func (s *LocationService) ListDistricts() ([]models.District, error) {
	return s.repo.LocationRepo.ListDistricts()
}

func (s *LocationService) CreateMandal(districtID, name string) (*models.Mandal, error) {
	district, err := s.repo.LocationRepo.GetDistrictByID(districtID)
	if err != nil {
		return nil, err
	}

	mandal := &models.Mandal{
		ID:         uuid.New(),
		DistrictID: district.ID,
		Name:       name,
	}
	if err := s.repo.LocationRepo.CreateMandal(mandal); err != nil {
		return nil, err
	}
	return mandal, nil
}

func (s *LocationService) ListMandals(districtID string) ([]models.Mandal, error) {
	return s.repo.LocationRepo.ListMandalsByDistrict(districtID)
}

func (s *LocationService) RenameDistrict(id, name string) (*models.District, error) {
	district, err := s.repo.LocationRepo.GetDistrictByID(id)
	if err != nil {
		return nil, err
	}
	district.Name = name
	if err := s.repo.LocationRepo.UpdateDistrict(district); err != nil {
		return nil, err
	}
	return district, nil
}

func (s *LocationService) RenameMandal(id, name string) (*models.Mandal, error) {
	mandal, err := s.repo.LocationRepo.GetMandalByID(id)
	if err != nil {
		return nil, err
	}
	mandal.Name = name
	if err := s.repo.LocationRepo.UpdateMandal(mandal); err != nil {
		return nil, err
	}
	return mandal, nil
}

func (s *LocationService) CreateVillage(mandalID, name string) (*models.Village, error) {
	mandal, err := s.repo.LocationRepo.GetMandalByID(mandalID)
	if err != nil {
		return nil, err
	}

	village := &models.Village{
		ID:       uuid.New(),
		MandalID: mandal.ID,
		Name:     name,
		IsActive: true,
	}
	if err := s.repo.LocationRepo.CreateVillage(village); err != nil {
		return nil, err
	}
	return village, nil
}

func (s *LocationService) GetVillage(id string) (*models.Village, error) {
	return s.repo.LocationRepo.GetVillageByID(id)
}

// ListVillages returns the mandal's villages for the public selection menu;
// inactive villages are hidden from voters but visible to staff.
func (s *LocationService) ListVillages(mandalID string, includeInactive bool) ([]models.Village, error) {
	return s.repo.LocationRepo.ListVillagesByMandal(mandalID, !includeInactive)
}

func (s *LocationService) SetVillageActive(id string, active bool) (*models.Village, error) {
	village, err := s.repo.LocationRepo.GetVillageByID(id)
	if err != nil {
		return nil, err
	}
	village.IsActive = active
	if err := s.repo.LocationRepo.UpdateVillage(village); err != nil {
		return nil, err
	}
	return village, nil
}

func (s *LocationService) CreateWard(villageID string, number uint, name string) (*models.Ward, error) {
	village, err := s.repo.LocationRepo.GetVillageByID(villageID)
	if err != nil {
		return nil, err
	}

	ward := &models.Ward{
		ID:        uuid.New(),
		VillageID: village.ID,
		Number:    number,
		Name:      name,
	}
	if err := s.repo.LocationRepo.CreateWard(ward); err != nil {
		return nil, err
	}
	return ward, nil
}

func (s *LocationService) ListWards(villageID string) ([]models.Ward, error) {
	return s.repo.LocationRepo.ListWardsByVillage(villageID)
}

func (s *LocationService) RenameWard(id, name string) (*models.Ward, error) {
	ward, err := s.repo.LocationRepo.GetWardByID(id)
	if err != nil {
		return nil, err
	}
	ward.Name = name
	if err := s.repo.LocationRepo.UpdateWard(ward); err != nil {
		return nil, err
	}
	return ward, nil
}

func (s *LocationService) RenameVillage(id, name string) (*models.Village, error) {
	village, err := s.repo.LocationRepo.GetVillageByID(id)
	if err != nil {
		return nil, err
	}
	village.Name = name
	if err := s.repo.LocationRepo.UpdateVillage(village); err != nil {
		return nil, err
	}
	return village, nil
}

// DeleteDistrict removes a district and everything below it, including any
// candidates and votes. Rare and destructive; the caller confirms intent.
func (s *LocationService) DeleteDistrict(id string) error {
	if _, err := s.repo.LocationRepo.GetDistrictByID(id); err != nil {
		return err
	}
	logrus.Warnf("deleting district %s and all descendants", id)
	return s.repo.LocationRepo.DeleteDistrict(id)
}

func (s *LocationService) DeleteMandal(id string) error {
	if _, err := s.repo.LocationRepo.GetMandalByID(id); err != nil {
		return err
	}
	logrus.Warnf("deleting mandal %s and all descendants", id)
	return s.repo.LocationRepo.DeleteMandal(id)
}

func (s *LocationService) DeleteVillage(id string) error {
	if _, err := s.repo.LocationRepo.GetVillageByID(id); err != nil {
		return err
	}
	logrus.Warnf("deleting village %s and all descendants", id)
	return s.repo.LocationRepo.DeleteVillage(id)
}

func (s *LocationService) DeleteWard(id string) error {
	if _, err := s.repo.LocationRepo.GetWardByID(id); err != nil {
		return err
	}
	return s.repo.LocationRepo.DeleteWard(id)
}
