package services

import (
	"sync"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"

	"github.com/sirupsen/logrus"
)

// SettingsService holds the site settings as an in-memory snapshot: loaded
// once at startup, served from memory, refreshable on demand. The stored row
// is keyed by a fixed ID so there is always exactly one.
type SettingsService struct {
	repo *repositories.Repository
	cfg  *config.Config

	mu       sync.RWMutex
	snapshot models.SiteSettings
}

func NewSettingsService(repo *repositories.Repository, cfg *config.Config) *SettingsService {
	return &SettingsService{repo: repo, cfg: cfg}
}

// Load reads (or creates) the settings row and primes the snapshot. Called
// once at startup before the server accepts requests.
func (s *SettingsService) Load() error {
	settings, err := s.repo.SettingsRepo.LoadOrCreate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = *settings
	s.mu.Unlock()

	logrus.Infof("site settings loaded: %s", settings.SiteName)
	return nil
}

// Get returns a copy of the current snapshot.
func (s *SettingsService) Get() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Refresh re-reads the settings row, picking up edits made by other processes.
func (s *SettingsService) Refresh() (models.SiteSettings, error) {
	if err := s.Load(); err != nil {
		return models.SiteSettings{}, err
	}
	return s.Get(), nil
}

type UpdateSettingsRequest struct {
	SiteName     string
	SiteTagline  string
	FooterText   string
	ContactEmail string
	ContactPhone string
	AboutText    string
}

// Update persists new settings and refreshes the snapshot.
func (s *SettingsService) Update(req UpdateSettingsRequest) (models.SiteSettings, error) {
	settings := models.SiteSettings{
		ID:           models.SiteSettingsID,
		SiteName:     req.SiteName,
		SiteTagline:  req.SiteTagline,
		FooterText:   req.FooterText,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		AboutText:    req.AboutText,
	}
	if err := s.repo.SettingsRepo.Update(&settings); err != nil {
		return models.SiteSettings{}, err
	}
	return s.Refresh()
}
