package repositories

import (
	"github.com/msumanth960/Votingapp/internal/models"

	"gorm.io/gorm"
)

type Repository struct {
	DB            *gorm.DB
	LocationRepo  LocationRepository
	ElectionRepo  ElectionRepository
	CandidateRepo CandidateRepository
	VoterRepo     VoterRepository
	VoteRepo      VoteRepository
	SettingsRepo  SettingsRepository
	OTPRepo       OTPRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:            db,
		LocationRepo:  NewLocationRepository(db),
		ElectionRepo:  NewElectionRepository(db),
		CandidateRepo: NewCandidateRepository(db),
		VoterRepo:     NewVoterRepository(db),
		VoteRepo:      NewVoteRepository(db),
		SettingsRepo:  NewSettingsRepository(db),
		OTPRepo:       NewOTPRepository(db),
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.District{},
		&models.Mandal{},
		&models.Village{},
		&models.Ward{},
		&models.Election{},
		&models.Candidate{},
		&models.Voter{},
		&models.Vote{},
		&models.SiteSettings{},
		&models.OTPRequest{},
	)
}

// Interface definitions

type LocationRepository interface {
	CreateDistrict(district *models.District) error
	GetDistrictByID(id string) (*models.District, error)
	ListDistricts() ([]models.District, error)
	UpdateDistrict(district *models.District) error
	DeleteDistrict(id string) error

	CreateMandal(mandal *models.Mandal) error
	GetMandalByID(id string) (*models.Mandal, error)
	ListMandalsByDistrict(districtID string) ([]models.Mandal, error)
	UpdateMandal(mandal *models.Mandal) error
	DeleteMandal(id string) error

	CreateVillage(village *models.Village) error
	GetVillageByID(id string) (*models.Village, error)
	ListVillagesByMandal(mandalID string, activeOnly bool) ([]models.Village, error)
	UpdateVillage(village *models.Village) error
	DeleteVillage(id string) error

	CreateWard(ward *models.Ward) error
	GetWardByID(id string) (*models.Ward, error)
	ListWardsByVillage(villageID string) ([]models.Ward, error)
	UpdateWard(ward *models.Ward) error
	DeleteWard(id string) error
}

type ElectionRepository interface {
	CreateElection(election *models.Election) error
	GetElectionByID(id string) (*models.Election, error)
	ListElections() ([]models.Election, error)
	ListUpcomingElections(limit int) ([]models.Election, error)
	GetActiveOngoingElection() (*models.Election, error)
	GetLatestElectionWithVotesForVillage(villageID string) (*models.Election, error)
	UpdateElection(election *models.Election) error
	DeleteElection(id string) error
}

type CandidateRepository interface {
	CreateCandidate(candidate *models.Candidate) error
	GetCandidateByID(id string) (*models.Candidate, error)
	ListCandidates(f CandidateFilters) ([]models.Candidate, error)
	UpdateCandidate(candidate *models.Candidate) error
	DeleteCandidate(id string) error
}

type CandidateFilters struct {
	ElectionID   string
	VillageID    string
	WardID       string
	PositionType string
	ActiveOnly   bool
}

type VoterRepository interface {
	// GetOrCreateByMobile resolves the voter for a mobile number, inserting a
	// row on first use. name is backfilled when the voter has none.
	GetOrCreateByMobile(mobile, name string) (*models.Voter, bool, error)
	GetVoterByMobile(mobile string) (*models.Voter, error)
	CountVoters() (int64, error)
}

type VoteRepository interface {
	// ExistsFor is the fast-path duplicate check; the unique index on
	// (election, voter, village) remains the authoritative guard.
	ExistsFor(electionID, voterID, villageID string) (bool, error)
	CreateVote(vote *models.Vote) error
	UpdateReceipt(voteID, receiptCode, receiptQRPath string) error
	CountVotes(f VoteFilters) (int64, error)
	ListVotesForExport(electionID, villageID string) ([]models.Vote, error)
	SarpanchTallies(electionID, villageID string) ([]CandidateTally, error)
	WardMemberTallies(electionID, wardID string) ([]CandidateTally, error)
	ElectionVoteCounts() ([]ElectionVoteCount, error)
	TopVillagesByVotes(limit int) ([]VillageVoteCount, error)
}

type VoteFilters struct {
	ElectionID string
	VillageID  string
	WardID     string
}

// CandidateTally is a per-candidate vote count row.
type CandidateTally struct {
	CandidateID string `json:"candidate_id"`
	FullName    string `json:"full_name"`
	PartyName   string `json:"party_name"`
	Symbol      string `json:"symbol"`
	VoteCount   int64  `json:"vote_count"`
}

type ElectionVoteCount struct {
	ElectionID string `json:"election_id"`
	Name       string `json:"name"`
	VoteCount  int64  `json:"vote_count"`
}

type VillageVoteCount struct {
	VillageID string `json:"village_id"`
	Name      string `json:"name"`
	VoteCount int64  `json:"vote_count"`
}

type SettingsRepository interface {
	// LoadOrCreate returns the settings row, inserting the defaults row on
	// first access.
	LoadOrCreate() (*models.SiteSettings, error)
	Update(settings *models.SiteSettings) error
}

type OTPRepository interface {
	CreateOTP(otp *models.OTPRequest) error
	GetLatestPending(mobile string) (*models.OTPRequest, error)
	MarkConsumed(id string) error
}
