package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location hierarchy: District -> Mandal -> Village -> Ward.
// Each level references only its direct parent, so the hierarchy is a tree
// by construction. Deleting a parent cascades to all descendants.

type District struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Mandals []Mandal `gorm:"foreignKey:DistrictID;constraint:OnDelete:CASCADE" json:"mandals,omitempty"`
}

type Mandal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DistrictID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mandals_district_name" json:"district_id"`
	Name       string    `gorm:"not null;uniqueIndex:idx_mandals_district_name" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	District *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	Villages []Village `gorm:"foreignKey:MandalID;constraint:OnDelete:CASCADE" json:"villages,omitempty"`
}

// Village is the Gram Panchayat level, where Sarpanch elections take place.
type Village struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MandalID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_villages_mandal_name" json:"mandal_id"`
	Name      string    `gorm:"not null;uniqueIndex:idx_villages_mandal_name" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Mandal *Mandal `gorm:"foreignKey:MandalID" json:"mandal,omitempty"`
	Wards  []Ward  `gorm:"foreignKey:VillageID;constraint:OnDelete:CASCADE" json:"wards,omitempty"`
}

// Ward is a sub-division of a Village, where Ward Member elections take place.
type Ward struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VillageID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wards_village_number" json:"village_id"`
	Number    uint      `gorm:"not null;uniqueIndex:idx_wards_village_number" json:"number"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Village *Village `gorm:"foreignKey:VillageID" json:"village,omitempty"`
}

// Label returns the display form of the ward, e.g. "Ward 3" or "Ward 3 - Market Area".
func (w Ward) Label() string {
	if w.Name != "" {
		return fmt.Sprintf("Ward %d - %s", w.Number, w.Name)
	}
	return fmt.Sprintf("Ward %d", w.Number)
}

// ElectionStatus is the derived lifecycle state of an election.
type ElectionStatus string

const (
	StatusInactive ElectionStatus = "Inactive"
	StatusUpcoming ElectionStatus = "Upcoming"
	StatusOngoing  ElectionStatus = "Ongoing"
	StatusEnded    ElectionStatus = "Ended"
)

// Election is an election event. All votes are scoped to one election.
type Election struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Status derives the election state at the given instant.
func (e Election) Status(now time.Time) ElectionStatus {
	if !e.IsActive {
		return StatusInactive
	}
	if now.Before(e.StartTime) {
		return StatusUpcoming
	}
	if now.After(e.EndTime) {
		return StatusEnded
	}
	return StatusOngoing
}

// IsOngoing reports whether voting is open at the given instant.
func (e Election) IsOngoing(now time.Time) bool {
	return e.Status(now) == StatusOngoing
}

// Candidate positions.
const (
	PositionSarpanch   = "SARPANCH"
	PositionWardMember = "WARD_MEMBER"
)

// Candidate stands for either the Sarpanch or a Ward Member position.
// Sarpanch candidates carry no ward; Ward Member candidates must reference
// a ward of the same village.
type Candidate struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ElectionID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"election_id"`
	VillageID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"village_id"`
	WardID       *uuid.UUID `gorm:"type:uuid;index" json:"ward_id,omitempty"`
	FullName     string     `gorm:"not null" json:"full_name"`
	PositionType string     `gorm:"type:varchar(20);not null" json:"position_type"` // SARPANCH|WARD_MEMBER
	PartyName    string     `json:"party_name,omitempty"`
	Symbol       string     `json:"symbol,omitempty"`
	PhotoPath    string     `json:"photo_path,omitempty"`
	Bio          string     `gorm:"type:text" json:"bio,omitempty"`
	Promises     string     `gorm:"type:text" json:"-"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Election *Election `gorm:"foreignKey:ElectionID;constraint:OnDelete:CASCADE" json:"election,omitempty"`
	Village  *Village  `gorm:"foreignKey:VillageID;constraint:OnDelete:CASCADE" json:"village,omitempty"`
	Ward     *Ward     `gorm:"foreignKey:WardID;constraint:OnDelete:CASCADE" json:"ward,omitempty"`
}

// PromisesList splits the stored promises text into display lines.
func (c Candidate) PromisesList() []string {
	if strings.TrimSpace(c.Promises) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(c.Promises, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Voter is identified by a unique mobile number (one person, one identity).
type Voter struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MobileNumber string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"-"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MaskedMobile returns the mobile number with all but the last four digits hidden.
func (v Voter) MaskedMobile() string {
	return MaskMobile(v.MobileNumber)
}

// UserAgentMaxLen bounds the stored user agent string.
const UserAgentMaxLen = 500

// Vote is one voter's ballot in one election for one village. The composite
// unique index is the authoritative one-vote-per-voter-per-election-per-village
// guard; application-level checks are only a fast path for better error
// messages. Votes are never updated or deleted in normal operation.
type Vote struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ElectionID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_votes_election_voter_village" json:"election_id"`
	VoterID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_votes_election_voter_village" json:"voter_id"`
	VillageID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_votes_election_voter_village" json:"village_id"`
	WardID                *uuid.UUID `gorm:"type:uuid;index" json:"ward_id,omitempty"`
	SarpanchCandidateID   *uuid.UUID `gorm:"type:uuid;index" json:"sarpanch_candidate_id,omitempty"`
	WardMemberCandidateID *uuid.UUID `gorm:"type:uuid;index" json:"ward_member_candidate_id,omitempty"`
	FamilyVoteCount       int        `gorm:"not null;default:1" json:"family_vote_count"`
	IPAddress             string     `json:"ip_address,omitempty"`
	UserAgent             string     `gorm:"type:text" json:"-"`
	ReceiptCode           string     `gorm:"index" json:"receipt_code,omitempty"`
	ReceiptQRPath         string     `json:"receipt_qr_path,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`

	Election            *Election  `gorm:"foreignKey:ElectionID;constraint:OnDelete:CASCADE" json:"election,omitempty"`
	Village             *Village   `gorm:"foreignKey:VillageID;constraint:OnDelete:CASCADE" json:"village,omitempty"`
	Ward                *Ward      `gorm:"foreignKey:WardID;constraint:OnDelete:SET NULL" json:"ward,omitempty"`
	Voter               *Voter     `gorm:"foreignKey:VoterID;constraint:OnDelete:CASCADE" json:"voter,omitempty"`
	SarpanchCandidate   *Candidate `gorm:"foreignKey:SarpanchCandidateID" json:"sarpanch_candidate,omitempty"`
	WardMemberCandidate *Candidate `gorm:"foreignKey:WardMemberCandidateID" json:"ward_member_candidate,omitempty"`
}

// SiteSettingsID is the fixed primary key of the single settings row.
var SiteSettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// SiteSettings is site-wide configuration. Exactly one row exists, keyed by
// SiteSettingsID; it is loaded into memory at startup and refreshed on demand.
type SiteSettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	SiteName     string    `gorm:"not null;default:'Local Elections'" json:"site_name"`
	SiteTagline  string    `gorm:"default:'Voting System'" json:"site_tagline"`
	FooterText   string    `gorm:"default:'Gram Panchayat Elections Management'" json:"footer_text"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	AboutText    string    `gorm:"type:text" json:"about_text,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OTPRequest is a pending one-time code for a mobile number. Only the bcrypt
// hash of the code is stored; delivery is stubbed to the application log.
type OTPRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MobileNumber string    `gorm:"type:varchar(10);index;not null" json:"-"`
	CodeHash     string    `gorm:"not null" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	Consumed     bool      `gorm:"default:false" json:"consumed"`
	CreatedAt    time.Time `json:"created_at"`
}
