package repositories

import (
	"errors"
	"strings"

	"github.com/msumanth960/Votingapp/internal/models"

	"gorm.io/gorm"
)

type voteRepo struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepo{db: db}
}

// isUniqueViolation reports whether err is a unique-constraint violation from
// either backend (Postgres in production, SQLite in tests).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func (r *voteRepo) ExistsFor(electionID, voterID, villageID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("election_id = ? AND voter_id = ? AND village_id = ?", electionID, voterID, villageID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateVote inserts the vote row. The unique index on (election, voter,
// village) is the authoritative guard against a concurrent duplicate; a
// violation of it is surfaced as DuplicateVoteError, any other constraint
// failure as StorageConstraintError.
func (r *voteRepo) CreateVote(vote *models.Vote) error {
	if err := r.db.Create(vote).Error; err != nil {
		if isUniqueViolation(err) {
			return &models.DuplicateVoteError{}
		}
		return &models.StorageConstraintError{Op: "create vote", Details: err}
	}
	return nil
}

// UpdateReceipt attaches the receipt code and QR path after the vote row is
// committed. Receipt fields are the only post-insert mutation a vote allows.
func (r *voteRepo) UpdateReceipt(voteID, receiptCode, receiptQRPath string) error {
	return r.db.Model(&models.Vote{}).
		Where("id = ?", voteID).
		Updates(map[string]interface{}{
			"receipt_code":    receiptCode,
			"receipt_qr_path": receiptQRPath,
		}).Error
}

func (r *voteRepo) CountVotes(f VoteFilters) (int64, error) {
	query := r.db.Model(&models.Vote{})
	if f.ElectionID != "" {
		query = query.Where("election_id = ?", f.ElectionID)
	}
	if f.VillageID != "" {
		query = query.Where("village_id = ?", f.VillageID)
	}
	if f.WardID != "" {
		query = query.Where("ward_id = ?", f.WardID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *voteRepo) ListVotesForExport(electionID, villageID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.
		Preload("Voter").
		Preload("Election").
		Preload("Village").
		Preload("Ward").
		Preload("SarpanchCandidate").
		Preload("WardMemberCandidate").
		Where("election_id = ? AND village_id = ?", electionID, villageID).
		Order("created_at DESC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// SarpanchTallies returns per-candidate counts for the village's Sarpanch
// race, ordered by descending count with name as the stable tiebreak.
// Candidates with zero votes are included.
func (r *voteRepo) SarpanchTallies(electionID, villageID string) ([]CandidateTally, error) {
	var tallies []CandidateTally
	err := r.db.Table("candidates").
		Select("candidates.id AS candidate_id, candidates.full_name, candidates.party_name, candidates.symbol, COUNT(votes.id) AS vote_count").
		Joins("LEFT JOIN votes ON votes.sarpanch_candidate_id = candidates.id AND votes.election_id = ?", electionID).
		Where("candidates.election_id = ? AND candidates.village_id = ? AND candidates.position_type = ?",
			electionID, villageID, models.PositionSarpanch).
		Group("candidates.id, candidates.full_name, candidates.party_name, candidates.symbol").
		Order("vote_count DESC, candidates.full_name ASC").
		Scan(&tallies).Error
	if err != nil {
		return nil, err
	}
	return tallies, nil
}

// WardMemberTallies returns per-candidate counts for one ward's race.
func (r *voteRepo) WardMemberTallies(electionID, wardID string) ([]CandidateTally, error) {
	var tallies []CandidateTally
	err := r.db.Table("candidates").
		Select("candidates.id AS candidate_id, candidates.full_name, candidates.party_name, candidates.symbol, COUNT(votes.id) AS vote_count").
		Joins("LEFT JOIN votes ON votes.ward_member_candidate_id = candidates.id AND votes.election_id = ?", electionID).
		Where("candidates.election_id = ? AND candidates.ward_id = ? AND candidates.position_type = ?",
			electionID, wardID, models.PositionWardMember).
		Group("candidates.id, candidates.full_name, candidates.party_name, candidates.symbol").
		Order("vote_count DESC, candidates.full_name ASC").
		Scan(&tallies).Error
	if err != nil {
		return nil, err
	}
	return tallies, nil
}

func (r *voteRepo) ElectionVoteCounts() ([]ElectionVoteCount, error) {
	var counts []ElectionVoteCount
	err := r.db.Table("elections").
		Select("elections.id AS election_id, elections.name, COUNT(votes.id) AS vote_count").
		Joins("LEFT JOIN votes ON votes.election_id = elections.id").
		Group("elections.id, elections.name").
		Order("elections.start_time DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *voteRepo) TopVillagesByVotes(limit int) ([]VillageVoteCount, error) {
	var counts []VillageVoteCount
	err := r.db.Table("villages").
		Select("villages.id AS village_id, villages.name, COUNT(votes.id) AS vote_count").
		Joins("JOIN votes ON votes.village_id = villages.id").
		Group("villages.id, villages.name").
		Order("vote_count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
