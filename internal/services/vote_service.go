package services

import (
	"fmt"
	"time"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"
	"github.com/msumanth960/Votingapp/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VoteService records ballots. It guarantees one vote per voter per election
// per village: an application-level existence check gives the friendly error
// on the common path, and the storage unique index settles concurrent
// submissions from the same voter.
type VoteService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewVoteService(repo *repositories.Repository, cfg *config.Config) *VoteService {
	return &VoteService{repo: repo, cfg: cfg}
}

type CastVoteRequest struct {
	ElectionID            string
	VillageID             string
	WardID                string
	MobileNumber          string
	VoterName             string
	SarpanchCandidateID   string
	WardMemberCandidateID string
	FamilyVoteCount       int
	IPAddress             string
	UserAgent             string
}

// CastVote validates and records one ballot. All validation runs before any
// persistence attempt; a failed vote leaves no partial writes.
func (s *VoteService) CastVote(req CastVoteRequest) (*models.Vote, error) {
	election, err := s.repo.ElectionRepo.GetElectionByID(req.ElectionID)
	if err != nil {
		return nil, err
	}
	village, err := s.repo.LocationRepo.GetVillageByID(req.VillageID)
	if err != nil {
		return nil, err
	}

	var fieldErrs []models.FieldError

	if !election.IsOngoing(time.Now()) {
		fieldErrs = append(fieldErrs, models.FieldError{
			Field:   "election",
			Message: "This election is not open for voting.",
		})
	}
	if !village.IsActive {
		fieldErrs = append(fieldErrs, models.FieldError{
			Field:   "village",
			Message: "Voting is not available for this village.",
		})
	}

	mobile := models.NormalizeMobile(req.MobileNumber)
	if !models.IsValidMobile(mobile) {
		fieldErrs = append(fieldErrs, models.FieldError{
			Field:   "mobile_number",
			Message: "Enter a valid 10-digit Indian mobile number starting with 6, 7, 8, or 9.",
		})
	}

	var ward *models.Ward
	if req.WardID != "" {
		ward, err = s.repo.LocationRepo.GetWardByID(req.WardID)
		if err != nil {
			return nil, err
		}
	}

	var sarpanch *models.Candidate
	if req.SarpanchCandidateID != "" {
		sarpanch, err = s.repo.CandidateRepo.GetCandidateByID(req.SarpanchCandidateID)
		if err != nil {
			return nil, err
		}
	}

	var wardMember *models.Candidate
	if req.WardMemberCandidateID != "" {
		wardMember, err = s.repo.CandidateRepo.GetCandidateByID(req.WardMemberCandidateID)
		if err != nil {
			return nil, err
		}
	}

	fieldErrs = append(fieldErrs, models.ValidateVoteChoices(models.VoteChoices{
		Election:            election,
		Village:             village,
		Ward:                ward,
		SarpanchCandidate:   sarpanch,
		WardMemberCandidate: wardMember,
		FamilyVoteCount:     req.FamilyVoteCount,
	})...)

	if len(fieldErrs) > 0 {
		return nil, models.NewValidationError(fieldErrs...)
	}

	voter, created, err := s.repo.VoterRepo.GetOrCreateByMobile(mobile, req.VoterName)
	if err != nil {
		return nil, err
	}
	if created {
		logrus.Debugf("registered new voter %s", voter.MaskedMobile())
	}

	// Fast path: friendlier error without attempting the insert. The unique
	// index below is what actually holds under concurrency.
	exists, err := s.repo.VoteRepo.ExistsFor(election.ID.String(), voter.ID.String(), village.ID.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.DuplicateVoteError{MaskedMobile: voter.MaskedMobile()}
	}

	vote := &models.Vote{
		ID:              uuid.New(),
		ElectionID:      election.ID,
		VillageID:       village.ID,
		VoterID:         voter.ID,
		FamilyVoteCount: req.FamilyVoteCount,
		IPAddress:       req.IPAddress,
		UserAgent:       truncate(req.UserAgent, models.UserAgentMaxLen),
	}
	if ward != nil {
		vote.WardID = &ward.ID
	}
	if sarpanch != nil {
		vote.SarpanchCandidateID = &sarpanch.ID
	}
	if wardMember != nil {
		vote.WardMemberCandidateID = &wardMember.ID
	}

	if err := s.repo.VoteRepo.CreateVote(vote); err != nil {
		if models.IsDuplicateVote(err) {
			// Lost the race against a concurrent submission from the same
			// voter; surface the same error as the fast path.
			return nil, &models.DuplicateVoteError{MaskedMobile: voter.MaskedMobile()}
		}
		return nil, err
	}

	s.attachReceipt(vote)

	logrus.WithFields(logrus.Fields{
		"election": election.ID,
		"village":  village.ID,
		"voter":    voter.MaskedMobile(),
	}).Info("vote recorded")

	return vote, nil
}

// HasVoted reports whether the mobile number already has a vote for the
// election/village pair, with the masked number for display. A mobile that
// was never registered has trivially not voted.
func (s *VoteService) HasVoted(electionID, villageID, rawMobile string) (bool, string, error) {
	mobile := models.NormalizeMobile(rawMobile)
	if !models.IsValidMobile(mobile) {
		return false, "", models.NewValidationError(models.FieldError{
			Field:   "mobile_number",
			Message: "Enter a valid 10-digit Indian mobile number starting with 6, 7, 8, or 9.",
		})
	}

	voter, err := s.repo.VoterRepo.GetVoterByMobile(mobile)
	if err != nil {
		if models.IsNotFound(err) {
			return false, models.MaskMobile(mobile), nil
		}
		return false, "", err
	}

	exists, err := s.repo.VoteRepo.ExistsFor(electionID, voter.ID.String(), villageID)
	if err != nil {
		return false, "", err
	}
	return exists, voter.MaskedMobile(), nil
}

// attachReceipt generates the receipt code and QR image for a recorded vote.
// Failures here never fail the vote; the ballot is already committed.
func (s *VoteService) attachReceipt(vote *models.Vote) {
	receiptCode := uuid.NewString()

	filename, err := utils.GenerateQRCodeImage(receiptCode, s.cfg.ReceiptDir)
	if err != nil {
		logrus.Warnf("failed to generate vote receipt QR: %v", err)
		return
	}

	qrPath := fmt.Sprintf("/receipts/%s", filename)
	if err := s.repo.VoteRepo.UpdateReceipt(vote.ID.String(), receiptCode, qrPath); err != nil {
		logrus.Warnf("failed to store vote receipt: %v", err)
		return
	}
	vote.ReceiptCode = receiptCode
	vote.ReceiptQRPath = qrPath
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
