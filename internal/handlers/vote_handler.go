package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msumanth960/Votingapp/internal/middleware"
	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/internal/utils"
)

type CastVoteRequest struct {
	ElectionID            string `json:"election_id" validate:"required,uuid"`
	VillageID             string `json:"village_id" validate:"required,uuid"`
	WardID                string `json:"ward_id" validate:"omitempty,uuid"`
	MobileNumber          string `json:"mobile_number" validate:"required"`
	VoterName             string `json:"voter_name" validate:"max=200"`
	SarpanchCandidateID   string `json:"sarpanch_candidate_id" validate:"omitempty,uuid"`
	WardMemberCandidateID string `json:"ward_member_candidate_id" validate:"omitempty,uuid"`
	FamilyVoteCount       int    `json:"family_vote_count"`
}

// CastVote records a ballot and returns the receipt.
func (h *Handler) CastVote(c *fiber.Ctx) error {
	if err := middleware.ValidateBody(&CastVoteRequest{})(c); err != nil {
		return err
	}
	req := c.Locals("validatedBody").(*CastVoteRequest)

	familyCount := req.FamilyVoteCount
	if familyCount == 0 {
		familyCount = 1
	}

	vote, err := h.voteSvc.CastVote(services.CastVoteRequest{
		ElectionID:            req.ElectionID,
		VillageID:             req.VillageID,
		WardID:                req.WardID,
		MobileNumber:          req.MobileNumber,
		VoterName:             req.VoterName,
		SarpanchCandidateID:   req.SarpanchCandidateID,
		WardMemberCandidateID: req.WardMemberCandidateID,
		FamilyVoteCount:       familyCount,
		IPAddress:             clientIP(c),
		UserAgent:             c.Get("User-Agent"),
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"vote_id":         vote.ID,
		"receipt_code":    vote.ReceiptCode,
		"receipt_qr_path": vote.ReceiptQRPath,
		"voted_at":        vote.CreatedAt,
	}, "Your vote has been recorded successfully", fiber.StatusCreated)
}

// VoteStatus lets the voting page tell a returning voter they have already
// voted before they fill in a ballot.
func (h *Handler) VoteStatus(c *fiber.Ctx) error {
	electionID := c.Query("election_id")
	villageID := c.Query("village_id")
	mobile := c.Query("mobile_number")
	if electionID == "" || villageID == "" || mobile == "" {
		return utils.Error(c, "election_id, village_id and mobile_number are required", fiber.StatusBadRequest)
	}

	voted, masked, err := h.voteSvc.HasVoted(electionID, villageID, mobile)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"has_voted":     voted,
		"masked_mobile": masked,
	}, "Vote status retrieved successfully")
}
