package services

import (
	"sync"
	"testing"
	"time"

	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"

	"github.com/google/uuid"
)

func newVoteRequest(f *fixture, mobile string) CastVoteRequest {
	return CastVoteRequest{
		ElectionID:      f.Election.ID.String(),
		VillageID:       f.Village.ID.String(),
		MobileNumber:    mobile,
		VoterName:       "Test Voter",
		FamilyVoteCount: 1,
		IPAddress:       "203.0.113.7",
		UserAgent:       "test-agent",
	}
}

func TestCastVote(t *testing.T) {
	repo, cfg := newTestEnv(t)
	f := seedFixture(t, repo)
	svc := NewVoteService(repo, cfg)

	sarpanch := seedCandidate(t, repo, f, "Anita Devi", models.PositionSarpanch, nil)
	wardMember := seedCandidate(t, repo, f, "Ravi Kumar", models.PositionWardMember, &f.Ward.ID)

	req := newVoteRequest(f, "9876543210")
	req.WardID = f.Ward.ID.String()
	req.SarpanchCandidateID = sarpanch.ID.String()
	req.WardMemberCandidateID = wardMember.ID.String()

	vote, err := svc.CastVote(req)
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if vote.SarpanchCandidateID == nil || *vote.SarpanchCandidateID != sarpanch.ID {
		t.Error("vote does not reference the sarpanch candidate")
	}
	if vote.WardMemberCandidateID == nil || *vote.WardMemberCandidateID != wardMember.ID {
		t.Error("vote does not reference the ward member candidate")
	}
	if vote.ReceiptCode == "" {
		t.Error("vote has no receipt code")
	}

	count, err := repo.VoteRepo.CountVotes(repositories.VoteFilters{ElectionID: f.Election.ID.String()})
	if err != nil {
		t.Fatalf("CountVotes failed: %v", err)
	}
	if count != 1 {
		t.Errorf("vote count = %d, want 1", count)
	}
}

func TestCastVoteDuplicate(t *testing.T) {
	repo, cfg := newTestEnv(t)
	f := seedFixture(t, repo)
	svc := NewVoteService(repo, cfg)

	if _, err := svc.CastVote(newVoteRequest(f, "9876543210")); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}

	_, err := svc.CastVote(newVoteRequest(f, "9876543210"))
	if !models.IsDuplicateVote(err) {
		t.Fatalf("second vote: got %v, want DuplicateVoteError", err)
	}
	dup := err.(*models.DuplicateVoteError)
	if dup.MaskedMobile != "******3210" {
		t.Errorf("masked mobile = %q, want %q", dup.MaskedMobile, "******3210")
	}
}

func TestCastVoteSameVoterDifferentVillages(t *testing.T) {
	repo, cfg := newTestEnv(t)
	f := seedFixture(t, repo)
	svc := NewVoteService(repo, cfg)

	other := &models.Village{ID: uuid.New(), MandalID: f.Mandal.ID, Name: "Narkhoda", IsActive: true}
	if err := repo.LocationRepo.CreateVillage(other); err != nil {
		t.Fatalf("failed to seed second village: %v", err)
	}

	if _, err := svc.CastVote(newVoteRequest(f, "9876543210")); err != nil {
		t.Fatalf("first village vote failed: %v", err)
	}

	req := newVoteRequest(f, "9876543210")
	req.VillageID = other.ID.String()
	if _, err := svc.CastVote(req); err != nil {
		t.Fatalf("second village vote failed: %v", err)
	}

	count, err := repo.VoteRepo.CountVotes(repositories.VoteFilters{ElectionID: f.Election.ID.String()})
	if err != nil {
		t.Fatalf("CountVotes failed: %v", err)
	}
	if count != 2 {
		t.Errorf("vote count = %d, want 2", count)
	}
}

func TestCastVoteConcurrentDuplicate(t *testing.T) {
	repo, cfg := newTestEnv(t)
	f := seedFixture(t, repo)
	svc := NewVoteService(repo, cfg)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.CastVote(newVoteRequest(f, "9876543210"))
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case models.IsDuplicateVote(err):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || duplicates != 1 {
		t.Fatalf("got %d successes and %d duplicates, want exactly 1 of each", successes, duplicates)
	}

	count, err := repo.VoteRepo.CountVotes(repositories.VoteFilters{ElectionID: f.Election.ID.String()})
	if err != nil {
		t.Fatalf("CountVotes failed: %v", err)
	}
	if count != 1 {
		t.Errorf("vote count = %d, want 1", count)
	}
}

func TestCastVoteValidation(t *testing.T) {
	repo, cfg := newTestEnv(t)
	f := seedFixture(t, repo)
	svc := NewVoteService(repo, cfg)

	t.Run("election not ongoing", func(t *testing.T) {
		ended := &models.Election{
			ID:        uuid.New(),
			Name:      "Closed Election",
			StartTime: time.Now().Add(-48 * time.Hour),
			EndTime:   time.Now().Add(-24 * time.Hour),
			IsActive:  true,
		}
		if err := repo.ElectionRepo.CreateElection(ended); err != nil {
			t.Fatalf("failed to seed ended election: %v", err)
		}

		req := newVoteRequest(f, "9876543210")
		req.ElectionID = ended.ID.String()
		_, err := svc.CastVote(req)
		if !models.IsValidationError(err) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if msg := err.(*models.ValidationError).FieldMessages()["election"]; msg == "" {
			t.Error("expected an election field message")
		}
	})

	t.Run("inactive village", func(t *testing.T) {
		f.Village.IsActive = false
		if err := repo.LocationRepo.UpdateVillage(f.Village); err != nil {
			t.Fatalf("failed to deactivate village: %v", err)
		}
		defer func() {
			f.Village.IsActive = true
			if err := repo.LocationRepo.UpdateVillage(f.Village); err != nil {
				t.Fatalf("failed to reactivate village: %v", err)
			}
		}()

		_, err := svc.CastVote(newVoteRequest(f, "9876543210"))
		if !models.IsValidationError(err) {
			t.Fatalf("got %v, want ValidationError", err)
		}
	})

	t.Run("invalid mobile", func(t *testing.T) {
		req := newVoteRequest(f, "12345")
		_, err := svc.CastVote(req)
		if !models.IsValidationError(err) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if msg := err.(*models.ValidationError).FieldMessages()["mobile_number"]; msg == "" {
			t.Error("expected a mobile_number field message")
		}
	})

	t.Run("family vote count out of range", func(t *testing.T) {
		req := newVoteRequest(f, "9876543210")
		req.FamilyVoteCount = 25
		_, err := svc.CastVote(req)
		if !models.IsValidationError(err) {
			t.Fatalf("got %v, want ValidationError", err)
		}
	})

	t.Run("unknown election", func(t *testing.T) {
		req := newVoteRequest(f, "9876543210")
		req.ElectionID = uuid.NewString()
		_, err := svc.CastVote(req)
		if !models.IsNotFound(err) {
			t.Fatalf("got %v, want NotFoundError", err)
		}
	})

	t.Run("nothing persisted on validation failure", func(t *testing.T) {
		count, err := repo.VoteRepo.CountVotes(repositories.VoteFilters{})
		if err != nil {
			t.Fatalf("CountVotes failed: %v", err)
		}
		if count != 0 {
			t.Errorf("vote count = %d, want 0", count)
		}
	})
}

func TestHasVoted(t *testing.T) {
	repo, cfg := newTestEnv(t)
	f := seedFixture(t, repo)
	svc := NewVoteService(repo, cfg)

	t.Run("unknown mobile has not voted", func(t *testing.T) {
		voted, masked, err := svc.HasVoted(f.Election.ID.String(), f.Village.ID.String(), "9876543210")
		if err != nil {
			t.Fatalf("HasVoted failed: %v", err)
		}
		if voted {
			t.Error("voted = true, want false")
		}
		if masked != "******3210" {
			t.Errorf("masked = %q, want %q", masked, "******3210")
		}
	})

	t.Run("after casting the vote shows up", func(t *testing.T) {
		if _, err := svc.CastVote(newVoteRequest(f, "9876543210")); err != nil {
			t.Fatalf("CastVote failed: %v", err)
		}

		voted, _, err := svc.HasVoted(f.Election.ID.String(), f.Village.ID.String(), "9876543210")
		if err != nil {
			t.Fatalf("HasVoted failed: %v", err)
		}
		if !voted {
			t.Error("voted = false, want true")
		}
	})

	t.Run("invalid mobile is rejected", func(t *testing.T) {
		_, _, err := svc.HasVoted(f.Election.ID.String(), f.Village.ID.String(), "12345")
		if !models.IsValidationError(err) {
			t.Fatalf("got %v, want ValidationError", err)
		}
	})
}

func TestCastVoteTruncatesUserAgent(t *testing.T) {
	repo, cfg := newTestEnv(t)
	f := seedFixture(t, repo)
	svc := NewVoteService(repo, cfg)

	req := newVoteRequest(f, "9876543210")
	long := make([]byte, models.UserAgentMaxLen+100)
	for i := range long {
		long[i] = 'a'
	}
	req.UserAgent = string(long)

	vote, err := svc.CastVote(req)
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if len(vote.UserAgent) != models.UserAgentMaxLen {
		t.Errorf("user agent length = %d, want %d", len(vote.UserAgent), models.UserAgentMaxLen)
	}
}
