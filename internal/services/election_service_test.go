package services

import (
	"testing"
	"time"

	"github.com/msumanth960/Votingapp/internal/models"
)

func TestCreateElection(t *testing.T) {
	repo, cfg := newTestEnv(t)
	svc := NewElectionService(repo, cfg)

	t.Run("valid window", func(t *testing.T) {
		election, err := svc.CreateElection(CreateElectionRequest{
			Name:      "GP 2026",
			StartTime: time.Now().Add(time.Hour),
			EndTime:   time.Now().Add(2 * time.Hour),
			IsActive:  true,
		})
		if err != nil {
			t.Fatalf("CreateElection failed: %v", err)
		}
		if election.Status(time.Now()) != models.StatusUpcoming {
			t.Errorf("status = %q, want Upcoming", election.Status(time.Now()))
		}
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := svc.CreateElection(CreateElectionRequest{
			Name:      "Backwards",
			StartTime: time.Now().Add(2 * time.Hour),
			EndTime:   time.Now().Add(time.Hour),
			IsActive:  true,
		})
		if !models.IsValidationError(err) {
			t.Fatalf("got %v, want ValidationError", err)
		}
	})
}

func TestGetActiveElection(t *testing.T) {
	repo, cfg := newTestEnv(t)
	svc := NewElectionService(repo, cfg)

	t.Run("none when nothing is ongoing", func(t *testing.T) {
		election, err := svc.GetActiveElection()
		if err != nil {
			t.Fatalf("GetActiveElection failed: %v", err)
		}
		if election != nil {
			t.Errorf("got %v, want nil", election)
		}
	})

	t.Run("returns the ongoing election", func(t *testing.T) {
		created, err := svc.CreateElection(CreateElectionRequest{
			Name:      "Ongoing",
			StartTime: time.Now().Add(-time.Hour),
			EndTime:   time.Now().Add(time.Hour),
			IsActive:  true,
		})
		if err != nil {
			t.Fatalf("CreateElection failed: %v", err)
		}

		got, err := svc.GetActiveElection()
		if err != nil {
			t.Fatalf("GetActiveElection failed: %v", err)
		}
		if got == nil || got.ID != created.ID {
			t.Fatalf("got %v, want the ongoing election", got)
		}
	})

	t.Run("inactive elections are skipped", func(t *testing.T) {
		elections, err := svc.ListElections()
		if err != nil {
			t.Fatalf("ListElections failed: %v", err)
		}
		for i := range elections {
			elections[i].IsActive = false
			if err := repo.ElectionRepo.UpdateElection(&elections[i]); err != nil {
				t.Fatalf("failed to deactivate election: %v", err)
			}
		}

		got, err := svc.GetActiveElection()
		if err != nil {
			t.Fatalf("GetActiveElection failed: %v", err)
		}
		if got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestListUpcomingElections(t *testing.T) {
	repo, cfg := newTestEnv(t)
	svc := NewElectionService(repo, cfg)

	for i, name := range []string{"First", "Second", "Third", "Fourth"} {
		_, err := svc.CreateElection(CreateElectionRequest{
			Name:      name,
			StartTime: time.Now().Add(time.Duration(i+1) * time.Hour),
			EndTime:   time.Now().Add(time.Duration(i+2) * time.Hour),
			IsActive:  true,
		})
		if err != nil {
			t.Fatalf("CreateElection failed: %v", err)
		}
	}

	got, err := svc.ListUpcomingElections(3)
	if err != nil {
		t.Fatalf("ListUpcomingElections failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d elections, want 3", len(got))
	}
	if got[0].Name != "First" {
		t.Errorf("first upcoming = %q, want the soonest start", got[0].Name)
	}
}
