package models

import (
	"testing"
	"time"
)

func TestElectionStatus(t *testing.T) {
	now := time.Now()
	election := Election{
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
		IsActive:  true,
	}

	t.Run("ongoing within window", func(t *testing.T) {
		if got := election.Status(now); got != StatusOngoing {
			t.Errorf("Status = %q, want %q", got, StatusOngoing)
		}
		if !election.IsOngoing(now) {
			t.Error("IsOngoing = false, want true")
		}
	})

	t.Run("upcoming before start", func(t *testing.T) {
		if got := election.Status(now.Add(-2 * time.Hour)); got != StatusUpcoming {
			t.Errorf("Status = %q, want %q", got, StatusUpcoming)
		}
	})

	t.Run("ended after end", func(t *testing.T) {
		if got := election.Status(now.Add(2 * time.Hour)); got != StatusEnded {
			t.Errorf("Status = %q, want %q", got, StatusEnded)
		}
	})

	t.Run("inactive overrides the window", func(t *testing.T) {
		inactive := election
		inactive.IsActive = false
		if got := inactive.Status(now); got != StatusInactive {
			t.Errorf("Status = %q, want %q", got, StatusInactive)
		}
		if inactive.IsOngoing(now) {
			t.Error("IsOngoing = true, want false")
		}
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		if got := election.Status(election.StartTime); got != StatusOngoing {
			t.Errorf("Status at start = %q, want %q", got, StatusOngoing)
		}
		if got := election.Status(election.EndTime); got != StatusOngoing {
			t.Errorf("Status at end = %q, want %q", got, StatusOngoing)
		}
	})
}

func TestWardLabel(t *testing.T) {
	if got := (Ward{Number: 3}).Label(); got != "Ward 3" {
		t.Errorf("Label = %q, want %q", got, "Ward 3")
	}
	if got := (Ward{Number: 3, Name: "Market Area"}).Label(); got != "Ward 3 - Market Area" {
		t.Errorf("Label = %q, want %q", got, "Ward 3 - Market Area")
	}
}

func TestCandidatePromisesList(t *testing.T) {
	c := Candidate{Promises: "Clean water\n\n  Better roads  \nStreet lights"}
	got := c.PromisesList()
	want := []string{"Clean water", "Better roads", "Street lights"}
	if len(got) != len(want) {
		t.Fatalf("PromisesList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PromisesList[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := (Candidate{Promises: "  \n "}).PromisesList(); got != nil {
		t.Errorf("PromisesList of blank promises = %v, want nil", got)
	}
}

func TestVoterMaskedMobile(t *testing.T) {
	v := Voter{MobileNumber: "9876543210"}
	if got := v.MaskedMobile(); got != "******3210" {
		t.Errorf("MaskedMobile = %q, want %q", got, "******3210")
	}
}
