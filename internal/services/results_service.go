package services

import (
	"time"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"
)

// ResultsService computes read-only tallies over recorded votes. Every call
// recomputes from the stored rows; results during concurrent voting may be
// stale by a row, which is acceptable for reporting.
type ResultsService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewResultsService(repo *repositories.Repository, cfg *config.Config) *ResultsService {
	return &ResultsService{repo: repo, cfg: cfg}
}

type WardResult struct {
	Ward       models.Ward                   `json:"ward"`
	Candidates []repositories.CandidateTally `json:"candidates"`
	TotalVotes int64                         `json:"total_votes"`
}

type VillageResults struct {
	Election        models.Election               `json:"election"`
	Village         models.Village                `json:"village"`
	TotalVotes      int64                         `json:"total_votes"`
	SarpanchResults []repositories.CandidateTally `json:"sarpanch_results"`
	WardResults     []WardResult                  `json:"ward_results"`
}

// VillageResults tallies one village's races for an election. When electionID
// is empty, the ongoing election is used, falling back to the most recent
// election with votes for the village.
func (s *ResultsService) VillageResults(villageID, electionID string) (*VillageResults, error) {
	village, err := s.repo.LocationRepo.GetVillageByID(villageID)
	if err != nil {
		return nil, err
	}

	election, err := s.resolveElection(villageID, electionID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.VoteRepo.CountVotes(repositories.VoteFilters{
		ElectionID: election.ID.String(),
		VillageID:  village.ID.String(),
	})
	if err != nil {
		return nil, err
	}

	sarpanchResults, err := s.repo.VoteRepo.SarpanchTallies(election.ID.String(), village.ID.String())
	if err != nil {
		return nil, err
	}

	wards, err := s.repo.LocationRepo.ListWardsByVillage(village.ID.String())
	if err != nil {
		return nil, err
	}

	wardResults := make([]WardResult, 0, len(wards))
	for _, ward := range wards {
		tallies, err := s.repo.VoteRepo.WardMemberTallies(election.ID.String(), ward.ID.String())
		if err != nil {
			return nil, err
		}

		wardTotal, err := s.repo.VoteRepo.CountVotes(repositories.VoteFilters{
			ElectionID: election.ID.String(),
			WardID:     ward.ID.String(),
		})
		if err != nil {
			return nil, err
		}

		wardResults = append(wardResults, WardResult{
			Ward:       ward,
			Candidates: tallies,
			TotalVotes: wardTotal,
		})
	}

	return &VillageResults{
		Election:        *election,
		Village:         *village,
		TotalVotes:      total,
		SarpanchResults: sarpanchResults,
		WardResults:     wardResults,
	}, nil
}

func (s *ResultsService) resolveElection(villageID, electionID string) (*models.Election, error) {
	if electionID != "" {
		return s.repo.ElectionRepo.GetElectionByID(electionID)
	}

	election, err := s.repo.ElectionRepo.GetActiveOngoingElection()
	if err != nil {
		return nil, err
	}
	if election == nil {
		election, err = s.repo.ElectionRepo.GetLatestElectionWithVotesForVillage(villageID)
		if err != nil {
			return nil, err
		}
	}
	if election == nil {
		return nil, &models.NotFoundError{Entity: "election", ID: "no election with votes for village " + villageID}
	}
	return election, nil
}

// ExportRow is one CSV line of the vote export. Mobile numbers are masked;
// optional references render as "-".
type ExportRow struct {
	VoteID              string
	VoterID             string
	MaskedMobile        string
	ElectionName        string
	VillageName         string
	WardLabel           string
	SarpanchCandidate   string
	WardMemberCandidate string
	VotedAt             string
	IPAddress           string
}

// ExportHeader matches the columns of ExportRow, in order.
func ExportHeader() []string {
	return []string{
		"Vote ID",
		"Voter ID",
		"Mobile (Masked)",
		"Election",
		"Village",
		"Ward",
		"Sarpanch Candidate",
		"Ward Member Candidate",
		"Voted At",
		"IP Address",
	}
}

// Columns returns the row in header order.
func (r ExportRow) Columns() []string {
	return []string{
		r.VoteID,
		r.VoterID,
		r.MaskedMobile,
		r.ElectionName,
		r.VillageName,
		r.WardLabel,
		r.SarpanchCandidate,
		r.WardMemberCandidate,
		r.VotedAt,
		r.IPAddress,
	}
}

// ExportVotes builds the CSV rows for a village's votes in an election.
func (s *ResultsService) ExportVotes(villageID, electionID string) ([]ExportRow, *models.Election, *models.Village, error) {
	village, err := s.repo.LocationRepo.GetVillageByID(villageID)
	if err != nil {
		return nil, nil, nil, err
	}
	election, err := s.resolveElection(villageID, electionID)
	if err != nil {
		return nil, nil, nil, err
	}

	votes, err := s.repo.VoteRepo.ListVotesForExport(election.ID.String(), village.ID.String())
	if err != nil {
		return nil, nil, nil, err
	}

	rows := make([]ExportRow, 0, len(votes))
	for _, v := range votes {
		row := ExportRow{
			VoteID:              v.ID.String(),
			VoterID:             v.VoterID.String(),
			MaskedMobile:        "-",
			ElectionName:        election.Name,
			VillageName:         village.Name,
			WardLabel:           "-",
			SarpanchCandidate:   "-",
			WardMemberCandidate: "-",
			VotedAt:             v.CreatedAt.Format("2006-01-02 15:04:05"),
			IPAddress:           "-",
		}
		if v.Voter != nil {
			row.MaskedMobile = v.Voter.MaskedMobile()
		}
		if v.Ward != nil {
			row.WardLabel = v.Ward.Label()
		}
		if v.SarpanchCandidate != nil {
			row.SarpanchCandidate = v.SarpanchCandidate.FullName
		}
		if v.WardMemberCandidate != nil {
			row.WardMemberCandidate = v.WardMemberCandidate.FullName
		}
		if v.IPAddress != "" {
			row.IPAddress = v.IPAddress
		}
		rows = append(rows, row)
	}
	return rows, election, village, nil
}

// ExportFilename names the CSV download for a village/election pair.
func ExportFilename(village *models.Village, election *models.Election, now time.Time) string {
	return "votes_" + village.Name + "_" + election.Name + "_" + now.Format("20060102_150405") + ".csv"
}

type DashboardOverview struct {
	Elections         []repositories.ElectionVoteCount `json:"elections"`
	VillagesWithVotes []repositories.VillageVoteCount  `json:"villages_with_votes"`
	TotalVotes        int64                            `json:"total_votes"`
	TotalVoters       int64                            `json:"total_voters"`
}

// Dashboard summarizes all elections and the busiest villages.
func (s *ResultsService) Dashboard() (*DashboardOverview, error) {
	elections, err := s.repo.VoteRepo.ElectionVoteCounts()
	if err != nil {
		return nil, err
	}
	villages, err := s.repo.VoteRepo.TopVillagesByVotes(20)
	if err != nil {
		return nil, err
	}
	totalVotes, err := s.repo.VoteRepo.CountVotes(repositories.VoteFilters{})
	if err != nil {
		return nil, err
	}
	totalVoters, err := s.repo.VoterRepo.CountVoters()
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		Elections:         elections,
		VillagesWithVotes: villages,
		TotalVotes:        totalVotes,
		TotalVoters:       totalVoters,
	}, nil
}
