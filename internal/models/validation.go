package models

import (
	"regexp"
	"strings"
)

// mobilePattern matches 10-digit Indian mobile numbers.
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// Family vote count bounds. The count is self-reported metadata, recorded but
// not independently verified.
const (
	FamilyVoteCountMin = 1
	FamilyVoteCountMax = 20
)

// NormalizeMobile strips everything but digits from a raw mobile input.
func NormalizeMobile(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidMobile reports whether mobile is a valid 10-digit number starting
// with 6, 7, 8 or 9.
func IsValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// MaskMobile hides all but the last four digits: "9876543210" -> "******3210".
func MaskMobile(mobile string) string {
	if len(mobile) < 4 {
		return strings.Repeat("*", len(mobile))
	}
	return "******" + mobile[len(mobile)-4:]
}

// Validate checks the candidate's position/ward consistency. ward is the
// resolved ward row for c.WardID (nil when c.WardID is nil). All violations
// are collected; a nil slice means the candidate is valid.
func (c *Candidate) Validate(ward *Ward) []FieldError {
	var errs []FieldError

	switch c.PositionType {
	case PositionSarpanch:
		if c.WardID != nil {
			errs = append(errs, FieldError{
				Field:   "ward",
				Message: "Sarpanch candidates should not be assigned to a specific ward.",
			})
		}
	case PositionWardMember:
		if c.WardID == nil {
			errs = append(errs, FieldError{
				Field:   "ward",
				Message: "Ward Member candidates must be assigned to a ward.",
			})
		} else if ward != nil && ward.VillageID != c.VillageID {
			errs = append(errs, FieldError{
				Field:   "ward",
				Message: "Ward must belong to the same village as the candidate.",
			})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "position_type",
			Message: "Position must be either Sarpanch or Ward Member.",
		})
	}

	return errs
}

// VoteChoices is the cross-entity view of a ballot used for validation.
// All references are resolved rows; optional ones may be nil. The functions
// here are pure so they can be tested without a database.
type VoteChoices struct {
	Election            *Election
	Village             *Village
	Ward                *Ward
	SarpanchCandidate   *Candidate
	WardMemberCandidate *Candidate
	FamilyVoteCount     int
}

// ValidateVoteChoices enforces the candidate/location/ward consistency rules
// for a ballot. All violations are collected.
func ValidateVoteChoices(c VoteChoices) []FieldError {
	var errs []FieldError

	if s := c.SarpanchCandidate; s != nil {
		switch {
		case s.PositionType != PositionSarpanch:
			errs = append(errs, FieldError{Field: "sarpanch_candidate", Message: "Selected candidate is not a Sarpanch candidate."})
		case c.Election != nil && s.ElectionID != c.Election.ID:
			errs = append(errs, FieldError{Field: "sarpanch_candidate", Message: "Sarpanch candidate is not from this election."})
		case c.Village != nil && s.VillageID != c.Village.ID:
			errs = append(errs, FieldError{Field: "sarpanch_candidate", Message: "Sarpanch candidate is not from this village."})
		}
	}

	if c.Ward != nil && c.Village != nil && c.Ward.VillageID != c.Village.ID {
		errs = append(errs, FieldError{Field: "ward", Message: "Selected ward does not belong to this village."})
	}

	if w := c.WardMemberCandidate; w != nil {
		switch {
		case w.PositionType != PositionWardMember:
			errs = append(errs, FieldError{Field: "ward_member_candidate", Message: "Selected candidate is not a Ward Member candidate."})
		case c.Election != nil && w.ElectionID != c.Election.ID:
			errs = append(errs, FieldError{Field: "ward_member_candidate", Message: "Ward Member candidate is not from this election."})
		case c.Ward != nil && (w.WardID == nil || *w.WardID != c.Ward.ID):
			errs = append(errs, FieldError{Field: "ward_member_candidate", Message: "Ward Member candidate is not from the selected ward."})
		}
	}

	if c.FamilyVoteCount < FamilyVoteCountMin || c.FamilyVoteCount > FamilyVoteCountMax {
		errs = append(errs, FieldError{Field: "family_vote_count", Message: "Family vote count must be between 1 and 20."})
	}

	return errs
}
