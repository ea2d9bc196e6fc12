package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/models"
	"github.com/msumanth960/Votingapp/internal/repositories"
	"github.com/msumanth960/Votingapp/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OTPService issues and verifies one-time codes for mobile numbers. Only the
// bcrypt hash of a code is stored. SMS delivery is out of scope: codes are
// written to the application log instead of being sent.
type OTPService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewOTPService(repo *repositories.Repository, cfg *config.Config) *OTPService {
	return &OTPService{repo: repo, cfg: cfg}
}

// RequestOTP generates a 6-digit code for the mobile number and stores its
// hash with an expiry. Returns the code's expiry time.
func (s *OTPService) RequestOTP(rawMobile string) (time.Time, error) {
	mobile := models.NormalizeMobile(rawMobile)
	if !models.IsValidMobile(mobile) {
		return time.Time{}, models.NewValidationError(models.FieldError{
			Field:   "mobile_number",
			Message: "Enter a valid 10-digit Indian mobile number starting with 6, 7, 8, or 9.",
		})
	}

	code, err := generateOTPCode()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := utils.HashOTPCode(code)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to hash OTP: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.OTPTTL)
	otp := &models.OTPRequest{
		ID:           uuid.New(),
		MobileNumber: mobile,
		CodeHash:     hash,
		ExpiresAt:    expiresAt,
	}
	if err := s.repo.OTPRepo.CreateOTP(otp); err != nil {
		return time.Time{}, err
	}

	// Delivery stub: a real deployment would hand the code to an SMS gateway.
	logrus.WithField("mobile", models.MaskMobile(mobile)).Info("OTP issued (delivery stubbed)")
	if s.cfg.Env == "development" {
		logrus.Debugf("OTP for %s: %s", models.MaskMobile(mobile), code)
	}

	return expiresAt, nil
}

// VerifyOTP checks a submitted code against the latest pending one for the
// mobile number and consumes it on success.
func (s *OTPService) VerifyOTP(rawMobile, code string) error {
	mobile := models.NormalizeMobile(rawMobile)
	if !models.IsValidMobile(mobile) {
		return models.NewValidationError(models.FieldError{
			Field:   "mobile_number",
			Message: "Enter a valid 10-digit Indian mobile number starting with 6, 7, 8, or 9.",
		})
	}

	otp, err := s.repo.OTPRepo.GetLatestPending(mobile)
	if err != nil {
		return err
	}
	if otp == nil {
		return models.NewValidationError(models.FieldError{
			Field:   "otp",
			Message: "No pending OTP for this mobile number. Please request a new one.",
		})
	}

	if err := utils.CheckOTPCode(code, otp.CodeHash); err != nil {
		return models.NewValidationError(models.FieldError{
			Field:   "otp",
			Message: "Invalid OTP. Please try again.",
		})
	}

	return s.repo.OTPRepo.MarkConsumed(otp.ID.String())
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
