package repositories

import (
	"errors"
	"time"

	"github.com/msumanth960/Votingapp/internal/models"

	"gorm.io/gorm"
)

type otpRepo struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepo{db: db}
}

func (r *otpRepo) CreateOTP(otp *models.OTPRequest) error {
	return r.db.Create(otp).Error
}

// GetLatestPending returns the newest unconsumed, unexpired code for the
// mobile number, or nil when none is pending.
func (r *otpRepo) GetLatestPending(mobile string) (*models.OTPRequest, error) {
	var otp models.OTPRequest
	err := r.db.
		Where("mobile_number = ? AND consumed = ? AND expires_at > ?", mobile, false, time.Now()).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepo) MarkConsumed(id string) error {
	return r.db.Model(&models.OTPRequest{}).
		Where("id = ?", id).
		Update("consumed", true).Error
}
