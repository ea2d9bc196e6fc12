package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashOTPCode hashes a one-time code before storage; plaintext codes are
// never persisted.
func HashOTPCode(code string) (string, error) {
	if len(code) != 6 {
		return "", errors.New("OTP code must be exactly 6 digits")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckOTPCode compares a submitted code against its stored hash.
func CheckOTPCode(code, hashedCode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
}
