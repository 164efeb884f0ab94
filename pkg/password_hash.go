package pkg

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const PasswordHashCost = 14

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return BytesToString(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordHash checks that hash looks like a bcrypt hash, so a typo
// in the users table fails at startup instead of on every login.
func ValidatePasswordHash(hash string) error {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return fmt.Errorf("invalid password hash: %w", err)
	}
	if cost < bcrypt.DefaultCost {
		return fmt.Errorf("password hash cost %d is below %d", cost, bcrypt.DefaultCost)
	}
	return nil
}
