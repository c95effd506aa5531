package pkg

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MetricsPasswordCost is the bcrypt cost used for the metrics endpoint
// credentials. BasicAuth compares against it on every scrape.
const MetricsPasswordCost = 12

// HashPassword hashes the password with the given bcrypt cost. Costs outside
// of bcrypt's accepted range fall back to bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return BytesToString(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
