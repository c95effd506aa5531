package auth

import (
	"context"
	"errors"
)

//go:generate mockgen -source=$GOFILE -destination=checker_mocks_test.go -package=auth_test

var (
	_ Checker = (*JWTChecker)(nil)
	_ Checker = (*ProviderChecker)(nil)
	_ Checker = (*CachedChecker)(nil)
)

// ErrInvalidToken means the bearer token was rejected, as opposed to the
// verification itself failing.
var ErrInvalidToken = errors.New("invalid or expired token")

// User is the authenticated identity a request acts on behalf of.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Checker interface {
	UserFromToken(ctx context.Context, token string) (*User, error)
}
