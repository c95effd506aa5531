package model

import (
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"
)

const (
	MinUsernameLength = 2
	MaxUsernameLength = 50
)

// Profile is a singleton per user, its ID equals the user ID.
type Profile struct {
	ID            string     `json:"id" db:"id"`
	Username      *string    `json:"username" db:"username"`
	AvatarURL     *string    `json:"avatar_url" db:"avatar_url"`
	Weight        *float64   `json:"weight" db:"weight"`
	Height        *float64   `json:"height" db:"height"`
	Goal          *string    `json:"goal" db:"goal"`
	ActivityLevel *string    `json:"activity_level" db:"activity_level"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (p Profile) Validate() error {
	if p.Username != nil {
		l := utf8.RuneCountInString(*p.Username)
		if l < MinUsernameLength || l > MaxUsernameLength {
			return fmt.Errorf("%w: username must be between %d and %d characters", ErrInvalid, MinUsernameLength, MaxUsernameLength)
		}
	}
	if p.AvatarURL != nil && *p.AvatarURL != "" {
		u, err := url.Parse(*p.AvatarURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%w: avatar url must be an absolute url", ErrInvalid)
		}
	}
	if p.Weight != nil && *p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalid)
	}
	if p.Height != nil && *p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalid)
	}
	return nil
}
