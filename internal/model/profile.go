package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Profile struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	WorkOSID  *string   `json:"-"`
	Email     string    `json:"email"`
	ID        int64     `json:"id"`
}

// DisplayName falls back to the email when no name was set.
func (p Profile) DisplayName() string {
	if p.FullName != nil && strings.TrimSpace(*p.FullName) != "" {
		return *p.FullName
	}
	return p.Email
}

// Initials is what the avatar shows: two letters from the name, else the
// first letter of the email, else "U".
func (p Profile) Initials() string {
	if p.FullName != nil {
		names := strings.Fields(*p.FullName)
		switch {
		case len(names) >= 2:
			return strings.ToUpper(firstRune(names[0]) + firstRune(names[1]))
		case len(names) == 1:
			return strings.ToUpper(firstRune(names[0]))
		}
	}
	if p.Email != "" {
		return strings.ToUpper(firstRune(p.Email))
	}
	return "U"
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}
