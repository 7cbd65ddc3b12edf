// Package models holds the server-side data structures persisted by the
// repositories.
package models

import "time"

// User is an account known to Gatekeeper. Salt and Verifier implement the
// password-verifier scheme (the password itself is never stored).
type User struct {
	ID             string
	UserName       string
	Salt           []byte
	Verifier       []byte
	IsAdmin        bool
	LastVerifiedAt *time.Time
	CreatedAt      time.Time
}
