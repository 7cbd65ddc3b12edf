package models

import "time"

// AccessAttempt is one audited run of the admin permission check.
// Status mirrors the checker outcome; Granted is the final decision.
type AccessAttempt struct {
	ID        string
	UserName  string
	Status    int
	Granted   bool
	CreatedAt time.Time
}
