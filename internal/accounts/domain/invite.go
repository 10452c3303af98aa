package domain

import "time"

// Invite authorizes one email address to register. The raw token only ever
// lives in the registration link; TokenHash is its fingerprint.
type Invite struct {
	ID        string
	Email     string
	TokenHash string
	CreatedAt time.Time
}
