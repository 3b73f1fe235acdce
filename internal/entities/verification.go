package entities

import "time"

// VerificationChallenge holds a prepared registration until its one-time code is confirmed.
type VerificationChallenge struct {
	ID        string
	Contact   string
	Code      string
	Candidate Account
	Attempts  int
	ExpiresAt time.Time
}

func (c VerificationChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// VerificationTicket is what the caller gets back after a registration is started.
type VerificationTicket struct {
	ChallengeID string
	Contact     string
	ExpiresAt   time.Time
	// DemoCode is set only when codes are exposed for demo purposes.
	DemoCode string
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	Account   Account
}
