package challenge

import (
	"encoding/json"
	"fmt"
	"time"

	"freightforge/internal/entities"
	"freightforge/internal/repository/account"
)

type ChallengeRecord struct {
	ID        string                `json:"id"`
	Contact   string                `json:"contact"`
	Code      string                `json:"code"`
	Candidate account.AccountRecord `json:"candidate"`
	Attempts  int                   `json:"attempts"`
	ExpiresAt time.Time             `json:"expires_at"`
}

func encode(c entities.VerificationChallenge) ([]byte, error) {
	candidate, err := account.FromDomain(c.Candidate)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(ChallengeRecord{
		ID:        c.ID,
		Contact:   c.Contact,
		Code:      c.Code,
		Candidate: candidate,
		Attempts:  c.Attempts,
		ExpiresAt: c.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode challenge %s: %w", c.ID, err)
	}
	return data, nil
}

func decode(data []byte) (*entities.VerificationChallenge, error) {
	var record ChallengeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode challenge: %w", err)
	}

	var nestedErr error
	candidate := account.ToDomain("challenges", record.ID, record.Candidate, func(err error) { nestedErr = err })
	if nestedErr != nil {
		return nil, nestedErr
	}

	return &entities.VerificationChallenge{
		ID:        record.ID,
		Contact:   record.Contact,
		Code:      record.Code,
		Candidate: candidate,
		Attempts:  record.Attempts,
		ExpiresAt: record.ExpiresAt,
	}, nil
}
