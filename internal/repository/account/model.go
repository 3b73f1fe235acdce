package account

import (
	"encoding/json"
	"time"
)

type AccountRecord struct {
	Username         string          `json:"username"`
	BusinessName     string          `json:"business_name"`
	ContactPerson    string          `json:"contact_person"`
	Email            string          `json:"email"`
	Mobile           string          `json:"mobile"`
	TaxID            string          `json:"tax_id"`
	BusinessType     string          `json:"business_type"`
	Address          string          `json:"address"`
	PasswordHash     string          `json:"password_hash"`
	Role             string          `json:"role"`
	ApprovalState    string          `json:"approval_state"`
	IdentityDocument json.RawMessage `json:"identity_document,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
