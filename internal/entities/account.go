package entities

import (
	"time"
)

type Account struct {
	Username         string
	BusinessName     string
	ContactPerson    string
	Email            string
	Mobile           string
	TaxID            string
	BusinessType     BusinessType
	Address          string
	PasswordHash     string
	Role             AccountRole
	ApprovalState    ApprovalState
	IdentityDocument []byte
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type BusinessType string

const (
	BusinessAgriculture    BusinessType = "Agriculture"
	BusinessLogistics      BusinessType = "Logistics"
	BusinessOther          BusinessType = "Other"
	BusinessAdministration BusinessType = "Administration"
)

func (t BusinessType) String() string {
	return string(t)
}

type AccountRole string

const (
	RoleCustomer AccountRole = "customer"
	RoleAdmin    AccountRole = "admin"
)

func (r AccountRole) String() string {
	return string(r)
}

type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
)

func (s ApprovalState) String() string {
	return string(s)
}

// AccountModify carries registration input. Nil means the field was not supplied.
type AccountModify struct {
	Username         *string
	Password         *string
	BusinessName     *string
	ContactPerson    *string
	Email            *string
	Mobile           *string
	TaxID            *string
	BusinessType     *BusinessType
	Address          *string
	IdentityDocument []byte
}
