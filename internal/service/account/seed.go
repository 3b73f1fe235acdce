package account

import (
	"fmt"
	"time"

	"freightforge/internal/entities"
)

const AdminUsername = "admin"

// Seeds are the accounts a fresh installation starts with.
type Seeds struct {
	Approved []entities.Account
	Pending  []entities.Account
}

// BuildSeeds returns the built-in admin and, when demo is set, the two demo
// customers waiting for approval. Demo customers use their username as password.
func BuildSeeds(hasher PasswordHasher, adminPassword string, demo bool) (Seeds, error) {
	now := time.Now().UTC()

	adminHash, err := hasher.HashPassword(adminPassword)
	if err != nil {
		return Seeds{}, fmt.Errorf("hash admin password: %w", err)
	}

	seeds := Seeds{
		Approved: []entities.Account{{
			Username:         AdminUsername,
			BusinessName:     "FreightForge Administration",
			ContactPerson:    "System Administrator",
			Email:            "admin@freightforge.com",
			Mobile:           "555-0100",
			TaxID:            "ADMIN123456",
			BusinessType:     entities.BusinessAdministration,
			Address:          "FreightForge HQ",
			PasswordHash:     adminHash,
			Role:             entities.RoleAdmin,
			ApprovalState:    entities.ApprovalApproved,
			IdentityDocument: []byte("admin_document"),
			CreatedAt:        now,
			UpdatedAt:        now,
		}},
	}
	if !demo {
		return seeds, nil
	}

	demoCustomers := []entities.Account{
		{
			Username:      "Customer1",
			BusinessName:  "Grain Traders Inc.",
			ContactPerson: "John Smith",
			Email:         "john@graintraders.com",
			Mobile:        "555-1234",
			TaxID:         "GRAIN123456",
			BusinessType:  entities.BusinessAgriculture,
			Address:       "123 Farm Road, Rural County",
		},
		{
			Username:      "Customer2",
			BusinessName:  "Logistics Masters Ltd.",
			ContactPerson: "Sarah Johnson",
			Email:         "sarah@logisticsmasters.com",
			Mobile:        "555-5678",
			TaxID:         "LOGIS123456",
			BusinessType:  entities.BusinessLogistics,
			Address:       "456 Transport Avenue, Shipping City",
		},
	}

	for _, customer := range demoCustomers {
		hash, err := hasher.HashPassword(customer.Username)
		if err != nil {
			return Seeds{}, fmt.Errorf("hash %s password: %w", customer.Username, err)
		}
		customer.PasswordHash = hash
		customer.Role = entities.RoleCustomer
		customer.ApprovalState = entities.ApprovalPending
		customer.IdentityDocument = []byte(fmt.Sprintf("%s_document", customer.Username))
		customer.CreatedAt = now
		customer.UpdatedAt = now
		seeds.Pending = append(seeds.Pending, customer)
	}

	return seeds, nil
}
