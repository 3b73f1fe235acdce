package account

import (
	"encoding/json"
	"fmt"

	"freightforge/internal/entities"
	"freightforge/internal/repository"
	"freightforge/internal/repository/collection"
)

// ToDomain never fails. A nested field that cannot be decoded is left empty
// and reported through warn.
func ToDomain(name collection.Name, key string, r AccountRecord, warn func(error)) entities.Account {
	account := entities.Account{
		Username:      r.Username,
		BusinessName:  r.BusinessName,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Mobile:        r.Mobile,
		TaxID:         r.TaxID,
		BusinessType:  entities.BusinessType(r.BusinessType),
		Address:       r.Address,
		PasswordHash:  r.PasswordHash,
		Role:          entities.AccountRole(r.Role),
		ApprovalState: entities.ApprovalState(r.ApprovalState),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if account.Username == "" {
		account.Username = key
	}
	if account.Role == "" {
		account.Role = entities.RoleCustomer
	}

	if len(r.IdentityDocument) > 0 {
		var document []byte
		if err := json.Unmarshal(r.IdentityDocument, &document); err != nil {
			warn(&repository.DecodeError{
				Collection: name.String(),
				Key:        key,
				Field:      "identity_document",
				Err:        err,
			})
		} else {
			account.IdentityDocument = document
		}
	}

	return account
}

func FromDomain(a entities.Account) (AccountRecord, error) {
	record := AccountRecord{
		Username:      a.Username,
		BusinessName:  a.BusinessName,
		ContactPerson: a.ContactPerson,
		Email:         a.Email,
		Mobile:        a.Mobile,
		TaxID:         a.TaxID,
		BusinessType:  a.BusinessType.String(),
		Address:       a.Address,
		PasswordHash:  a.PasswordHash,
		Role:          a.Role.String(),
		ApprovalState: a.ApprovalState.String(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if len(a.IdentityDocument) > 0 {
		document, err := json.Marshal(a.IdentityDocument)
		if err != nil {
			return AccountRecord{}, fmt.Errorf("encode identity document of %s: %w", a.Username, err)
		}
		record.IdentityDocument = document
	}

	return record, nil
}

func encodeAccounts(accounts map[string]entities.Account) (collection.Records, error) {
	records := make(map[string]AccountRecord, len(accounts))
	for key, a := range accounts {
		record, err := FromDomain(a)
		if err != nil {
			return nil, err
		}
		records[key] = record
	}
	return collection.Encode(records)
}

func decodeAccounts(name collection.Name, records collection.Records, warn func(error)) map[string]entities.Account {
	decoded := collection.Decode[AccountRecord](name, records, warn)
	accounts := make(map[string]entities.Account, len(decoded))
	for key, record := range decoded {
		accounts[key] = ToDomain(name, key, record, warn)
	}
	return accounts
}

func clone(a entities.Account) *entities.Account {
	out := a
	if a.IdentityDocument != nil {
		out.IdentityDocument = append([]byte(nil), a.IdentityDocument...)
	}
	return &out
}
