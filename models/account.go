package models

import "time"

// Account represents a registered principal. It is the unit of identity for
// authentication and the owner of all records created under it.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// ID is the stable internal identifier assigned by the store at
	// creation. It is never reused.
	ID int64 `json:"id"`

	// Handle is the unique, case-sensitive display name.
	Handle string `json:"handle"`

	// ContactAddress is the unique address used as the login identifier
	// and as the subject claim of issued tokens.
	ContactAddress string `json:"contact_address"`

	// CredentialHash is the salted one-way digest of the account password.
	// It is never serialized outward.
	CredentialHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
