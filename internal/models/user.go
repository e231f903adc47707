package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table, owned by the account service.
type User struct {
	UserID    string         `db:"user_id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Role      string         `db:"role"`
	KYCStatus string         `db:"kyc_status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// Address is a row of the addresses table.
type Address struct {
	AddressID string         `db:"address_id"`
	UserID    string         `db:"user_id"`
	Line1     string         `db:"line1"`
	Line2     sql.NullString `db:"line2"`
	City      string         `db:"city"`
	State     string         `db:"state"`
	Pincode   string         `db:"pincode"`
}

// Partner is a row of the partners table.
type Partner struct {
	PartnerID string `db:"partner_id"`
	Name      string `db:"name"`
	City      string `db:"city"`
	IsActive  bool   `db:"is_active"`
}
