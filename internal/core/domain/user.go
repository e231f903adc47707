package domain

import "time"

// KYCStatus is the identity verification state of a user.
type KYCStatus string

const (
	KYCPending   KYCStatus = "PENDING"
	KYCSubmitted KYCStatus = "SUBMITTED"
	KYCVerified  KYCStatus = "VERIFIED"
	KYCRejected  KYCStatus = "REJECTED"
)

// UserRole distinguishes customers from back-office staff.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a customer of the marketplace. Users are owned by the
// authentication service and only read here.
type User struct {
	UserID    string    `json:"userID"` // Primary Key (e.g., UUID)
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      UserRole  `json:"role"`
	KYCStatus KYCStatus `json:"kycStatus"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// Address is a delivery address belonging to a user.
type Address struct {
	AddressID string `json:"addressID"`
	UserID    string `json:"userID"`
	Line1     string `json:"line1"`
	Line2     string `json:"line2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

// Partner is a fulfilment partner an order can be assigned to.
type Partner struct {
	PartnerID string `json:"partnerID"`
	Name      string `json:"name"`
	City      string `json:"city"`
	IsActive  bool   `json:"isActive"`
}
