package domain

import "time"

// AuditAction names a state change recorded in the audit log.
type AuditAction string

const (
	AuditOrderCreated       AuditAction = "ORDER_CREATED"
	AuditOrderCancelled     AuditAction = "ORDER_CANCELLED"
	AuditOrderStatusUpdated AuditAction = "ORDER_STATUS_UPDATED"
	AuditOrderAssigned      AuditAction = "ORDER_PARTNER_ASSIGNED"
	AuditPaymentInitiated   AuditAction = "PAYMENT_INITIATED"
	AuditPaymentSuccess     AuditAction = "PAYMENT_SUCCESS"
	AuditRateChanged        AuditAction = "RATE_CHANGED"
	AuditOfferRedeemed      AuditAction = "OFFER_REDEEMED"
)

// AuditEntry is one row of the audit log.
type AuditEntry struct {
	AuditID   string         `json:"auditID"`
	Actor     string         `json:"actor"`
	Action    AuditAction    `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entityID"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
