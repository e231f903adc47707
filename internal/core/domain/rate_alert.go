package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AlertChannel selects how a triggered rate alert reaches the customer.
type AlertChannel string

const (
	AlertByEmail AlertChannel = "EMAIL"
	AlertBySMS   AlertChannel = "SMS"
	AlertByBoth  AlertChannel = "BOTH"
)

// Valid reports whether c is a known channel.
func (c AlertChannel) Valid() bool {
	switch c {
	case AlertByEmail, AlertBySMS, AlertByBoth:
		return true
	}
	return false
}

// Channels lists the notification channels the alert is delivered through.
func (c AlertChannel) Channels() []NotificationChannel {
	switch c {
	case AlertByEmail:
		return []NotificationChannel{ChannelEmail}
	case AlertBySMS:
		return []NotificationChannel{ChannelSMS}
	case AlertByBoth:
		return []NotificationChannel{ChannelEmail, ChannelSMS}
	}
	return nil
}

// RateAlert asks to be told once the sell rate of a currency drops to a target.
type RateAlert struct {
	AlertID      string          `json:"alertID"`
	UserID       string          `json:"userID"`
	CurrencyCode string          `json:"currencyCode"`
	TargetRate   decimal.Decimal `json:"targetRate"`
	AlertType    AlertChannel    `json:"alertType"`
	IsActive     bool            `json:"isActive"`
	TriggeredAt  *time.Time      `json:"triggeredAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Validate checks the target and the channel of a new alert.
func (a RateAlert) Validate() error {
	if !a.TargetRate.IsPositive() {
		return fmt.Errorf("%w: target rate must be greater than zero", apperrors.ErrValidation)
	}
	if !a.TargetRate.Equal(a.TargetRate.Truncate(RateScale)) {
		return fmt.Errorf("%w: target rate allows at most %d decimal places", apperrors.ErrValidation, RateScale)
	}
	if !a.AlertType.Valid() {
		return fmt.Errorf("%w: unknown alert type %q", apperrors.ErrValidation, a.AlertType)
	}
	return nil
}

// ReachedBy reports whether rate satisfies the alert. Customers buy at the sell rate,
// so the alert fires once that rate is at or below the target.
func (a RateAlert) ReachedBy(rate Rate) bool {
	return a.IsActive && rate.IsActive &&
		a.CurrencyCode == rate.CurrencyCode &&
		rate.SellRate.LessThanOrEqual(a.TargetRate)
}
