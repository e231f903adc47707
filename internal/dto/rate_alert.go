package dto

import (
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRateAlertRequest asks to be told when a currency reaches a target rate.
type CreateRateAlertRequest struct {
	CurrencyCode CurrencyCode        `json:"currencyCode" binding:"required,currency_code"`
	TargetRate   decimal.Decimal     `json:"targetRate" binding:"required,gt=0"`
	AlertType    domain.AlertChannel `json:"alertType" binding:"omitempty,oneof=EMAIL SMS BOTH"`
}

// RateAlertResponse defines the data returned for a rate alert.
type RateAlertResponse struct {
	AlertID      string              `json:"alertID"`
	CurrencyCode string              `json:"currencyCode"`
	TargetRate   decimal.Decimal     `json:"targetRate"`
	AlertType    domain.AlertChannel `json:"alertType"`
	IsActive     bool                `json:"isActive"`
	TriggeredAt  *time.Time          `json:"triggeredAt,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToRateAlertResponse converts a domain.RateAlert to RateAlertResponse DTO
func ToRateAlertResponse(a *domain.RateAlert) RateAlertResponse {
	return RateAlertResponse{
		AlertID:      a.AlertID,
		CurrencyCode: a.CurrencyCode,
		TargetRate:   a.TargetRate,
		AlertType:    a.AlertType,
		IsActive:     a.IsActive,
		TriggeredAt:  a.TriggeredAt,
		CreatedAt:    a.CreatedAt,
	}
}

// ToListRateAlertResponse converts a slice of domain.RateAlert to a slice of RateAlertResponse DTOs
func ToListRateAlertResponse(alerts []domain.RateAlert) []RateAlertResponse {
	res := make([]RateAlertResponse, len(alerts))
	for i := range alerts {
		res[i] = ToRateAlertResponse(&alerts[i])
	}
	return res
}
