package mapping

import (
	"database/sql"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/models"
)

// ToModelRateAlert converts a domain RateAlert to a model RateAlert
func ToModelRateAlert(d domain.RateAlert) models.RateAlert {
	m := models.RateAlert{
		AlertID:      d.AlertID,
		UserID:       d.UserID,
		CurrencyCode: d.CurrencyCode,
		TargetRate:   d.TargetRate,
		AlertType:    string(d.AlertType),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
	if d.TriggeredAt != nil {
		m.TriggeredAt = sql.NullTime{Time: *d.TriggeredAt, Valid: true}
	}
	return m
}

// ToDomainRateAlert converts a model RateAlert to a domain RateAlert
func ToDomainRateAlert(m models.RateAlert) domain.RateAlert {
	d := domain.RateAlert{
		AlertID:      m.AlertID,
		UserID:       m.UserID,
		CurrencyCode: m.CurrencyCode,
		TargetRate:   m.TargetRate,
		AlertType:    domain.AlertChannel(m.AlertType),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
	if m.TriggeredAt.Valid {
		at := m.TriggeredAt.Time
		d.TriggeredAt = &at
	}
	return d
}

// ToDomainRateAlertSlice converts a slice of model RateAlerts to domain RateAlerts
func ToDomainRateAlertSlice(ms []models.RateAlert) []domain.RateAlert {
	ds := make([]domain.RateAlert, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRateAlert(m)
	}
	return ds
}
