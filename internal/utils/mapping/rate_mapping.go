package mapping

import (
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		CurrencyCode: d.CurrencyCode,
		CurrencyName: d.CurrencyName,
		BaseRate:     d.BaseRate,
		BuyRate:      d.BuyRate,
		SellRate:     d.SellRate,
		Markup:       d.Markup,
		IsActive:     d.IsActive,
		LastUpdated:  d.LastUpdated,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		CurrencyCode: m.CurrencyCode,
		CurrencyName: m.CurrencyName,
		BaseRate:     m.BaseRate,
		BuyRate:      m.BuyRate,
		SellRate:     m.SellRate,
		Markup:       m.Markup,
		IsActive:     m.IsActive,
		LastUpdated:  m.LastUpdated,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRateSlice converts a slice of model Rates to domain Rates
func ToDomainRateSlice(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
