package mapping

import (
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/models"
)

// ToDomainOffer converts a model Offer to a domain Offer
func ToDomainOffer(m models.Offer) domain.Offer {
	o := domain.Offer{
		OfferID:       m.OfferID,
		Code:          m.Code,
		Title:         m.Title,
		Description:   m.Description.String,
		DiscountType:  domain.DiscountType(m.DiscountType),
		DiscountValue: m.DiscountValue,
		MinAmount:     m.MinAmount,
		ValidFrom:     m.ValidFrom,
		ValidUntil:    m.ValidUntil,
		UsageCount:    int(m.UsageCount),
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.MaxDiscount.Valid {
		maxDiscount := m.MaxDiscount.Decimal
		o.MaxDiscount = &maxDiscount
	}
	if m.UsageLimit.Valid {
		limit := int(m.UsageLimit.Int32)
		o.UsageLimit = &limit
	}
	return o
}

// ToDomainOfferSlice converts a slice of model Offers to domain Offers
func ToDomainOfferSlice(ms []models.Offer) []domain.Offer {
	ds := make([]domain.Offer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOffer(m)
	}
	return ds
}
