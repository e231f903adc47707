package mapping

import (
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	md := make(map[string]string, len(d.Metadata))
	for k, v := range d.Metadata {
		md[string(k)] = v
	}
	return models.Order{
		OrderID:        d.OrderID,
		OrderNumber:    d.OrderNumber,
		UserID:         d.UserID,
		ProductType:    string(d.ProductType),
		CurrencyCode:   d.CurrencyCode,
		AmountForeign:  d.AmountForeign,
		ExchangeRate:   d.ExchangeRate,
		AmountINR:      d.AmountINR,
		Commission:     d.Commission,
		Taxes:          d.Taxes,
		DeliveryCharge: d.DeliveryCharge,
		TotalAmount:    d.TotalAmount,
		Status:         string(d.Status),
		PaymentStatus:  string(d.PaymentStatus),
		DeliveryType:   string(d.DeliveryType),
		AddressID:      toNullString(d.AddressID),
		PartnerID:      toNullString(d.PartnerID),
		Notes:          toNullStringValue(d.Notes),
		Metadata:       md,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	md := make(domain.OrderMetadata, len(m.Metadata))
	for k, v := range m.Metadata {
		md[domain.MetadataKey(k)] = v
	}
	return domain.Order{
		OrderID:        m.OrderID,
		OrderNumber:    m.OrderNumber,
		UserID:         m.UserID,
		ProductType:    domain.ProductType(m.ProductType),
		CurrencyCode:   m.CurrencyCode,
		AmountForeign:  m.AmountForeign,
		ExchangeRate:   m.ExchangeRate,
		AmountINR:      m.AmountINR,
		Commission:     m.Commission,
		Taxes:          m.Taxes,
		DeliveryCharge: m.DeliveryCharge,
		TotalAmount:    m.TotalAmount,
		Status:         domain.OrderStatus(m.Status),
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		DeliveryType:   domain.DeliveryType(m.DeliveryType),
		AddressID:      fromNullString(m.AddressID),
		PartnerID:      fromNullString(m.PartnerID),
		Notes:          m.Notes.String,
		Metadata:       md,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainOrderSlice converts a slice of model Orders to domain Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
