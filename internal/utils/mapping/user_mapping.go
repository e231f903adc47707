package mapping

import (
	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/SscSPs/forex_marketplace/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone.String,
		Role:        domain.UserRole(m.Role),
		KYCStatus:   domain.KYCStatus(m.KYCStatus),
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainAddress converts a model Address to a domain Address
func ToDomainAddress(m models.Address) domain.Address {
	return domain.Address{
		AddressID: m.AddressID,
		UserID:    m.UserID,
		Line1:     m.Line1,
		Line2:     m.Line2.String,
		City:      m.City,
		State:     m.State,
		Pincode:   m.Pincode,
	}
}

// ToDomainPartner converts a model Partner to a domain Partner
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID: m.PartnerID,
		Name:      m.Name,
		City:      m.City,
		IsActive:  m.IsActive,
	}
}
