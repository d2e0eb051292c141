package mapping

import (
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
)

// ToModelUser converts a domain.User to models.User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		GoogleID:     d.GoogleID,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainUser converts a models.User to domain.User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		GoogleID:     m.GoogleID,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}
