package mapping

import (
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		Name:      d.Name,
		Type:      d.Type,
		Balance:   d.Balance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		Name:      m.Name,
		Type:      m.Type,
		Balance:   m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
