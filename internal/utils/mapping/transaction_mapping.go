package mapping

import (
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		Kind:          models.TransactionKind(d.Kind),
		Category1:     d.Category1,
		Category2:     d.Category2,
		Category3:     d.Category3,
		Description:   d.Description,
		Date:          d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		Category1:     m.Category1,
		Category2:     m.Category2,
		Category3:     m.Category3,
		Description:   m.Description,
		Date:          m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
