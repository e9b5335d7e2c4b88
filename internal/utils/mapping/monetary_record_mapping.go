package mapping

import (
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/models"
)

// ToModelMonetaryRecord converts a domain MonetaryRecord to a model MonetaryRecord
func ToModelMonetaryRecord(d domain.MonetaryRecord) models.MonetaryRecord {
	return models.MonetaryRecord{
		RecordID:       d.RecordID,
		OrganizationID: d.OrganizationID,
		ProjectID:      nullableString(d.ProjectID),
		Kind:           string(d.Kind),
		Description:    nullableString(d.Description),
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		ExchangeRate:   d.ExchangeRate,
		IsVoided:       d.IsVoided,
		OccurredAt:     d.OccurredAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMonetaryRecord converts a model MonetaryRecord to a domain MonetaryRecord
func ToDomainMonetaryRecord(m models.MonetaryRecord) domain.MonetaryRecord {
	return domain.MonetaryRecord{
		RecordID:       m.RecordID,
		OrganizationID: m.OrganizationID,
		ProjectID:      stringValue(m.ProjectID),
		Kind:           domain.RecordKind(m.Kind),
		Description:    stringValue(m.Description),
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		ExchangeRate:   m.ExchangeRate,
		IsVoided:       m.IsVoided,
		OccurredAt:     m.OccurredAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMonetaryRecordSlice converts a slice of model records to domain records
func ToDomainMonetaryRecordSlice(ms []models.MonetaryRecord) []domain.MonetaryRecord {
	ds := make([]domain.MonetaryRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonetaryRecord(m)
	}
	return ds
}
