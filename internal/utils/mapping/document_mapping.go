package mapping

import (
	"fmt"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/models"
)

// ToModelDocument flattens a domain Document into a documents row.
func ToModelDocument(d domain.Document) models.Document {
	h := d.Header()
	m := models.Document{
		DocumentID:     h.DocumentID,
		OrganizationID: h.OrganizationID,
		DocumentType:   string(d.DocumentType()),
		ProjectID:      nullableString(h.ProjectID),
		Number:         nullableString(h.Number),
		Title:          h.Title,
		CurrencyCode:   h.CurrencyCode,
		ExchangeRate:   h.ExchangeRate,
		TaxPct:         h.TaxPct,
		TaxLabel:       nullableString(h.TaxLabel),
		DiscountPct:    h.DiscountPct,
		Status:         string(h.Status),
		DeletedAt:      h.DeletedAt,
		AuditFields:    ToModelAuditFields(h.AuditFields),
	}

	switch doc := d.(type) {
	case *domain.Contract:
		m.OriginalContractValue = doc.OriginalContractValue
		m.FrozenAt = doc.FrozenAt
	case *domain.ChangeOrder:
		m.ParentContractID = nullableString(doc.ParentContractID)
	}
	return m
}

// ToDomainDocument rebuilds the typed domain Document from a documents row.
func ToDomainDocument(m models.Document) (domain.Document, error) {
	header := domain.DocumentHeader{
		DocumentID:     m.DocumentID,
		OrganizationID: m.OrganizationID,
		ProjectID:      stringValue(m.ProjectID),
		Number:         stringValue(m.Number),
		Title:          m.Title,
		CurrencyCode:   m.CurrencyCode,
		ExchangeRate:   m.ExchangeRate,
		TaxPct:         m.TaxPct,
		TaxLabel:       stringValue(m.TaxLabel),
		DiscountPct:    m.DiscountPct,
		Status:         domain.QuoteStatus(m.Status),
		DeletedAt:      m.DeletedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}

	doc, err := domain.NewDocument(domain.DocumentType(m.DocumentType), header, stringValue(m.ParentContractID))
	if err != nil {
		return nil, fmt.Errorf("invalid document row %s: %w", m.DocumentID, err)
	}
	if contract, ok := doc.(*domain.Contract); ok {
		contract.OriginalContractValue = m.OriginalContractValue
		contract.FrozenAt = m.FrozenAt
	}
	return doc, nil
}

// ToModelLineItem converts a domain QuoteLineItem to a model LineItem
func ToModelLineItem(d domain.QuoteLineItem) models.LineItem {
	return models.LineItem{
		LineItemID:  d.LineItemID,
		DocumentID:  d.DocumentID,
		Description: d.Description,
		Unit:        nullableString(d.Unit),
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		MarkupPct:   d.MarkupPct,
		Position:    d.Position,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model LineItem to a domain QuoteLineItem
func ToDomainLineItem(m models.LineItem) domain.QuoteLineItem {
	return domain.QuoteLineItem{
		LineItemID:  m.LineItemID,
		DocumentID:  m.DocumentID,
		Description: m.Description,
		Unit:        stringValue(m.Unit),
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		MarkupPct:   m.MarkupPct,
		Position:    m.Position,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineItemSlice converts a slice of model line items to domain line items
func ToDomainLineItemSlice(ms []models.LineItem) []domain.QuoteLineItem {
	ds := make([]domain.QuoteLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
