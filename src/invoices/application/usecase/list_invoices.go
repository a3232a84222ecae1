package usecase

import (
	"context"
	"strings"

	"pos/src/invoices/application/response"
	"pos/src/invoices/domain/entity"
	"pos/src/invoices/infrastructure/client"
	domainCriteria "pos/src/shared/domain/criteria"
	infraCriteria "pos/src/shared/infrastructure/criteria"
)

// ListInvoicesUseCase lista el historial de facturas del API remoto. La
// búsqueda libre matchea contra número de factura y nombre del cliente; el
// resto de filtros, ordenamiento y paginación llegan como criteria.
type ListInvoicesUseCase struct {
	invoiceClient *client.InvoiceAPIClient
	filter        *infraCriteria.MemoryCriteriaFilter
}

// NewListInvoicesUseCase crea una nueva instancia del caso de uso
func NewListInvoicesUseCase(invoiceClient *client.InvoiceAPIClient) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceClient: invoiceClient,
		filter:        infraCriteria.NewMemoryCriteriaFilter(),
	}
}

// Execute obtiene las facturas, aplica la búsqueda y luego el criteria
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, search string, criteria domainCriteria.Criteria) (*response.ListInvoicesResponse, error) {
	invoices, err := uc.invoiceClient.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" {
		search = strings.ToLower(search)
		filtered := make([]entity.Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if strings.Contains(strings.ToLower(inv.No), search) ||
				strings.Contains(strings.ToLower(inv.NombreCl), search) {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}

	records := make([]infraCriteria.Record, 0, len(invoices))
	for _, inv := range invoices {
		records = append(records, inv)
	}

	page, total := uc.filter.Apply(records, criteria)

	result := make([]entity.Invoice, 0, len(page))
	for _, record := range page {
		result = append(result, record.(entity.Invoice))
	}

	return &response.ListInvoicesResponse{
		Invoices:   result,
		TotalCount: total,
		Limit:      criteria.Limit,
		Offset:     criteria.Offset,
	}, nil
}
