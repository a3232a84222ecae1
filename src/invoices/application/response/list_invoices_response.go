package response

import (
	"pos/src/invoices/domain/entity"
)

// ListInvoicesResponse es la página de facturas junto con el total que pasó
// los filtros, para que el cliente arme la paginación
type ListInvoicesResponse struct {
	Invoices   []entity.Invoice `json:"invoices"`
	TotalCount int              `json:"total_count"`
	Limit      *int             `json:"limit,omitempty"`
	Offset     *int             `json:"offset,omitempty"`
}
