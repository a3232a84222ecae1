package response

import (
	"pos/src/checkout/domain/entity"
)

// CatalogResponse es el catálogo de productos vendibles que consume la
// grilla del POS
type CatalogResponse struct {
	Items      []entity.CatalogItem `json:"items"`
	TotalCount int                  `json:"total_count"`
}

// NewCatalogResponse arma la respuesta del catálogo
func NewCatalogResponse(items []entity.CatalogItem) *CatalogResponse {
	return &CatalogResponse{
		Items:      items,
		TotalCount: len(items),
	}
}
