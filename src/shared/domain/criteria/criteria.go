package criteria

import (
	"net/url"
	"strconv"
)

// FilterOperator son los operadores de comparación soportados
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpLike               FilterOperator = "LIKE"
)

// Filter es una condición sobre un campo
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// Filters es la colección de condiciones de un criteria (se combinan con AND)
type Filters struct {
	Items []Filter
}

// NewFilters crea una colección de filtros vacía
func NewFilters() Filters {
	return Filters{}
}

// Add agrega un filtro a la colección
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// OrderType es la dirección de ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Order define el campo y la dirección de ordenamiento
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria agrupa filtros, ordenamiento y paginación de una consulta de listado
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	}
}

// CriteriaBuilder construye criterias de forma fluida
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{filters: NewFilters()}
}

// WithFilter agrega una condición al criteria
func (b *CriteriaBuilder) WithFilter(field string, operator FilterOperator, value interface{}) *CriteriaBuilder {
	b.filters.Add(Filter{Field: field, Operator: operator, Value: value})
	return b
}

// WithOrder define el ordenamiento
func (b *CriteriaBuilder) WithOrder(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// WithLimit define el tamaño de página
func (b *CriteriaBuilder) WithLimit(limit int) *CriteriaBuilder {
	b.limit = &limit
	return b
}

// WithOffset define el desplazamiento de página
func (b *CriteriaBuilder) WithOffset(offset int) *CriteriaBuilder {
	b.offset = &offset
	return b
}

// FromURLValues carga ordenamiento y paginación desde query parameters
// (order_by, order_type, limit, offset); los filtros de campos los agrega
// cada módulo porque conoce sus campos permitidos
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	if field := values.Get("order_by"); field != "" {
		orderType := ASC
		if values.Get("order_type") == string(DESC) {
			orderType = DESC
		}
		b.order = NewOrder(field, orderType)
	}
	if raw := values.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			b.limit = &limit
		}
	}
	if raw := values.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			b.offset = &offset
		}
	}
	return b
}

// Build construye el criteria final
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}
