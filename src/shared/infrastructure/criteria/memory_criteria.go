package criteria

import (
	"sort"
	"strings"

	domainCriteria "pos/src/shared/domain/criteria"

	"github.com/shopspring/decimal"
)

// Record expone los campos filtrables de un registro por nombre. Los
// listados de este servicio llegan ya materializados desde el API remoto,
// así que el criteria se aplica en memoria en lugar de traducirse a SQL.
type Record interface {
	FieldValue(field string) interface{}
}

// MemoryCriteriaFilter aplica un Criteria sobre registros en memoria
type MemoryCriteriaFilter struct{}

// NewMemoryCriteriaFilter crea una nueva instancia del filtro
func NewMemoryCriteriaFilter() *MemoryCriteriaFilter {
	return &MemoryCriteriaFilter{}
}

// Apply filtra, ordena y pagina los registros según el criteria. Retorna la
// página pedida y el total de registros que pasaron los filtros (para que
// el cliente pueda armar la paginación).
func (f *MemoryCriteriaFilter) Apply(records []Record, criteria domainCriteria.Criteria) ([]Record, int) {
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if f.matches(record, criteria.Filters) {
			filtered = append(filtered, record)
		}
	}

	if !criteria.Order.IsEmpty() {
		f.sortRecords(filtered, criteria.Order)
	}

	total := len(filtered)

	if criteria.Offset != nil {
		offset := *criteria.Offset
		if offset >= len(filtered) {
			return []Record{}, total
		}
		filtered = filtered[offset:]
	}
	if criteria.Limit != nil && *criteria.Limit < len(filtered) {
		filtered = filtered[:*criteria.Limit]
	}

	return filtered, total
}

// matches evalúa todos los filtros (AND) contra un registro
func (f *MemoryCriteriaFilter) matches(record Record, filters domainCriteria.Filters) bool {
	for _, filter := range filters.Items {
		if !f.matchesFilter(record.FieldValue(filter.Field), filter) {
			return false
		}
	}
	return true
}

// matchesFilter evalúa un filtro contra el valor del campo
func (f *MemoryCriteriaFilter) matchesFilter(value interface{}, filter domainCriteria.Filter) bool {
	switch filter.Operator {
	case domainCriteria.OpLike:
		needle := strings.ToLower(toString(filter.Value))
		return strings.Contains(strings.ToLower(toString(value)), needle)
	case domainCriteria.OpEqual:
		return compare(value, filter.Value) == 0
	case domainCriteria.OpNotEqual:
		return compare(value, filter.Value) != 0
	case domainCriteria.OpGreaterThan:
		return compare(value, filter.Value) > 0
	case domainCriteria.OpGreaterThanOrEqual:
		return compare(value, filter.Value) >= 0
	case domainCriteria.OpLessThan:
		return compare(value, filter.Value) < 0
	case domainCriteria.OpLessThanOrEqual:
		return compare(value, filter.Value) <= 0
	default:
		return compare(value, filter.Value) == 0
	}
}

// sortRecords ordena los registros por el campo del Order
func (f *MemoryCriteriaFilter) sortRecords(records []Record, order domainCriteria.Order) {
	sort.SliceStable(records, func(i, j int) bool {
		cmp := compare(records[i].FieldValue(order.Field), records[j].FieldValue(order.Field))
		if order.OrderType == domainCriteria.DESC {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compare compara dos valores: numéricamente cuando ambos son montos y como
// cadenas en cualquier otro caso
func compare(a, b interface{}) int {
	da, aOK := toDecimal(a)
	db, bOK := toDecimal(b)
	if aOK && bOK {
		return da.Cmp(db)
	}
	return strings.Compare(toString(a), toString(b))
}

func toDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Zero, false
	}
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case nil:
		return ""
	default:
		return ""
	}
}
