package response

import (
	"github.com/shopspring/decimal"
)

// DashboardStats son los indicadores agregados del negocio
type DashboardStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalInvoices int             `json:"totalInvoices"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	SalesToday    decimal.Decimal `json:"salesToday"`
}

// DailySale es el total vendido en un día
type DailySale struct {
	Fecha string          `json:"fecha"`
	Total decimal.Decimal `json:"total"`
}

// TopProduct es un producto y su cantidad vendida en el periodo
type TopProduct struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardData agrupa todo lo que muestra el tablero
type DashboardData struct {
	Stats       DashboardStats `json:"stats"`
	DailySales  []DailySale    `json:"dailySales"`
	TopProducts []TopProduct   `json:"topProducts"`
}
