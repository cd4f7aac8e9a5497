package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día y del mes en curso más el Top-5 de productos del mes, todo
// derivado de la misma pasada de conciliación que el resto de reportes.
type DashboardSummaryDTO struct {
	// Métricas del día actual (00:00 – 23:59)
	TodayRevenue decimal.Decimal `json:"today_revenue"`
	TodayProfit  decimal.Decimal `json:"today_profit"`

	// Métricas del mes en curso (día 1 – hoy)
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	MonthlyProfit  decimal.Decimal `json:"monthly_profit"`

	// Top 5 productos por ingreso del mes (descendente)
	TopProducts []TopProductDTO `json:"top_products"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku,omitempty"`
	ProductName  string          `json:"product_name,omitempty"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
}
