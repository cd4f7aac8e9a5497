package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// SalesReportRequest parámetros para GET /api/analytics/sales.
type SalesReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; por defecto hoy
	Dimension string `query:"dimension"`  // product | brand | category | retailer (default product)
}

// PeriodRequest parámetros de período para los endpoints que no llevan dimensión.
type PeriodRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// ── Reporte por dimensión ─────────────────────────────────────────────────────

// PeriodDTO rango de fechas del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DimensionMetricDTO métricas conciliadas de un bucket de dimensión
// (producto, marca, categoría o retailer según el reporte).
type DimensionMetricDTO struct {
	Key      string `json:"key"`
	Name     string `json:"name,omitempty"`
	SKU      string `json:"sku,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`

	TotalSold    decimal.Decimal `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	OrdersCount  int             `json:"orders_count"` // líneas de pedido, no pedidos

	// ProductsCount solo es significativo en dimensiones marca/categoría/retailer.
	ProductsCount int `json:"products_count,omitempty"`

	AvgProfitMarginPct decimal.Decimal `json:"avg_profit_margin_pct"` // profit/revenue*100
	AvgOrderValue      decimal.Decimal `json:"avg_order_value"`       // revenue/orders_count

	// Participación y Pareto sobre los ingresos del reporte.
	RevenuePct       decimal.Decimal `json:"revenue_pct"`
	CumulativeRevPct decimal.Decimal `json:"cumulative_revenue_pct"`
	IsTopPareto      bool            `json:"is_top_pareto"`

	// ── Solo dimensión producto ───────────────────────────────────────────────
	CurrentStock      *decimal.Decimal `json:"current_stock,omitempty"` // nil si el catálogo no trae stock
	TurnoverRatePct   decimal.Decimal  `json:"turnover_rate_pct,omitempty"`
	DaysSinceLastSale *int64           `json:"days_since_last_sale,omitempty"` // nil si nunca se vendió
	InventoryAge      string           `json:"inventory_age,omitempty"`        // new | moderate | old
	ROIPct            decimal.Decimal  `json:"roi_pct,omitempty"`
}

// SalesReportTotalsDTO totales globales del reporte (conservación: suman lo
// mismo que los buckets).
type SalesReportTotalsDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	TotalSold    decimal.Decimal `json:"total_sold"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
}

// SalesReportDTO respuesta completa de GET /api/analytics/sales.
// Buckets ordenados por ingreso descendente (orden de presentación, no del motor).
type SalesReportDTO struct {
	Period    PeriodDTO            `json:"period"`
	Dimension string               `json:"dimension"`
	Totals    SalesReportTotalsDTO `json:"totals"`
	Buckets   []DimensionMetricDTO `json:"buckets"`
}

// ── Concentración de clientes ─────────────────────────────────────────────────

// TopRetailerDTO participación de un retailer en el volumen de pedidos.
type TopRetailerDTO struct {
	RetailerID  string          `json:"retailer_id"`
	OrdersCount int             `json:"orders_count"`
	SharePct    decimal.Decimal `json:"share_pct"`
}

// DependencyRiskDTO respuesta de GET /api/analytics/dependency.
type DependencyRiskDTO struct {
	Period           PeriodDTO        `json:"period"`
	TotalOrders      int              `json:"total_orders"`
	TopRetailers     []TopRetailerDTO `json:"top_retailers"`
	ConcentrationPct decimal.Decimal  `json:"concentration_pct"`
	IsHighRisk       bool             `json:"is_high_risk"`
	ThresholdPct     decimal.Decimal  `json:"threshold_pct"` // política vigente
}
