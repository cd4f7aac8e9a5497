package dto

import "github.com/shopspring/decimal"

// DrainForecastDTO pronóstico de agotamiento de un producto.
//
// DaysLeft es nil cuando Infinite es true: sin ventas en la ventana el
// producto no puede agotarse. Los consumidores deben tratar el sentinela
// aparte, nunca como un número grande.
type DrainForecastDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku,omitempty"`
	ProductName  string          `json:"product_name,omitempty"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	SoldInWindow decimal.Decimal `json:"sold_in_window"`
	AvgDailySale decimal.Decimal `json:"avg_daily_sale"`
	DaysLeft     *int64          `json:"days_left"` // null = infinito
	Infinite     bool            `json:"infinite"`
	RiskBand     string          `json:"risk_band"` // critical | low | healthy
}

// DrainForecastReportDTO respuesta de GET /api/analytics/forecast.
// Ordenado por urgencia: menos días primero, los infinitos al final.
type DrainForecastReportDTO struct {
	WindowDays int                `json:"window_days"`
	Products   []DrainForecastDTO `json:"products"`
}
