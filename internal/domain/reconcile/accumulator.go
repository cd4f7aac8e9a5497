package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
)

// ResolvedSale es una línea de pedido ya resuelta contra el catálogo, con sus
// montos calculados. Es la unidad que consumen tanto la agregación por
// dimensión como los analizadores especializados (concentración de clientes,
// pronóstico de agotamiento).
type ResolvedSale struct {
	OrderID    string
	RetailerID string
	PlacedAt   time.Time

	Item  entity.OrderLineItem
	Match ResolvedMatch

	// Montos de la línea. Con Quantity ≤ 0 los tres montos son cero: la línea
	// cuenta para OrdersCount pero no aporta dinero.
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
	Cost     decimal.Decimal
	Profit   decimal.Decimal
}

// MetricAccumulator acumula totales corrientes para una clave de dimensión
// (id de producto, marca, categoría o id de retailer) durante una pasada de
// agregación. Se crea perezosamente al primer fold de su clave y no se muta
// una vez que la pasada termina.
//
// Invariante mantenido incrementalmente: TotalProfit == TotalRevenue − TotalCost.
type MetricAccumulator struct {
	Key string

	TotalSold    decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal

	// OrdersCount cuenta líneas de pedido foldeadas, no pedidos distintos.
	OrdersCount int

	// DistinctProductIDs solo es significativo cuando la dimensión no es
	// producto (productos distintos por marca/categoría/retailer).
	DistinctProductIDs map[string]struct{}

	// LastSoldAt es el instante normalizado más reciente observado.
	LastSoldAt time.Time

	// Product referencia el producto resuelto (solo dimensión producto; nil en
	// las demás). Placeholder cuando el catálogo no lo tenía.
	Product *entity.Product

	// Campos de presentación capturados del primer fold que los trae.
	Name     string
	SKU      string
	Brand    string
	Category string
}

func newMetricAccumulator(key string) *MetricAccumulator {
	return &MetricAccumulator{
		Key:                key,
		DistinctProductIDs: make(map[string]struct{}),
	}
}

// Fold incorpora una venta resuelta al acumulador.
func (a *MetricAccumulator) Fold(sale ResolvedSale) {
	a.OrdersCount++
	a.TotalSold = a.TotalSold.Add(sale.Quantity)
	a.TotalRevenue = a.TotalRevenue.Add(sale.Revenue)
	a.TotalCost = a.TotalCost.Add(sale.Cost)
	a.TotalProfit = a.TotalProfit.Add(sale.Profit)

	if sale.Match.ProductID != "" {
		a.DistinctProductIDs[sale.Match.ProductID] = struct{}{}
	}
	if sale.PlacedAt.After(a.LastSoldAt) {
		a.LastSoldAt = sale.PlacedAt
	}

	if a.Name == "" {
		a.Name = firstNonEmpty(sale.Item.ProductName, productField(sale.Match.Product, func(p *entity.Product) string { return p.Name }))
	}
	if a.SKU == "" {
		a.SKU = firstNonEmpty(sale.Item.SKU, productField(sale.Match.Product, func(p *entity.Product) string { return p.SKU }))
	}
	if a.Brand == "" {
		a.Brand = firstNonEmpty(sale.Item.Brand, productField(sale.Match.Product, func(p *entity.Product) string { return p.Brand }))
	}
	if a.Category == "" {
		a.Category = firstNonEmpty(sale.Item.Category, productField(sale.Match.Product, func(p *entity.Product) string { return p.Category }))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func productField(p *entity.Product, get func(*entity.Product) string) string {
	if p == nil {
		return ""
	}
	return get(p)
}
