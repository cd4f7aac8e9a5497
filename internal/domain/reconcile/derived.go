package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Buckets de edad de inventario.
const (
	InventoryAgeNew      = "new"
	InventoryAgeModerate = "moderate"
	InventoryAgeOld      = "old"
)

// DerivedMetric es el registro inmutable listo para presentación que produce
// el cálculo de derivados sobre un acumulador terminado.
type DerivedMetric struct {
	Key      string
	Name     string
	SKU      string
	Brand    string
	Category string

	TotalSold    decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
	OrdersCount  int

	// ProductsCount solo es significativo en dimensiones distintas de producto.
	ProductsCount int

	AvgProfitMarginPct decimal.Decimal
	AvgOrderValue      decimal.Decimal

	// ── Solo dimensión producto ───────────────────────────────────────────────
	CurrentStock      decimal.Decimal
	StockKnown        bool
	TurnoverRatePct   decimal.Decimal
	DaysSinceLastSale *int64 // nil si nunca se vendió
	InventoryAge      string // new | moderate | old ("" fuera de la dimensión producto)
	ROIPct            decimal.Decimal
}

// DerivedMetricsCalculator calcula estadísticos derivados por acumulador.
// Función pura por registro, sin estado entre acumuladores; el reloj se inyecta
// para poder testear días-desde-última-venta y edad de inventario.
//
// Toda división con denominador posiblemente cero corta a cero (nunca NaN/∞);
// el único sentinela infinito legítimo del motor vive en DrainForecastEstimator.
type DerivedMetricsCalculator struct {
	Now        func() time.Time
	Thresholds Thresholds
}

// NewDerivedMetricsCalculator construye el calculador con la política indicada.
func NewDerivedMetricsCalculator(th Thresholds) *DerivedMetricsCalculator {
	return &DerivedMetricsCalculator{Now: time.Now, Thresholds: th}
}

// Derive produce el registro derivado de un acumulador.
func (c *DerivedMetricsCalculator) Derive(acc *MetricAccumulator) DerivedMetric {
	m := DerivedMetric{
		Key:           acc.Key,
		Name:          acc.Name,
		SKU:           acc.SKU,
		Brand:         acc.Brand,
		Category:      acc.Category,
		TotalSold:     acc.TotalSold,
		TotalRevenue:  acc.TotalRevenue,
		TotalCost:     acc.TotalCost,
		TotalProfit:   acc.TotalProfit,
		OrdersCount:   acc.OrdersCount,
		ProductsCount: len(acc.DistinctProductIDs),
	}

	if acc.TotalRevenue.IsPositive() {
		m.AvgProfitMarginPct = acc.TotalProfit.Div(acc.TotalRevenue).Mul(hundred).Round(2)
	}
	if acc.OrdersCount > 0 {
		m.AvgOrderValue = acc.TotalRevenue.Div(decimal.NewFromInt(int64(acc.OrdersCount))).Round(2)
	}

	if acc.Product != nil {
		c.deriveProductFields(&m, acc)
	}
	return m
}

func (c *DerivedMetricsCalculator) deriveProductFields(m *DerivedMetric, acc *MetricAccumulator) {
	p := acc.Product
	now := c.now()

	m.StockKnown = p.StockKnown
	if p.StockKnown {
		m.CurrentStock = p.Stock
	}

	// Rotación: (vendido / (stock + vendido)) * 100. Sin dato de stock un
	// producto vendido rota "completo" (100); sin ventas, cero. El stock puede
	// venir negativo (sobreventa) y anular el denominador: se trata igual que
	// no tener dato de stock, nunca se divide entre un valor no positivo.
	if acc.TotalSold.IsPositive() {
		if denom := p.Stock.Add(acc.TotalSold); p.StockKnown && denom.IsPositive() {
			m.TurnoverRatePct = acc.TotalSold.Div(denom).Mul(hundred).Round(2)
		} else {
			m.TurnoverRatePct = hundred
		}
	}

	if !acc.LastSoldAt.IsZero() {
		days := int64(now.Sub(acc.LastSoldAt).Hours() / 24)
		if days < 0 {
			days = 0
		}
		m.DaysSinceLastSale = &days
	}

	m.InventoryAge = c.inventoryAge(p.CreatedAt, p.CreatedAtKnown, now)

	// ROI: (utilidad realizada + utilidad potencial del stock restante) sobre
	// el costo del inventario actual.
	if p.StockKnown && p.Stock.Mul(p.CostPrice).IsPositive() {
		potential := p.Stock.Mul(p.SellingPrice.Sub(p.CostPrice))
		inventoryCost := p.Stock.Mul(p.CostPrice)
		m.ROIPct = acc.TotalProfit.Add(potential).Div(inventoryCost).Mul(hundred).Round(2)
	}
}

func (c *DerivedMetricsCalculator) inventoryAge(createdAt time.Time, known bool, now time.Time) string {
	if !known {
		return InventoryAgeNew
	}
	ageDays := int(now.Sub(createdAt).Hours() / 24)
	switch {
	case ageDays > c.Thresholds.AgeOldDays:
		return InventoryAgeOld
	case ageDays > c.Thresholds.AgeModerateDays:
		return InventoryAgeModerate
	default:
		return InventoryAgeNew
	}
}

func (c *DerivedMetricsCalculator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
