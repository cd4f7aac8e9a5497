package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distriventas-api/internal/application/dto"
	"github.com/jhoicas/Distriventas-api/internal/application/ports"
	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
)

var (
	hundred  = decimal.NewFromInt(100)
	pareto80 = decimal.NewFromInt(80) // top de SKUs que concentra ~80% del ingreso
)

// SalesReportUseCase genera el reporte conciliado de ventas para cualquier
// dimensión (producto, marca, categoría, retailer) y ventana de fechas.
type SalesReportUseCase struct {
	orderSrc   ports.OrderSource
	productSrc ports.ProductSource
	calc       *reconcile.DerivedMetricsCalculator
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(
	orderSrc ports.OrderSource,
	productSrc ports.ProductSource,
	calc *reconcile.DerivedMetricsCalculator,
) *SalesReportUseCase {
	return &SalesReportUseCase{orderSrc: orderSrc, productSrc: productSrc, calc: calc}
}

// GetSalesReport corre la pasada de agregación y devuelve los buckets
// derivados, ordenados por ingreso descendente con análisis Pareto.
func (uc *SalesReportUseCase) GetSalesReport(
	ctx context.Context,
	distributorID string,
	req dto.SalesReportRequest,
) (*dto.SalesReportDTO, error) {
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	dimStr := req.Dimension
	if dimStr == "" {
		dimStr = string(reconcile.DimensionProduct)
	}
	dim, err := reconcile.ParseDimension(dimStr)
	if err != nil {
		return nil, err
	}

	snap, err := fetchSnapshot(ctx, uc.orderSrc, uc.productSrc, distributorID)
	if err != nil {
		return nil, err
	}

	window := reconcile.NewTimeWindow(startDate, endDate)
	accs, err := reconcile.Aggregate(snap.orders, snap.products, window, dim)
	if err != nil {
		return nil, err
	}

	metrics := make([]reconcile.DerivedMetric, 0, len(accs))
	for _, acc := range accs {
		metrics = append(metrics, uc.calc.Derive(acc))
	}

	// Orden de presentación: ingreso descendente, desempate por clave para
	// que el reporte sea reproducible.
	sort.SliceStable(metrics, func(i, j int) bool {
		if !metrics[i].TotalRevenue.Equal(metrics[j].TotalRevenue) {
			return metrics[i].TotalRevenue.GreaterThan(metrics[j].TotalRevenue)
		}
		return metrics[i].Key < metrics[j].Key
	})

	report := &dto.SalesReportDTO{
		Period: dto.PeriodDTO{
			StartDate: window.Start().Format("2006-01-02"),
			EndDate:   window.End().Format("2006-01-02"),
		},
		Dimension: string(dim),
		Buckets:   buildBuckets(metrics, dim),
	}
	report.Totals = buildTotals(metrics)
	return report, nil
}

// buildBuckets convierte los registros derivados en DTOs enriquecidos con
// participación, acumulado y bandera Pareto (top ~80% del ingreso).
func buildBuckets(metrics []reconcile.DerivedMetric, dim reconcile.Dimension) []dto.DimensionMetricDTO {
	var totalRevenue decimal.Decimal
	for _, m := range metrics {
		totalRevenue = totalRevenue.Add(m.TotalRevenue)
	}

	buckets := make([]dto.DimensionMetricDTO, 0, len(metrics))
	var cumulative decimal.Decimal

	for i, m := range metrics {
		b := dto.DimensionMetricDTO{
			Key:                m.Key,
			Name:               m.Name,
			SKU:                m.SKU,
			Brand:              m.Brand,
			Category:           m.Category,
			TotalSold:          m.TotalSold,
			TotalRevenue:       m.TotalRevenue.Round(2),
			TotalCost:          m.TotalCost.Round(2),
			TotalProfit:        m.TotalProfit.Round(2),
			OrdersCount:        m.OrdersCount,
			AvgProfitMarginPct: m.AvgProfitMarginPct,
			AvgOrderValue:      m.AvgOrderValue,
		}
		if dim != reconcile.DimensionProduct {
			b.ProductsCount = m.ProductsCount
		}

		if totalRevenue.IsPositive() {
			b.RevenuePct = m.TotalRevenue.Div(totalRevenue).Mul(hundred).Round(2)
		}
		cumulative = cumulative.Add(b.RevenuePct)
		b.CumulativeRevPct = cumulative.Round(2)
		// Pareto aproximado: entran los buckets mientras el acumulado no pase
		// del 80%; el primero entra siempre aunque él solo lo cruce. El bucket
		// que cruza el umbral a partir del segundo queda fuera.
		b.IsTopPareto = cumulative.LessThanOrEqual(pareto80) || i == 0

		if dim == reconcile.DimensionProduct {
			if m.StockKnown {
				stock := m.CurrentStock
				b.CurrentStock = &stock
			}
			b.TurnoverRatePct = m.TurnoverRatePct
			b.DaysSinceLastSale = m.DaysSinceLastSale
			b.InventoryAge = m.InventoryAge
			b.ROIPct = m.ROIPct
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func buildTotals(metrics []reconcile.DerivedMetric) dto.SalesReportTotalsDTO {
	var t dto.SalesReportTotalsDTO
	for _, m := range metrics {
		t.TotalRevenue = t.TotalRevenue.Add(m.TotalRevenue)
		t.TotalCost = t.TotalCost.Add(m.TotalCost)
		t.TotalProfit = t.TotalProfit.Add(m.TotalProfit)
		t.TotalSold = t.TotalSold.Add(m.TotalSold)
	}
	if t.TotalRevenue.IsPositive() {
		t.MarginPct = t.TotalProfit.Div(t.TotalRevenue).Mul(hundred).Round(2)
	}
	t.TotalRevenue = t.TotalRevenue.Round(2)
	t.TotalCost = t.TotalCost.Round(2)
	t.TotalProfit = t.TotalProfit.Round(2)
	return t
}
