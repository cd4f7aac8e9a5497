package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distriventas-api/internal/application/analytics"
	"github.com/jhoicas/Distriventas-api/internal/application/dto"
	"github.com/jhoicas/Distriventas-api/internal/domain"
	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fuentes fake en memoria (sustituyen al adaptador de Firestore)
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrders struct {
	orders []entity.Order
	err    error
}

func (f fakeOrders) FetchOrders(_ context.Context, _ string) ([]entity.Order, error) {
	return f.orders, f.err
}

type fakeProducts struct {
	products []entity.Product
	err      error
}

func (f fakeProducts) FetchProducts(_ context.Context, _ string) ([]entity.Product, error) {
	return f.products, f.err
}

func day(d int, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func fixtureOrders() []entity.Order {
	return []entity.Order{
		{
			ID: "o1", Status: "DELIVERED", PlacedAt: day(2, 10), RetailerID: "r1",
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p1"}, Quantity: decimal.NewFromInt(4), SellingPrice: decimal.NewFromInt(100)},
			},
		},
		{
			ID: "o2", StatusCode: "invoiced", PlacedAt: day(3, 11), RetailerID: "r2",
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p2"}, Quantity: decimal.NewFromInt(2), SellingPrice: decimal.NewFromInt(30)},
			},
		},
		{
			ID: "o3", Status: "Pending", PlacedAt: day(3, 12), RetailerID: "r1",
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p1"}, Quantity: decimal.NewFromInt(99), SellingPrice: decimal.NewFromInt(100)},
			},
		},
	}
}

func fixtureProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", SKU: "A1", Name: "Arroz Premium", CostPrice: decimal.NewFromInt(60), Stock: decimal.NewFromInt(20), StockKnown: true},
		{ID: "p2", SKU: "B2", Name: "Aceite Girasol", CostPrice: decimal.NewFromInt(20), Stock: decimal.NewFromInt(50), StockKnown: true},
	}
}

func salesUC(orders []entity.Order, products []entity.Product) *analytics.SalesReportUseCase {
	calc := reconcile.NewDerivedMetricsCalculator(reconcile.DefaultThresholds())
	return analytics.NewSalesReportUseCase(fakeOrders{orders: orders}, fakeProducts{products: products}, calc)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSalesReport_PorProducto(t *testing.T) {
	uc := salesUC(fixtureOrders(), fixtureProducts())

	report, err := uc.GetSalesReport(context.Background(), "d1", dto.SalesReportRequest{
		StartDate: "2026-03-01", EndDate: "2026-03-05", Dimension: "product",
	})
	require.NoError(t, err)

	require.Len(t, report.Buckets, 2, "el pedido pendiente no genera bucket")
	assert.Equal(t, "p1", report.Buckets[0].Key, "ordenado por ingreso descendente")
	assert.True(t, report.Buckets[0].TotalRevenue.Equal(decimal.NewFromInt(400)))
	assert.True(t, report.Buckets[1].TotalRevenue.Equal(decimal.NewFromInt(60)))

	// Conservación: los totales del reporte igualan la suma de los buckets
	assert.True(t, report.Totals.TotalRevenue.Equal(decimal.NewFromInt(460)))
	assert.True(t, report.Totals.TotalProfit.Equal(
		report.Totals.TotalRevenue.Sub(report.Totals.TotalCost)))
}

func TestGetSalesReport_DimensionPorDefectoEsProducto(t *testing.T) {
	uc := salesUC(fixtureOrders(), fixtureProducts())

	report, err := uc.GetSalesReport(context.Background(), "d1", dto.SalesReportRequest{
		StartDate: "2026-03-01", EndDate: "2026-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "product", report.Dimension)
}

func TestGetSalesReport_Pareto(t *testing.T) {
	uc := salesUC(fixtureOrders(), fixtureProducts())

	report, err := uc.GetSalesReport(context.Background(), "d1", dto.SalesReportRequest{
		StartDate: "2026-03-01", EndDate: "2026-03-05", Dimension: "product",
	})
	require.NoError(t, err)

	// p1 concentra 400/460 = 86.96% del ingreso: es Pareto por ser el primero;
	// p2 ya cruza el 80% acumulado.
	assert.True(t, report.Buckets[0].IsTopPareto)
	assert.False(t, report.Buckets[1].IsTopPareto)
	assert.True(t, report.Buckets[1].CumulativeRevPct.Equal(decimal.NewFromInt(100)))
}

func TestGetSalesReport_DimensionInvalida(t *testing.T) {
	uc := salesUC(fixtureOrders(), fixtureProducts())

	_, err := uc.GetSalesReport(context.Background(), "d1", dto.SalesReportRequest{
		StartDate: "2026-03-01", EndDate: "2026-03-05", Dimension: "bodega",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDimension)
}

func TestGetSalesReport_PeriodoInvalido(t *testing.T) {
	uc := salesUC(nil, nil)

	_, err := uc.GetSalesReport(context.Background(), "d1", dto.SalesReportRequest{
		StartDate: "2026-03-10", EndDate: "2026-03-05",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestGetSalesReport_ErrorDeFuenteSePropaga(t *testing.T) {
	calc := reconcile.NewDerivedMetricsCalculator(reconcile.DefaultThresholds())
	uc := analytics.NewSalesReportUseCase(
		fakeOrders{err: errors.New("firestore caído")},
		fakeProducts{products: fixtureProducts()},
		calc,
	)

	_, err := uc.GetSalesReport(context.Background(), "d1", dto.SalesReportRequest{
		StartDate: "2026-03-01", EndDate: "2026-03-05",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pedidos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concentración de clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDependencyRisk(t *testing.T) {
	orders := []entity.Order{
		{ID: "o1", Status: "DELIVERED", PlacedAt: day(2, 0), RetailerID: "A"},
		{ID: "o2", Status: "DELIVERED", PlacedAt: day(2, 0), RetailerID: "A"},
		{ID: "o3", Status: "DELIVERED", PlacedAt: day(3, 0), RetailerID: "B"},
		{ID: "o4", Status: "DELIVERED", PlacedAt: day(3, 0), RetailerID: "C"},
		{ID: "o5", Status: "DELIVERED", PlacedAt: day(3, 0), RetailerID: "D"},
	}
	uc := analytics.NewDependencyUseCase(
		fakeOrders{orders: orders},
		reconcile.NewDependencyRiskAnalyzer(reconcile.DefaultThresholds()),
	)

	risk, err := uc.GetDependencyRisk(context.Background(), "d1", dto.PeriodRequest{
		StartDate: "2026-03-01", EndDate: "2026-03-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, risk.TotalOrders)
	require.Len(t, risk.TopRetailers, 3)
	assert.Equal(t, "A", risk.TopRetailers[0].RetailerID)
	// top3 = 4/5 = 80% > 60%
	assert.True(t, risk.ConcentrationPct.Equal(decimal.NewFromInt(80)))
	assert.True(t, risk.IsHighRisk)
	assert.True(t, risk.ThresholdPct.Equal(decimal.NewFromInt(60)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pronóstico de agotamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDrainForecast(t *testing.T) {
	// ventana móvil: 24..30 de marzo; 14 unidades de p1 vendidas dentro
	orders := []entity.Order{
		{
			ID: "o1", Status: "DELIVERED", PlacedAt: day(26, 10),
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p1"}, Quantity: decimal.NewFromInt(14), SellingPrice: decimal.NewFromInt(100)},
			},
		},
		{
			ID: "o2", Status: "DELIVERED", PlacedAt: day(10, 10), // fuera de la ventana
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p2"}, Quantity: decimal.NewFromInt(50), SellingPrice: decimal.NewFromInt(30)},
			},
		},
	}
	uc := analytics.NewForecastUseCase(
		fakeOrders{orders: orders},
		fakeProducts{products: fixtureProducts()},
		reconcile.NewDrainForecastEstimator(reconcile.DefaultThresholds()),
	)
	uc.Now = func() time.Time { return day(30, 12) }

	report, err := uc.GetDrainForecast(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, 7, report.WindowDays)
	require.Len(t, report.Products, 2)

	// p1: 14/7 = 2/día, stock 20 → 10 días, crítico... 10 >= 7 → low
	p1 := report.Products[0]
	assert.Equal(t, "p1", p1.ProductID)
	require.NotNil(t, p1.DaysLeft)
	assert.Equal(t, int64(10), *p1.DaysLeft)
	assert.Equal(t, reconcile.DrainRiskLow, p1.RiskBand)

	// p2: sin ventas en ventana → sentinela infinito, al final del reporte
	p2 := report.Products[1]
	assert.Equal(t, "p2", p2.ProductID)
	assert.True(t, p2.Infinite)
	assert.Nil(t, p2.DaysLeft)
	assert.Equal(t, reconcile.DrainRiskHealthy, p2.RiskBand)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary(t *testing.T) {
	orders := []entity.Order{
		{
			ID: "o1", Status: "DELIVERED", PlacedAt: day(30, 9), // hoy
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p1"}, Quantity: decimal.NewFromInt(1), SellingPrice: decimal.NewFromInt(100)},
			},
		},
		{
			ID: "o2", Status: "DELIVERED", PlacedAt: day(5, 9), // este mes, no hoy
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p2"}, Quantity: decimal.NewFromInt(2), SellingPrice: decimal.NewFromInt(30)},
			},
		},
		{
			ID: "o3", Status: "DELIVERED", PlacedAt: time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC), // mes anterior
			Items: []entity.OrderLineItem{
				{ProductIDCandidates: []string{"p1"}, Quantity: decimal.NewFromInt(5), SellingPrice: decimal.NewFromInt(100)},
			},
		},
	}
	uc := analytics.NewDashboardUseCase(fakeOrders{orders: orders}, fakeProducts{products: fixtureProducts()})
	uc.Now = func() time.Time { return day(30, 15) }

	summary, err := uc.GetSummary(context.Background(), "d1")
	require.NoError(t, err)

	assert.True(t, summary.TodayRevenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.MonthlyRevenue.Equal(decimal.NewFromInt(160)), "hoy + el resto del mes; febrero queda fuera")
	assert.Equal(t, "Marzo 2026", summary.DateLabel)

	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "p1", summary.TopProducts[0].ProductID, "top por ingreso del mes")
}
