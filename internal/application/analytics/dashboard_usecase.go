package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distriventas-api/internal/application/dto"
	"github.com/jhoicas/Distriventas-api/internal/application/ports"
	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen financiero del día y del mes en curso.
// Es un llamador más del motor compartido: dos ventanas, misma conciliación.
type DashboardUseCase struct {
	orderSrc   ports.OrderSource
	productSrc ports.ProductSource

	// Now se inyecta en tests; nil usa time.Now.
	Now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orderSrc ports.OrderSource, productSrc ports.ProductSource) *DashboardUseCase {
	return &DashboardUseCase{orderSrc: orderSrc, productSrc: productSrc}
}

// GetSummary construye el DashboardSummaryDTO para el distribuidor indicado:
// KPIs de hoy, KPIs del mes y Top-5 productos del mes por ingreso.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, distributorID string) (*dto.DashboardSummaryDTO, error) {
	snap, err := fetchSnapshot(ctx, uc.orderSrc, uc.productSrc, distributorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if uc.Now != nil {
		now = uc.Now()
	}
	todayWindow := reconcile.NewTimeWindow(now, now)
	monthWindow := reconcile.NewTimeWindow(
		time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now)

	todayAccs, err := reconcile.Aggregate(snap.orders, snap.products, todayWindow, reconcile.DimensionProduct)
	if err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", err)
	}
	monthAccs, err := reconcile.Aggregate(snap.orders, snap.products, monthWindow, reconcile.DimensionProduct)
	if err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", err)
	}

	todayRevenue, todayProfit := sumAccumulators(todayAccs)
	monthRevenue, monthProfit := sumAccumulators(monthAccs)

	return &dto.DashboardSummaryDTO{
		TodayRevenue:   todayRevenue.Round(2),
		TodayProfit:    todayProfit.Round(2),
		MonthlyRevenue: monthRevenue.Round(2),
		MonthlyProfit:  monthProfit.Round(2),
		TopProducts:    topProducts(monthAccs, dashboardTopProducts),
		DateLabel:      monthLabel(now),
	}, nil
}

func sumAccumulators(accs map[string]*reconcile.MetricAccumulator) (revenue, profit decimal.Decimal) {
	for _, acc := range accs {
		revenue = revenue.Add(acc.TotalRevenue)
		profit = profit.Add(acc.TotalProfit)
	}
	return revenue, profit
}

// topProducts ordena por ingreso descendente y recorta al tamaño del widget.
func topProducts(accs map[string]*reconcile.MetricAccumulator, limit int) []dto.TopProductDTO {
	all := make([]*reconcile.MetricAccumulator, 0, len(accs))
	for _, acc := range accs {
		all = append(all, acc)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].TotalRevenue.Equal(all[j].TotalRevenue) {
			return all[i].TotalRevenue.GreaterThan(all[j].TotalRevenue)
		}
		return all[i].Key < all[j].Key
	})
	if len(all) > limit {
		all = all[:limit]
	}

	top := make([]dto.TopProductDTO, 0, len(all))
	for _, acc := range all {
		marginPct := decimal.Zero
		if acc.TotalRevenue.IsPositive() {
			marginPct = acc.TotalProfit.Div(acc.TotalRevenue).Mul(hundred).Round(2)
		}
		top = append(top, dto.TopProductDTO{
			ProductID:    acc.Key,
			SKU:          acc.SKU,
			ProductName:  acc.Name,
			QuantitySold: acc.TotalSold,
			TotalRevenue: acc.TotalRevenue.Round(2),
			MarginPct:    marginPct,
		})
	}
	return top
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
