package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distriventas-api/internal/application/dto"
	"github.com/jhoicas/Distriventas-api/internal/application/ports"
	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
)

// ForecastUseCase estima días de suministro restante para cada producto del
// catálogo según sus ventas de la ventana móvil (política: últimos 7 días).
type ForecastUseCase struct {
	orderSrc   ports.OrderSource
	productSrc ports.ProductSource
	estimator  reconcile.DrainForecastEstimator

	// Now se inyecta en tests; nil usa time.Now.
	Now func() time.Time
}

// NewForecastUseCase construye el caso de uso.
func NewForecastUseCase(
	orderSrc ports.OrderSource,
	productSrc ports.ProductSource,
	estimator reconcile.DrainForecastEstimator,
) *ForecastUseCase {
	return &ForecastUseCase{orderSrc: orderSrc, productSrc: productSrc, estimator: estimator}
}

// GetDrainForecast corre la agregación por producto sobre la ventana móvil y
// pronostica el agotamiento de cada producto del catálogo. El reporte va
// ordenado por urgencia: menos días restantes primero, los infinitos al final.
func (uc *ForecastUseCase) GetDrainForecast(ctx context.Context, distributorID string) (*dto.DrainForecastReportDTO, error) {
	snap, err := fetchSnapshot(ctx, uc.orderSrc, uc.productSrc, distributorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if uc.Now != nil {
		now = uc.Now()
	}
	window := reconcile.LastDays(now, uc.estimator.WindowDays())

	accs, err := reconcile.Aggregate(snap.orders, snap.products, window, reconcile.DimensionProduct)
	if err != nil {
		return nil, err
	}

	products := make([]dto.DrainForecastDTO, 0, len(snap.products))
	for _, p := range snap.products {
		sold := decimal.Zero
		if acc, ok := accs[p.ID]; ok {
			sold = acc.TotalSold
		}
		f := uc.estimator.Forecast(p.ID, sold, p.Stock)

		d := dto.DrainForecastDTO{
			ProductID:    f.ProductID,
			SKU:          p.SKU,
			ProductName:  p.Name,
			CurrentStock: p.Stock,
			SoldInWindow: f.SoldInWindow,
			AvgDailySale: f.AvgDailySale.Round(2),
			Infinite:     f.Infinite,
			RiskBand:     f.RiskBand,
		}
		if !f.Infinite {
			daysLeft := f.DaysLeft
			d.DaysLeft = &daysLeft
		}
		products = append(products, d)
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch {
		case a.Infinite && b.Infinite:
			return a.ProductID < b.ProductID
		case a.Infinite:
			return false
		case b.Infinite:
			return true
		case *a.DaysLeft != *b.DaysLeft:
			return *a.DaysLeft < *b.DaysLeft
		default:
			return a.ProductID < b.ProductID
		}
	})

	return &dto.DrainForecastReportDTO{
		WindowDays: uc.estimator.WindowDays(),
		Products:   products,
	}, nil
}
