package analytics

import (
	"context"

	"github.com/jhoicas/Distriventas-api/internal/application/dto"
	"github.com/jhoicas/Distriventas-api/internal/application/ports"
	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
)

// DependencyUseCase evalúa el riesgo de concentración de clientes: qué tanto
// del volumen de pedidos entregados depende de los top retailers.
type DependencyUseCase struct {
	orderSrc ports.OrderSource
	analyzer reconcile.DependencyRiskAnalyzer
}

// NewDependencyUseCase construye el caso de uso.
func NewDependencyUseCase(orderSrc ports.OrderSource, analyzer reconcile.DependencyRiskAnalyzer) *DependencyUseCase {
	return &DependencyUseCase{orderSrc: orderSrc, analyzer: analyzer}
}

// GetDependencyRisk cuenta pedidos entregados por retailer en el período y
// corre el análisis de concentración.
func (uc *DependencyUseCase) GetDependencyRisk(
	ctx context.Context,
	distributorID string,
	req dto.PeriodRequest,
) (*dto.DependencyRiskDTO, error) {
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orderSrc.FetchOrders(ctx, distributorID)
	if err != nil {
		return nil, err
	}

	window := reconcile.NewTimeWindow(startDate, endDate)
	risk := uc.analyzer.Analyze(reconcile.DeliveredOrdersByRetailer(orders, window))

	top := make([]dto.TopRetailerDTO, 0, len(risk.TopRetailers))
	for _, r := range risk.TopRetailers {
		top = append(top, dto.TopRetailerDTO{
			RetailerID:  r.RetailerID,
			OrdersCount: r.OrdersCount,
			SharePct:    r.SharePct,
		})
	}

	return &dto.DependencyRiskDTO{
		Period: dto.PeriodDTO{
			StartDate: window.Start().Format("2006-01-02"),
			EndDate:   window.End().Format("2006-01-02"),
		},
		TotalOrders:      risk.TotalOrders,
		TopRetailers:     top,
		ConcentrationPct: risk.ConcentrationPct,
		IsHighRisk:       risk.HighRisk,
		ThresholdPct:     uc.analyzer.Thresholds.ConcentrationHighPct,
	}, nil
}
