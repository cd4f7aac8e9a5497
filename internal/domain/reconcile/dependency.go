package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RetailerShare es la participación de un retailer en el volumen de pedidos.
type RetailerShare struct {
	RetailerID  string
	OrdersCount int
	SharePct    decimal.Decimal
}

// DependencyRisk es el resultado del análisis de concentración de clientes.
type DependencyRisk struct {
	TotalOrders      int
	TopRetailers     []RetailerShare
	ConcentrationPct decimal.Decimal
	HighRisk         bool
}

// DependencyRiskAnalyzer detecta dependencia excesiva de pocos retailers:
// si el top N (política: 3) concentra más del umbral (política: 60%) del
// volumen de pedidos, el distribuidor está en riesgo alto.
type DependencyRiskAnalyzer struct {
	Thresholds Thresholds
}

// NewDependencyRiskAnalyzer construye el analizador con la política indicada.
func NewDependencyRiskAnalyzer(th Thresholds) DependencyRiskAnalyzer {
	return DependencyRiskAnalyzer{Thresholds: th}
}

// Analyze ordena los retailers por pedidos descendente y calcula la
// concentración del top N sobre el total.
//
// Upstream no define clave secundaria para empates; aquí se desempata por id
// de retailer ascendente para que corridas repetidas sobre el mismo input
// produzcan exactamente el mismo resultado (requisito de idempotencia).
func (a DependencyRiskAnalyzer) Analyze(ordersByRetailer map[string]int) DependencyRisk {
	shares := make([]RetailerShare, 0, len(ordersByRetailer))
	total := 0
	for id, count := range ordersByRetailer {
		shares = append(shares, RetailerShare{RetailerID: id, OrdersCount: count})
		total += count
	}
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].OrdersCount != shares[j].OrdersCount {
			return shares[i].OrdersCount > shares[j].OrdersCount
		}
		return shares[i].RetailerID < shares[j].RetailerID
	})

	topN := a.Thresholds.TopRetailers
	if topN <= 0 {
		topN = DefaultThresholds().TopRetailers
	}
	if topN > len(shares) {
		topN = len(shares)
	}

	risk := DependencyRisk{TotalOrders: total}
	if total == 0 {
		risk.TopRetailers = []RetailerShare{}
		return risk
	}

	totalDec := decimal.NewFromInt(int64(total))
	topSum := 0
	for i := 0; i < topN; i++ {
		shares[i].SharePct = decimal.NewFromInt(int64(shares[i].OrdersCount)).Div(totalDec).Mul(hundred).Round(2)
		topSum += shares[i].OrdersCount
	}

	risk.TopRetailers = shares[:topN]
	risk.ConcentrationPct = decimal.NewFromInt(int64(topSum)).Div(totalDec).Mul(hundred).Round(2)
	risk.HighRisk = risk.ConcentrationPct.GreaterThan(a.Thresholds.ConcentrationHighPct)
	return risk
}
