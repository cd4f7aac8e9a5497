package reconcile

import "github.com/shopspring/decimal"

// Bandas de riesgo de agotamiento para presentación.
const (
	DrainRiskCritical = "critical"
	DrainRiskLow      = "low"
	DrainRiskHealthy  = "healthy"
)

// DrainForecast estima cuántos días de stock quedan para un producto según sus
// ventas de la ventana móvil.
//
// Infinite es un sentinela explícito: sin ventas en la ventana el producto
// "no puede agotarse". Cuando Infinite es true, DaysLeft no es significativo y
// los llamadores deben tratar el caso aparte, nunca operar aritméticamente con
// un infinito.
type DrainForecast struct {
	ProductID    string
	SoldInWindow decimal.Decimal
	AvgDailySale decimal.Decimal
	DaysLeft     int64
	Infinite     bool
	RiskBand     string
}

// DrainForecastEstimator pronostica días de suministro restante con la venta
// promedio diaria de una ventana móvil (política: 7 días de líneas entregadas).
type DrainForecastEstimator struct {
	Thresholds Thresholds
}

// NewDrainForecastEstimator construye el estimador con la política indicada.
func NewDrainForecastEstimator(th Thresholds) DrainForecastEstimator {
	return DrainForecastEstimator{Thresholds: th}
}

// WindowDays devuelve el tamaño de la ventana móvil en días (mínimo 1).
func (e DrainForecastEstimator) WindowDays() int {
	if e.Thresholds.DrainWindowDays < 1 {
		return DefaultThresholds().DrainWindowDays
	}
	return e.Thresholds.DrainWindowDays
}

// Forecast calcula el pronóstico para un producto: soldInWindow son las
// unidades vendidas en la ventana, currentStock la existencia actual.
func (e DrainForecastEstimator) Forecast(productID string, soldInWindow, currentStock decimal.Decimal) DrainForecast {
	f := DrainForecast{
		ProductID:    productID,
		SoldInWindow: soldInWindow,
	}

	windowDays := decimal.NewFromInt(int64(e.WindowDays()))
	f.AvgDailySale = soldInWindow.Div(windowDays)

	if !f.AvgDailySale.IsPositive() {
		f.Infinite = true
		f.RiskBand = DrainRiskHealthy
		return f
	}

	f.DaysLeft = currentStock.Div(f.AvgDailySale).Floor().IntPart()
	switch {
	case f.DaysLeft < e.Thresholds.DrainCriticalDays:
		f.RiskBand = DrainRiskCritical
	case f.DaysLeft < e.Thresholds.DrainLowDays:
		f.RiskBand = DrainRiskLow
	default:
		f.RiskBand = DrainRiskHealthy
	}
	return f
}
