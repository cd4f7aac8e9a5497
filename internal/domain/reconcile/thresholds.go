package reconcile

import "github.com/shopspring/decimal"

// Thresholds agrupa los umbrales de negocio del motor. Son política comercial,
// no constantes derivadas; viven en un solo lugar para poder ajustarlos por
// configuración sin tocar código (ver pkg/config).
type Thresholds struct {
	// Concentración de clientes (DependencyRiskAnalyzer)
	TopRetailers         int             // cuántos retailers componen el "top"
	ConcentrationHighPct decimal.Decimal // % del top sobre el total que dispara riesgo alto

	// Pronóstico de agotamiento (DrainForecastEstimator)
	DrainWindowDays   int   // días de ventana móvil de ventas
	DrainCriticalDays int64 // días restantes bajo los cuales el riesgo es crítico
	DrainLowDays      int64 // días restantes bajo los cuales el riesgo es bajo

	// Edad de inventario (DerivedMetricsCalculator)
	AgeOldDays      int // edad de catálogo sobre la cual el inventario es "old"
	AgeModerateDays int // edad sobre la cual es "moderate"
}

// DefaultThresholds devuelve la política de referencia: top 3 retailers, 60%
// de concentración, ventana de 7 días, bandas 7/30 y edades 30/90.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TopRetailers:         3,
		ConcentrationHighPct: decimal.NewFromInt(60),
		DrainWindowDays:      7,
		DrainCriticalDays:    7,
		DrainLowDays:         30,
		AgeOldDays:           90,
		AgeModerateDays:      30,
	}
}
