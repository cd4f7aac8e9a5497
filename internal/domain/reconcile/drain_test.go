package reconcile_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
)

func estimator() reconcile.DrainForecastEstimator {
	return reconcile.NewDrainForecastEstimator(reconcile.DefaultThresholds())
}

func TestForecast_DiasRestantes(t *testing.T) {
	// 14 unidades en 7 días → 2/día; stock 50 → floor(25) = 25 días
	f := estimator().Forecast("p1", decimal.NewFromInt(14), decimal.NewFromInt(50))

	require.False(t, f.Infinite)
	assert.True(t, f.AvgDailySale.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, int64(25), f.DaysLeft)
	assert.Equal(t, reconcile.DrainRiskLow, f.RiskBand)
}

// Sentinela: sin ventas en la ventana el producto no puede agotarse. Nunca un
// número, nunca un error.
func TestForecast_SentinelaInfinito(t *testing.T) {
	f := estimator().Forecast("p1", decimal.Zero, decimal.NewFromInt(50))

	assert.True(t, f.Infinite)
	assert.Equal(t, reconcile.DrainRiskHealthy, f.RiskBand, "el sentinela infinito siempre es healthy")
	assert.True(t, f.AvgDailySale.IsZero())
}

func TestForecast_FloorNoRedondea(t *testing.T) {
	// 7 en 7 días → 1/día; stock 10.9 → floor = 10
	f := estimator().Forecast("p1", decimal.NewFromInt(7), decimal.NewFromFloat(10.9))

	assert.Equal(t, int64(10), f.DaysLeft)
}

func TestForecast_BandasDeRiesgo(t *testing.T) {
	cases := []struct {
		name     string
		stock    int64
		expected string
	}{
		{"menos de 7 días es crítico", 13, reconcile.DrainRiskCritical}, // floor(13/2)=6
		{"7 días justos ya es low", 14, reconcile.DrainRiskLow},
		{"menos de 30 es low", 58, reconcile.DrainRiskLow}, // floor(29)
		{"30 o más es healthy", 60, reconcile.DrainRiskHealthy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// 14 en 7 días → 2/día
			f := estimator().Forecast("p1", decimal.NewFromInt(14), decimal.NewFromInt(tc.stock))
			assert.Equal(t, tc.expected, f.RiskBand)
		})
	}
}

func TestForecast_StockCeroConVentas(t *testing.T) {
	f := estimator().Forecast("p1", decimal.NewFromInt(14), decimal.Zero)

	require.False(t, f.Infinite)
	assert.Equal(t, int64(0), f.DaysLeft)
	assert.Equal(t, reconcile.DrainRiskCritical, f.RiskBand)
}

// La ventana es política configurable (default 7 días).
func TestForecast_VentanaConfigurable(t *testing.T) {
	th := reconcile.DefaultThresholds()
	th.DrainWindowDays = 14
	f := reconcile.NewDrainForecastEstimator(th).Forecast("p1", decimal.NewFromInt(14), decimal.NewFromInt(50))

	assert.True(t, f.AvgDailySale.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, int64(50), f.DaysLeft)
}
