package reconcile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
)

func day(d int, hour, min int) time.Time {
	return time.Date(2026, time.March, d, hour, min, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inclusividad de la ventana: ambos extremos cuentan completos sin importar la
// hora del día; el día anterior al inicio y el siguiente al fin quedan fuera.
// ──────────────────────────────────────────────────────────────────────────────

func TestTimeWindow_ExtremosInclusivos(t *testing.T) {
	w := reconcile.NewTimeWindow(day(10, 0, 0), day(15, 0, 0))

	assert.True(t, w.Contains(day(10, 0, 0)), "inicio a las 00:00 debe entrar")
	assert.True(t, w.Contains(day(15, 23, 59)), "fin a las 23:59 debe entrar")
	assert.True(t, w.Contains(day(12, 14, 30)), "un día intermedio debe entrar")
}

func TestTimeWindow_VecinosExcluidos(t *testing.T) {
	w := reconcile.NewTimeWindow(day(10, 0, 0), day(15, 0, 0))

	assert.False(t, w.Contains(day(9, 23, 59)), "el día anterior al inicio no entra ni a última hora")
	assert.False(t, w.Contains(day(16, 0, 0)), "el día siguiente al fin no entra ni a medianoche")
}

func TestTimeWindow_UnSoloDia(t *testing.T) {
	w := reconcile.NewTimeWindow(day(10, 0, 0), day(10, 0, 0))

	assert.True(t, w.Contains(day(10, 12, 0)))
	assert.False(t, w.Contains(day(9, 12, 0)))
	assert.False(t, w.Contains(day(11, 12, 0)))
}

// La hora del argumento de construcción es irrelevante: solo cuenta la fecha.
func TestTimeWindow_IgnoraHoraDeConstruccion(t *testing.T) {
	w := reconcile.NewTimeWindow(day(10, 18, 45), day(15, 3, 12))

	assert.True(t, w.Contains(day(10, 0, 0)))
	assert.True(t, w.Contains(day(15, 23, 59)))
}

func TestLastDays_VentanaMovilDe7(t *testing.T) {
	now := day(20, 15, 0)
	w := reconcile.LastDays(now, 7)

	assert.True(t, w.Contains(day(14, 0, 0)), "hace 6 días entra (hoy cuenta como día 1)")
	assert.True(t, w.Contains(day(20, 23, 0)), "hoy entra")
	assert.False(t, w.Contains(day(13, 23, 59)), "hace 7 días queda fuera")
}
