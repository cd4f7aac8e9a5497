// Package reconcile implementa el motor de conciliación de ventas: resolución
// de productos por capas, agregación de métricas por dimensión y estadísticos
// derivados. Todo el paquete es computación pura sobre snapshots en memoria;
// ningún componente hace I/O y re-ejecutar con el mismo input produce el mismo
// output (aritmética decimal, sin drift de punto flotante).
package reconcile

import "time"

// TimeWindow es un rango de fechas calendario con ambos extremos inclusivos.
//
// Contains no compara contra las fechas exactas sino contra (inicio − 1 día) y
// (fin + 1 día) como cotas exclusivas sobre la fecha truncada del instante: un
// pedido a las 23:59 del último día entra, y uno del día anterior al inicio
// queda fuera sin importar la hora. Así se evitan los bugs de truncamiento por
// zona horaria / hora del día que aparecen al comparar con igualdad exacta.
type TimeWindow struct {
	start time.Time // fecha de inicio a medianoche
	end   time.Time // fecha de fin a medianoche
	loc   *time.Location
}

// NewTimeWindow construye la ventana para [start, end], ambos inclusivos.
// Solo se considera la parte de fecha de los argumentos.
func NewTimeWindow(start, end time.Time) TimeWindow {
	loc := start.Location()
	return TimeWindow{
		start: atMidnight(start, loc),
		end:   atMidnight(end, loc),
		loc:   loc,
	}
}

// LastDays devuelve la ventana móvil de los últimos n días terminando en "now"
// (inclusive). Con n=7: hoy y los seis días anteriores.
func LastDays(now time.Time, n int) TimeWindow {
	if n < 1 {
		n = 1
	}
	return NewTimeWindow(now.AddDate(0, 0, -(n-1)), now)
}

// Contains reporta si el instante cae dentro de la ventana.
func (w TimeWindow) Contains(t time.Time) bool {
	day := atMidnight(t.In(w.loc), w.loc)
	return day.After(w.start.AddDate(0, 0, -1)) && day.Before(w.end.AddDate(0, 0, 1))
}

// Start devuelve la fecha de inicio (medianoche).
func (w TimeWindow) Start() time.Time { return w.start }

// End devuelve la fecha de fin (medianoche).
func (w TimeWindow) End() time.Time { return w.end }

func atMidnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
