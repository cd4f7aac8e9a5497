package entity

import (
	"math"
	"strings"
	"time"
)

// TimeConvertible cubre wrappers de timestamp que exponen su propio método de
// conversión (el equivalente del Timestamp.toDate() del SDK cliente del
// document store).
type TimeConvertible interface {
	Time() time.Time
}

// NormalizeTimestamp colapsa las representaciones heterogéneas de fecha de los
// documentos upstream a un instante comparable. Los candidatos se intentan en
// orden (normalmente: timestamp del pedido, luego createdAt); gana el primero
// convertible.
//
// Si ningún candidato convierte, devuelve time.Now(). Es la política de
// referencia y es una arista conocida: un registro sin fecha cae "hoy" y puede
// colarse en ventanas móviles. Los llamadores que quieran excluir registros sin
// fecha deben filtrarlos antes; esta función jamás falla.
func NormalizeTimestamp(candidates ...any) time.Time {
	for _, c := range candidates {
		if t, ok := timestampValue(c); ok {
			return t
		}
	}
	return time.Now()
}

func timestampValue(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case TimeConvertible:
		converted := t.Time()
		if converted.IsZero() {
			return time.Time{}, false
		}
		return converted, true
	case string:
		return parseTimeString(t)
	case int64:
		return fromEpoch(float64(t))
	case int:
		return fromEpoch(float64(t))
	case float64:
		return fromEpoch(t)
	}
	return time.Time{}, false
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fromEpoch interpreta un número como epoch: milisegundos si la magnitud lo
// delata (≥1e12), segundos en caso contrario.
func fromEpoch(v float64) (time.Time, bool) {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, false
	}
	if v >= 1e12 {
		return time.UnixMilli(int64(v)), true
	}
	return time.Unix(int64(v), 0), true
}
