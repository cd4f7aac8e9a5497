package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Helpers de decodificación defensiva para documentos del document store.
// Cada concepto upstream tiene varios nombres de campo sinónimos; estos helpers
// recorren los candidatos en orden de prioridad y degradan al valor por defecto
// ante ausencia o tipo inesperado. Nunca entran en pánico ni retornan error.

// docString devuelve el primer candidato presente como string no vacío (trim).
// Números se convierten a su representación textual (los ids upstream a veces
// vienen como número).
func docString(doc map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := doc[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case int, int32, int64:
			return fmt.Sprintf("%d", t)
		case float64:
			// ids numéricos de Firestore llegan como float64 vía JSON
			return strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	return ""
}

// docDecimal devuelve el primer candidato numérico parseado; cero si ninguno aplica.
func docDecimal(doc map[string]any, keys ...string) decimal.Decimal {
	d, _ := docDecimalOK(doc, keys...)
	return d
}

// docDecimalOK reporta además si algún candidato estaba presente y era parseable.
func docDecimalOK(doc map[string]any, keys ...string) (decimal.Decimal, bool) {
	for _, key := range keys {
		v, ok := doc[key]
		if !ok || v == nil {
			continue
		}
		if d, ok := toDecimal(v); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt32(t), true
	case int64:
		return decimal.NewFromInt(t), true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case string:
		// cantidades y precios a veces llegan como texto ("4", "100.50");
		// texto no numérico degrada a cero (ausente), no a error
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	case decimal.Decimal:
		return t, true
	}
	return decimal.Zero, false
}
