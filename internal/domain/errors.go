package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// El motor de conciliación nunca falla por calidad de datos: datos faltantes o
// corruptos degradan a valores por defecto documentados. Estos errores cubren
// solo violaciones de contrato del llamador.
var (
	ErrInvalidDimension   = errors.New("dimensión de agregación inválida")
	ErrInvalidPeriod      = errors.New("período de fechas inválido")
	ErrMissingDistributor = errors.New("distributor_id requerido")
)
