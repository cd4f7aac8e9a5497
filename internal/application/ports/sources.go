// Package ports define los puertos de lectura hacia el document store.
// El motor de conciliación consume colecciones ya materializadas; la
// adquisición de datos es responsabilidad de colaboradores externos que
// implementan estas interfaces (ver internal/infrastructure/firestore).
package ports

import (
	"context"

	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
)

// OrderSource devuelve el snapshot de pedidos de un distribuidor.
type OrderSource interface {
	FetchOrders(ctx context.Context, distributorID string) ([]entity.Order, error)
}

// ProductSource devuelve el snapshot del catálogo de un distribuidor.
type ProductSource interface {
	FetchProducts(ctx context.Context, distributorID string) ([]entity.Product, error)
}
