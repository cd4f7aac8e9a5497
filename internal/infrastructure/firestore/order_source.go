package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
	"github.com/jhoicas/Distriventas-api/pkg/logger"
)

// Colecciones por defecto del esquema del marketplace.
const (
	defaultOrdersCollection   = "orders"
	defaultProductsCollection = "distributorProducts"
)

// OrderSource lee los pedidos de un distribuidor desde Firestore.
type OrderSource struct {
	fs  *firestore.Client
	log *logger.Logger

	// Collection se puede sobreescribir si el esquema difiere.
	Collection string
}

// NewOrderSource construye la fuente de pedidos.
func NewOrderSource(fs *firestore.Client, log *logger.Logger) *OrderSource {
	return &OrderSource{fs: fs, log: log, Collection: defaultOrdersCollection}
}

// FetchOrders trae todos los pedidos del distribuidor. No filtra por estado ni
// fecha: esa política es del motor de conciliación, no del adaptador. Los
// documentos malformados se decodifican a campos cero, nunca tumban la lectura.
func (s *OrderSource) FetchOrders(ctx context.Context, distributorID string) ([]entity.Order, error) {
	iter := s.fs.Collection(s.Collection).
		Where("distributorId", "==", distributorID).
		Documents(ctx)
	defer iter.Stop()

	var orders []entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: leyendo pedidos: %w", err)
		}
		orders = append(orders, entity.OrderFromDoc(doc.Ref.ID, doc.Data()))
	}

	s.log.Debug().
		Str("distributor_id", distributorID).
		Int("orders", len(orders)).
		Msg("pedidos cargados")
	return orders, nil
}
