package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
	"github.com/jhoicas/Distriventas-api/pkg/logger"
)

// ProductSource lee el catálogo de un distribuidor desde Firestore.
type ProductSource struct {
	fs  *firestore.Client
	log *logger.Logger

	Collection string
}

// NewProductSource construye la fuente de catálogo.
func NewProductSource(fs *firestore.Client, log *logger.Logger) *ProductSource {
	return &ProductSource{fs: fs, log: log, Collection: defaultProductsCollection}
}

// FetchProducts trae el catálogo completo del distribuidor, en el orden en que
// Firestore devuelve los documentos. Ese orden importa: el resolutor de
// productos usa la primera coincidencia en empates difusos.
func (s *ProductSource) FetchProducts(ctx context.Context, distributorID string) ([]entity.Product, error) {
	iter := s.fs.Collection(s.Collection).
		Where("distributorId", "==", distributorID).
		Documents(ctx)
	defer iter.Stop()

	var products []entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: leyendo catálogo: %w", err)
		}
		products = append(products, entity.ProductFromDoc(doc.Ref.ID, doc.Data()))
	}

	s.log.Debug().
		Str("distributor_id", distributorID).
		Int("products", len(products)).
		Msg("catálogo cargado")
	return products, nil
}
