// Package firestore implementa las fuentes de datos del motor de conciliación
// sobre Cloud Firestore. Los pedidos y el catálogo viven en colecciones
// separadas y se leen completas por distribuidor: el motor trabaja sobre
// snapshots en memoria, no sobre cursores.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/jhoicas/Distriventas-api/pkg/logger"
)

// NewClient inicializa el cliente de Firestore. Con credentialsFile vacío usa
// ADC (Application Default Credentials), que es lo normal en Cloud Run.
func NewClient(ctx context.Context, projectID, credentialsFile string, log *logger.Logger) (*firestore.Client, error) {
	var (
		client *firestore.Client
		err    error
	)
	if credentialsFile != "" {
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("firestore: creando cliente: %w", err)
	}

	log.Info().Str("project", projectID).Msg("Firestore conectado")
	return client, nil
}
