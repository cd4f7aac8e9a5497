// Package analytics contiene los casos de uso del módulo de conciliación de
// ventas: cada pantalla del dashboard es un llamador delgado que aporta solo
// (ventana, dimensión) sobre el mismo motor compartido.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Distriventas-api/internal/application/ports"
	"github.com/jhoicas/Distriventas-api/internal/domain"
	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
)

// snapshot es el par de colecciones materializadas sobre el que corre una
// pasada de agregación. Pedidos y catálogo se consultan por separado y pueden
// estar desfasados; el motor tolera esa inconsistencia referencial.
type snapshot struct {
	orders   []entity.Order
	products []entity.Product
}

// fetchSnapshot trae pedidos y catálogo en paralelo (consultas independientes).
func fetchSnapshot(
	ctx context.Context,
	orderSrc ports.OrderSource,
	productSrc ports.ProductSource,
	distributorID string,
) (snapshot, error) {
	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type productsResult struct {
		products []entity.Product
		err      error
	}

	ordersCh := make(chan ordersResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		orders, err := orderSrc.FetchOrders(ctx, distributorID)
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		products, err := productSrc.FetchProducts(ctx, distributorID)
		productsCh <- productsResult{products, err}
	}()

	o := <-ordersCh
	p := <-productsCh

	if o.err != nil {
		return snapshot{}, fmt.Errorf("analytics: pedidos: %w", o.err)
	}
	if p.err != nil {
		return snapshot{}, fmt.Errorf("analytics: catálogo: %w", p.err)
	}
	return snapshot{orders: o.orders, products: p.products}, nil
}

// parsePeriod convierte los strings de fecha en time.Time; aplica valores por
// defecto si están vacíos (primer día del mes actual – hoy).
func parsePeriod(startStr, endStr string) (start, end time.Time, err error) {
	now := time.Now()

	if endStr == "" {
		end = now
	} else {
		end, err = time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date: %v", domain.ErrInvalidPeriod, err)
		}
	}

	if startStr == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date: %v", domain.ErrInvalidPeriod, err)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date posterior a end_date", domain.ErrInvalidPeriod)
	}
	return start, end, nil
}
