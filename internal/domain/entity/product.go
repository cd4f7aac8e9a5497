package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una entrada del catálogo de un distribuidor.
// Catálogo y pedidos se consultan por separado y pueden estar desfasados:
// una línea de pedido puede apuntar a un id que ya no existe en este snapshot.
// Los campos de texto vienen poblados de forma inconsistente.
type Product struct {
	ID       string
	SKU      string
	Name     string // name o productName según el documento
	Brand    string
	Category string

	CostPrice    decimal.Decimal // costPrice → price → distributorPrice
	SellingPrice decimal.Decimal // sellingPrice → mrp

	Stock      decimal.Decimal // existencia actual
	StockKnown bool            // false cuando el documento no trae quantity

	CreatedAt      time.Time // alta en catálogo, base de la edad de inventario
	CreatedAtKnown bool

	// Placeholder marca los pseudo-productos sintetizados por el resolver
	// cuando ninguna capa de matching encontró el producto en catálogo.
	Placeholder bool
}

// ProductFromDoc decodifica un documento heterogéneo del catálogo.
// Igual que OrderFromDoc: degradación silenciosa, nunca error.
func ProductFromDoc(id string, doc map[string]any) Product {
	p := Product{
		ID:           id,
		SKU:          docString(doc, "sku"),
		Name:         docString(doc, "name", "productName"),
		Brand:        docString(doc, "brand"),
		Category:     docString(doc, "category"),
		CostPrice:    docDecimal(doc, "costPrice", "price", "distributorPrice"),
		SellingPrice: docDecimal(doc, "sellingPrice", "mrp"),
	}
	if stock, ok := docDecimalOK(doc, "quantity"); ok {
		p.Stock = stock
		p.StockKnown = true
	}
	if createdAt, ok := timestampValue(doc["createdAt"]); ok {
		p.CreatedAt = createdAt
		p.CreatedAtKnown = true
	}
	return p
}
