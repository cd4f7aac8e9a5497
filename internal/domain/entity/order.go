package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es un pedido crudo tal como llega del document store del marketplace.
// Los pedidos son input de solo lectura: el motor de conciliación nunca los muta.
//
// El vocabulario de estado upstream es inconsistente: "delivered" puede venir
// en Status o en StatusCode, y como DELIVERED o INVOICED en cualquier
// combinación de mayúsculas. Esa inconsistencia es real, no se "arregla" aquí.
type Order struct {
	ID         string
	Status     string
	StatusCode string
	PlacedAt   time.Time // instante ya normalizado (ver NormalizeTimestamp)
	RetailerID string    // retailerId o provisionalRetailerId (a lo sumo uno viene poblado)
	Items      []OrderLineItem
}

// OrderLineItem es una línea de pedido. Las líneas referencian productos con
// varios esquemas de identificador distintos, ninguno confiable por sí solo;
// ProductIDCandidates conserva todos los candidatos en orden de prioridad para
// que el resolver los intente uno a uno contra el catálogo.
type OrderLineItem struct {
	// Candidatos de id en orden: distributorProductId, productId, inventoryId, id.
	// Solo valores no vacíos.
	ProductIDCandidates []string

	ProductName string
	Brand       string
	SKU         string
	Category    string

	// Quantity por defecto cero si falta o no es numérico.
	Quantity decimal.Decimal

	// Precios ya colapsados con su cadena de prioridad de campos sinónimos:
	// venta = sellingPrice → price → unitPrice; costo = costPrice → distributorPrice.
	// Cero cuando ningún campo viene poblado.
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
}

// OrderFromDoc decodifica un documento heterogéneo de la colección de pedidos.
// Campos faltantes o con tipo inesperado degradan a su valor por defecto;
// nunca retorna error.
func OrderFromDoc(id string, doc map[string]any) Order {
	o := Order{
		ID:         id,
		Status:     docString(doc, "status"),
		StatusCode: docString(doc, "statusCode"),
		RetailerID: docString(doc, "retailerId", "provisionalRetailerId"),
		PlacedAt:   NormalizeTimestamp(doc["timestamp"], doc["createdAt"]),
	}

	rawItems, ok := doc["items"].([]any)
	if !ok {
		return o
	}
	o.Items = make([]OrderLineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		itemDoc, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		o.Items = append(o.Items, lineItemFromDoc(itemDoc))
	}
	return o
}

func lineItemFromDoc(doc map[string]any) OrderLineItem {
	item := OrderLineItem{
		ProductName:  docString(doc, "productName", "name"),
		Brand:        docString(doc, "brand"),
		SKU:          docString(doc, "sku"),
		Category:     docString(doc, "category"),
		Quantity:     docDecimal(doc, "quantity", "qty"),
		SellingPrice: docDecimal(doc, "sellingPrice", "price", "unitPrice"),
		CostPrice:    docDecimal(doc, "costPrice", "distributorPrice"),
	}
	for _, key := range []string{"distributorProductId", "productId", "inventoryId", "id"} {
		if v := docString(doc, key); v != "" {
			item.ProductIDCandidates = append(item.ProductIDCandidates, v)
		}
	}
	return item
}
