package reconcile

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Distriventas-api/internal/domain"
	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
)

// Dimension es el eje de agrupación de la agregación.
type Dimension string

const (
	DimensionProduct  Dimension = "product"
	DimensionBrand    Dimension = "brand"
	DimensionCategory Dimension = "category"
	DimensionRetailer Dimension = "retailer"
)

// Claves de bucket por defecto cuando ni la línea ni el producto traen el dato.
// Literales del vocabulario upstream; los dashboards existentes los esperan.
const (
	FallbackBrand    = "Unbranded"
	FallbackCategory = "Uncategorized"
)

// ParseDimension valida el parámetro de dimensión del llamador.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(strings.ToLower(strings.TrimSpace(s))) {
	case DimensionProduct:
		return DimensionProduct, nil
	case DimensionBrand:
		return DimensionBrand, nil
	case DimensionCategory:
		return DimensionCategory, nil
	case DimensionRetailer:
		return DimensionRetailer, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidDimension, s)
}

// IsDelivered reproduce el predicado exacto de "pedido entregado": status O
// statusCode igual, sin distinguir mayúsculas, a DELIVERED o INVOICED. El
// OR de cuatro comparaciones codifica inconsistencia real del vocabulario de
// estados upstream; no simplificar.
func IsDelivered(o entity.Order) bool {
	return deliveredValue(o.Status) || deliveredValue(o.StatusCode)
}

func deliveredValue(s string) bool {
	return strings.EqualFold(s, "DELIVERED") || strings.EqualFold(s, "INVOICED")
}

// ResolveDeliveredSales produce el stream de líneas resueltas de los pedidos
// entregados dentro de la ventana. Es el insumo común de Aggregate y de los
// analizadores especializados: una sola pasada de conciliación, muchas vistas.
func ResolveDeliveredSales(orders []entity.Order, resolver *ProductResolver, window TimeWindow) []ResolvedSale {
	var sales []ResolvedSale
	for _, order := range orders {
		if !window.Contains(order.PlacedAt) || !IsDelivered(order) {
			continue
		}
		for _, item := range order.Items {
			match := resolver.Resolve(item)
			sale := ResolvedSale{
				OrderID:    order.ID,
				RetailerID: order.RetailerID,
				PlacedAt:   order.PlacedAt,
				Item:       item,
				Match:      match,
			}
			// Cantidad no positiva: la línea cuenta, el dinero no.
			if qty := item.Quantity; qty.IsPositive() {
				selling := match.SellingPriceFor(item)
				cost := match.CostPriceFor(item)
				sale.Quantity = qty
				sale.Revenue = selling.Mul(qty)
				sale.Cost = cost.Mul(qty)
				sale.Profit = sale.Revenue.Sub(sale.Cost)
			}
			sales = append(sales, sale)
		}
	}
	return sales
}

// Aggregate ejecuta la pasada completa de conciliación y devuelve el mapa de
// acumuladores por clave de dimensión. Cómputo batch: sin resultados parciales,
// sin estado compartido entre llamadas; corridas con el mismo input producen
// output estructuralmente idéntico.
//
// Slices nil se tratan como vacías; el único error posible es una dimensión
// desconocida (violación de contrato del llamador).
func Aggregate(orders []entity.Order, products []entity.Product, window TimeWindow, dim Dimension) (map[string]*MetricAccumulator, error) {
	switch dim {
	case DimensionProduct, DimensionBrand, DimensionCategory, DimensionRetailer:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDimension, string(dim))
	}

	resolver := NewProductResolver(products)
	accs := make(map[string]*MetricAccumulator)

	for _, sale := range ResolveDeliveredSales(orders, resolver, window) {
		key, ok := dimensionKey(sale, dim)
		if !ok {
			// ej. dimensión retailer y pedido sin retailer id: la línea se
			// omite solo para esta dimensión
			continue
		}
		acc, exists := accs[key]
		if !exists {
			acc = newMetricAccumulator(key)
			accs[key] = acc
		}
		acc.Fold(sale)
		if dim == DimensionProduct && acc.Product == nil {
			acc.Product = sale.Match.Product
		}
	}
	return accs, nil
}

func dimensionKey(sale ResolvedSale, dim Dimension) (string, bool) {
	switch dim {
	case DimensionProduct:
		return sale.Match.ProductID, sale.Match.ProductID != ""
	case DimensionBrand:
		brand := firstNonEmpty(sale.Item.Brand, productField(sale.Match.Product, func(p *entity.Product) string { return p.Brand }), FallbackBrand)
		return brand, true
	case DimensionCategory:
		category := firstNonEmpty(sale.Item.Category, productField(sale.Match.Product, func(p *entity.Product) string { return p.Category }), FallbackCategory)
		return category, true
	case DimensionRetailer:
		return sale.RetailerID, sale.RetailerID != ""
	}
	return "", false
}

// DeliveredOrdersByRetailer cuenta pedidos entregados (no líneas) por retailer
// dentro de la ventana. Insumo del análisis de concentración de clientes.
// Pedidos sin retailer id quedan fuera del conteo.
func DeliveredOrdersByRetailer(orders []entity.Order, window TimeWindow) map[string]int {
	counts := make(map[string]int)
	for _, order := range orders {
		if !window.Contains(order.PlacedAt) || !IsDelivered(order) {
			continue
		}
		if order.RetailerID == "" {
			continue
		}
		counts[order.RetailerID]++
	}
	return counts
}
