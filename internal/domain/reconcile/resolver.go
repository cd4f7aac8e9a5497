package reconcile

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
)

// Namespace fijo para sintetizar ids estables de productos no resueltos.
// Mismo name+brand → mismo placeholder id, de modo que líneas repetidas sin
// match acumulan en el mismo bucket entre corridas.
var placeholderNamespace = uuid.MustParse("3f1a5a2e-8c4b-4b7e-9d1f-6a2e45c0b9d7")

// ResolvedMatch es el resultado de resolver una línea de pedido contra el
// catálogo. Product nunca es nil: cuando ningún nivel de matching encontró el
// producto se entrega un pseudo-producto (Placeholder=true) construido con los
// campos de la propia línea, sin datos de costo ni stock del catálogo.
type ResolvedMatch struct {
	Product   *entity.Product
	ProductID string
}

// SellingPriceFor devuelve el precio de venta efectivo para la agregación:
// el del producto resuelto, con fallback al de la línea cuando el catálogo no
// lo trae.
func (m ResolvedMatch) SellingPriceFor(item entity.OrderLineItem) decimal.Decimal {
	if m.Product != nil && !m.Product.Placeholder && m.Product.SellingPrice.IsPositive() {
		return m.Product.SellingPrice
	}
	return item.SellingPrice
}

// CostPriceFor devuelve el costo efectivo, con la misma regla de fallback.
func (m ResolvedMatch) CostPriceFor(item entity.OrderLineItem) decimal.Decimal {
	if m.Product != nil && !m.Product.Placeholder && m.Product.CostPrice.IsPositive() {
		return m.Product.CostPrice
	}
	return item.CostPrice
}

// ProductResolver mapea líneas de pedido a productos de catálogo con una
// estrategia de matching por capas:
//
//  1. id directo (cada candidato en orden de prioridad contra la clave primaria)
//  2. SKU normalizado
//  3. compuesto nombre::marca normalizado
//  4. substring difuso sobre el nombre (escaneo en orden de catálogo)
//  5. placeholder determinístico sintetizado de nombre+marca
//
// Los índices se construyen una sola vez por batch; Resolve es una función pura
// de (línea, catálogo) y nunca falla: la ausencia de match degrada a la capa 5.
type ProductResolver struct {
	catalog     []entity.Product
	byID        map[string]*entity.Product
	bySKU       map[string]*entity.Product
	byNameBrand map[string]*entity.Product
}

// NewProductResolver indexa el catálogo. Ante claves duplicadas gana la primera
// entrada en orden de catálogo (orden estable → resolución determinística).
func NewProductResolver(catalog []entity.Product) *ProductResolver {
	r := &ProductResolver{
		catalog:     catalog,
		byID:        make(map[string]*entity.Product, len(catalog)),
		bySKU:       make(map[string]*entity.Product, len(catalog)),
		byNameBrand: make(map[string]*entity.Product, len(catalog)),
	}
	for i := range catalog {
		p := &catalog[i]
		if _, dup := r.byID[p.ID]; p.ID != "" && !dup {
			r.byID[p.ID] = p
		}
		if sku := normalizeText(p.SKU); sku != "" {
			if _, dup := r.bySKU[sku]; !dup {
				r.bySKU[sku] = p
			}
		}
		if key := nameBrandKey(p.Name, p.Brand); key != "" {
			if _, dup := r.byNameBrand[key]; !dup {
				r.byNameBrand[key] = p
			}
		}
	}
	return r
}

// Resolve intenta cada capa en orden y devuelve el primer match.
func (r *ProductResolver) Resolve(item entity.OrderLineItem) ResolvedMatch {
	// Capa 1: id directo
	for _, candidate := range item.ProductIDCandidates {
		if p, ok := r.byID[candidate]; ok {
			return ResolvedMatch{Product: p, ProductID: p.ID}
		}
	}

	// Capa 2: SKU normalizado
	if sku := normalizeText(item.SKU); sku != "" {
		if p, ok := r.bySKU[sku]; ok {
			return ResolvedMatch{Product: p, ProductID: p.ID}
		}
	}

	// Capa 3: nombre::marca
	if key := nameBrandKey(item.ProductName, item.Brand); key != "" {
		if p, ok := r.byNameBrand[key]; ok {
			return ResolvedMatch{Product: p, ProductID: p.ID}
		}
	}

	// Capa 4: substring difuso en orden de catálogo. Heurística conocida por
	// producir falsos positivos con nombres cortos ("Sal" matchea "Sal Marina
	// 1kg"); se conserva tal cual por paridad de comportamiento.
	if name := normalizeText(item.ProductName); name != "" {
		for i := range r.catalog {
			p := &r.catalog[i]
			pn := normalizeText(p.Name)
			if pn == "" {
				continue
			}
			if strings.Contains(pn, name) || strings.Contains(name, pn) {
				return ResolvedMatch{Product: p, ProductID: p.ID}
			}
		}
	}

	// Capa 5: placeholder estable
	return r.placeholder(item)
}

func (r *ProductResolver) placeholder(item entity.OrderLineItem) ResolvedMatch {
	seed := normalizeText(item.ProductName) + "::" + normalizeText(item.Brand)
	id := uuid.NewSHA1(placeholderNamespace, []byte(seed)).String()
	pseudo := &entity.Product{
		ID:           id,
		SKU:          item.SKU,
		Name:         item.ProductName,
		Brand:        item.Brand,
		Category:     item.Category,
		SellingPrice: item.SellingPrice,
		CostPrice:    item.CostPrice,
		Placeholder:  true,
	}
	return ResolvedMatch{Product: pseudo, ProductID: id}
}

func nameBrandKey(name, brand string) string {
	n := normalizeText(name)
	if n == "" {
		return ""
	}
	return n + "::" + normalizeText(brand)
}

// stripAccents elimina marcas diacríticas; el catálogo es en español y el
// mismo producto aparece con y sin tildes según quién lo digitó.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(stripAccents, s); err == nil {
		return out
	}
	return s
}
