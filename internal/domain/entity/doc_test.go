package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distriventas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderFromDoc_CamposSinonimos(t *testing.T) {
	placed := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	doc := map[string]any{
		"status":                "Delivered",
		"timestamp":             placed,
		"provisionalRetailerId": "r9",
		"items": []any{
			map[string]any{
				"distributorProductId": "dp1",
				"productId":            "p1",
				"name":                 "Arroz Premium",
				"brand":                "Diana",
				"qty":                  "4", // cantidad como texto
				"price":                100.0,
				"distributorPrice":     60,
			},
		},
	}

	o := entity.OrderFromDoc("o1", doc)

	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, "Delivered", o.Status)
	assert.Equal(t, "r9", o.RetailerID, "provisionalRetailerId sustituye a retailerId ausente")
	assert.True(t, o.PlacedAt.Equal(placed))

	require.Len(t, o.Items, 1)
	item := o.Items[0]
	assert.Equal(t, []string{"dp1", "p1"}, item.ProductIDCandidates,
		"candidatos de id en orden de prioridad, sin vacíos")
	assert.Equal(t, "Arroz Premium", item.ProductName, "name es sinónimo de productName")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(4)), "cantidad textual se parsea")
	assert.True(t, item.SellingPrice.Equal(decimal.NewFromInt(100)), "price es sinónimo de sellingPrice")
	assert.True(t, item.CostPrice.Equal(decimal.NewFromInt(60)), "distributorPrice es sinónimo de costPrice")
}

func TestOrderFromDoc_DatosCorruptosDegradanACero(t *testing.T) {
	doc := map[string]any{
		"items": []any{
			map[string]any{
				"productId": "p1",
				"quantity":  "cuatro", // no numérico
				"price":     "no-precio",
			},
			"esto no es un item", // tipo inesperado: se salta
		},
	}

	o := entity.OrderFromDoc("o1", doc)

	require.Len(t, o.Items, 1)
	assert.True(t, o.Items[0].Quantity.IsZero(), "cantidad no parseable es 0, no error")
	assert.True(t, o.Items[0].SellingPrice.IsZero())
}

func TestOrderFromDoc_SinItems(t *testing.T) {
	o := entity.OrderFromDoc("o1", map[string]any{"status": "DELIVERED"})
	assert.Empty(t, o.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductFromDoc_PrioridadDeCampos(t *testing.T) {
	created := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	doc := map[string]any{
		"productName": "Aceite Girasol",
		"sku":         "B2",
		"costPrice":   30.0,
		"price":       35.0, // ignorado: costPrice tiene prioridad
		"mrp":         48.0,
		"quantity":    12,
		"createdAt":   created,
	}

	p := entity.ProductFromDoc("p2", doc)

	assert.Equal(t, "Aceite Girasol", p.Name)
	assert.True(t, p.CostPrice.Equal(decimal.NewFromInt(30)), "costPrice gana sobre price")
	assert.True(t, p.SellingPrice.Equal(decimal.NewFromInt(48)), "mrp sustituye a sellingPrice ausente")
	assert.True(t, p.StockKnown)
	assert.True(t, p.Stock.Equal(decimal.NewFromInt(12)))
	assert.True(t, p.CreatedAtKnown)
	assert.True(t, p.CreatedAt.Equal(created))
}

func TestProductFromDoc_SinStockNiFecha(t *testing.T) {
	p := entity.ProductFromDoc("p1", map[string]any{"name": "Suelto"})

	assert.False(t, p.StockKnown, "sin campo quantity el stock es desconocido, no cero")
	assert.False(t, p.CreatedAtKnown)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de timestamps
// ──────────────────────────────────────────────────────────────────────────────

type wrappedTS struct{ t time.Time }

func (w wrappedTS) Time() time.Time { return w.t }

func TestNormalizeTimestamp_Representaciones(t *testing.T) {
	want := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  any
	}{
		{"time.Time directo", want},
		{"puntero a time.Time", &want},
		{"wrapper con método de conversión", wrappedTS{want}},
		{"string RFC3339", "2026-03-03T10:00:00Z"},
		{"epoch segundos", int64(want.Unix())},
		{"epoch milisegundos", float64(want.UnixMilli())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := entity.NormalizeTimestamp(tc.raw)
			assert.True(t, got.Equal(want), "esperado %s, fue %s", want, got)
		})
	}
}

func TestNormalizeTimestamp_FallbackCreatedAt(t *testing.T) {
	created := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	got := entity.NormalizeTimestamp(nil, created)

	assert.True(t, got.Equal(created), "sin timestamp se usa createdAt")
}

// Política de referencia: sin ningún candidato convertible el instante es
// "ahora". Arista documentada, no comportamiento deseable.
func TestNormalizeTimestamp_DefaultAhora(t *testing.T) {
	before := time.Now()
	got := entity.NormalizeTimestamp(nil, "basura")
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
