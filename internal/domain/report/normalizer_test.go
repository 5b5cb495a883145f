package report_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/report"
)

func strPtr(s string) *string { return &s }

// rawOrder baut eine gültige Rohbestellung für die Tests.
func rawOrder(items ...entity.RawOrderItem) entity.RawOrder {
	return entity.RawOrder{
		ID:              json.Number("123456"),
		CreatedAt:       "2024-05-03T14:22:01",
		Platform:        "Amazon",
		ShippingCountry: "de",
		Items:           items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SKU-Normalisierung
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeSKU_PraefixVorBindestrich(t *testing.T) {
	assert.Equal(t, "ABC123", report.NormalizeSKU(strPtr("ABC123-RED")),
		"Variante muss auf die Basis-SKU zusammenfallen")
	assert.Equal(t, "ABC123", report.NormalizeSKU(strPtr("ABC123")),
		"SKU ohne Bindestrich bleibt unverändert")
	assert.Equal(t, "", report.NormalizeSKU(nil),
		"fehlende SKU ergibt den leeren String")
}

func TestNormalizeSKU_MehrereBindestriche(t *testing.T) {
	assert.Equal(t, "ABC123", report.NormalizeSKU(strPtr("ABC123-ROT-XL")),
		"nur der Teil vor dem ersten Bindestrich zählt")
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalisierung ganzer Bestellungen
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeOrder_Happy(t *testing.T) {
	items, err := report.NormalizeOrder(rawOrder(entity.RawOrderItem{
		SKU:         strPtr("TSHIRT-M-BLAU"),
		Quantity:    json.Number("2"),
		TotalPrice:  json.Number("59.90"),
		TaxAmount:   json.Number("9.56"),
		WeightGrams: json.Number("250"),
	}))
	require.NoError(t, err)
	require.Len(t, items, 1)

	li := items[0]
	assert.Equal(t, "123456", li.OrderID)
	assert.Equal(t, "TSHIRT", li.SKU)
	assert.Equal(t, "DE", li.Country, "Ländercode wird auf Großschreibung normalisiert")
	assert.Equal(t, "Amazon", li.Platform)
	assert.True(t, li.Quantity.Equal(dec("2")))
	assert.True(t, li.GrossAmount.Equal(dec("59.90")))
	assert.True(t, li.TaxAmount.Equal(dec("9.56")))
	assert.True(t, li.NetAmount().Equal(dec("50.34")),
		"Netto = Brutto - Steuer, exakt und ungerundet")
}

func TestNormalizeOrder_DatumOhneZeitzonenkonvertierung(t *testing.T) {
	raw := rawOrder(entity.RawOrderItem{Quantity: json.Number("1")})
	raw.CreatedAt = "2024-05-03T23:59:59+02:00"

	items, err := report.NormalizeOrder(raw)
	require.NoError(t, err)

	want := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	assert.True(t, items[0].OrderDate.Equal(want),
		"der Datumsanteil des Zeitstempels wird unverändert übernommen")
}

func TestNormalizeOrder_DefaultsStattFehler(t *testing.T) {
	// Position mit fehlenden und kaputten Werten: wird nicht abgelehnt,
	// sondern mit Defaults übernommen.
	items, err := report.NormalizeOrder(rawOrder(entity.RawOrderItem{
		SKU:         nil,
		Quantity:    json.Number("kaputt"),
		TotalPrice:  json.Number(""),
		WeightGrams: json.Number("-5"),
	}))
	require.NoError(t, err)
	require.Len(t, items, 1)

	li := items[0]
	assert.Equal(t, "", li.SKU)
	assert.True(t, li.Quantity.IsZero(), "unlesbare Menge wird zu 0")
	assert.True(t, li.GrossAmount.IsZero(), "fehlender Preis wird zu 0")
	assert.True(t, li.TaxAmount.IsZero())
	assert.True(t, li.WeightGrams.IsZero(), "negatives Gewicht wird auf 0 geklemmt")
}

func TestNormalizeOrder_StrukturfehlerSindValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  entity.RawOrder
	}{
		{"ohne Id", entity.RawOrder{CreatedAt: "2024-05-03T00:00:00", Items: []entity.RawOrderItem{}}},
		{"ohne CreatedAt", entity.RawOrder{ID: json.Number("1"), Items: []entity.RawOrderItem{}}},
		{"ohne Positionsliste", entity.RawOrder{ID: json.Number("1"), CreatedAt: "2024-05-03T00:00:00"}},
		{"CreatedAt unlesbar", entity.RawOrder{ID: json.Number("1"), CreatedAt: "gestern", Items: []entity.RawOrderItem{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := report.NormalizeOrder(tc.raw)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err),
				"strukturell unvollständige Bestellungen müssen ValidationError liefern")
		})
	}
}

func TestNormalizeOrder_LeerePositionslisteIstGueltig(t *testing.T) {
	raw := rawOrder()
	raw.Items = []entity.RawOrderItem{}
	items, err := report.NormalizeOrder(raw)
	require.NoError(t, err, "leere Liste ist vorhanden, nur nil fehlt strukturell")
	assert.Empty(t, items)
}
