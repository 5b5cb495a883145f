package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/report"
)

// item baut ein LineItem mit Menge 1 und ohne Steuer/Gewicht.
func item(orderID string, date time.Time, sku, platform string, gross string) entity.LineItem {
	return entity.LineItem{
		OrderID:     orderID,
		OrderDate:   date,
		SKU:         sku,
		Quantity:    decimal.NewFromInt(1),
		GrossAmount: dec(gross),
		Platform:    platform,
		Country:     "DE",
	}
}

// scenarioTables Materialkosten für die Szenario-SKUs, sonst leere Tabellen.
func scenarioTables() entity.CostTables {
	return entity.CostTables{
		Material: []entity.MaterialCostEntry{
			{SKU: "ALPHA", Cost: dec("20")},
			{SKU: "BETA", Cost: dec("10")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// End-to-End-Szenario: zwei Bestellungen am selben Tag, Kanäle A und B
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDaily_ZweiKanaeleOhneFilter(t *testing.T) {
	d := day(2024, 5, 3)
	items := []entity.LineItem{
		item("1", d, "ALPHA", "A", "100"),
		item("2", d, "BETA", "B", "50"),
	}

	res := report.ComputeDaily(items, scenarioTables(), report.DefaultShippingRates(), report.Filter{})
	require.Len(t, res.Days, 1, "beide Bestellungen fallen auf denselben Kalendertag")

	agg := res.Days[0]
	assert.True(t, agg.NetRevenue.Equal(dec("150")), "Netto 100 + 50, bekommen %s", agg.NetRevenue)
	assert.True(t, agg.MaterialCost.Equal(dec("30")), "Material 20 + 10, bekommen %s", agg.MaterialCost)
	assert.True(t, agg.DB1.Equal(dec("120")), "DB1 = Netto - Material, bekommen %s", agg.DB1)
	assert.True(t, agg.MaterialPct.Equal(dec("20")), "30/150*100 = 20%%, bekommen %s", agg.MaterialPct)
	assert.Equal(t, 2, agg.OrderCount)
}

func TestComputeDaily_KanalfilterA(t *testing.T) {
	d := day(2024, 5, 3)
	items := []entity.LineItem{
		item("1", d, "ALPHA", "A", "100"),
		item("2", d, "BETA", "B", "50"),
	}

	res := report.ComputeDaily(items, scenarioTables(), report.DefaultShippingRates(),
		report.Filter{Platform: "A"})
	require.Len(t, res.Days, 1)

	agg := res.Days[0]
	assert.True(t, agg.NetRevenue.Equal(dec("100")))
	assert.True(t, agg.MaterialCost.Equal(dec("20")))
	assert.True(t, agg.DB1.Equal(dec("80")))
}

func TestComputeDaily_FilterOhneTrefferIstUnterscheidbar(t *testing.T) {
	d := day(2024, 5, 3)
	items := []entity.LineItem{
		item("1", d, "ALPHA", "A", "100"),
		item("2", d, "BETA", "B", "50"),
	}

	res := report.ComputeDaily(items, scenarioTables(), report.DefaultShippingRates(),
		report.Filter{Platform: "C"})
	assert.Empty(t, res.Days)
	assert.Equal(t, 2, res.TotalItems, "die Daten existierten")
	assert.Zero(t, res.MatchedItems, "nur der Filter hat alles entfernt")
}

func TestComputeDaily_SentinelAllUmgehtDenFilter(t *testing.T) {
	d := day(2024, 5, 3)
	items := []entity.LineItem{
		item("1", d, "ALPHA", "A", "100"),
		item("2", d, "BETA", "B", "50"),
	}

	res := report.ComputeDaily(items, scenarioTables(), report.DefaultShippingRates(),
		report.Filter{Platform: report.FilterAll, Country: report.FilterAll})
	require.Len(t, res.Days, 1)
	assert.True(t, res.Days[0].NetRevenue.Equal(dec("150")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auftragskosten dürfen bei mehreren Positionen nicht doppelt zählen
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDaily_AuftragskostenEinmalProBestellung(t *testing.T) {
	d := day(2024, 5, 3)
	// Eine Bestellung mit zwei Positionen.
	items := []entity.LineItem{
		item("1", d, "ALPHA", "A", "40"),
		item("1", d, "BETA", "A", "60"),
	}
	tables := scenarioTables()
	tables.Fulfillment = entity.FulfillmentCost{
		OrderFee:     dec("2.00"),
		PickFee:      dec("0.50"),
		PackagingFee: dec("1.00"),
	}

	res := report.ComputeDaily(items, tables, report.DefaultShippingRates(), report.Filter{})
	require.Len(t, res.Days, 1)

	agg := res.Days[0]
	// 2.00 + 0.50 × 2 Stück + 1.00 = 4.00, nicht pro Position erneut.
	assert.True(t, agg.FulfillmentCost.Equal(dec("4.00")),
		"Fulfillment zählt einmal pro Bestellung, bekommen %s", agg.FulfillmentCost)
	assert.Equal(t, 1, agg.OrderCount)
	assert.Equal(t, 2, agg.ItemCount)

	// Versand ebenso: eine Sendung, kleinste Inlandsstufe.
	wantShipping := dec("4.50").Add(dec("0.50")).Add(dec("4.50").Mul(dec("0.03")))
	assert.True(t, agg.ShippingCost.Equal(wantShipping),
		"Versand einmal pro Bestellung, bekommen %s", agg.ShippingCost)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datenlücken werden gemeldet, nie geworfen
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDaily_UnbewerteteSKUAlsWarnung(t *testing.T) {
	d := day(2024, 5, 3)
	items := []entity.LineItem{
		item("1", d, "ALPHA", "A", "100"),
		item("2", d, "OHNEKOSTEN", "A", "50"),
	}

	res := report.ComputeDaily(items, scenarioTables(), report.DefaultShippingRates(), report.Filter{})
	require.Len(t, res.Days, 1)

	agg := res.Days[0]
	assert.True(t, agg.MaterialCost.Equal(dec("20")),
		"die unbewertete SKU trägt 0 bei, der Rest rechnet weiter")
	assert.Contains(t, res.Warnings.UncostedSKUs, "OHNEKOSTEN")
	assert.NotContains(t, res.Warnings.UncostedSKUs, "ALPHA")
}

func TestComputeDaily_UnbekannterKanalUndFehlenderMarketingTag(t *testing.T) {
	d := day(2024, 5, 3)
	items := []entity.LineItem{item("1", d, "ALPHA", "A", "100")}

	res := report.ComputeDaily(items, scenarioTables(), report.DefaultShippingRates(), report.Filter{})
	require.Len(t, res.Days, 1)

	assert.True(t, res.Days[0].TransactionCost.IsZero(),
		"unbekannter Kanal kostet 0 Prozent")
	assert.Contains(t, res.Warnings.UnknownPlatforms, "A")
	assert.Contains(t, res.Warnings.MissingMarketingDates, "2024-05-03",
		"der Tag hat keine Marketingkosten-Zeile")
}

func TestComputeDaily_MarketingNurBeiKanalfilterDieEineSpalte(t *testing.T) {
	d := day(2024, 5, 3)
	items := []entity.LineItem{
		item("1", d, "ALPHA", "Amazon", "100"),
	}
	tables := scenarioTables()
	tables.Transaction = []entity.TransactionCostEntry{{Platform: "Amazon", Percent: dec("15")}}
	tables.Marketing = []entity.MarketingCostRow{{
		Date: d,
		Spend: map[string]decimal.Decimal{
			"Amazon Ads": dec("12.00"),
			"Google Ads": dec("8.00"),
		},
	}}

	// Ohne Filter: Summe aller Kanalspalten.
	res := report.ComputeDaily(items, tables, report.DefaultShippingRates(), report.Filter{})
	require.Len(t, res.Days, 1)
	assert.True(t, res.Days[0].MarketingCost.Equal(dec("20.00")))
	assert.True(t, res.Days[0].TransactionCost.Equal(dec("15")),
		"100 × 15%% Transaktionsgebühr")

	// Mit Kanalfilter: nur die passende Spalte.
	res = report.ComputeDaily(items, tables, report.DefaultShippingRates(),
		report.Filter{Platform: "Amazon"})
	require.Len(t, res.Days, 1)
	assert.True(t, res.Days[0].MarketingCost.Equal(dec("12.00")),
		"\"Amazon\" trifft die Spalte \"Amazon Ads\"")
	assert.True(t, res.Warnings.Empty())
}

func TestComputeDaily_TageOhneBestellungenFehlen(t *testing.T) {
	items := []entity.LineItem{
		item("1", day(2024, 5, 1), "ALPHA", "A", "100"),
		item("2", day(2024, 5, 3), "BETA", "A", "50"),
	}

	res := report.ComputeDaily(items, scenarioTables(), report.DefaultShippingRates(), report.Filter{})
	require.Len(t, res.Days, 2, "der 2. Mai hat keine Bestellungen und fehlt ersatzlos")
	assert.True(t, res.Days[0].Date.Before(res.Days[1].Date), "aufsteigend nach Datum")
}
