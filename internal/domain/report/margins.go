package report

import (
	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ApplyMargins leitet die Deckungsbeiträge aus den aggregierten Summen ab, in
// fester Reihenfolge (DB1 vor DB2 vor DB3), jeweils mit Prozentanteil am
// Nettoumsatz. Alle Werte bleiben ungerundet; gerundet wird erst bei der
// Darstellung, damit sich über die Kette DB1→DB3 keine Rundungsfehler
// aufsummieren.
func ApplyMargins(agg *entity.DailyAggregate) {
	agg.DB1 = agg.NetRevenue.Sub(agg.MaterialCost)
	agg.DB2 = agg.DB1.
		Sub(agg.FulfillmentCost).
		Sub(agg.ShippingCost).
		Sub(agg.TransactionCost)
	agg.DB3 = agg.DB2.Sub(agg.MarketingCost)

	agg.MaterialPct = pctOf(agg.MaterialCost, agg.NetRevenue)
	agg.FulfillmentPct = pctOf(agg.FulfillmentCost, agg.NetRevenue)
	agg.ShippingPct = pctOf(agg.ShippingCost, agg.NetRevenue)
	agg.TransactionPct = pctOf(agg.TransactionCost, agg.NetRevenue)
	agg.MarketingPct = pctOf(agg.MarketingCost, agg.NetRevenue)

	agg.DB1Pct = pctOf(agg.DB1, agg.NetRevenue)
	agg.DB2Pct = pctOf(agg.DB2, agg.NetRevenue)
	agg.DB3Pct = pctOf(agg.DB3, agg.NetRevenue)
}

// pctOf berechnet amount / net × 100; bei Nettoumsatz 0 per Definition 0,
// niemals eine Division durch null.
func pctOf(amount, net decimal.Decimal) decimal.Decimal {
	if net.IsZero() {
		return decimal.Zero
	}
	return amount.Div(net).Mul(hundred)
}
