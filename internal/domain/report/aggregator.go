package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// FilterAll Sentinel: dieser Filterwert deaktiviert den jeweiligen Filter.
const FilterAll = "all"

// Filter optionale Einschränkung der Auswertung auf Kanal und/oder Zielland.
// Leere Werte oder FilterAll lassen alles durch; der Vergleich ist exakt.
type Filter struct {
	Platform string
	Country  string
}

func (f Filter) matches(li entity.LineItem) bool {
	if f.Platform != "" && f.Platform != FilterAll && li.Platform != f.Platform {
		return false
	}
	if f.Country != "" && f.Country != FilterAll && li.Country != f.Country {
		return false
	}
	return true
}

// Result das Ergebnis einer Berechnung: Tagesaggregate (aufsteigend nach
// Datum, Tage ohne passende Bestellungen fehlen), gesammelte Datenlücken und
// die Zählerstände, mit denen der Aufrufer "keine Daten im Zeitraum" von
// "keine Daten für diesen Filter" unterscheidet.
type Result struct {
	Days     []entity.DailyAggregate
	Warnings entity.Warnings

	TotalItems   int // LineItems vor dem Filter
	MatchedItems int // LineItems nach dem Filter
}

// costedOrder eine bewertete Bestellung: Positionskosten plus die einmal pro
// Bestellung berechneten Auftragskosten (Fulfillment, Versand).
type costedOrder struct {
	orderID string
	date    string

	gross decimal.Decimal
	tax   decimal.Decimal

	material    decimal.Decimal
	transaction decimal.Decimal
	fulfillment decimal.Decimal
	shipping    decimal.Decimal

	itemCount int
}

// ComputeDaily führt Filterung, Kostenauflösung und Tagesaggregation aus und
// wendet anschließend die Deckungsbeitragsrechnung an. Die Eingaben werden
// nicht verändert.
func ComputeDaily(
	items []entity.LineItem,
	tables entity.CostTables,
	rates ShippingRates,
	filter Filter,
) Result {
	res := Result{TotalItems: len(items)}
	warn := newWarningCollector()

	materials := NewMaterialResolver(tables.Material)
	transactions := NewTransactionResolver(tables.Transaction)
	marketing := NewMarketingResolver(tables.Marketing)

	// 1) Filtern und nach Bestellung gruppieren. Fulfillment und Versand
	// entstehen pro Bestellung und dürfen bei mehreren Positionen nicht
	// mehrfach zählen.
	type orderGroup struct {
		items []entity.LineItem
	}
	orderIDs := make([]string, 0)
	byOrder := make(map[string]*orderGroup)
	for _, li := range items {
		if !filter.matches(li) {
			continue
		}
		res.MatchedItems++
		g, okG := byOrder[li.OrderID]
		if !okG {
			g = &orderGroup{}
			byOrder[li.OrderID] = g
			orderIDs = append(orderIDs, li.OrderID)
		}
		g.items = append(g.items, li)
	}

	// 2) Jede Bestellung bewerten.
	orders := make([]costedOrder, 0, len(orderIDs))
	for _, id := range orderIDs {
		g := byOrder[id]
		co := costedOrder{orderID: id, date: entity.DateKey(g.items[0].OrderDate), itemCount: len(g.items)}

		totalQty := decimal.Zero
		totalWeight := decimal.Zero
		for _, li := range g.items {
			co.gross = co.gross.Add(li.GrossAmount)
			co.tax = co.tax.Add(li.TaxAmount)
			totalQty = totalQty.Add(li.Quantity)
			totalWeight = totalWeight.Add(li.WeightGrams.Mul(li.Quantity))

			unitCost, okM := materials.UnitCost(li.SKU, li.OrderDate)
			if !okM {
				warn.uncostedSKU(li.SKU)
			}
			co.material = co.material.Add(unitCost.Mul(li.Quantity))

			txCost, okT := transactions.Cost(li.Platform, li.GrossAmount)
			if !okT {
				warn.unknownPlatform(li.Platform)
			}
			co.transaction = co.transaction.Add(txCost)
		}

		co.fulfillment = FulfillmentCost(tables.Fulfillment, totalQty)
		co.shipping = rates.Cost(totalWeight, g.items[0].Country)
		orders = append(orders, co)
	}

	// 3) Bestellungen nach Kalendertag aggregieren.
	byDate := make(map[string]*entity.DailyAggregate)
	dateKeys := make([]string, 0)
	for _, co := range orders {
		agg, okD := byDate[co.date]
		if !okD {
			agg = &entity.DailyAggregate{}
			byDate[co.date] = agg
			dateKeys = append(dateKeys, co.date)
		}
		agg.GrossRevenue = agg.GrossRevenue.Add(co.gross)
		agg.NetRevenue = agg.NetRevenue.Add(co.gross.Sub(co.tax))
		agg.MaterialCost = agg.MaterialCost.Add(co.material)
		agg.FulfillmentCost = agg.FulfillmentCost.Add(co.fulfillment)
		agg.ShippingCost = agg.ShippingCost.Add(co.shipping)
		agg.TransactionCost = agg.TransactionCost.Add(co.transaction)
		agg.OrderCount++
		agg.ItemCount += co.itemCount
	}
	sort.Strings(dateKeys)

	// 4) Marketingkosten pro Tag zuordnen und Deckungsbeiträge ableiten.
	for _, key := range dateKeys {
		agg := byDate[key]
		agg.Date = mustParseDateKey(key)

		spend, okMk := marketing.DailySpend(agg.Date, filter.Platform)
		if !okMk {
			warn.missingMarketingDate(key)
		}
		agg.MarketingCost = spend

		ApplyMargins(agg)
		res.Days = append(res.Days, *agg)
	}

	res.Warnings = warn.collect()
	return res
}
