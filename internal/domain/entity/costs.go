package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialCostEntry ein Eintrag der Materialkosten-Tabelle: Stückkosten einer
// SKU, optional gültig ab einem Datum. Spätere Einträge derselben SKU
// überschreiben frühere ab ihrem Gültigkeitsdatum.
type MaterialCostEntry struct {
	SKU           string
	Cost          decimal.Decimal // Stückkosten
	EffectiveFrom *time.Time      // nil = immer gültig
}

// FulfillmentCost die festen Gebührenbestandteile des Fulfillment-Dienstleisters.
// Es gibt genau einen aktuellen Datensatz, nicht datiert.
type FulfillmentCost struct {
	OrderFee     decimal.Decimal // Auftragspauschale pro Bestellung
	PickFee      decimal.Decimal // SKU_Pick pro Stück
	PackagingFee decimal.Decimal // Kartonage pro Bestellung
}

// TransactionCostEntry Transaktionsgebühr eines Verkaufskanals in Prozent des
// Bruttoumsatzes.
type TransactionCostEntry struct {
	Platform string
	Percent  decimal.Decimal
}

// MarketingCostRow Werbeausgaben eines Tages, aufgeschlüsselt nach Kanal
// (Spaltenname der CSV, z.B. "Google Ads").
type MarketingCostRow struct {
	Date  time.Time
	Spend map[string]decimal.Decimal
}

// CostTables alle Kostentabellen einer Berechnung. Sie werden zu Beginn jeder
// Berechnung frisch geladen und vom Kern nie verändert; Bearbeitung passiert
// ausschließlich über die Tabellen-Endpunkte.
type CostTables struct {
	Material    []MaterialCostEntry
	Fulfillment FulfillmentCost
	Transaction []TransactionCostEntry
	Marketing   []MarketingCostRow
}
