package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAggregate eine Zeile der Tagesauswertung: Umsätze, Kostenblöcke und die
// Deckungsbeiträge DB1–DB3. Alle Beträge ungerundet; gerundet wird erst bei
// der Darstellung.
type DailyAggregate struct {
	Date time.Time

	GrossRevenue decimal.Decimal
	NetRevenue   decimal.Decimal // Brutto minus Steuer

	MaterialCost    decimal.Decimal
	FulfillmentCost decimal.Decimal
	ShippingCost    decimal.Decimal
	TransactionCost decimal.Decimal
	MarketingCost   decimal.Decimal

	// Prozentanteile am Nettoumsatz; 0 wenn der Nettoumsatz 0 ist.
	MaterialPct    decimal.Decimal
	FulfillmentPct decimal.Decimal
	ShippingPct    decimal.Decimal
	TransactionPct decimal.Decimal
	MarketingPct   decimal.Decimal

	// Deckungsbeiträge, streng aufeinander aufbauend:
	//   DB1 = Netto - Material
	//   DB2 = DB1 - Fulfillment - Versand - Transaktion
	//   DB3 = DB2 - Marketing
	DB1 decimal.Decimal
	DB2 decimal.Decimal
	DB3 decimal.Decimal

	DB1Pct decimal.Decimal
	DB2Pct decimal.Decimal
	DB3Pct decimal.Decimal

	OrderCount int
	ItemCount  int
}

// Warnings Datenlücken einer Berechnung. Fehlende Kosteneinträge sind keine
// Fehler: sie werden mit 0 bewertet und hier gesammelt an den Aufrufer gemeldet.
type Warnings struct {
	UncostedSKUs          []string // SKUs ohne Materialkosten-Eintrag
	UnknownPlatforms      []string // Kanäle ohne Transaktionskosten-Eintrag
	MissingMarketingDates []string // Tage ohne Marketingkosten-Zeile (YYYY-MM-DD)
}

// Empty meldet, ob keinerlei Lücken aufgetreten sind.
func (w Warnings) Empty() bool {
	return len(w.UncostedSKUs) == 0 && len(w.UnknownPlatforms) == 0 && len(w.MissingMarketingDates) == 0
}
