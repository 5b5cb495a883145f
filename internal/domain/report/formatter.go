package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// OverviewRow eine Zeile der transponierten Übersichtstabelle.
// Eine Leerzeile (Label und Values leer) trennt die Kostenblöcke optisch.
type OverviewRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// OverviewTable die Übersichtstabelle: Tage als Spalten, Kennzahlen als Zeilen
// in fester Reihenfolge. Reine Darstellung: außer der DB3-Marge wird hier
// nichts mehr gerechnet.
type OverviewTable struct {
	Dates []string      `json:"dates"` // Spaltenköpfe, TT.MM.JJJJ
	Rows  []OverviewRow `json:"rows"`
}

// deutsches Zahlenformat: Tausenderpunkt, Dezimalkomma.
var printer = message.NewPrinter(language.German)

// Transpose formt die Tagesauswertung in die Übersichtsdarstellung um.
// Erwartet Aggregate mit bereits berechneten Deckungsbeiträgen; Beträge werden
// auf 2 Nachkommastellen mit "€", Prozente auf 1 Nachkommastelle mit "%"
// formatiert.
func Transpose(days []entity.DailyAggregate) OverviewTable {
	table := OverviewTable{Dates: make([]string, 0, len(days))}
	for _, d := range days {
		table.Dates = append(table.Dates, d.Date.Format("02.01.2006"))
	}

	currency := func(label string, pick func(entity.DailyAggregate) string) {
		row := OverviewRow{Label: label, Values: make([]string, 0, len(days))}
		for _, d := range days {
			row.Values = append(row.Values, pick(d))
		}
		table.Rows = append(table.Rows, row)
	}
	blank := func() {
		table.Rows = append(table.Rows, OverviewRow{})
	}

	currency("Umsatz Brutto", func(d entity.DailyAggregate) string { return euro(d.GrossRevenue) })
	currency("Umsatz Netto", func(d entity.DailyAggregate) string { return euro(d.NetRevenue) })
	blank()
	currency("Materialkosten", func(d entity.DailyAggregate) string { return euro(d.MaterialCost) })
	currency("Deckungsbeitrag 1", func(d entity.DailyAggregate) string { return euro(d.DB1) })
	blank()
	currency("Fulfillment-Kosten", func(d entity.DailyAggregate) string { return euro(d.FulfillmentCost) })
	currency("Versandkosten", func(d entity.DailyAggregate) string { return euro(d.ShippingCost) })
	currency("Transaktionskosten", func(d entity.DailyAggregate) string { return euro(d.TransactionCost) })
	currency("Deckungsbeitrag 2", func(d entity.DailyAggregate) string { return euro(d.DB2) })
	blank()
	currency("Marketingkosten", func(d entity.DailyAggregate) string { return euro(d.MarketingCost) })
	currency("Deckungsbeitrag 3", func(d entity.DailyAggregate) string { return euro(d.DB3) })
	currency("DB3 Marge", func(d entity.DailyAggregate) string {
		// Einzige Ableitung der Darstellung: DB3 in % des Nettoumsatzes.
		return percent(pctOf(d.DB3, d.NetRevenue))
	})

	return table
}

func euro(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f €", f)
}

func percent(d decimal.Decimal) string {
	f, _ := d.Round(1).Float64()
	return printer.Sprintf("%.1f %%", f)
}
