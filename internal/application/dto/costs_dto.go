package dto

import "github.com/shopspring/decimal"

// MaterialCostRow eine Zeile der Materialkosten-Tabelle. EffectiveFrom leer
// bedeutet: gilt seit jeher.
type MaterialCostRow struct {
	SKU           string          `json:"sku" validate:"required"`
	Cost          decimal.Decimal `json:"cost" validate:"required"`
	EffectiveFrom string          `json:"effective_from,omitempty"` // YYYY-MM-DD
}

// FulfillmentCostBody der einzige aktuelle Gebührensatz des Dienstleisters.
type FulfillmentCostBody struct {
	OrderFee     decimal.Decimal `json:"order_fee"`     // Auftragspauschale
	PickFee      decimal.Decimal `json:"pick_fee"`      // je Stück
	PackagingFee decimal.Decimal `json:"packaging_fee"` // Kartonage
}

// TransactionCostRow Gebührensatz eines Verkaufskanals in Prozent vom Brutto.
type TransactionCostRow struct {
	Platform string          `json:"platform" validate:"required"`
	Percent  decimal.Decimal `json:"percent" validate:"required"`
}

// MarketingCostRowBody Werbeausgaben eines Tages, eine Spalte je Kanal.
type MarketingCostRowBody struct {
	Date  string                     `json:"date" validate:"required"` // YYYY-MM-DD
	Spend map[string]decimal.Decimal `json:"spend"`
}

// ImportRequest Zeitraum für den Bestellimport, beide Grenzen einschließend.
type ImportRequest struct {
	From string `json:"from" validate:"required"` // YYYY-MM-DD
	To   string `json:"to" validate:"required"`   // YYYY-MM-DD
}

// ImportResponse Ergebnis eines Importlaufs. Jeder Tag ist eine unabhängige
// Einheit: FailedDates nennt die Tage, die beim nächsten Lauf nachzuholen sind.
type ImportResponse struct {
	ImportedDates []string `json:"imported_dates"`
	SkippedDates  []string `json:"skipped_dates"` // bereits archiviert
	FailedDates   []string `json:"failed_dates"`
	OrderCount    int      `json:"order_count"` // neu archivierte Bestellungen
}
