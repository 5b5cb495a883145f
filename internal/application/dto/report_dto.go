package dto

import (
	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/report"
)

// ReportRequest Query-Parameter der Tagesauswertung. Platform/Country leer
// oder "all" bedeutet: kein Filter.
type ReportRequest struct {
	From     string `query:"from" validate:"required"` // YYYY-MM-DD, einschließend
	To       string `query:"to" validate:"required"`   // YYYY-MM-DD, einschließend
	Platform string `query:"platform"`
	Country  string `query:"country"`
}

// DayRow ein Tag der Auswertung mit allen Kostenblöcken und Deckungsbeiträgen.
type DayRow struct {
	Date string `json:"date"` // YYYY-MM-DD

	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	NetRevenue   decimal.Decimal `json:"net_revenue"` // Brutto - Steuer

	MaterialCost    decimal.Decimal `json:"material_cost"`
	FulfillmentCost decimal.Decimal `json:"fulfillment_cost"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	TransactionCost decimal.Decimal `json:"transaction_cost"`
	MarketingCost   decimal.Decimal `json:"marketing_cost"`

	MaterialPct    decimal.Decimal `json:"material_cost_pct"`
	FulfillmentPct decimal.Decimal `json:"fulfillment_cost_pct"`
	ShippingPct    decimal.Decimal `json:"shipping_cost_pct"`
	TransactionPct decimal.Decimal `json:"transaction_cost_pct"`
	MarketingPct   decimal.Decimal `json:"marketing_cost_pct"`

	DB1 decimal.Decimal `json:"db1"` // Netto - Material
	DB2 decimal.Decimal `json:"db2"` // DB1 - Fulfillment - Versand - Transaktion
	DB3 decimal.Decimal `json:"db3"` // DB2 - Marketing

	DB1Pct decimal.Decimal `json:"db1_pct"`
	DB2Pct decimal.Decimal `json:"db2_pct"`
	DB3Pct decimal.Decimal `json:"db3_pct"`

	OrderCount int `json:"order_count"`
	ItemCount  int `json:"item_count"`
}

// WarningsResponse Datenlücken der Berechnung.
type WarningsResponse struct {
	UncostedSKUs          []string `json:"uncosted_skus"`
	UnknownPlatforms      []string `json:"unknown_platforms"`
	MissingMarketingDates []string `json:"missing_marketing_dates"`
}

// ReportResponse Ergebnis der Tagesauswertung. Empty unterscheidet die beiden
// Leerfälle: "no_data_in_range" (keine importierten Tage im Zeitraum) und
// "no_data_for_filter" (Daten vorhanden, aber der Filter entfernt alles).
type ReportResponse struct {
	Days         []DayRow             `json:"days"`
	Overview     report.OverviewTable `json:"overview"`
	Warnings     WarningsResponse     `json:"warnings"`
	MissingDates []string             `json:"missing_dates"` // Tage ohne Archivdatei im Zeitraum
	Empty        string               `json:"empty,omitempty"`
}

// Werte für ReportResponse.Empty.
const (
	EmptyNoDataInRange   = "no_data_in_range"
	EmptyNoDataForFilter = "no_data_for_filter"
)
