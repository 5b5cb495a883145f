package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RawOrder Rohbestellung, wie sie die Order-Quelle (Billbee) liefert.
// Numerische Felder sind bewusst json.Number: die API liefert je nach Shop
// mal Zahlen, mal Strings, mal gar nichts. Die Normalisierung macht daraus
// definierte Werte.
type RawOrder struct {
	ID              json.Number    `json:"Id"`
	CreatedAt       string         `json:"CreatedAt"` // ISO-Zeitstempel der Quelle
	Platform        string         `json:"Platform"`  // Verkaufskanal, z.B. "Amazon"
	ShippingCountry string         `json:"ShippingCountry"`
	Items           []RawOrderItem `json:"OrderItems"`
}

// RawOrderItem eine Position der Rohbestellung.
type RawOrderItem struct {
	SKU         *string     `json:"SKU"` // kann null sein
	Quantity    json.Number `json:"Quantity"`
	TotalPrice  json.Number `json:"TotalPrice"` // Brutto inkl. Steuer
	TaxAmount   json.Number `json:"TaxAmount"`
	WeightGrams json.Number `json:"Weight"` // Produktgewicht in Gramm
}

// LineItem kanonische, unveränderliche Bestellposition nach der Normalisierung.
// Eine Bestellung ergibt ein LineItem pro Position; OrderDate ist der
// Kalendertag (die Aggregationseinheit), ohne Zeitanteil.
type LineItem struct {
	OrderID     string
	OrderDate   time.Time // auf Kalendertag gekürzt, UTC-Mitternacht
	SKU         string    // normalisiert: Präfix vor dem ersten Bindestrich
	Quantity    decimal.Decimal
	GrossAmount decimal.Decimal // Anteil dieser Position am Bruttoumsatz inkl. Steuer
	TaxAmount   decimal.Decimal
	WeightGrams decimal.Decimal // 0 wenn unbekannt; nur für die Versandkosten relevant
	Platform    string
	Country     string // ISO-Ländercode des Empfängers
}

// NetAmount Nettoumsatz der Position: Brutto minus Steuer, ungerundet.
func (li LineItem) NetAmount() decimal.Decimal {
	return li.GrossAmount.Sub(li.TaxAmount)
}

// DateKey formatiert ein Datum als Tagesschlüssel (YYYY-MM-DD), wie er in
// Dateinamen und Tabellen verwendet wird.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
