// Package report enthält den Kern der Profitabilitätsberechnung: die
// Normalisierung der Rohbestellungen, die Kostenauflösung (Material,
// Fulfillment, Versand, Transaktion, Marketing), die Tagesaggregation,
// die Deckungsbeitragsrechnung DB1–DB3 und die Übersichtsformatierung.
//
// Der Datenfluss ist strikt vorwärts gerichtet:
//
//	Rohbestellungen → LineItems → bewertete Bestellungen → Tagesaggregate
//	→ Deckungsbeiträge → Übersichtstabelle
//
// Keine Stufe verändert die Ausgabe ihrer Vorgängerin; jede erzeugt eine
// neue Struktur.
package report

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
)

// NormalizeOrder wandelt eine Rohbestellung in kanonische LineItems um, eines
// pro Position. Einzelne fehlerhafte Positionen werden nie abgelehnt: fehlende
// oder unlesbare Werte fallen auf definierte Defaults zurück (Zahlen auf 0,
// SKU auf ""). Nur eine strukturell unvollständige Bestellung (fehlende Id,
// fehlender Zeitstempel, fehlende Positionsliste) liefert einen
// ValidationError.
func NormalizeOrder(raw entity.RawOrder) ([]entity.LineItem, error) {
	orderID := raw.ID.String()
	if orderID == "" {
		return nil, &domain.ValidationError{Reason: "Id fehlt"}
	}
	if raw.CreatedAt == "" {
		return nil, &domain.ValidationError{OrderID: orderID, Reason: "CreatedAt fehlt"}
	}
	if raw.Items == nil {
		return nil, &domain.ValidationError{OrderID: orderID, Reason: "OrderItems fehlen"}
	}

	orderDate, err := truncateToDate(raw.CreatedAt)
	if err != nil {
		return nil, &domain.ValidationError{OrderID: orderID, Reason: "CreatedAt unlesbar: " + raw.CreatedAt}
	}

	items := make([]entity.LineItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		items = append(items, entity.LineItem{
			OrderID:     orderID,
			OrderDate:   orderDate,
			SKU:         NormalizeSKU(it.SKU),
			Quantity:    coerceNonNegative(it.Quantity),
			GrossAmount: coerceDecimal(it.TotalPrice),
			TaxAmount:   coerceDecimal(it.TaxAmount),
			WeightGrams: coerceNonNegative(it.WeightGrams),
			Platform:    raw.Platform,
			Country:     strings.ToUpper(strings.TrimSpace(raw.ShippingCountry)),
		})
	}
	return items, nil
}

// NormalizeSKU reduziert eine SKU auf ihren Stamm: den Teil vor dem ersten
// Bindestrich. Größen- und Farbvarianten ("ABC123-ROT-XL") fallen so für die
// Materialkosten-Suche auf eine Basis-SKU ("ABC123") zusammen.
// nil oder fehlend ergibt den leeren String.
func NormalizeSKU(sku *string) string {
	if sku == nil {
		return ""
	}
	s := strings.TrimSpace(*sku)
	if i := strings.Index(s, "-"); i >= 0 {
		return s[:i]
	}
	return s
}

// truncateToDate kürzt einen ISO-Zeitstempel auf den Kalendertag. Es findet
// keine Zeitzonenkonvertierung statt: der Datumsanteil des Zeitstempels wird
// unverändert übernommen.
func truncateToDate(ts string) (time.Time, error) {
	if len(ts) > len(time.DateOnly) {
		ts = ts[:len(time.DateOnly)]
	}
	return time.ParseInLocation(time.DateOnly, ts, time.UTC)
}

// coerceDecimal ist die einheitliche Default-Regel für numerische Felder:
// fehlende oder nicht-numerische Eingaben ergeben 0 statt eines Fehlers.
func coerceDecimal(n json.Number) decimal.Decimal {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// coerceNonNegative wie coerceDecimal, klemmt zusätzlich negative Werte auf 0
// (Invariante: Menge und Gewicht sind nie negativ).
func coerceNonNegative(n json.Number) decimal.Decimal {
	d := coerceDecimal(n)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
