package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// MaterialResolver löst die Stückkosten einer SKU zum Bestelldatum auf.
// Auflösungsreihenfolge:
//  1. Exakte Übereinstimmung der normalisierten SKU.
//  2. Präfix-Fallback: der längste Tabellen-Eintrag, mit dem die SKU beginnt.
//
// Innerhalb einer SKU gilt der jüngste Eintrag mit Gültigkeitsdatum ≤
// Bestelldatum; Einträge ohne Datum gelten seit jeher. Kein Treffer ergibt 0;
// die SKU wird als "unbewertet" gemeldet, nie als Fehler.
type MaterialResolver struct {
	entries []entity.MaterialCostEntry
	bySKU   map[string][]entity.MaterialCostEntry
}

// NewMaterialResolver baut den Resolver über der frisch geladenen Tabelle.
func NewMaterialResolver(entries []entity.MaterialCostEntry) *MaterialResolver {
	bySKU := make(map[string][]entity.MaterialCostEntry, len(entries))
	for _, e := range entries {
		bySKU[e.SKU] = append(bySKU[e.SKU], e)
	}
	return &MaterialResolver{entries: entries, bySKU: bySKU}
}

// UnitCost liefert die Stückkosten der SKU zum Datum. ok ist false, wenn kein
// Eintrag passt; die Kosten sind dann 0.
func (r *MaterialResolver) UnitCost(sku string, orderDate time.Time) (cost decimal.Decimal, ok bool) {
	if sku == "" {
		return decimal.Zero, false
	}
	if c, found := latestEffective(r.bySKU[sku], orderDate); found {
		return c, true
	}

	// Präfix-Fallback: längster Tabellen-Eintrag, der Präfix der SKU ist.
	best := ""
	for key := range r.bySKU {
		if key == "" || len(key) >= len(sku) {
			continue
		}
		if sku[:len(key)] == key && len(key) > len(best) {
			if _, found := latestEffective(r.bySKU[key], orderDate); found {
				best = key
			}
		}
	}
	if best == "" {
		return decimal.Zero, false
	}
	c, _ := latestEffective(r.bySKU[best], orderDate)
	return c, true
}

// latestEffective wählt aus den Einträgen einer SKU den jüngsten mit
// EffectiveFrom ≤ orderDate. Undatierte Einträge zählen als ältestmöglich.
func latestEffective(entries []entity.MaterialCostEntry, orderDate time.Time) (decimal.Decimal, bool) {
	var bestDate time.Time
	var best decimal.Decimal
	found := false
	for _, e := range entries {
		var eff time.Time // Nullwert = gültig seit jeher
		if e.EffectiveFrom != nil {
			eff = *e.EffectiveFrom
		}
		if eff.After(orderDate) {
			continue
		}
		if !found || eff.After(bestDate) || eff.Equal(bestDate) {
			bestDate = eff
			best = e.Cost
			found = true
		}
	}
	return best, found
}
