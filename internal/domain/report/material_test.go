package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/report"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestMaterialResolver_JuengsterGueltigerEintragGewinnt(t *testing.T) {
	resolver := report.NewMaterialResolver([]entity.MaterialCostEntry{
		{SKU: "TSHIRT", Cost: dec("4.00"), EffectiveFrom: datePtr(day(2024, 1, 1))},
		{SKU: "TSHIRT", Cost: dec("5.50"), EffectiveFrom: datePtr(day(2024, 6, 1))},
		{SKU: "TSHIRT", Cost: dec("9.99"), EffectiveFrom: datePtr(day(2025, 1, 1))},
	})

	cost, ok := resolver.UnitCost("TSHIRT", day(2024, 7, 15))
	assert.True(t, ok)
	assert.True(t, cost.Equal(dec("5.50")),
		"es gilt der jüngste Eintrag mit Gültigkeitsdatum ≤ Bestelldatum, bekommen %s", cost)
}

func TestMaterialResolver_GueltigAbGenauAmBestelldatum(t *testing.T) {
	resolver := report.NewMaterialResolver([]entity.MaterialCostEntry{
		{SKU: "TSHIRT", Cost: dec("4.00"), EffectiveFrom: datePtr(day(2024, 1, 1))},
		{SKU: "TSHIRT", Cost: dec("5.50"), EffectiveFrom: datePtr(day(2024, 6, 1))},
	})

	cost, ok := resolver.UnitCost("TSHIRT", day(2024, 6, 1))
	assert.True(t, ok)
	assert.True(t, cost.Equal(dec("5.50")), "effective_date ≤ order_date ist einschließend")
}

func TestMaterialResolver_UndatierterEintragGiltSeitJeher(t *testing.T) {
	resolver := report.NewMaterialResolver([]entity.MaterialCostEntry{
		{SKU: "MUG", Cost: dec("2.10")},
	})

	cost, ok := resolver.UnitCost("MUG", day(2020, 1, 1))
	assert.True(t, ok)
	assert.True(t, cost.Equal(dec("2.10")))
}

func TestMaterialResolver_PraefixFallback(t *testing.T) {
	resolver := report.NewMaterialResolver([]entity.MaterialCostEntry{
		{SKU: "TS", Cost: dec("1.00")},
		{SKU: "TSHIRT", Cost: dec("4.00")},
	})

	// "TSHIRTPRO" hat keinen exakten Eintrag; der längste passende Präfix gewinnt.
	cost, ok := resolver.UnitCost("TSHIRTPRO", day(2024, 1, 1))
	assert.True(t, ok)
	assert.True(t, cost.Equal(dec("4.00")),
		"beim Präfix-Fallback gewinnt der längste Tabellen-Eintrag, bekommen %s", cost)
}

func TestMaterialResolver_KeinTrefferIstKeinFehler(t *testing.T) {
	resolver := report.NewMaterialResolver([]entity.MaterialCostEntry{
		{SKU: "MUG", Cost: dec("2.10")},
	})

	cost, ok := resolver.UnitCost("UNBEKANNT", day(2024, 1, 1))
	assert.False(t, ok, "fehlender Eintrag ist eine Datenlücke, kein Fehler")
	assert.True(t, cost.IsZero())
}

func TestMaterialResolver_ZukuenftigerEintragZaehltNicht(t *testing.T) {
	resolver := report.NewMaterialResolver([]entity.MaterialCostEntry{
		{SKU: "MUG", Cost: dec("2.10"), EffectiveFrom: datePtr(day(2025, 1, 1))},
	})

	_, ok := resolver.UnitCost("MUG", day(2024, 1, 1))
	assert.False(t, ok, "ein erst künftig gültiger Eintrag bewertet ältere Bestellungen nicht")
}
