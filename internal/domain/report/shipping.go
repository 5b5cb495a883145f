package report

import (
	"github.com/shopspring/decimal"
)

// ShippingTier eine Gewichtsstufe des Inlandstarifs: gilt bis einschließlich
// MaxKg (ein Gewicht exakt auf der Grenze fällt in die niedrigere Stufe).
type ShippingTier struct {
	MaxKg decimal.Decimal
	Price decimal.Decimal
}

// ShippingRates die Versandkostentabelle: gestaffelter Inlandstarif plus
// lineare Tarife für EU-Nachbarländer und den Rest der Welt. Die Versandkosten
// sind eine reine Funktion aus (Gesamtgewicht, Zielland); es gibt keine
// persistierte Tabelle dahinter.
type ShippingRates struct {
	HomeCountry string

	DomesticTiers      []ShippingTier  // aufsteigend nach MaxKg
	DomesticOverweight decimal.Decimal // Preis oberhalb der letzten Stufe
	DomesticSurcharge  decimal.Decimal // fester Zuschlag pro Sendung
	EnergyPctOfBase    decimal.Decimal // Energiezuschlag in % des Basispreises

	EUCountries []string // Länder mit Nachbarschaftstarif
	EUBase      decimal.Decimal
	EUPerKg     decimal.Decimal

	WorldBase  decimal.Decimal
	WorldPerKg decimal.Decimal
}

// DefaultShippingRates die aktuell verhandelten Konditionen des Versenders.
func DefaultShippingRates() ShippingRates {
	return ShippingRates{
		HomeCountry: "DE",
		DomesticTiers: []ShippingTier{
			{MaxKg: decimal.NewFromInt(2), Price: decimal.NewFromFloat(4.50)},
			{MaxKg: decimal.NewFromInt(3), Price: decimal.NewFromFloat(5.20)},
			{MaxKg: decimal.NewFromInt(5), Price: decimal.NewFromFloat(6.30)},
			{MaxKg: decimal.NewFromInt(10), Price: decimal.NewFromFloat(8.49)},
			{MaxKg: decimal.NewFromInt(20), Price: decimal.NewFromFloat(12.90)},
		},
		DomesticOverweight: decimal.NewFromFloat(19.90),
		DomesticSurcharge:  decimal.NewFromFloat(0.50),
		EnergyPctOfBase:    decimal.NewFromInt(3),

		EUCountries: []string{"AT", "BE", "NL", "LU", "FR", "PL", "CZ", "DK", "IT", "ES"},
		EUBase:      decimal.NewFromFloat(9.90),
		EUPerKg:     decimal.NewFromFloat(1.50),

		WorldBase:  decimal.NewFromFloat(19.90),
		WorldPerKg: decimal.NewFromFloat(3.50),
	}
}

var thousand = decimal.NewFromInt(1000)

// Cost berechnet die Versandkosten einer Bestellung aus dem Gesamtgewicht in
// Gramm und dem Zielland. Drei Zweige: Inland (gestaffelt plus Zuschläge),
// EU-Nachbarland (Basis + kg-Satz), Rest der Welt (höherer Basis + kg-Satz).
func (r ShippingRates) Cost(totalWeightGrams decimal.Decimal, country string) decimal.Decimal {
	kg := totalWeightGrams.Div(thousand)

	switch {
	case country == r.HomeCountry:
		base := r.DomesticOverweight
		for _, tier := range r.DomesticTiers {
			if kg.LessThanOrEqual(tier.MaxKg) { // Grenze gehört zur niedrigeren Stufe
				base = tier.Price
				break
			}
		}
		energy := base.Mul(r.EnergyPctOfBase).Div(hundred)
		return base.Add(r.DomesticSurcharge).Add(energy)

	case r.isEU(country):
		return r.EUBase.Add(r.EUPerKg.Mul(kg))

	default:
		return r.WorldBase.Add(r.WorldPerKg.Mul(kg))
	}
}

func (r ShippingRates) isEU(country string) bool {
	for _, c := range r.EUCountries {
		if c == country {
			return true
		}
	}
	return false
}
