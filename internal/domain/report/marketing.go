package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// MarketingResolver löst die täglichen Werbeausgaben auf. Ohne Kanalfilter
// zählt die Summe aller Kanalspalten des Tages, mit Filter nur die passende
// Spalte. Ein Tag ohne Zeile kostet 0 und wird als Warnung gemeldet.
type MarketingResolver struct {
	byDate map[string]map[string]decimal.Decimal
}

// NewMarketingResolver baut den Resolver über der Marketingkosten-Tabelle.
func NewMarketingResolver(rows []entity.MarketingCostRow) *MarketingResolver {
	m := make(map[string]map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		m[entity.DateKey(r.Date)] = r.Spend
	}
	return &MarketingResolver{byDate: m}
}

// DailySpend liefert die Werbeausgaben eines Tages. platformFilter leer oder
// FilterAll summiert alle Kanäle. ok ist false, wenn der Tag keine Zeile hat.
func (r *MarketingResolver) DailySpend(date time.Time, platformFilter string) (spend decimal.Decimal, ok bool) {
	row, found := r.byDate[entity.DateKey(date)]
	if !found {
		return decimal.Zero, false
	}
	if platformFilter == "" || platformFilter == FilterAll {
		total := decimal.Zero
		for _, v := range row {
			total = total.Add(v)
		}
		return total, true
	}
	if v, has := row[platformFilter]; has {
		return v, true
	}
	// Spaltennamen tragen das Suffix "Ads" ("Amazon Ads"), der Orderfilter nur
	// den Kanalnamen ("Amazon"): Präfixvergleich deckt das ab.
	for col, v := range row {
		if strings.HasPrefix(col, platformFilter+" ") {
			return v, true
		}
	}
	// Der Tag ist erfasst, nur dieser Kanal hat keine Ausgaben.
	return decimal.Zero, true
}
