package report

import (
	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// TransactionResolver löst den Gebührensatz eines Verkaufskanals auf.
// Unbekannte Kanäle kosten 0 Prozent und werden als Warnung gemeldet.
type TransactionResolver struct {
	byPlatform map[string]decimal.Decimal
}

// NewTransactionResolver baut den Resolver über der Transaktionskosten-Tabelle.
func NewTransactionResolver(entries []entity.TransactionCostEntry) *TransactionResolver {
	m := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		m[e.Platform] = e.Percent
	}
	return &TransactionResolver{byPlatform: m}
}

// Cost berechnet die Transaktionsgebühr: Bruttoumsatz × Prozentsatz / 100.
// ok ist false, wenn der Kanal keinen Tabelleneintrag hat.
func (r *TransactionResolver) Cost(platform string, grossRevenue decimal.Decimal) (cost decimal.Decimal, ok bool) {
	pct, found := r.byPlatform[platform]
	if !found {
		return decimal.Zero, false
	}
	return grossRevenue.Mul(pct).Div(hundred), true
}
