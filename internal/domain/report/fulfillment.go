package report

import (
	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// FulfillmentCost berechnet die Fulfillment-Gebühr einer Bestellung (nicht pro
// Position): Auftragspauschale + SKU_Pick × Gesamtstückzahl + Kartonage.
// Grundlage ist der einzige aktuelle Gebührensatz des Dienstleisters.
func FulfillmentCost(fees entity.FulfillmentCost, totalItemCount decimal.Decimal) decimal.Decimal {
	return fees.OrderFee.
		Add(fees.PickFee.Mul(totalItemCount)).
		Add(fees.PackagingFee)
}
