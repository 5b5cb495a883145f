package repository

import (
	"context"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// CostTableRepository der Port zu den manuell gepflegten Kostentabellen.
// Jede Berechnung lädt die Tabellen frisch; gespeichert wird immer die ganze
// Tabelle (replace on save, kein Locking, last write wins). Eine fehlende
// Tabelle ist kein Fehler: Load liefert dann die leere Tabelle mit Schema.
type CostTableRepository interface {
	LoadMaterialCosts(ctx context.Context) ([]entity.MaterialCostEntry, error)
	SaveMaterialCosts(ctx context.Context, entries []entity.MaterialCostEntry) error

	LoadFulfillmentCosts(ctx context.Context) (entity.FulfillmentCost, error)
	SaveFulfillmentCosts(ctx context.Context, fees entity.FulfillmentCost) error

	LoadTransactionCosts(ctx context.Context) ([]entity.TransactionCostEntry, error)
	SaveTransactionCosts(ctx context.Context, entries []entity.TransactionCostEntry) error

	LoadMarketingCosts(ctx context.Context) ([]entity.MarketingCostRow, error)
	SaveMarketingCosts(ctx context.Context, rows []entity.MarketingCostRow) error
}
