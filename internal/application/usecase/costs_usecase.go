package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/avelio/profitab-api/internal/application/dto"
	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/repository"
)

// CostsUseCase liest und ersetzt die manuell gepflegten Kostentabellen.
// Speichern ersetzt immer die ganze Tabelle (last write wins, kein Locking).
type CostsUseCase struct {
	repo repository.CostTableRepository
}

// NewCostsUseCase baut den Kostentabellen-Use-Case.
func NewCostsUseCase(repo repository.CostTableRepository) *CostsUseCase {
	return &CostsUseCase{repo: repo}
}

// ── Materialkosten ────────────────────────────────────────────────────────────

func (uc *CostsUseCase) GetMaterialCosts(ctx context.Context) ([]dto.MaterialCostRow, error) {
	entries, err := uc.repo.LoadMaterialCosts(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.MaterialCostRow, 0, len(entries))
	for _, e := range entries {
		row := dto.MaterialCostRow{SKU: e.SKU, Cost: e.Cost}
		if e.EffectiveFrom != nil {
			row.EffectiveFrom = entity.DateKey(*e.EffectiveFrom)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (uc *CostsUseCase) ReplaceMaterialCosts(ctx context.Context, rows []dto.MaterialCostRow) error {
	entries := make([]entity.MaterialCostEntry, 0, len(rows))
	for _, row := range rows {
		if row.SKU == "" {
			return fmt.Errorf("%w: sku fehlt", domain.ErrInvalidInput)
		}
		e := entity.MaterialCostEntry{SKU: row.SKU, Cost: row.Cost}
		if row.EffectiveFrom != "" {
			d, err := time.ParseInLocation(time.DateOnly, row.EffectiveFrom, time.UTC)
			if err != nil {
				return fmt.Errorf("%w: effective_from %q", domain.ErrInvalidInput, row.EffectiveFrom)
			}
			e.EffectiveFrom = &d
		}
		entries = append(entries, e)
	}
	return uc.repo.SaveMaterialCosts(ctx, entries)
}

// ── Fulfillment ───────────────────────────────────────────────────────────────

func (uc *CostsUseCase) GetFulfillmentCosts(ctx context.Context) (*dto.FulfillmentCostBody, error) {
	fees, err := uc.repo.LoadFulfillmentCosts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.FulfillmentCostBody{
		OrderFee:     fees.OrderFee,
		PickFee:      fees.PickFee,
		PackagingFee: fees.PackagingFee,
	}, nil
}

func (uc *CostsUseCase) ReplaceFulfillmentCosts(ctx context.Context, body dto.FulfillmentCostBody) error {
	return uc.repo.SaveFulfillmentCosts(ctx, entity.FulfillmentCost{
		OrderFee:     body.OrderFee,
		PickFee:      body.PickFee,
		PackagingFee: body.PackagingFee,
	})
}

// ── Transaktionskosten ────────────────────────────────────────────────────────

func (uc *CostsUseCase) GetTransactionCosts(ctx context.Context) ([]dto.TransactionCostRow, error) {
	entries, err := uc.repo.LoadTransactionCosts(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.TransactionCostRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dto.TransactionCostRow{Platform: e.Platform, Percent: e.Percent})
	}
	return rows, nil
}

func (uc *CostsUseCase) ReplaceTransactionCosts(ctx context.Context, rows []dto.TransactionCostRow) error {
	entries := make([]entity.TransactionCostEntry, 0, len(rows))
	for _, row := range rows {
		if row.Platform == "" {
			return fmt.Errorf("%w: platform fehlt", domain.ErrInvalidInput)
		}
		entries = append(entries, entity.TransactionCostEntry{Platform: row.Platform, Percent: row.Percent})
	}
	return uc.repo.SaveTransactionCosts(ctx, entries)
}

// ── Marketingkosten ───────────────────────────────────────────────────────────

func (uc *CostsUseCase) GetMarketingCosts(ctx context.Context) ([]dto.MarketingCostRowBody, error) {
	costRows, err := uc.repo.LoadMarketingCosts(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.MarketingCostRowBody, 0, len(costRows))
	for _, r := range costRows {
		rows = append(rows, dto.MarketingCostRowBody{Date: entity.DateKey(r.Date), Spend: r.Spend})
	}
	return rows, nil
}

func (uc *CostsUseCase) ReplaceMarketingCosts(ctx context.Context, rows []dto.MarketingCostRowBody) error {
	costRows := make([]entity.MarketingCostRow, 0, len(rows))
	for _, row := range rows {
		d, err := time.ParseInLocation(time.DateOnly, row.Date, time.UTC)
		if err != nil {
			return fmt.Errorf("%w: date %q", domain.ErrInvalidInput, row.Date)
		}
		costRows = append(costRows, entity.MarketingCostRow{Date: d, Spend: row.Spend})
	}
	return uc.repo.SaveMarketingCosts(ctx, costRows)
}
