package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelio/profitab-api/internal/application/dto"
	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/report"
	"github.com/avelio/profitab-api/internal/domain/repository"
	"github.com/avelio/profitab-api/pkg/logger"
)

// OverviewRenderer rendert die Übersichtstabelle in ein Dokument (PDF).
type OverviewRenderer interface {
	RenderOverview(table report.OverviewTable, from, to string) ([]byte, error)
}

// ReportUseCase berechnet die Tagesauswertung aus Archiv und Kostentabellen.
// Jede Anfrage lädt beides frisch; es gibt keinen Cache und keinen Zustand
// zwischen Anfragen.
type ReportUseCase struct {
	archive  repository.OrderArchive
	costs    repository.CostTableRepository
	rates    report.ShippingRates
	renderer OverviewRenderer
	log      *logger.Logger
}

// NewReportUseCase baut den Report-Use-Case.
func NewReportUseCase(
	archive repository.OrderArchive,
	costs repository.CostTableRepository,
	rates report.ShippingRates,
	renderer OverviewRenderer,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{archive: archive, costs: costs, rates: rates, renderer: renderer, log: log}
}

// Overview berechnet die Tagesauswertung für einen Zeitraum mit optionalen
// Kanal-/Länderfiltern. Fehlende Archivtage werden gemeldet, nicht geworfen;
// nur Eingabe- und Speicherfehler brechen ab.
func (uc *ReportUseCase) Overview(ctx context.Context, in dto.ReportRequest) (*dto.ReportResponse, error) {
	from, to, err := parseRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	items, missing, err := uc.loadRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	tables, err := uc.loadTables(ctx)
	if err != nil {
		return nil, err
	}

	filter := report.Filter{Platform: in.Platform, Country: in.Country}
	res := report.ComputeDaily(items, tables, uc.rates, filter)

	out := &dto.ReportResponse{
		Days:     toDayRows(res.Days),
		Overview: report.Transpose(res.Days),
		Warnings: dto.WarningsResponse{
			UncostedSKUs:          res.Warnings.UncostedSKUs,
			UnknownPlatforms:      res.Warnings.UnknownPlatforms,
			MissingMarketingDates: res.Warnings.MissingMarketingDates,
		},
		MissingDates: missing,
	}
	switch {
	case res.TotalItems == 0:
		out.Empty = dto.EmptyNoDataInRange
	case res.MatchedItems == 0:
		out.Empty = dto.EmptyNoDataForFilter
	}

	if !res.Warnings.Empty() {
		uc.log.Warn().
			Strs("uncosted_skus", res.Warnings.UncostedSKUs).
			Strs("unknown_platforms", res.Warnings.UnknownPlatforms).
			Strs("missing_marketing_dates", res.Warnings.MissingMarketingDates).
			Msg("auswertung mit datenlücken")
	}
	return out, nil
}

// OverviewPDF berechnet die Auswertung und rendert die Übersichtstabelle als PDF.
func (uc *ReportUseCase) OverviewPDF(ctx context.Context, in dto.ReportRequest) ([]byte, error) {
	out, err := uc.Overview(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderOverview(out.Overview, in.From, in.To)
}

// loadRange lädt die archivierten Tage des Zeitraums. Nie importierte Tage
// landen in missing; jeder andere Archivfehler bricht ab.
func (uc *ReportUseCase) loadRange(ctx context.Context, from, to time.Time) (items []entity.LineItem, missing []string, err error) {
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dayItems, loadErr := uc.archive.LoadDay(ctx, d)
		if loadErr != nil {
			if errors.Is(loadErr, domain.ErrNotFound) {
				missing = append(missing, entity.DateKey(d))
				continue
			}
			return nil, nil, fmt.Errorf("archivtag %s laden: %w", entity.DateKey(d), loadErr)
		}
		items = append(items, dayItems...)
	}
	return items, missing, nil
}

func (uc *ReportUseCase) loadTables(ctx context.Context) (entity.CostTables, error) {
	var tables entity.CostTables
	var err error
	if tables.Material, err = uc.costs.LoadMaterialCosts(ctx); err != nil {
		return tables, fmt.Errorf("materialkosten laden: %w", err)
	}
	if tables.Fulfillment, err = uc.costs.LoadFulfillmentCosts(ctx); err != nil {
		return tables, fmt.Errorf("fulfillment-kosten laden: %w", err)
	}
	if tables.Transaction, err = uc.costs.LoadTransactionCosts(ctx); err != nil {
		return tables, fmt.Errorf("transaktionskosten laden: %w", err)
	}
	if tables.Marketing, err = uc.costs.LoadMarketingCosts(ctx); err != nil {
		return tables, fmt.Errorf("marketingkosten laden: %w", err)
	}
	return tables, nil
}

func toDayRows(days []entity.DailyAggregate) []dto.DayRow {
	rows := make([]dto.DayRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, dto.DayRow{
			Date:            entity.DateKey(d.Date),
			GrossRevenue:    d.GrossRevenue,
			NetRevenue:      d.NetRevenue,
			MaterialCost:    d.MaterialCost,
			FulfillmentCost: d.FulfillmentCost,
			ShippingCost:    d.ShippingCost,
			TransactionCost: d.TransactionCost,
			MarketingCost:   d.MarketingCost,
			MaterialPct:     d.MaterialPct,
			FulfillmentPct:  d.FulfillmentPct,
			ShippingPct:     d.ShippingPct,
			TransactionPct:  d.TransactionPct,
			MarketingPct:    d.MarketingPct,
			DB1:             d.DB1,
			DB2:             d.DB2,
			DB3:             d.DB3,
			DB1Pct:          d.DB1Pct,
			DB2Pct:          d.DB2Pct,
			DB3Pct:          d.DB3Pct,
			OrderCount:      d.OrderCount,
			ItemCount:       d.ItemCount,
		})
	}
	return rows
}

// parseRange parst ein einschließendes Kalenderdatums-Paar.
func parseRange(fromStr, toStr string) (from, to time.Time, err error) {
	from, err = time.ParseInLocation(time.DateOnly, fromStr, time.UTC)
	if err != nil {
		return from, to, fmt.Errorf("%w: from %q", domain.ErrInvalidInput, fromStr)
	}
	to, err = time.ParseInLocation(time.DateOnly, toStr, time.UTC)
	if err != nil {
		return from, to, fmt.Errorf("%w: to %q", domain.ErrInvalidInput, toStr)
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("%w: to liegt vor from", domain.ErrInvalidInput)
	}
	return from, to, nil
}
