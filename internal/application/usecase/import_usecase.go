package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/avelio/profitab-api/internal/application/dto"
	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/report"
	"github.com/avelio/profitab-api/internal/domain/repository"
	"github.com/avelio/profitab-api/pkg/logger"
)

// ImportUseCase holt Bestellungen tageweise aus der Order-API und legt sie
// normalisiert im Archiv ab. Jeder Tag ist eine unabhängige Einheit: ein
// fehlgeschlagener Tag wird gemeldet und beim nächsten Lauf nachgeholt, der
// Rest des Zeitraums läuft weiter.
type ImportUseCase struct {
	source  repository.OrderSource
	archive repository.OrderArchive
	log     *logger.Logger
}

// NewImportUseCase baut den Import-Use-Case.
func NewImportUseCase(source repository.OrderSource, archive repository.OrderArchive, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{source: source, archive: archive, log: log}
}

// Run importiert den Zeitraum, beide Grenzen einschließend. Bereits
// archivierte Tage werden übersprungen; die Order-API wird für sie nicht
// erneut befragt.
func (uc *ImportUseCase) Run(ctx context.Context, in dto.ImportRequest) (*dto.ImportResponse, error) {
	from, to, err := parseRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	saved, err := uc.archive.SavedDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("archivierte tage listen: %w", err)
	}
	done := make(map[string]bool, len(saved))
	for _, d := range saved {
		done[entity.DateKey(d)] = true
	}

	out := &dto.ImportResponse{
		ImportedDates: []string{},
		SkippedDates:  []string{},
		FailedDates:   []string{},
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := entity.DateKey(d)
		if done[key] {
			out.SkippedDates = append(out.SkippedDates, key)
			continue
		}
		count, dayErr := uc.importDay(ctx, d)
		if dayErr != nil {
			// Tag beim nächsten Lauf nachholen; niemals stillschweigend auslassen.
			uc.log.Error().Err(dayErr).Str("date", key).Msg("tagesimport fehlgeschlagen")
			out.FailedDates = append(out.FailedDates, key)
			continue
		}
		out.ImportedDates = append(out.ImportedDates, key)
		out.OrderCount += count
		uc.log.Info().Str("date", key).Int("orders", count).Msg("tag importiert")
	}
	return out, nil
}

// importDay holt, normalisiert und archiviert einen Kalendertag. Strukturell
// ungültige Bestellungen werden geloggt und übersprungen, der Tag selbst gilt
// weiterhin als erfolgreich.
func (uc *ImportUseCase) importDay(ctx context.Context, date time.Time) (int, error) {
	raws, err := uc.source.OrdersForDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("bestellungen abrufen: %w", err)
	}

	items := make([]entity.LineItem, 0, len(raws))
	orders := 0
	for _, raw := range raws {
		lineItems, normErr := report.NormalizeOrder(raw)
		if normErr != nil {
			if domain.IsValidation(normErr) {
				uc.log.Warn().Err(normErr).Str("date", entity.DateKey(date)).Msg("bestellung übersprungen")
				continue
			}
			return 0, normErr
		}
		items = append(items, lineItems...)
		orders++
	}

	if err := uc.archive.SaveDay(ctx, date, items); err != nil {
		return 0, fmt.Errorf("tag archivieren: %w", err)
	}
	return orders, nil
}
