package repository

import (
	"context"
	"time"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// OrderArchive der Port zum Tagesarchiv der normalisierten Bestellungen
// (eine CSV-Datei pro Kalendertag im Objektspeicher).
type OrderArchive interface {
	// SaveDay persistiert die LineItems eines Tages; ein vorhandenes Archiv
	// desselben Tages wird überschrieben (last write wins).
	SaveDay(ctx context.Context, date time.Time, items []entity.LineItem) error

	// LoadDay lädt die LineItems eines Tages; domain.ErrNotFound, wenn der
	// Tag nie importiert wurde.
	LoadDay(ctx context.Context, date time.Time) ([]entity.LineItem, error)

	// SavedDates listet die bereits archivierten Kalendertage.
	SavedDates(ctx context.Context) ([]time.Time, error)
}
