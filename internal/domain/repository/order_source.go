package repository

import (
	"context"
	"time"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// OrderSource der Port zur externen Order-API (Billbee). Implementierungen
// folgen der Paginierung eines Tages intern bis zum Ende; Transport- oder
// Auth-Fehler werden unverändert an den Aufrufer gereicht, eine Wiederholung
// findet hier nicht statt.
type OrderSource interface {
	// OrdersForDate liefert alle Rohbestellungen eines Kalendertages.
	OrdersForDate(ctx context.Context, date time.Time) ([]entity.RawOrder, error)
}
