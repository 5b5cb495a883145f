package s3store

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/repository"
)

var _ repository.OrderArchive = (*OrderArchive)(nil)

const (
	orderKeyPrefix = "orders_"
	orderKeySuffix = ".csv"
)

// Spaltenvertrag des Tagesarchivs; Reihenfolge und Namen sind dauerhaft.
var orderColumns = []string{
	"OrderId", "OrderDate", "SKU", "Quantity",
	"GrossAmount", "TaxAmount", "WeightGrams", "Platform", "Country",
}

// OrderArchive das Tagesarchiv normalisierter Bestellungen: eine CSV-Datei
// pro Kalendertag unter dem Key orders_YYYY-MM-DD.csv.
type OrderArchive struct {
	store objectStore
}

// NewOrderArchive baut das Archiv über einem Bucket.
func NewOrderArchive(store objectStore) *OrderArchive {
	return &OrderArchive{store: store}
}

func orderKey(date time.Time) string {
	return orderKeyPrefix + entity.DateKey(date) + orderKeySuffix
}

// SaveDay schreibt die LineItems eines Tages; ein vorhandenes Archiv desselben
// Tages wird ersetzt.
func (a *OrderArchive) SaveDay(ctx context.Context, date time.Time, items []entity.LineItem) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(orderColumns); err != nil {
		return fmt.Errorf("tagesarchiv kodieren: %w", err)
	}
	for _, li := range items {
		record := []string{
			li.OrderID,
			entity.DateKey(li.OrderDate),
			li.SKU,
			li.Quantity.String(),
			li.GrossAmount.String(),
			li.TaxAmount.String(),
			li.WeightGrams.String(),
			li.Platform,
			li.Country,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("tagesarchiv kodieren: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("tagesarchiv kodieren: %w", err)
	}
	return a.store.Put(ctx, orderKey(date), buf.Bytes())
}

// LoadDay lädt die LineItems eines Tages; domain.ErrNotFound, wenn der Tag
// nie importiert wurde.
func (a *OrderArchive) LoadDay(ctx context.Context, date time.Time) ([]entity.LineItem, error) {
	data, err := a.store.Get(ctx, orderKey(date))
	if err != nil {
		return nil, err
	}

	records, err := readCSV(data)
	if err != nil {
		return nil, fmt.Errorf("tagesarchiv %s: %w", orderKey(date), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("tagesarchiv %s: kopfzeile fehlt", orderKey(date))
	}
	col, err := columnIndex(records[0], orderColumns)
	if err != nil {
		return nil, fmt.Errorf("tagesarchiv %s: %w", orderKey(date), err)
	}

	items := make([]entity.LineItem, 0, len(records)-1)
	for _, rec := range records[1:] {
		orderDate, parseErr := time.ParseInLocation(time.DateOnly, rec[col["OrderDate"]], time.UTC)
		if parseErr != nil {
			return nil, fmt.Errorf("tagesarchiv %s: orderdate %q: %w", orderKey(date), rec[col["OrderDate"]], parseErr)
		}
		items = append(items, entity.LineItem{
			OrderID:     rec[col["OrderId"]],
			OrderDate:   orderDate,
			SKU:         rec[col["SKU"]],
			Quantity:    parseDecimal(rec[col["Quantity"]]),
			GrossAmount: parseDecimal(rec[col["GrossAmount"]]),
			TaxAmount:   parseDecimal(rec[col["TaxAmount"]]),
			WeightGrams: parseDecimal(rec[col["WeightGrams"]]),
			Platform:    rec[col["Platform"]],
			Country:     rec[col["Country"]],
		})
	}
	return items, nil
}

// SavedDates listet die archivierten Kalendertage, aufsteigend sortiert.
// Fremde Keys im Bucket (Kostentabellen) werden ignoriert.
func (a *OrderArchive) SavedDates(ctx context.Context) ([]time.Time, error) {
	keys, err := a.store.List(ctx, orderKeyPrefix)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimSuffix(strings.TrimPrefix(key, orderKeyPrefix), orderKeySuffix)
		d, parseErr := time.ParseInLocation(time.DateOnly, name, time.UTC)
		if parseErr != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// parseDecimal liest einen Dezimalwert; unlesbare Werte werden 0, das Archiv
// enthält nur bereits normalisierte Daten.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// readCSV parst eine CSV-Datei mit variabler Spaltenzahl pro Datei.
func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv lesen: %w", err)
	}
	return records, nil
}

// columnIndex ordnet den erwarteten Spaltennamen ihre Position in der
// Kopfzeile zu; die Spaltenreihenfolge der Datei ist damit frei.
func columnIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("spalte %q fehlt", name)
		}
	}
	return idx, nil
}
