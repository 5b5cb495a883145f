package usecase_test

import (
	"context"
	"time"

	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/report"
	"github.com/avelio/profitab-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeArchive In-Memory-Tagesarchiv.
type fakeArchive struct {
	days    map[string][]entity.LineItem
	saveErr error
	listErr error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{days: make(map[string][]entity.LineItem)}
}

func (f *fakeArchive) SaveDay(_ context.Context, date time.Time, items []entity.LineItem) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.days[entity.DateKey(date)] = items
	return nil
}

func (f *fakeArchive) LoadDay(_ context.Context, date time.Time) ([]entity.LineItem, error) {
	items, ok := f.days[entity.DateKey(date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return items, nil
}

func (f *fakeArchive) SavedDates(_ context.Context) ([]time.Time, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	dates := make([]time.Time, 0, len(f.days))
	for key := range f.days {
		d, err := time.ParseInLocation(time.DateOnly, key, time.UTC)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// fakeSource liefert vorbereitete Rohbestellungen pro Tag, mit optionalen
// Fehlertagen.
type fakeSource struct {
	orders map[string][]entity.RawOrder
	errFor map[string]error
	calls  []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		orders: make(map[string][]entity.RawOrder),
		errFor: make(map[string]error),
	}
}

func (f *fakeSource) OrdersForDate(_ context.Context, date time.Time) ([]entity.RawOrder, error) {
	key := entity.DateKey(date)
	f.calls = append(f.calls, key)
	if err := f.errFor[key]; err != nil {
		return nil, err
	}
	return f.orders[key], nil
}

// fakeCostTables In-Memory-Kostentabellen.
type fakeCostTables struct {
	tables  entity.CostTables
	loadErr error
}

func (f *fakeCostTables) LoadMaterialCosts(context.Context) ([]entity.MaterialCostEntry, error) {
	return f.tables.Material, f.loadErr
}

func (f *fakeCostTables) SaveMaterialCosts(_ context.Context, entries []entity.MaterialCostEntry) error {
	f.tables.Material = entries
	return nil
}

func (f *fakeCostTables) LoadFulfillmentCosts(context.Context) (entity.FulfillmentCost, error) {
	return f.tables.Fulfillment, f.loadErr
}

func (f *fakeCostTables) SaveFulfillmentCosts(_ context.Context, fees entity.FulfillmentCost) error {
	f.tables.Fulfillment = fees
	return nil
}

func (f *fakeCostTables) LoadTransactionCosts(context.Context) ([]entity.TransactionCostEntry, error) {
	return f.tables.Transaction, f.loadErr
}

func (f *fakeCostTables) SaveTransactionCosts(_ context.Context, entries []entity.TransactionCostEntry) error {
	f.tables.Transaction = entries
	return nil
}

func (f *fakeCostTables) LoadMarketingCosts(context.Context) ([]entity.MarketingCostRow, error) {
	return f.tables.Marketing, f.loadErr
}

func (f *fakeCostTables) SaveMarketingCosts(_ context.Context, rows []entity.MarketingCostRow) error {
	f.tables.Marketing = rows
	return nil
}

// fakeRenderer gibt ein erkennbares Pseudo-Dokument zurück.
type fakeRenderer struct {
	lastTable report.OverviewTable
}

func (f *fakeRenderer) RenderOverview(table report.OverviewTable, _, _ string) ([]byte, error) {
	f.lastTable = table
	return []byte("%PDF-fake"), nil
}
