package s3store

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/repository"
)

var _ repository.CostTableRepository = (*CostTables)(nil)

// Dateinamen und Spaltenverträge der Kostentabellen. Die deutschen
// Spaltennamen der Fulfillment-Tabelle stammen aus dem Gebührenkatalog des
// Dienstleisters und sind dauerhaft.
const (
	materialKey    = "material_costs.csv"
	fulfillmentKey = "fulfillment_costs.csv"
	transactionKey = "transaction_costs.csv"
	marketingKey   = "marketing_costs.csv"
)

var (
	materialColumns    = []string{"SKU", "Cost", "Date"}
	fulfillmentColumns = []string{"Auftragspauschale", "SKU_Pick", "Kartonage"}
	transactionColumns = []string{"Platform", "TransactionCostPercent"}
	marketingDateCol   = "Date"
)

// CostTables die CSV-Implementierung des Kostentabellen-Ports. Eine fehlende
// Datei ist kein Fehler: Load liefert die leere Tabelle; beim ersten Save
// entsteht die Datei mit Schema.
type CostTables struct {
	store objectStore
}

// NewCostTables baut das Repository über einem Bucket.
func NewCostTables(store objectStore) *CostTables {
	return &CostTables{store: store}
}

// ── Materialkosten: SKU, Cost, Date ───────────────────────────────────────────

func (c *CostTables) LoadMaterialCosts(ctx context.Context) ([]entity.MaterialCostEntry, error) {
	records, err := c.loadTable(ctx, materialKey, materialColumns)
	if err != nil || records == nil {
		return nil, err
	}
	col, _ := columnIndex(records[0], materialColumns)
	entries := make([]entity.MaterialCostEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		e := entity.MaterialCostEntry{
			SKU:  rec[col["SKU"]],
			Cost: parseDecimal(rec[col["Cost"]]),
		}
		if raw := rec[col["Date"]]; raw != "" {
			d, parseErr := time.ParseInLocation(time.DateOnly, raw, time.UTC)
			if parseErr != nil {
				return nil, fmt.Errorf("%s: date %q: %w", materialKey, raw, parseErr)
			}
			e.EffectiveFrom = &d
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (c *CostTables) SaveMaterialCosts(ctx context.Context, entries []entity.MaterialCostEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		date := ""
		if e.EffectiveFrom != nil {
			date = entity.DateKey(*e.EffectiveFrom)
		}
		rows = append(rows, []string{e.SKU, e.Cost.String(), date})
	}
	return c.saveTable(ctx, materialKey, materialColumns, rows)
}

// ── Fulfillment: Auftragspauschale, SKU_Pick, Kartonage (genau eine Zeile) ────

func (c *CostTables) LoadFulfillmentCosts(ctx context.Context) (entity.FulfillmentCost, error) {
	var fees entity.FulfillmentCost
	records, err := c.loadTable(ctx, fulfillmentKey, fulfillmentColumns)
	if err != nil || records == nil || len(records) < 2 {
		return fees, err
	}
	col, _ := columnIndex(records[0], fulfillmentColumns)
	row := records[1]
	fees.OrderFee = parseDecimal(row[col["Auftragspauschale"]])
	fees.PickFee = parseDecimal(row[col["SKU_Pick"]])
	fees.PackagingFee = parseDecimal(row[col["Kartonage"]])
	return fees, nil
}

func (c *CostTables) SaveFulfillmentCosts(ctx context.Context, fees entity.FulfillmentCost) error {
	rows := [][]string{{fees.OrderFee.String(), fees.PickFee.String(), fees.PackagingFee.String()}}
	return c.saveTable(ctx, fulfillmentKey, fulfillmentColumns, rows)
}

// ── Transaktionskosten: Platform, TransactionCostPercent ──────────────────────

func (c *CostTables) LoadTransactionCosts(ctx context.Context) ([]entity.TransactionCostEntry, error) {
	records, err := c.loadTable(ctx, transactionKey, transactionColumns)
	if err != nil || records == nil {
		return nil, err
	}
	col, _ := columnIndex(records[0], transactionColumns)
	entries := make([]entity.TransactionCostEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		entries = append(entries, entity.TransactionCostEntry{
			Platform: rec[col["Platform"]],
			Percent:  parseDecimal(rec[col["TransactionCostPercent"]]),
		})
	}
	return entries, nil
}

func (c *CostTables) SaveTransactionCosts(ctx context.Context, entries []entity.TransactionCostEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Platform, e.Percent.String()})
	}
	return c.saveTable(ctx, transactionKey, transactionColumns, rows)
}

// ── Marketingkosten: Date + eine Spalte je Werbekanal ─────────────────────────

// LoadMarketingCosts liest die Tabelle mit dynamischen Kanalspalten: jede
// Spalte außer Date ist ein Werbekanal ("Google Ads", "Amazon Ads", …).
func (c *CostTables) LoadMarketingCosts(ctx context.Context) ([]entity.MarketingCostRow, error) {
	records, err := c.loadTable(ctx, marketingKey, []string{marketingDateCol})
	if err != nil || records == nil {
		return nil, err
	}
	header := records[0]
	col, _ := columnIndex(header, []string{marketingDateCol})
	dateIdx := col[marketingDateCol]

	rows := make([]entity.MarketingCostRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		d, parseErr := time.ParseInLocation(time.DateOnly, rec[dateIdx], time.UTC)
		if parseErr != nil {
			return nil, fmt.Errorf("%s: date %q: %w", marketingKey, rec[dateIdx], parseErr)
		}
		spend := make(map[string]decimal.Decimal, len(header)-1)
		for i, name := range header {
			if i == dateIdx || i >= len(rec) {
				continue
			}
			spend[name] = parseDecimal(rec[i])
		}
		rows = append(rows, entity.MarketingCostRow{Date: d, Spend: spend})
	}
	return rows, nil
}

// SaveMarketingCosts schreibt die Tabelle; die Kanalspalten sind die Vereinigung
// aller Kanäle über alle Zeilen, alphabetisch sortiert, fehlende Werte 0.
func (c *CostTables) SaveMarketingCosts(ctx context.Context, costRows []entity.MarketingCostRow) error {
	channelSet := make(map[string]bool)
	for _, r := range costRows {
		for ch := range r.Spend {
			channelSet[ch] = true
		}
	}
	channels := make([]string, 0, len(channelSet))
	for ch := range channelSet {
		channels = append(channels, ch)
	}
	sort.Strings(channels)

	header := append([]string{marketingDateCol}, channels...)
	rows := make([][]string, 0, len(costRows))
	for _, r := range costRows {
		rec := make([]string, 0, len(header))
		rec = append(rec, entity.DateKey(r.Date))
		for _, ch := range channels {
			v, ok := r.Spend[ch]
			if !ok {
				v = decimal.Zero
			}
			rec = append(rec, v.String())
		}
		rows = append(rows, rec)
	}
	return c.saveTable(ctx, marketingKey, header, rows)
}

// ── Gemeinsame CSV-Hilfen ─────────────────────────────────────────────────────

// loadTable lädt und validiert eine Tabelle. (nil, nil) bedeutet: Datei fehlt
// oder hat nur die Kopfzeile; der Aufrufer liefert dann die leere Tabelle.
func (c *CostTables) loadTable(ctx context.Context, key string, required []string) ([][]string, error) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	records, err := readCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	if len(records) < 2 {
		return nil, nil
	}
	if _, err := columnIndex(records[0], required); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return records, nil
}

func (c *CostTables) saveTable(ctx context.Context, key string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%s kodieren: %w", key, err)
	}
	for _, rec := range rows {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("%s kodieren: %w", key, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%s kodieren: %w", key, err)
	}
	return c.store.Put(ctx, key, buf.Bytes())
}
