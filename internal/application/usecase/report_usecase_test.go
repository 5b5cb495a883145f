package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelio/profitab-api/internal/application/dto"
	"github.com/avelio/profitab-api/internal/application/usecase"
	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/report"
)

func lineItem(orderID, dateKey, sku, platform, gross string) entity.LineItem {
	date, err := time.ParseInLocation(time.DateOnly, dateKey, time.UTC)
	if err != nil {
		panic(err)
	}
	return entity.LineItem{
		OrderID:     orderID,
		OrderDate:   date,
		SKU:         sku,
		Quantity:    decimal.NewFromInt(1),
		GrossAmount: decimal.RequireFromString(gross),
		Platform:    platform,
		Country:     "DE",
	}
}

func newReportUC(archive *fakeArchive, costs *fakeCostTables, renderer *fakeRenderer) *usecase.ReportUseCase {
	return usecase.NewReportUseCase(archive, costs, report.DefaultShippingRates(), renderer, testLogger())
}

func TestReportOverview_LaedtNurDenZeitraum(t *testing.T) {
	archive := newFakeArchive()
	archive.days["2024-05-01"] = []entity.LineItem{lineItem("1", "2024-05-01", "A", "Shop", "100")}
	archive.days["2024-05-02"] = []entity.LineItem{lineItem("2", "2024-05-02", "A", "Shop", "50")}
	archive.days["2024-05-09"] = []entity.LineItem{lineItem("3", "2024-05-09", "A", "Shop", "999")}

	uc := newReportUC(archive, &fakeCostTables{}, &fakeRenderer{})
	out, err := uc.Overview(context.Background(), dto.ReportRequest{From: "2024-05-01", To: "2024-05-02"})
	require.NoError(t, err)

	require.Len(t, out.Days, 2, "der 9. Mai liegt außerhalb des Zeitraums")
	assert.Equal(t, "2024-05-01", out.Days[0].Date)
	assert.Equal(t, "2024-05-02", out.Days[1].Date)
	assert.Empty(t, out.Empty)
}

func TestReportOverview_FehlendeArchivtageWerdenGemeldet(t *testing.T) {
	archive := newFakeArchive()
	archive.days["2024-05-01"] = []entity.LineItem{lineItem("1", "2024-05-01", "A", "Shop", "100")}

	uc := newReportUC(archive, &fakeCostTables{}, &fakeRenderer{})
	out, err := uc.Overview(context.Background(), dto.ReportRequest{From: "2024-05-01", To: "2024-05-03"})
	require.NoError(t, err, "nie importierte Tage sind kein Fehler")

	assert.Equal(t, []string{"2024-05-02", "2024-05-03"}, out.MissingDates)
	require.Len(t, out.Days, 1)
}

func TestReportOverview_LeererZeitraumVersusLeererFilter(t *testing.T) {
	archive := newFakeArchive()
	uc := newReportUC(archive, &fakeCostTables{}, &fakeRenderer{})

	// Gar keine Daten im Zeitraum.
	out, err := uc.Overview(context.Background(), dto.ReportRequest{From: "2024-05-01", To: "2024-05-02"})
	require.NoError(t, err)
	assert.Equal(t, dto.EmptyNoDataInRange, out.Empty)

	// Daten vorhanden, aber der Filter entfernt alles.
	archive.days["2024-05-01"] = []entity.LineItem{lineItem("1", "2024-05-01", "A", "Shop", "100")}
	out, err = uc.Overview(context.Background(), dto.ReportRequest{
		From: "2024-05-01", To: "2024-05-02", Platform: "Ebay",
	})
	require.NoError(t, err)
	assert.Equal(t, dto.EmptyNoDataForFilter, out.Empty,
		"die beiden Leerfälle müssen unterscheidbar bleiben")
}

func TestReportOverview_UngueltigerZeitraum(t *testing.T) {
	uc := newReportUC(newFakeArchive(), &fakeCostTables{}, &fakeRenderer{})

	_, err := uc.Overview(context.Background(), dto.ReportRequest{From: "01.05.2024", To: "2024-05-02"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Overview(context.Background(), dto.ReportRequest{From: "2024-05-05", To: "2024-05-01"})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "to vor from ist ungültig")
}

func TestReportOverview_WarnungenAusDenKostentabellen(t *testing.T) {
	archive := newFakeArchive()
	archive.days["2024-05-01"] = []entity.LineItem{lineItem("1", "2024-05-01", "OHNE", "Shop", "100")}

	uc := newReportUC(archive, &fakeCostTables{}, &fakeRenderer{})
	out, err := uc.Overview(context.Background(), dto.ReportRequest{From: "2024-05-01", To: "2024-05-01"})
	require.NoError(t, err)

	assert.Contains(t, out.Warnings.UncostedSKUs, "OHNE")
	assert.Contains(t, out.Warnings.UnknownPlatforms, "Shop")
	assert.Contains(t, out.Warnings.MissingMarketingDates, "2024-05-01")
}

func TestReportOverviewPDF_RendertDieBerechneteTabelle(t *testing.T) {
	archive := newFakeArchive()
	archive.days["2024-05-01"] = []entity.LineItem{lineItem("1", "2024-05-01", "A", "Shop", "100")}
	renderer := &fakeRenderer{}

	uc := newReportUC(archive, &fakeCostTables{}, renderer)
	pdf, err := uc.OverviewPDF(context.Background(), dto.ReportRequest{From: "2024-05-01", To: "2024-05-01"})
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, []string{"01.05.2024"}, renderer.lastTable.Dates,
		"der Renderer bekommt die transponierte Übersicht")
}
