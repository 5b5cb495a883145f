// Package pdf rendert die Übersichtstabelle der Tagesauswertung als
// A4-Querformat-Dokument.
//
// Seitenaufbau:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  KOPF: Titel + Zeitraum                                      │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABELLE: Kennzahl | Tag 1 | Tag 2 | … (max. 8 Tage je Block)│
//	│  Leerzeilen trennen die Kostenblöcke wie in der JSON-Ansicht │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/avelio/profitab-api/internal/application/usecase"
	"github.com/avelio/profitab-api/internal/domain/report"
)

var _ usecase.OverviewRenderer = (*ReportRenderer)(nil)

// Maximal so viele Tagesspalten je Tabellenblock; breitere Zeiträume werden
// in weitere Blöcke umgebrochen. 8 Tage + Kennzahlspalte füllen das
// 12er-Raster von Maroto exakt.
const daysPerBlock = 8

const labelColSize = 12 - daysPerBlock

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportRenderer rendert die Übersichtstabelle mit Maroto v2.
type ReportRenderer struct{}

// NewReportRenderer baut den Renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// RenderOverview erzeugt das PDF und liefert seine Bytes.
func (r *ReportRenderer) RenderOverview(table report.OverviewTable, from, to string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Profitabilität", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for start := 0; start < len(table.Dates); start += daysPerBlock {
		end := start + daysPerBlock
		if end > len(table.Dates) {
			end = len(table.Dates)
		}
		m.AddRows(headerRow(table.Dates[start:end]))
		for _, overviewRow := range table.Rows {
			m.AddRows(valueRow(overviewRow, start, end))
		}
		m.AddRows(row.New(4))
	}

	if len(table.Dates) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Keine Daten im gewählten Zeitraum.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: dokument erzeugen: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: Titel links, Zeitraum rechts.
func titleRow(from, to string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Profitabilität – Tagesauswertung", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Zeitraum: %s – %s", from, to), props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 4,
			}),
		),
	)
}

// headerRow: leere Kennzahlspalte + ein Datum je Tagesspalte.
func headerRow(dates []string) core.Row {
	cols := []core.Col{col.New(labelColSize)}
	for _, d := range dates {
		cols = append(cols, col.New(1).Add(text.New(d, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Right,
			Color: colorPrimary, Top: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// valueRow: eine Kennzahlzeile des Blocks; Leerzeilen der Übersicht werden zu
// schmalen Abstandszeilen.
func valueRow(overviewRow report.OverviewRow, start, end int) core.Row {
	if overviewRow.Label == "" {
		return row.New(2)
	}

	bold := isMarginRow(overviewRow.Label)
	labelProps := props.Text{Size: 8, Top: 1}
	valueProps := props.Text{Size: 7.5, Align: align.Right, Top: 1}
	if bold {
		labelProps.Style = fontstyle.Bold
		labelProps.Color = colorPrimary
		valueProps.Style = fontstyle.Bold
		valueProps.Color = colorPrimary
	}

	cols := []core.Col{col.New(labelColSize).Add(text.New(overviewRow.Label, labelProps))}
	for i := start; i < end; i++ {
		v := ""
		if i < len(overviewRow.Values) {
			v = overviewRow.Values[i]
		}
		cols = append(cols, col.New(1).Add(text.New(v, valueProps)))
	}
	return row.New(6).Add(cols...)
}

// isMarginRow hebt die Deckungsbeitragszeilen hervor.
func isMarginRow(label string) bool {
	switch label {
	case "Deckungsbeitrag 1", "Deckungsbeitrag 2", "Deckungsbeitrag 3", "DB3 Marge":
		return true
	}
	return false
}
