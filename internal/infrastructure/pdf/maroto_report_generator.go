// Package pdf renders the downloadable project progress report.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Project Progress Report │ generated date           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROJECT: name + status                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Estimated | Spent | Progress                        │
//	│  PROGRESS BAR                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/application/reporting"
)

var (
	colorPrimary = &props.Color{Red: 24, Green: 90, Blue: 157}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.ProgressPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements reporting.ProgressPDFGenerator using Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateProgressPDF renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateProgressPDF(_ context.Context, report *dto.ProgressReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Project Progress Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now().UTC()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(projectRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(figuresHeaderRow())
	m.AddRows(figuresRow(report))
	m.AddRows(line.NewRow(2))
	m.AddRows(progressRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generated time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("PROJECT PROGRESS REPORT", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+generated.Format("2006-01-02"), props.Text{
				Size: 9, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func projectRow(report *dto.ProgressReportResponse) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(report.ProjectName, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2,
			}),
			text.New("Status: "+report.Status, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
	)
}

func figuresHeaderRow() core.Row {
	h := func(label string) core.Col {
		return col.New(4).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Estimated hours"),
		h("Hours spent"),
		h("Progress"),
	)
}

func figuresRow(report *dto.ProgressReportResponse) core.Row {
	v := func(value string) core.Col {
		return col.New(4).Add(text.New(value, props.Text{
			Size: 11, Align: align.Center, Top: 1,
		}))
	}
	return row.New(10).Add(
		v(fmt.Sprintf("%.2f", report.EstimatedHours)),
		v(fmt.Sprintf("%.2f", report.TotalTimeSpentHours)),
		v(fmt.Sprintf("%.2f%%", report.ProgressPercentage)),
	)
}

// progressRow draws a textual progress bar so the percentage reads at a glance.
func progressRow(report *dto.ProgressReportResponse) core.Row {
	const width = 40
	filled := int(report.ProgressPercentage / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(bar, props.Text{
				Size: 11, Align: align.Center, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
