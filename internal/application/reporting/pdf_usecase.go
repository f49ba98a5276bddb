package reporting

import (
	"context"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
)

// ProgressPDFGenerator renders a progress report as PDF bytes. Implemented by
// the maroto adapter in infrastructure/pdf.
type ProgressPDFGenerator interface {
	GenerateProgressPDF(ctx context.Context, report *dto.ProgressReportResponse) ([]byte, error)
}

// PDFUseCase produces the downloadable PDF variant of the progress report.
type PDFUseCase struct {
	reports   *ReportUseCase
	generator ProgressPDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(reports *ReportUseCase, generator ProgressPDFGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, generator: generator}
}

// ProgressReportPDF computes the report (same visibility rules as the JSON
// endpoint) and renders it.
func (uc *PDFUseCase) ProgressReportPDF(ctx context.Context, scope access.Scope, projectID string) ([]byte, error) {
	report, err := uc.reports.ProgressReport(ctx, scope, projectID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateProgressPDF(ctx, report)
}
