package service

import (
	"fmt"
	"strconv"

	appErrors "github.com/jehee0076-netizen/Academic-Support/pkg/errors"
	"github.com/jehee0076-netizen/Academic-Support/pkg/export"
)

// ExportFormat selects the rendered document type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult carries the rendered document and its HTTP metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the graduation overview table (per-semester category
// subtotals, totals, thresholds and status) as a downloadable document.
type ExportService struct {
	stats *StatsService
	csv   *export.CSVExporter
	pdf   *export.PDFExporter
}

// NewExportService builds the exporter over the stats engine.
func NewExportService(stats *StatsService) *ExportService {
	return &ExportService{
		stats: stats,
		csv:   export.NewCSVExporter(),
		pdf:   export.NewPDFExporter(),
	}
}

// RenderPlan builds the overview dataset from the current plan state and
// renders it in the requested format.
func (s *ExportService) RenderPlan(format ExportFormat) (*ExportResult, error) {
	dataset := s.buildDataset()

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "curriculum-plan.csv"}, nil
	case FormatPDF:
		content, err := s.pdf.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "curriculum-plan.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func (s *ExportService) buildDataset() export.Dataset {
	overviews := s.stats.SemesterOverviews()
	summary := s.stats.GraduationSummary()

	headers := []string{"Category"}
	for _, o := range overviews {
		headers = append(headers, fmt.Sprintf("%d-%d", o.Year, o.Term))
	}
	headers = append(headers, "Total", "Required", "Status")

	mandatory := []string{"Mandatory"}
	elective := []string{"Elective"}
	total := []string{"Semester Total"}
	for _, o := range overviews {
		mandatory = append(mandatory, strconv.Itoa(o.MandatoryCredits))
		elective = append(elective, strconv.Itoa(o.ElectiveCredits))
		total = append(total, strconv.Itoa(o.TotalCredits))
	}

	mandatory = append(mandatory,
		strconv.Itoa(summary.MandatoryCredits),
		strconv.Itoa(summary.RequiredMandatory),
		statusLabel(summary.MandatoryCredits >= summary.RequiredMandatory))
	elective = append(elective,
		strconv.Itoa(summary.ElectiveCredits),
		strconv.Itoa(summary.RequiredElective),
		statusLabel(summary.ElectiveCredits >= summary.RequiredElective))
	total = append(total,
		strconv.Itoa(summary.TotalCredits),
		strconv.Itoa(summary.RequiredMandatory+summary.RequiredElective),
		statusLabel(summary.GraduationReady))

	return export.Dataset{
		Title:   "Curriculum Plan Overview",
		Headers: headers,
		Rows:    [][]string{mandatory, elective, total},
	}
}

func statusLabel(complete bool) string {
	if complete {
		return "COMPLETE"
	}
	return "INCOMPLETE"
}
