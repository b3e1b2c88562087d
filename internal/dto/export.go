package dto

// ExportFormat enumerates supported timetable export formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportRequest selects the week window and output format.
type ExportRequest struct {
	Week   int          `form:"week"`
	Format ExportFormat `form:"format" validate:"omitempty,oneof=csv pdf"`
}

// ExportFile is a rendered export ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
