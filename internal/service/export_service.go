package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/timetable"
	appErrors "github.com/noah-isme/class-schedule-api/pkg/errors"
	"github.com/noah-isme/class-schedule-api/pkg/export"
)

type scheduleSource interface {
	List(ctx context.Context) ([]models.ScheduleEntry, error)
}

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.Table) ([]byte, error)
}

var exportHeaders = []string{"Date", "Day", "Lesson", "Time", "First half", "Room", "Second half", "Room", "Status"}

// ExportService renders the timetable of a week window as CSV or PDF.
type ExportService struct {
	lessons   scheduleSource
	times     lessonTimeRepository
	reference time.Time
	csv       csvRenderer
	pdf       pdfRenderer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs an ExportService. Weeks are counted from reference.
func NewExportService(lessons scheduleSource, times lessonTimeRepository, reference time.Time, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter("")
	}
	return &ExportService{
		lessons:   lessons,
		times:     times,
		reference: reference,
		csv:       csv,
		pdf:       pdf,
		validator: validator.New(),
		logger:    logger,
	}
}

// Generate builds the week grid and renders it in the requested format.
func (s *ExportService) Generate(ctx context.Context, req dto.ExportRequest) (*dto.ExportFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "format must be csv or pdf")
	}
	if req.Format == "" {
		req.Format = dto.ExportFormatCSV
	}

	rows, err := s.lessons.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load schedule")
	}
	times, err := s.times.List(ctx)
	if err != nil {
		s.logger.Warn("lesson times unavailable, using defaults", zap.Error(err))
		times = nil
	}

	week := timetable.WeekWindow(s.reference, req.Week)
	table := BuildTimetable(timetable.BuildGrid(week, times, rows))

	var (
		payload     []byte
		contentType string
	)
	switch req.Format {
	case dto.ExportFormatCSV:
		payload, err = s.csv.Render(table)
		contentType = "text/csv; charset=utf-8"
	case dto.ExportFormatPDF:
		payload, err = s.pdf.Render(table)
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render timetable")
	}

	return &dto.ExportFile{
		Filename:    fmt.Sprintf("timetable_%s.%s", week[0].Date, req.Format),
		ContentType: contentType,
		Data:        payload,
	}, nil
}

// BuildTimetable flattens a grid into one printable row per slot.
func BuildTimetable(grid timetable.Grid) export.Table {
	table := export.Table{Title: "Timetable " + grid.Week.Range(), Headers: exportHeaders}
	for _, day := range grid.Week {
		for _, slot := range grid.Slots(day.Date) {
			table.Rows = append(table.Rows, []string{
				day.Date,
				day.Weekday,
				strconv.Itoa(slot.LessonNumber),
				slotTime(slot.Time),
				slot.FirstHalfSubject,
				slot.RoomFirstHalf,
				slot.SecondHalfSubject,
				slot.RoomSecondHalf,
				slotStatus(slot),
			})
		}
	}
	return table
}

func slotTime(lt models.LessonTime) string {
	if lt.FirstHalfStart == "" {
		return ""
	}
	return lt.FirstHalfStart + "-" + lt.SecondHalfEnd
}

func slotStatus(slot timetable.Slot) string {
	var parts []string
	if slot.IsCancelled {
		parts = append(parts, "cancelled")
	}
	if slot.IsCancelledFirstHalf {
		parts = append(parts, "first half cancelled")
	}
	if slot.IsCancelledSecondHalf {
		parts = append(parts, "second half cancelled")
	}
	return strings.Join(parts, "; ")
}
