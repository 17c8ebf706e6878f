package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// ExportService renders the practice log as an .xlsx workbook and,
// when an archiver is configured, keeps an off-host copy of every
// export. Archival is a secondary effect: its failure is logged and
// the export still succeeds.
type ExportService struct {
	logger   *zap.Logger
	archiver Archiver
}

// NewExportService builds an export service. archiver may be nil.
func NewExportService(logger *zap.Logger, archiver Archiver) *ExportService {
	return &ExportService{logger: logger, archiver: archiver}
}

const exportSheetName = "PracticeRecords"

var exportHeaders = []string{
	"Recorded At", "Store", "Role", "Staff Name", "Employee ID",
	"Trainer", "Practice Date", "Practice Hours", "Tech Category",
	"Tech Detail", "Practice Count", "New Wig Count", "Evaluation",
	"Notes", "App Version",
}

// BuildWorkbook renders the records into a workbook with a bold
// header row. An empty log yields a header-only sheet.
func (e *ExportService) BuildWorkbook(records []models.PracticeRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(exportSheetName, cell, header)
		f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	for rowIdx, rec := range records {
		row := []interface{}{
			rec.RecordedAt.Format(time.RFC3339),
			rec.Store,
			rec.Role,
			rec.StaffName,
			rec.EmployeeID,
			rec.Trainer,
			rec.PracticeDate,
			rec.PracticeHours,
			rec.TechCategory,
			rec.TechDetail,
			rec.PracticeCount,
			rec.NewWigCount,
			strconv.Itoa(rec.Evaluation),
			rec.Notes,
			rec.AppVersion,
		}
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(exportSheetName, cell, value)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// Export renders the records and returns the workbook bytes plus the
// suggested filename.
func (e *ExportService) Export(ctx context.Context, records []models.PracticeRecord) ([]byte, string, error) {
	f, err := e.BuildWorkbook(records)
	if err != nil {
		return nil, "", utils.NewPersistence(err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", utils.NewPersistence(err)
	}
	content := buf.Bytes()
	filename := fmt.Sprintf("practice-records-%s.xlsx", time.Now().Format("20060102-150405"))

	if e.archiver != nil {
		key := "exports/" + filename
		if location, err := e.archiver.Archive(ctx, key, content); err != nil {
			e.logger.Warn("failed to archive export", zap.String("key", key), zap.Error(err))
		} else {
			e.logger.Info("export archived", zap.String("location", location))
		}
	}

	return content, filename, nil
}
