package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/QUARTER-salon/practice-tracker/models"
)

func exportTestRecords() []models.PracticeRecord {
	return []models.PracticeRecord{
		{RecordedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), Store: "Shibuya", Role: "Stylist",
			StaffName: "Sato", EmployeeID: "1001", Trainer: "Tanaka", PracticeDate: "2026-08-01",
			PracticeHours: 1.5, TechCategory: "Cutting", TechDetail: "Bob cut", PracticeCount: 2,
			NewWigCount: 1, Evaluation: 7, Notes: "good", AppVersion: models.AppVersion},
	}
}

func TestBuildWorkbook(t *testing.T) {
	e := NewExportService(zap.NewNop(), nil)

	f, err := e.BuildWorkbook(exportTestRecords())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Shibuya", rows[1][1])
	assert.Equal(t, "1001", rows[1][4])
	assert.Equal(t, "2026-08-01", rows[1][6])
	assert.Equal(t, "Bob cut", rows[1][9])

	// The default sheet is removed.
	assert.NotContains(t, f.GetSheetList(), "Sheet1")
}

func TestBuildWorkbookEmptyLog(t *testing.T) {
	e := NewExportService(zap.NewNop(), nil)

	f, err := e.BuildWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportHeaders, rows[0])
}

func TestExportProducesReadableWorkbook(t *testing.T) {
	e := NewExportService(zap.NewNop(), nil)

	content, filename, err := e.Export(context.Background(), exportTestRecords())
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.Contains(t, filename, "practice-records-")
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestExportArchivesCopy(t *testing.T) {
	archiver := NewMockArchiver()
	e := NewExportService(zap.NewNop(), archiver)

	content, filename, err := e.Export(context.Background(), exportTestRecords())
	require.NoError(t, err)

	archived, ok := archiver.Archived("exports/" + filename)
	require.True(t, ok)
	assert.Equal(t, content, archived)
}

type failingArchiver struct{}

func (failingArchiver) Archive(context.Context, string, []byte) (string, error) {
	return "", assert.AnError
}

func TestExportSurvivesArchiveFailure(t *testing.T) {
	e := NewExportService(zap.NewNop(), failingArchiver{})

	content, _, err := e.Export(context.Background(), exportTestRecords())
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
