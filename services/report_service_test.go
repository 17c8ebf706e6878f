package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
)

func seedPracticeRecords(t *testing.T, db *gorm.DB) {
	t.Helper()
	records := []models.PracticeRecord{
		{RecordedAt: time.Now(), Store: "Shibuya", Role: "Stylist", StaffName: "Sato", EmployeeID: "1001",
			Trainer: "Tanaka", PracticeDate: "2026-08-01", PracticeHours: 1.5, TechCategory: "Cutting",
			TechDetail: "Bob cut", PracticeCount: 2, Evaluation: 7, AppVersion: models.AppVersion},
		{RecordedAt: time.Now(), Store: "Ginza", Role: "Assistant", StaffName: "Ito", EmployeeID: "1002",
			Trainer: "Suzuki", PracticeDate: "2026-08-10", PracticeHours: 2, TechCategory: "Shampoo",
			TechDetail: "Scalp massage", PracticeCount: 1, Evaluation: 5, AppVersion: models.AppVersion},
		{RecordedAt: time.Now(), Store: "Shibuya", Role: "Stylist", StaffName: "Sato", EmployeeID: "1001",
			Trainer: models.TrainerSelfPractice, PracticeDate: "2026-08-20", PracticeHours: 1, TechCategory: "Cutting",
			TechDetail: "Layer cut", PracticeCount: 3, AppVersion: models.AppVersion},
	}
	for i := range records {
		require.NoError(t, db.Create(&records[i]).Error)
	}
}

func TestReportNoFilters(t *testing.T) {
	db := newTestDB(t)
	r := NewReportService(db, zap.NewNop())
	seedPracticeRecords(t, db)

	recs, err := r.Records(ReportFilters{})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Insertion order is preserved.
	assert.Equal(t, "2026-08-01", recs[0].PracticeDate)
	assert.Equal(t, "2026-08-20", recs[2].PracticeDate)
}

func TestReportDateRange(t *testing.T) {
	db := newTestDB(t)
	r := NewReportService(db, zap.NewNop())
	seedPracticeRecords(t, db)

	// Bounds are inclusive on the practice date.
	recs, err := r.Records(ReportFilters{StartDate: "2026-08-01", EndDate: "2026-08-10"})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// A lone start or end date does not filter.
	recs, err = r.Records(ReportFilters{StartDate: "2026-08-15"})
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	_, err = r.Records(ReportFilters{StartDate: "bad", EndDate: "2026-08-10"})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")

	_, err = r.Records(ReportFilters{StartDate: "2026-08-01", EndDate: "bad"})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestReportFieldFilters(t *testing.T) {
	db := newTestDB(t)
	r := NewReportService(db, zap.NewNop())
	seedPracticeRecords(t, db)

	recs, err := r.Records(ReportFilters{Store: "Shibuya"})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = r.Records(ReportFilters{Role: "Assistant"})
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	recs, err = r.Records(ReportFilters{Staff: "Sato", TechCategory: "Cutting"})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	// Filters are AND-combined.
	recs, err = r.Records(ReportFilters{Store: "Shibuya", Role: "Assistant"})
	require.NoError(t, err)
	assert.Empty(t, recs)
}
