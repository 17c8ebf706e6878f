package services

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// ReportService answers admin queries over the append-only practice
// log. Every call is a full scan in insertion order; the log has no
// indexes or pagination.
type ReportService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewReportService builds a report service.
func NewReportService(db *gorm.DB, logger *zap.Logger) *ReportService {
	return &ReportService{db: db, logger: logger}
}

// ReportFilters are AND-combined; empty fields do not filter. Dates
// are inclusive and compared at day granularity against the practice
// date, not the submission timestamp.
type ReportFilters struct {
	StartDate    string
	EndDate      string
	Store        string
	Role         string
	Staff        string
	TechCategory string
}

// Records returns the filtered practice log.
func (r *ReportService) Records(f ReportFilters) ([]models.PracticeRecord, error) {
	var all []models.PracticeRecord
	if err := r.db.Order("id").Find(&all).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}

	var start, end time.Time
	var boundDates bool
	if f.StartDate != "" && f.EndDate != "" {
		var err error
		start, err = time.Parse("2006-01-02", f.StartDate)
		if err != nil {
			return nil, utils.NewValidationError("the start date format is invalid (example: 2023-04-01)")
		}
		end, err = time.Parse("2006-01-02", f.EndDate)
		if err != nil {
			return nil, utils.NewValidationError("the end date format is invalid (example: 2023-04-01)")
		}
		boundDates = true
	}

	filtered := []models.PracticeRecord{}
	for _, rec := range all {
		if boundDates {
			day, err := time.Parse("2006-01-02", rec.PracticeDate)
			if err != nil || day.Before(start) || day.After(end) {
				continue
			}
		}
		if f.Store != "" && rec.Store != f.Store {
			continue
		}
		if f.Role != "" && rec.Role != f.Role {
			continue
		}
		if f.Staff != "" && rec.StaffName != f.Staff {
			continue
		}
		if f.TechCategory != "" && rec.TechCategory != f.TechCategory {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}
