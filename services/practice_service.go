package services

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// PracticeService validates and appends practice records and keeps the
// wig inventory in step.
type PracticeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPracticeService builds a practice-record service.
func NewPracticeService(db *gorm.DB, logger *zap.Logger) *PracticeService {
	return &PracticeService{db: db, logger: logger}
}

// PracticeSubmission carries the caller-supplied part of a practice
// record. Numeric fields are pointers so that an absent field is
// distinguishable from a legitimate zero.
type PracticeSubmission struct {
	Trainer       string   `json:"trainer"`
	PracticeDate  string   `json:"practice_date"`
	PracticeHours *float64 `json:"practice_hours"`
	TechCategory  string   `json:"tech_category"`
	TechDetail    string   `json:"tech_detail"`
	PracticeCount *int     `json:"practice_count"`
	NewWigCount   *int     `json:"new_wig_count"`
	Evaluation    *int     `json:"evaluation"`
	Notes         string   `json:"notes"`
}

var practiceDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Submit validates the submission, appends an immutable practice row,
// and decrements the wig inventory for the session's store when new
// wigs were used. The identity fields come verbatim from the session
// snapshot taken at login, never re-fetched. An inventory failure is
// logged and does not fail the submit; the record is already durable.
func (p *PracticeService) Submit(staff *models.Staff, sub PracticeSubmission) (string, error) {
	if staff == nil {
		return "", utils.NewLoginRequired()
	}
	if err := p.validate(sub); err != nil {
		return "", err
	}

	newWigCount := 0
	if sub.NewWigCount != nil {
		newWigCount = *sub.NewWigCount
	}
	evaluation := 0
	if sub.Trainer != models.TrainerSelfPractice && sub.Evaluation != nil {
		evaluation = *sub.Evaluation
	}

	record := models.PracticeRecord{
		RecordedAt:    time.Now(),
		Store:         staff.Store,
		Role:          staff.Role,
		StaffName:     staff.Name,
		EmployeeID:    staff.EmployeeID,
		Trainer:       sub.Trainer,
		PracticeDate:  sub.PracticeDate,
		PracticeHours: *sub.PracticeHours,
		TechCategory:  sub.TechCategory,
		TechDetail:    sub.TechDetail,
		PracticeCount: *sub.PracticeCount,
		NewWigCount:   newWigCount,
		Evaluation:    evaluation,
		Notes:         sub.Notes,
		AppVersion:    models.AppVersion,
	}
	if err := p.db.Create(&record).Error; err != nil {
		return "", utils.NewPersistence(err)
	}

	if newWigCount > 0 {
		p.decrementInventory(staff.Store, newWigCount)
	}

	return "the practice record has been saved", nil
}

func (p *PracticeService) validate(sub PracticeSubmission) error {
	if strings.TrimSpace(sub.Trainer) == "" ||
		strings.TrimSpace(sub.PracticeDate) == "" ||
		sub.PracticeHours == nil ||
		strings.TrimSpace(sub.TechCategory) == "" ||
		strings.TrimSpace(sub.TechDetail) == "" ||
		sub.PracticeCount == nil {
		return utils.NewValidationError("required fields are missing")
	}

	selfPractice := sub.Trainer == models.TrainerSelfPractice
	if !selfPractice && sub.Evaluation == nil {
		return utils.NewValidationError("an evaluation is required for trainer-led practice")
	}

	if !practiceDatePattern.MatchString(sub.PracticeDate) {
		return utils.NewValidationError("the practice date format is invalid (example: 2023-04-01)")
	}
	day, err := time.Parse("2006-01-02", sub.PracticeDate)
	if err != nil {
		return utils.NewValidationError("the practice date format is invalid (example: 2023-04-01)")
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.After(today) {
		return utils.NewValidationError("the practice date cannot be in the future")
	}

	hours := *sub.PracticeHours
	if hours < 0 || hours > 12 {
		return utils.NewValidationError("practice hours must be between 0 and 12")
	}
	if hours*2 != math.Trunc(hours*2) {
		return utils.NewValidationError("practice hours must be in steps of 0.5")
	}

	if *sub.PracticeCount < 0 || *sub.PracticeCount > 8 {
		return utils.NewValidationError("the practice count must be between 0 and 8")
	}

	if sub.NewWigCount != nil && (*sub.NewWigCount < 0 || *sub.NewWigCount > 5) {
		return utils.NewValidationError("the new wig count must be between 0 and 5")
	}

	if !selfPractice && sub.Evaluation != nil && (*sub.Evaluation < 1 || *sub.Evaluation > 10) {
		return utils.NewValidationError("the evaluation must be between 1 and 10")
	}

	if len([]rune(sub.Notes)) > 500 {
		return utils.NewValidationError("notes must be 500 characters or fewer")
	}

	return nil
}

// decrementInventory subtracts used wigs from the store's stock. A
// store with no inventory row gets one created at 0 - used; negative
// stock is allowed, matching the legacy behavior. Failures are logged
// only.
func (p *PracticeService) decrementInventory(store string, used int) {
	var row models.WigInventory
	err := p.db.Where(foldedWhere("store"), foldKey(store)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = p.db.Create(&models.WigInventory{Store: store, StockCount: 0 - used}).Error
	} else if err == nil {
		err = p.db.Model(&row).Update("stock_count", row.StockCount-used).Error
	}
	if err != nil {
		p.logger.Warn("failed to update wig inventory",
			zap.String("store", store), zap.Int("used", used), zap.Error(err))
	}
}
