package models

import "time"

// TrainerSelfPractice is the reserved trainer value meaning no
// supervising trainer; it waives the evaluation-required rule.
const TrainerSelfPractice = "self-practice"

// AppVersion is stamped on every practice row, mirroring the legacy
// log's trailing version column.
const AppVersion = "1.0"

// PracticeRecord is one append-only row of the practice log. Rows are
// immutable once written; no update or delete path exists.
type PracticeRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RecordedAt    time.Time `gorm:"not null" json:"recorded_at"`
	Store         string    `gorm:"not null" json:"store"`
	Role          string    `gorm:"not null" json:"role"`
	StaffName     string    `gorm:"not null" json:"staff_name"`
	EmployeeID    string    `gorm:"not null" json:"employee_id"`
	Trainer       string    `gorm:"not null" json:"trainer"`
	PracticeDate  string    `gorm:"not null" json:"practice_date"`
	PracticeHours float64   `gorm:"not null" json:"practice_hours"`
	TechCategory  string    `gorm:"not null" json:"tech_category"`
	TechDetail    string    `gorm:"not null" json:"tech_detail"`
	PracticeCount int       `gorm:"not null" json:"practice_count"`
	NewWigCount   int       `gorm:"not null;default:0" json:"new_wig_count"`
	Evaluation    int       `json:"evaluation"`
	Notes         string    `json:"notes"`
	AppVersion    string    `gorm:"not null" json:"app_version"`
}

// TableName specifies the table name for the PracticeRecord model
func (PracticeRecord) TableName() string {
	return "practice_records"
}
