package models

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Staff represents one row of the staff roster. The roster is the
// authoritative identity source for both login paths.
type Staff struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	EmployeeID   string         `gorm:"uniqueIndex;not null" json:"employee_id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Name         string         `gorm:"not null" json:"name"`
	Store        string         `json:"store"`
	Role         string         `json:"role"`
	AdminFlag    string         `json:"admin_flag"`
	PasswordHash string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}

// IsAdmin reports whether the stored admin flag is truthy.
func (s *Staff) IsAdmin() bool {
	return AdminFlagTruthy(s.AdminFlag)
}

// AdminFlagTruthy accepts the three encodings the legacy roster used
// for the admin flag: boolean true, the string "TRUE" in any case, or
// the number 1. Everything else, including an empty cell, is false.
func AdminFlagTruthy(v string) bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "TRUE", "1":
		return true
	}
	return false
}

// EmployeeIDEqual compares employee IDs the way the legacy roster did:
// exact string match, or numeric equality so that "0042" matches 42.
func EmployeeIDEqual(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == b {
		return a != ""
	}
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	return errA == nil && errB == nil && ai == bi
}
