package models

import "time"

// Session is a server-side login session. Snapshot holds the staff
// record serialized as JSON at login time; practice submissions read
// store/role/name from this snapshot verbatim, never re-fetching.
type Session struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"index;not null" json:"employee_id"`
	Snapshot   string    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `gorm:"index;not null" json:"expires_at"`
}

// TableName specifies the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
