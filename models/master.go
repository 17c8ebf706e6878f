package models

import (
	"strings"
	"time"
)

// RoleAll is the reserved target-roles value meaning "applies to every
// role". It bypasses per-role matching and is never rewritten by role
// renames.
const RoleAll = "ALL"

// Store represents a salon location.
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Store model
func (Store) TableName() string {
	return "stores"
}

// Role represents a staff role (stylist, assistant, ...).
type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

// Trainer represents a supervising trainer. Trainers are unique on the
// (name, store) pair.
type Trainer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex:idx_trainer_name_store" json:"name"`
	Store     string    `gorm:"not null;uniqueIndex:idx_trainer_name_store" json:"store"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Trainer model
func (Trainer) TableName() string {
	return "trainers"
}

// TechCategory represents a technique category. TargetRoles keeps the
// legacy comma-separated encoding, or the RoleAll sentinel.
type TechCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	TargetRoles string    `gorm:"not null" json:"target_roles"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the TechCategory model
func (TechCategory) TableName() string {
	return "tech_categories"
}

// AppliesToRole reports whether the category is offered to the role.
func (c *TechCategory) AppliesToRole(role string) bool {
	return RolesInclude(c.TargetRoles, role)
}

// TechDetail represents a concrete technique within a category, unique
// on the (name, category) pair. Category references TechCategory.Name
// by value; renames are propagated by the cascade, not by the schema.
type TechDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex:idx_detail_name_category" json:"name"`
	Category    string    `gorm:"not null;uniqueIndex:idx_detail_name_category" json:"category"`
	TargetRoles string    `gorm:"not null" json:"target_roles"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the TechDetail model
func (TechDetail) TableName() string {
	return "tech_details"
}

// AppliesToRole reports whether the detail is offered to the role.
func (d *TechDetail) AppliesToRole(role string) bool {
	return RolesInclude(d.TargetRoles, role)
}

// WigInventory holds the wig stock for one store; at most one row per
// store. Stock may go negative through practice-record decrements.
type WigInventory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Store      string    `gorm:"uniqueIndex;not null" json:"store"`
	StockCount int       `gorm:"not null;default:0" json:"stock_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the WigInventory model
func (WigInventory) TableName() string {
	return "wig_inventory"
}

// SplitRoles breaks a comma-separated target-roles value into trimmed
// elements, dropping empties.
func SplitRoles(s string) []string {
	parts := strings.Split(s, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

// JoinRoles is the inverse of SplitRoles.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}

// RolesInclude reports whether the encoded list contains the role or
// the RoleAll sentinel. Matching is case-insensitive for the sentinel
// only; role names compare exactly, as the legacy app did.
func RolesInclude(encoded, role string) bool {
	for _, r := range SplitRoles(encoded) {
		if r == role || strings.EqualFold(r, RoleAll) {
			return true
		}
	}
	return false
}
