package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitRoles(t *testing.T) {
	assert.Equal(t, []string{"Stylist", "Assistant"}, SplitRoles("Stylist,Assistant"))
	assert.Equal(t, []string{"Stylist", "Assistant"}, SplitRoles(" Stylist , Assistant "))
	assert.Equal(t, []string{"Stylist"}, SplitRoles("Stylist,,"))
	assert.Empty(t, SplitRoles(""))
	assert.Empty(t, SplitRoles(" , , "))
}

func TestJoinRoles(t *testing.T) {
	assert.Equal(t, "Stylist,Assistant", JoinRoles([]string{"Stylist", "Assistant"}))
	assert.Equal(t, "", JoinRoles(nil))
}

func TestRolesInclude(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		role     string
		expected bool
	}{
		{"Listed role", "Stylist,Assistant", "Stylist", true},
		{"Unlisted role", "Stylist,Assistant", "Junior", false},
		{"Sentinel matches any role", "ALL", "Junior", true},
		{"Sentinel case-insensitive", "all", "Junior", true},
		{"Sentinel inside list", "Stylist,ALL", "Junior", true},
		{"Role names match exactly", "Stylist", "stylist", false},
		{"Empty list", "", "Stylist", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RolesInclude(tt.encoded, tt.role))
		})
	}
}

func TestAppliesToRole(t *testing.T) {
	category := TechCategory{Name: "Cutting", TargetRoles: "Stylist"}
	assert.True(t, category.AppliesToRole("Stylist"))
	assert.False(t, category.AppliesToRole("Assistant"))

	open := TechCategory{Name: "Shampoo", TargetRoles: RoleAll}
	assert.True(t, open.AppliesToRole("Assistant"))

	detail := TechDetail{Name: "Bob cut", Category: "Cutting", TargetRoles: "Stylist,Assistant"}
	assert.True(t, detail.AppliesToRole("Assistant"))
	assert.False(t, detail.AppliesToRole("Junior"))
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now}
	assert.True(t, s.Expired(now.Add(time.Second)))
	assert.False(t, s.Expired(now.Add(-time.Second)))
}
