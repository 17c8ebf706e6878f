package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminFlagTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"Uppercase TRUE", "TRUE", true},
		{"Lowercase true", "true", true},
		{"Mixed case True", "True", true},
		{"Numeric one", "1", true},
		{"Padded true", "  true  ", true},
		{"False string", "false", false},
		{"Uppercase FALSE", "FALSE", false},
		{"Zero", "0", false},
		{"Empty", "", false},
		{"Whitespace only", "   ", false},
		{"Arbitrary text", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdminFlagTruthy(tt.value))
		})
	}
}

func TestStaffIsAdmin(t *testing.T) {
	admin := Staff{AdminFlag: "TRUE"}
	assert.True(t, admin.IsAdmin())

	regular := Staff{AdminFlag: ""}
	assert.False(t, regular.IsAdmin())
}

func TestEmployeeIDEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{"Exact match", "1001", "1001", true},
		{"Leading zeros", "0042", "42", true},
		{"Leading zeros reversed", "42", "0042", true},
		{"Padded input", " 1001 ", "1001", true},
		{"Different numbers", "1001", "1002", false},
		{"Non-numeric exact", "E-77", "E-77", true},
		{"Non-numeric mismatch", "E-77", "E-78", false},
		{"Numeric vs non-numeric", "42", "E-42", false},
		{"Both empty", "", "", false},
		{"One empty", "1001", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EmployeeIDEqual(tt.a, tt.b))
		})
	}
}
