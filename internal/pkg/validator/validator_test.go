package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid date", "2024-03-04", true},
		{"leap day", "2024-02-29", true},
		{"non leap day", "2023-02-29", false},
		{"wrong format", "04-03-2024", false},
		{"datetime is not a date", "2024-03-04T09:00:00Z", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := IsValidDate(tt.input)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsValidDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"utc instant", "2024-03-04T03:35:00Z", true},
		{"offset instant", "2024-03-04T09:05:00+05:30", true},
		{"nanoseconds", "2024-03-04T03:35:00.123456789Z", true},
		{"missing zone", "2024-03-04T03:35:00", false},
		{"bare date", "2024-03-04", false},
		{"garbage", "yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := IsValidDateTime(tt.input)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "is required"},
		{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "is required", m["employee_id"])
	assert.Contains(t, errs.Error(), "employee_id: is required")
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("2024-0001"))
	assert.False(t, IsValidEmployeeCode("20240001"))
	assert.False(t, IsValidEmployeeCode("abcd-0001"))
}
