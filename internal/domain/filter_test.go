package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterSelection(t *testing.T) {
	allLabels := []string{"all", "全部"}

	tests := []struct {
		name    string
		raw     string
		wantAll bool
		wantVal string
	}{
		{
			name:    "empty input means all",
			raw:     "",
			wantAll: true,
		},
		{
			name:    "whitespace only means all",
			raw:     "   ",
			wantAll: true,
		},
		{
			name:    "english sentinel",
			raw:     "all",
			wantAll: true,
		},
		{
			name:    "sentinel match is case-insensitive",
			raw:     "ALL",
			wantAll: true,
		},
		{
			name:    "localized sentinel",
			raw:     "全部",
			wantAll: true,
		},
		{
			name:    "specific value",
			raw:     "mobile",
			wantVal: "mobile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := ParseFilterSelection(tt.raw, allLabels)

			assert.Equal(t, tt.wantAll, selection.IsAll())
			assert.Equal(t, tt.wantVal, selection.Value())
		})
	}
}

func TestValidDeviceType(t *testing.T) {
	assert.True(t, ValidDeviceType("mobile"))
	assert.True(t, ValidDeviceType("DESKTOP"))
	assert.True(t, ValidDeviceType("tablet"))
	assert.False(t, ValidDeviceType("tv"))
	assert.False(t, ValidDeviceType(""))
}

func TestValidCountryCode(t *testing.T) {
	assert.True(t, ValidCountryCode("usa"))
	assert.True(t, ValidCountryCode("CHN"))
	assert.False(t, ValidCountryCode("us"))
	assert.False(t, ValidCountryCode("united states"))
	assert.False(t, ValidCountryCode("u1a"))
}
