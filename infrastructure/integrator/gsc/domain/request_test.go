package gscdomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

func TestNewQueryRequest(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rowLimit int
		device   domain.FilterSelection
		country  domain.FilterSelection
		validate func(t *testing.T, req *SearchAnalyticsRequest)
	}{
		{
			name:     "no filters omits the filter groups entirely",
			rowLimit: 500,
			device:   domain.AllValues(),
			country:  domain.AllValues(),
			validate: func(t *testing.T, req *SearchAnalyticsRequest) {
				assert.Equal(t, "2024-03-01", req.StartDate)
				assert.Equal(t, "2024-03-31", req.EndDate)
				assert.Equal(t, 500, req.RowLimit)
				assert.Nil(t, req.DimensionFilterGroups)
			},
		},
		{
			name:     "device filter becomes an equality predicate",
			rowLimit: 500,
			device:   domain.Specific("mobile"),
			country:  domain.AllValues(),
			validate: func(t *testing.T, req *SearchAnalyticsRequest) {
				assert.Len(t, req.DimensionFilterGroups, 1)
				assert.Len(t, req.DimensionFilterGroups[0].Filters, 1)

				filter := req.DimensionFilterGroups[0].Filters[0]
				assert.Equal(t, "device", filter.Dimension)
				assert.Equal(t, "equals", filter.Operator)
				assert.Equal(t, "mobile", filter.Expression)
			},
		},
		{
			name:     "both filters land in one AND group",
			rowLimit: 500,
			device:   domain.Specific("desktop"),
			country:  domain.Specific("usa"),
			validate: func(t *testing.T, req *SearchAnalyticsRequest) {
				assert.Len(t, req.DimensionFilterGroups, 1)
				assert.Len(t, req.DimensionFilterGroups[0].Filters, 2)
				assert.Equal(t, "device", req.DimensionFilterGroups[0].Filters[0].Dimension)
				assert.Equal(t, "country", req.DimensionFilterGroups[0].Filters[1].Dimension)
			},
		},
		{
			name:     "zero row limit falls back to the default",
			rowLimit: 0,
			device:   domain.AllValues(),
			country:  domain.AllValues(),
			validate: func(t *testing.T, req *SearchAnalyticsRequest) {
				assert.Equal(t, DefaultRowLimit, req.RowLimit)
			},
		},
		{
			name:     "row limit above the cap is clamped",
			rowLimit: 100000,
			device:   domain.AllValues(),
			country:  domain.AllValues(),
			validate: func(t *testing.T, req *SearchAnalyticsRequest) {
				assert.Equal(t, MaxRowLimit, req.RowLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewQueryRequest(start, end, []string{DimensionQuery}, tt.rowLimit, tt.device, tt.country)

			assert.NoError(t, err)
			tt.validate(t, req)
		})
	}
}

func TestNewQueryRequest_Invalid(t *testing.T) {
	start := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewQueryRequest(start, end, []string{DimensionQuery}, 100, domain.AllValues(), domain.AllValues())
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewQueryRequest(end, start, nil, 100, domain.AllValues(), domain.AllValues())
	assert.ErrorIs(t, err, ErrNoDimensions)
}

func TestNewTrendRequest(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	req, err := NewTrendRequest(start, end, "running shoes")

	assert.NoError(t, err)
	assert.Equal(t, []string{DimensionDate}, req.Dimensions)
	assert.Len(t, req.DimensionFilterGroups, 1)

	filter := req.DimensionFilterGroups[0].Filters[0]
	assert.Equal(t, "query", filter.Dimension)
	assert.Equal(t, "equals", filter.Operator)
	assert.Equal(t, "running shoes", filter.Expression)
}

func TestNewTrendRequest_EmptyKeyword(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	_, err := NewTrendRequest(start, end, "")
	assert.Error(t, err)
}
