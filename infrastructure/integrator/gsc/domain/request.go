package gscdomain

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

// MaxRowLimit is the hard cap Search Console enforces per query.
const MaxRowLimit = 25000

const DefaultRowLimit = 1000

const (
	DimensionQuery = "query"
	DimensionDate  = "date"

	dimensionDevice  = "device"
	dimensionCountry = "country"

	operatorEquals = "equals"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrNoDimensions     = errors.New("at least one dimension is required")
)

// SearchAnalyticsRequest is the body of a searchAnalytics/query call.
type SearchAnalyticsRequest struct {
	StartDate             string                 `json:"startDate"`
	EndDate               string                 `json:"endDate"`
	Dimensions            []string               `json:"dimensions"`
	RowLimit              int                    `json:"rowLimit"`
	DimensionFilterGroups []DimensionFilterGroup `json:"dimensionFilterGroups,omitempty"`
}

type DimensionFilterGroup struct {
	Filters []DimensionFilter `json:"filters"`
}

type DimensionFilter struct {
	Dimension  string `json:"dimension"`
	Operator   string `json:"operator"`
	Expression string `json:"expression"`
}

// NewQueryRequest builds a keyword query body. Device and country
// selections set to "all" emit no filter at all; when neither filter is
// present the dimensionFilterGroups key is omitted from the payload
// entirely. Present filters are equality predicates combined with AND.
func NewQueryRequest(
	startDate, endDate time.Time,
	dimensions []string,
	rowLimit int,
	device, country domain.FilterSelection,
) (*SearchAnalyticsRequest, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	if len(dimensions) == 0 {
		return nil, ErrNoDimensions
	}

	if rowLimit <= 0 {
		rowLimit = DefaultRowLimit
	}

	if rowLimit > MaxRowLimit {
		rowLimit = MaxRowLimit
	}

	request := &SearchAnalyticsRequest{
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		Dimensions: dimensions,
		RowLimit:   rowLimit,
	}

	filters := make([]DimensionFilter, 0, 2)
	if !device.IsAll() && device.Value() != "" {
		filters = append(filters, DimensionFilter{
			Dimension:  dimensionDevice,
			Operator:   operatorEquals,
			Expression: device.Value(),
		})
	}

	if !country.IsAll() && country.Value() != "" {
		filters = append(filters, DimensionFilter{
			Dimension:  dimensionCountry,
			Operator:   operatorEquals,
			Expression: country.Value(),
		})
	}

	if len(filters) > 0 {
		request.DimensionFilterGroups = []DimensionFilterGroup{
			{Filters: filters},
		}
	}

	return request, nil
}

// NewTrendRequest builds a per-day query body for one fixed keyword.
func NewTrendRequest(startDate, endDate time.Time, keyword string) (*SearchAnalyticsRequest, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	if keyword == "" {
		return nil, errors.New("keyword must not be empty")
	}

	return &SearchAnalyticsRequest{
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		Dimensions: []string{DimensionDate},
		RowLimit:   MaxRowLimit,
		DimensionFilterGroups: []DimensionFilterGroup{
			{
				Filters: []DimensionFilter{
					{
						Dimension:  DimensionQuery,
						Operator:   operatorEquals,
						Expression: keyword,
					},
				},
			},
		},
	}, nil
}
