package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportWindows(t *testing.T) {
	today := time.Date(2024, 3, 31, 15, 42, 7, 0, time.UTC)

	primary, comparison := ReportWindows(today, 30)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), primary.Start)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), primary.End)

	// The comparison window has the same length and ends where the
	// primary one starts: adjacent, no gap, no overlap.
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), comparison.Start)
	assert.Equal(t, primary.Start, comparison.End)
}

func TestReportWindows_CrossesYearBoundary(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	primary, comparison := ReportWindows(today, 7)

	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), primary.Start)
	assert.Equal(t, time.Date(2023, 12, 27, 0, 0, 0, 0, time.UTC), comparison.Start)
}

func TestCompareSummaries(t *testing.T) {
	current := NewKeywordSummary(150, 3000, 5.0, 4.0)
	previous := NewKeywordSummary(100, 2000, 4.0, 5.0)

	deltas := CompareSummaries(current, previous)

	assert.NotNil(t, deltas)
	assert.InDelta(t, 50.0, deltas.Clicks.PercentChange, 1e-9)
	assert.InDelta(t, 50.0, deltas.Impressions.PercentChange, 1e-9)
	assert.InDelta(t, 25.0, deltas.CTR.PercentChange, 1e-9)

	// Position dropped from 5.0 to 4.0 - a better rank - so the
	// displayed delta must be positive.
	assert.InDelta(t, 20.0, deltas.Position.PercentChange, 1e-9)
}

func TestCompareSummaries_NilPeriods(t *testing.T) {
	summary := NewKeywordSummary(10, 100, 10.0, 2.0)

	assert.Nil(t, CompareSummaries(nil, summary))
	assert.Nil(t, CompareSummaries(summary, nil))
	assert.Nil(t, CompareSummaries(nil, nil))
}

func TestNewKeywordSummary_Labels(t *testing.T) {
	summary := NewKeywordSummary(1234567, 3400, 5.678, 12.34)

	assert.Equal(t, "1.2M", summary.ClicksLabel)
	assert.Equal(t, "3.4K", summary.ImpressionsLabel)
	assert.Equal(t, "5.68%", summary.CTRLabel)
	assert.Equal(t, "12.3", summary.PositionLabel)
}
