package exporting

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

func testReport() *domain.KeywordReport {
	return &domain.KeywordReport{
		Site: "https://example.com/",
		Rows: domain.KeywordResultSet{
			{Query: "running shoes", Clicks: 120, Impressions: 2400, CTR: 0.05, Position: 3.2},
			{Query: "trail shoes", Clicks: 40, Impressions: 1000, CTR: 0.04, Position: 7.5},
		},
		FetchedAt: time.Now(),
	}
}

func TestService_Export_CSV(t *testing.T) {
	service := NewService()

	file, err := service.Export(FormatCSV, testReport())
	assert.NoError(t, err)

	assert.True(t, bytes.HasPrefix(file.Content, utf8BOM), "CSV must start with a UTF-8 BOM")
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Name, "keywords_"))
	assert.True(t, strings.HasSuffix(file.Name, ".csv"))

	body := string(bytes.TrimPrefix(file.Content, utf8BOM))
	lines := strings.Split(strings.TrimSpace(body), "\n")

	assert.Equal(t, "query,clicks,impressions,ctr,position", strings.TrimSpace(lines[0]))
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "running shoes")
	assert.Contains(t, lines[2], "trail shoes")
}

func TestService_Export_CSVRoundTrip(t *testing.T) {
	service := NewService()

	report := &domain.KeywordReport{
		Site: "https://example.com/",
		Rows: domain.KeywordResultSet{
			{Query: "running shoes", Clicks: 120, Impressions: 2400, CTR: 0.05, Position: 3.2},
			{Query: "trail shoes", Clicks: 40, Impressions: 1000, CTR: 0.0232558, Position: 7.5},
			{Query: "靴 ランニング", Clicks: 7, Impressions: 430, CTR: 0.0162791, Position: 11.25},
		},
	}

	file, err := service.Export(FormatCSV, report)
	assert.NoError(t, err)

	body := bytes.TrimPrefix(file.Content, utf8BOM)
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, len(report.Rows)+1)

	assert.Equal(t, []string{"query", "clicks", "impressions", "ctr", "position"}, records[0])

	for i, row := range report.Rows {
		record := records[i+1]

		assert.Equal(t, row.Query, record[0])

		clicks, err := strconv.Atoi(record[1])
		assert.NoError(t, err)
		assert.Equal(t, row.Clicks, clicks)

		impressions, err := strconv.Atoi(record[2])
		assert.NoError(t, err)
		assert.Equal(t, row.Impressions, impressions)

		// Float columns are written with six decimal places.
		ctr, err := strconv.ParseFloat(record[3], 64)
		assert.NoError(t, err)
		assert.InDelta(t, row.CTR, ctr, 5e-7)

		position, err := strconv.ParseFloat(record[4], 64)
		assert.NoError(t, err)
		assert.InDelta(t, row.Position, position, 5e-7)
	}
}

func TestService_Export_DefaultsToCSV(t *testing.T) {
	service := NewService()

	file, err := service.Export("", testReport())
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(file.Name, ".csv"))
}

func TestService_Export_XLSX(t *testing.T) {
	service := NewService()

	file, err := service.Export(FormatXLSX, testReport())
	assert.NoError(t, err)

	assert.NotEmpty(t, file.Content)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))

	// XLSX files are ZIP archives.
	assert.True(t, bytes.HasPrefix(file.Content, []byte("PK")))
}

func TestService_Export_Errors(t *testing.T) {
	service := NewService()

	tests := []struct {
		name   string
		format string
		report *domain.KeywordReport
	}{
		{
			name:   "nil report",
			format: FormatCSV,
			report: nil,
		},
		{
			name:   "empty rows",
			format: FormatCSV,
			report: &domain.KeywordReport{Rows: domain.KeywordResultSet{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := service.Export(tt.format, tt.report)
			assert.ErrorIs(t, err, ErrNoRows)
			assert.Nil(t, file)
		})
	}

	file, err := service.Export("pdf", testReport())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
	assert.Nil(t, file)
}
