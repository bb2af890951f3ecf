package exporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	sheetName = "GSC Data"
)

var ErrNoRows = errors.New("report has no rows to export")

// utf8BOM prefixes CSV output so spreadsheet tools pick the right
// encoding when the keyword queries are not ASCII.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportFile is one serialized download: header row plus one row per
// keyword, field order query, clicks, impressions, ctr, position. The
// numeric values are raw, no display formatting is applied. In the CSV
// body the float columns carry the dataframe writer's fixed six decimal
// places, so ctr and position round at 1e-6.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

type Exporter interface {
	Export(format string, report *domain.KeywordReport) (*ExportFile, error)
}

type Service struct{}

func NewService() Exporter {
	return &Service{}
}

func (s *Service) Export(format string, report *domain.KeywordReport) (*ExportFile, error) {
	if report == nil || report.Rows.Empty() {
		return nil, ErrNoRows
	}

	switch format {
	case FormatCSV, "":
		return s.exportCSV(report)
	case FormatXLSX:
		return s.exportXLSX(report)
	default:
		return nil, errors.Errorf("unsupported export format: %q", format)
	}
}

func (s *Service) exportCSV(report *domain.KeywordReport) (*ExportFile, error) {
	buf := &bytes.Buffer{}
	buf.Write(utf8BOM)

	df := dataframe.LoadStructs(report.Rows)
	if err := df.WriteCSV(buf); err != nil {
		logrus.WithField("error", err.Error()).Error("export: failed to write CSV")
		return nil, err
	}

	name, err := exportFileName(FormatCSV)
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Name:        name,
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

func (s *Service) exportXLSX(report *domain.KeywordReport) (*ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	header := []interface{}{"query", "clicks", "impressions", "ctr", "position"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range report.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		values := []interface{}{row.Query, row.Clicks, row.Impressions, row.CTR, row.Position}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logrus.WithField("error", err.Error()).Error("export: failed to write workbook")
		return nil, err
	}

	name, err := exportFileName(FormatXLSX)
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Name:        name,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

// exportFileName builds a download name like keywords_20240331_a1B2c3.csv.
// The random suffix keeps repeated exports from clobbering each other in
// the browser's download directory.
func exportFileName(extension string) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("keywords_%s_%s.%s", time.Now().Format("20060102"), id, extension), nil
}
