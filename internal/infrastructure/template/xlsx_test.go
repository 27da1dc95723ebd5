package template

import (
	"bytes"
	"testing"
	"time"

	"log_report/internal/domain/query"
	"log_report/internal/domain/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXRenderer_Render(t *testing.T) {
	catalog := query.Catalog()
	results := []report.ResultSet{
		{{"C", int64(9)}, {"A", int64(5)}},
		{},
		{{time.Date(2016, time.July, 1, 0, 0, 0, 0, time.UTC), []byte("2.50")}},
	}

	doc, err := NewXLSX().Render(catalog, results)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, f.GetSheetList())

	cell := func(sheet, axis string) string {
		v, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, catalog[0].Question, cell("Q1", "A1"))
	assert.Equal(t, "Views", cell("Q1", "B2"))
	assert.Equal(t, "C", cell("Q1", "A3"))
	assert.Equal(t, "9", cell("Q1", "B3"))
	assert.Equal(t, "A", cell("Q1", "A4"))

	assert.Equal(t, "", cell("Q2", "A3"))

	assert.Equal(t, "Errors, %", cell("Q3", "B2"))
	assert.Equal(t, "July 01, 2016", cell("Q3", "A3"))
	assert.Equal(t, "2.5", cell("Q3", "B3"))

	assert.Equal(t, report.FormatXLSX, NewXLSX().Format())
}

func TestXLSXRenderer_RenderBadRow(t *testing.T) {
	catalog := []query.Query{{Question: "q", SQL: "SELECT 1", Kind: query.KindDateRatio}}
	_, err := NewXLSX().Render(catalog, []report.ResultSet{{{"not a date", 1.0}}})
	var ferr *report.FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestFillSection_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := fillSection(f, "Q9", 0, query.KindRankCount, report.ResultSet{{"C", int64(9)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Q9!A3")
}
