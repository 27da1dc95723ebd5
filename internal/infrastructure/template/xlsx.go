package template

import (
	"bytes"
	"fmt"
	"strconv"

	"log_report/internal/domain/query"
	"log_report/internal/domain/report"

	"github.com/xuri/excelize/v2"
)

// XLSXRenderer реализует Renderer для отчётов в формате xlsx:
// каждый раздел отчёта попадает на отдельный лист.
type XLSXRenderer struct{}

// NewXLSX возвращает рендерер XLSX.
func NewXLSX() XLSXRenderer { return XLSXRenderer{} }

func (XLSXRenderer) Format() report.Format { return report.FormatXLSX }

// SheetName возвращает имя листа для раздела с индексом i.
func SheetName(i int) string {
	return fmt.Sprintf("Q%d", i+1)
}

// Render заполняет книгу: вопрос в A1, заголовки во второй строке, данные с третьей.
func (XLSXRenderer) Render(catalog []query.Query, results []report.ResultSet) ([]byte, error) {
	if len(catalog) != len(results) {
		return nil, fmt.Errorf("catalog has %d queries but %d result sets were given", len(catalog), len(results))
	}

	f := excelize.NewFile()
	defer f.Close()

	// Стиль для заголовков
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, q := range catalog {
		sheet := SheetName(i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		if err := f.SetCellValue(sheet, "A1", q.Question); err != nil {
			return nil, err
		}

		headers := []string{"Name", "Views"}
		if q.Kind == query.KindDateRatio {
			headers = []string{"Day", "Errors, %"}
		}
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
				return nil, fmt.Errorf("style %s!%s: %w", sheet, cell, err)
			}
		}

		if err := fillSection(f, sheet, i, q.Kind, results[i]); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "A", "B", 30); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buffer bytes.Buffer
	if err := f.Write(&buffer); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buffer.Bytes(), nil
}

func fillSection(f *excelize.File, sheet string, section int, kind query.Kind, rs report.ResultSet) error {
	for i, row := range rs {
		if len(row) != 2 {
			return &report.FormatError{Section: section, Row: i, Reason: fmt.Sprintf("expected 2 columns, got %d", len(row))}
		}

		var first, second string
		var err error
		switch kind {
		case query.KindRankCount:
			first = labelString(row[0])
			second, err = countString(row[1])
		case query.KindDateRatio:
			day, derr := dayValue(row[0])
			if derr != nil {
				err = derr
				break
			}
			first = day.Format(DayLayout)
			second, err = ratioString(row[1])
		default:
			err = fmt.Errorf("unknown kind %d", kind)
		}
		if err != nil {
			return &report.FormatError{Section: section, Row: i, Reason: err.Error()}
		}

		value, err := strconv.ParseFloat(second, 64)
		if err != nil {
			return &report.FormatError{Section: section, Row: i, Reason: err.Error()}
		}

		for col, v := range []any{first, value} {
			cell, err := excelize.CoordinatesToCellName(col+1, i+3)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
