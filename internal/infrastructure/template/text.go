package template

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"log_report/internal/domain/query"
	"log_report/internal/domain/report"
)

// DayLayout renders days as "July 01, 2016".
const DayLayout = "January 02, 2006"

// TextRenderer assembles the plain-text report.
type TextRenderer struct{}

// NewText возвращает текстовый рендерер.
func NewText() TextRenderer { return TextRenderer{} }

func (TextRenderer) Format() report.Format { return report.FormatText }

// Render writes, for every section in catalog order, the question line,
// its bullet block and a blank-line separator.
func (TextRenderer) Render(catalog []query.Query, results []report.ResultSet) ([]byte, error) {
	if len(catalog) != len(results) {
		return nil, fmt.Errorf("catalog has %d queries but %d result sets were given", len(catalog), len(results))
	}

	var b strings.Builder
	for i, q := range catalog {
		block, err := FormatResult(i, q.Kind, results[i])
		if err != nil {
			return nil, err
		}
		b.WriteString(q.Question)
		b.WriteString("\n")
		b.WriteString(block)
		b.WriteString("\n\n")
	}
	return []byte(b.String()), nil
}

// FormatResult prints a result set with the rule selected by kind.
// section is used only for error reporting.
func FormatResult(section int, kind query.Kind, rs report.ResultSet) (string, error) {
	switch kind {
	case query.KindRankCount:
		return formatRankCount(section, rs)
	case query.KindDateRatio:
		return formatDateRatio(section, rs)
	default:
		return "", &report.FormatError{Section: section, Reason: fmt.Sprintf("unknown kind %d", kind)}
	}
}

func formatRankCount(section int, rs report.ResultSet) (string, error) {
	var b strings.Builder
	for i, row := range rs {
		if len(row) != 2 {
			return "", &report.FormatError{Section: section, Row: i, Reason: fmt.Sprintf("expected 2 columns, got %d", len(row))}
		}
		count, err := countString(row[1])
		if err != nil {
			return "", &report.FormatError{Section: section, Row: i, Reason: err.Error()}
		}
		fmt.Fprintf(&b, "• %s - %s views\n", labelString(row[0]), count)
	}
	return b.String(), nil
}

func formatDateRatio(section int, rs report.ResultSet) (string, error) {
	var b strings.Builder
	for i, row := range rs {
		if len(row) != 2 {
			return "", &report.FormatError{Section: section, Row: i, Reason: fmt.Sprintf("expected 2 columns, got %d", len(row))}
		}
		day, err := dayValue(row[0])
		if err != nil {
			return "", &report.FormatError{Section: section, Row: i, Reason: err.Error()}
		}
		pct, err := ratioString(row[1])
		if err != nil {
			return "", &report.FormatError{Section: section, Row: i, Reason: err.Error()}
		}
		fmt.Fprintf(&b, "• %s - %s%% errors\n", day.Format(DayLayout), pct)
	}
	return b.String(), nil
}

func labelString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}

// NULL counts come from the LEFT JOIN for articles nobody read.
func countString(v any) (string, error) {
	switch n := v.(type) {
	case nil:
		return "0", nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case int:
		return strconv.Itoa(n), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case []byte:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	default:
		return "", fmt.Errorf("unsupported count type %T", v)
	}
}

// pgx отдаёт NUMERIC как текст, поэтому строки тоже разбираются.
func ratioString(v any) (string, error) {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case []byte:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	default:
		return "", fmt.Errorf("unsupported percentage type %T", v)
	}
}

func parseNumber(s string) (string, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "", fmt.Errorf("invalid number %q", s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func dayValue(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case []byte:
		return parseDay(string(d))
	case string:
		return parseDay(d)
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}
}

func parseDay(s string) (time.Time, error) {
	if len(s) < len("2006-01-02") {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
