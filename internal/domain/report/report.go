package report

// Row is one result row; values keep the column order of the statement.
type Row []any

// ResultSet holds every row returned by one query, in database order.
type ResultSet []Row

// Format обозначает поддерживаемые форматы итогового отчёта.
type Format string

const (
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
)

// Extension returns the file extension conventionally used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	default:
		return "txt"
	}
}
