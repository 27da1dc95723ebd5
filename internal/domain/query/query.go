package query

// Kind selects the row formatting rule for a query's result set.
type Kind int

const (
	// KindRankCount rows are (label, count) pairs.
	KindRankCount Kind = iota
	// KindDateRatio rows are (day, percentage) pairs.
	KindDateRatio
)

func (k Kind) String() string {
	switch k {
	case KindRankCount:
		return "rank_count"
	case KindDateRatio:
		return "date_ratio"
	default:
		return "unknown"
	}
}

// Query encapsulates a report section: the question shown to the reader,
// the SQL statement answering it and the rule used to print its rows.
type Query struct {
	Question string
	SQL      string
	Kind     Kind
}

// SQLs returns the statements of the catalog in catalog order.
func SQLs(catalog []Query) []string {
	out := make([]string, len(catalog))
	for i, q := range catalog {
		out[i] = q.SQL
	}
	return out
}
