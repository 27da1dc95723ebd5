package report

import "fmt"

// ConnectionError represents a failure to reach the database.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// QueryError represents a failed query; Index is zero-based catalog position.
type QueryError struct {
	Index int
	Query string
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %d error: %v", e.Index+1, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

// FormatError represents a row that does not match its formatting rule.
type FormatError struct {
	Section int
	Row     int
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("section %d row %d: %s", e.Section+1, e.Row+1, e.Reason)
}
