package query

import (
	"fmt"
	"strings"
	"unicode"
)

var forbidden = map[string]struct{}{
	"DROP":     {},
	"DELETE":   {},
	"UPDATE":   {},
	"INSERT":   {},
	"CREATE":   {},
	"ALTER":    {},
	"TRUNCATE": {},
}

// Validate проверяет SQL-запрос на наличие запрещённых конструкций.
// Сравнение идёт по целым словам, поэтому идентификаторы вроде created_at не мешают.
func Validate(sql string) error {
	words := strings.FieldsFunc(strings.ToUpper(sql), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	for _, w := range words {
		if _, ok := forbidden[w]; ok {
			return fmt.Errorf("forbidden operation: %s", w)
		}
	}
	return nil
}

// ValidateCatalog проверяет все запросы каталога.
func ValidateCatalog(catalog []Query) error {
	if len(catalog) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	for i, q := range catalog {
		if strings.TrimSpace(q.SQL) == "" {
			return fmt.Errorf("query %d: empty statement", i+1)
		}
		if err := Validate(q.SQL); err != nil {
			return fmt.Errorf("query %d: %w", i+1, err)
		}
	}
	return nil
}
