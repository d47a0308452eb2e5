package store

import (
	"fmt"
	"strings"
)

// Sortable task fields.
const (
	FieldDueDate = "dueDate"
	FieldTitle   = "title"
	FieldStatus  = "status"
)

// SortDirection selects ascending or descending order for a SortKey.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// String returns "asc" or "desc".
func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey is one (field, direction) pair of a multi-key sort.
// Earlier keys take precedence; later keys break ties.
type SortKey struct {
	Field     string
	Direction SortDirection
}

// Asc returns an ascending SortKey on field.
func Asc(field string) SortKey {
	return SortKey{Field: field, Direction: Ascending}
}

// Desc returns a descending SortKey on field.
func Desc(field string) SortKey {
	return SortKey{Field: field, Direction: Descending}
}

// String renders the key in the form accepted by ParseSort.
func (k SortKey) String() string {
	if k.Direction == Descending {
		return "-" + k.Field
	}
	return k.Field
}

// ParseSort parses a comma-separated sort expression such as
// "dueDate,-title" or "status:desc,title:asc". Field names are passed through
// unchanged; stores ignore fields they do not recognize.
func ParseSort(expr string) ([]SortKey, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	parts := strings.Split(expr, ",")
	keys := make([]SortKey, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty sort key in %q", expr)
		}

		key := SortKey{Direction: Ascending}
		if strings.HasPrefix(part, "-") {
			key.Direction = Descending
			part = part[1:]
		}
		if field, dir, ok := strings.Cut(part, ":"); ok {
			switch strings.ToLower(dir) {
			case "asc":
				key.Direction = Ascending
			case "desc":
				key.Direction = Descending
			default:
				return nil, fmt.Errorf("unknown sort direction %q", dir)
			}
			part = field
		}
		if part == "" {
			return nil, fmt.Errorf("missing sort field in %q", expr)
		}
		key.Field = part
		keys = append(keys, key)
	}
	return keys, nil
}
