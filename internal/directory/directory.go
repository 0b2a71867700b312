// Package directory defines the shared shape of the user-directory CRUD
// boundary: conjunctive equality filter sets and the typed lookup errors the
// repositories return.
package directory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a filter set matches no rows. Expected
	// outcome; callers branch on it rather than treating it as a fault.
	ErrNotFound = errors.New("directory: record not found")
	// ErrAmbiguous is returned when a filter set matches more than one row
	// where exactly one is required. The directory schema is supposed to make
	// this impossible, so it signals an integrity fault.
	ErrAmbiguous = errors.New("directory: filter matched more than one record")
)

// Filters is a conjunctive set of equality predicates over named columns.
type Filters map[string]string

// WhereClause renders f as "WHERE col1 = $1 AND col2 = $2" with the matching
// argument slice. Column names must appear in allowed; anything else is
// rejected so filter values can never reach the query as SQL. Keys are
// ordered deterministically. An empty filter set renders an empty clause.
func WhereClause(f Filters, allowed map[string]bool) (string, []any, error) {
	if len(f) == 0 {
		return "", nil, nil
	}
	cols := make([]string, 0, len(f))
	for col := range f {
		if !allowed[col] {
			return "", nil, fmt.Errorf("directory: unknown filter column %q", col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	var b strings.Builder
	args := make([]any, 0, len(cols))
	b.WriteString("WHERE ")
	for i, col := range cols {
		if i > 0 {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "%s = $%d", col, i+1)
		args = append(args, f[col])
	}
	return b.String(), args, nil
}
