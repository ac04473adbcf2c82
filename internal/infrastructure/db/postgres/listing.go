package postgres

import (
	"fmt"
	"strings"
)

// condBuilder accumulates WHERE conditions with positional arguments. Every
// "?" in an expression is rewritten to the next $n placeholder, so all
// user-supplied values go through parameter binding.
type condBuilder struct {
	conds []string
	args  []any
}

func (b *condBuilder) and(expr string, vals ...any) {
	for _, v := range vals {
		expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", len(b.args)+1), 1)
		b.args = append(b.args, v)
	}
	b.conds = append(b.conds, expr)
}

// where renders the accumulated conditions, or "TRUE" when there are none so
// callers can always append "WHERE" unconditionally.
func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(b.conds, " AND ")
}

// next returns the placeholder index for the next appended argument.
func (b *condBuilder) next() int {
	return len(b.args) + 1
}

// resolveSort maps a requested sort field through an allow-list, falling back
// to fallback for anything unknown. Only values from the allow-list ever
// reach the query text; this is the injection guard, not an optimization.
func resolveSort(allowed map[string]string, sortBy, sortOrder, fallback string) (column, direction string) {
	column, ok := allowed[sortBy]
	if !ok {
		column = allowed[fallback]
	}
	direction = "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return column, direction
}
