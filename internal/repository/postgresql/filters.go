package postgresql

import (
	"fmt"
	"strings"
)

// whereBuilder collects optional, parameterized WHERE predicates so filter
// queries never concatenate user input into SQL. Placeholders are numbered
// from the initial arg count + 1.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

func newWhereBuilder() *whereBuilder {
	return &whereBuilder{}
}

// Add appends a predicate containing a single %d placeholder slot, e.g.
// "a.branch_id = $%d".
func (b *whereBuilder) Add(predicate string, arg interface{}) {
	b.clauses = append(b.clauses, predicate)
	b.args = append(b.args, arg)
}

// AddIf appends the predicate only when the optional string value is set.
func (b *whereBuilder) AddIf(value *string, predicate string) {
	if value != nil && *value != "" {
		b.Add(predicate, *value)
	}
}

// Where renders the predicates as a WHERE clause with placeholders numbered
// after the args already bound by the caller. Returns the empty string when
// no predicate was added.
func (b *whereBuilder) Where(startIdx int) string {
	if len(b.clauses) == 0 {
		return ""
	}
	rendered := make([]string, len(b.clauses))
	for i, c := range b.clauses {
		rendered[i] = fmt.Sprintf(c, startIdx+i)
	}
	return " WHERE " + strings.Join(rendered, " AND ")
}

// And renders the predicates as "AND ..." fragments for queries that already
// carry a base WHERE clause.
func (b *whereBuilder) And(startIdx int) string {
	if len(b.clauses) == 0 {
		return ""
	}
	rendered := make([]string, len(b.clauses))
	for i, c := range b.clauses {
		rendered[i] = fmt.Sprintf(c, startIdx+i)
	}
	return " AND " + strings.Join(rendered, " AND ")
}

// Args returns the bound arguments in predicate order.
func (b *whereBuilder) Args() []interface{} {
	return b.args
}
