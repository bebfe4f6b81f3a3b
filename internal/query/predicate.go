// Package query composes optional list filters into a single parameterized
// WHERE predicate and resolves page/limit parameters.
package query

import (
	"strings"

	"gorm.io/gorm"
)

// Clause is one AND-ed condition. Expr uses '?' placeholders, one per Arg.
type Clause struct {
	Expr string
	Args []interface{}
}

// Predicate is an ordered list of clauses joined with AND. The zero value
// matches every row. Builder methods skip filters that were not supplied, so
// callers can chain them unconditionally.
type Predicate struct {
	clauses []Clause
}

// Eq adds "column = value" unless value is empty.
func (p Predicate) Eq(column, value string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" {
		return p
	}
	return p.add(Clause{Expr: column + " = ?", Args: []interface{}{value}})
}

// Bool adds "column = value" when value is non-nil.
func (p Predicate) Bool(column string, value *bool) Predicate {
	if value == nil {
		return p
	}
	return p.add(Clause{Expr: column + " = ?", Args: []interface{}{*value}})
}

// Search adds a single case-insensitive substring clause OR-ed across
// columns. LIKE wildcards inside term match literally.
func (p Predicate) Search(term string, columns ...string) Predicate {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return p
	}

	pattern := "%" + EscapeLike(term) + "%"
	parts := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		parts[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return p.add(Clause{
		Expr: "(" + strings.Join(parts, " OR ") + ")",
		Args: args,
	})
}

func (p Predicate) add(c Clause) Predicate {
	clauses := make([]Clause, len(p.clauses), len(p.clauses)+1)
	copy(clauses, p.clauses)
	return Predicate{clauses: append(clauses, c)}
}

// Clauses returns a copy of the composed clauses.
func (p Predicate) Clauses() []Clause {
	out := make([]Clause, len(p.clauses))
	copy(out, p.clauses)
	return out
}

// Empty reports whether the predicate imposes no constraint.
func (p Predicate) Empty() bool {
	return len(p.clauses) == 0
}

// SQL renders the predicate as a WHERE body and its bind arguments. An empty
// predicate renders as "".
func (p Predicate) SQL() (string, []interface{}) {
	if p.Empty() {
		return "", nil
	}
	exprs := make([]string, len(p.clauses))
	var args []interface{}
	for i, c := range p.clauses {
		exprs[i] = c.Expr
		args = append(args, c.Args...)
	}
	return strings.Join(exprs, " AND "), args
}

// Apply adds the predicate to db as a single Where condition.
func (p Predicate) Apply(db *gorm.DB) *gorm.DB {
	if p.Empty() {
		return db
	}
	where, args := p.SQL()
	return db.Where(where, args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters using the default backslash escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ParseBool maps "true"/"false" to a flag; any other value means the filter
// was not supplied.
func ParseBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
