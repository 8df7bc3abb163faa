package repository

import (
	"strconv"
	"strings"
)

// filter composes SQL predicates joined with AND. Conditions are written
// with "?" placeholders that are numbered when the clause is rendered.
type filter struct {
	conds []string
	args  []any
}

// Eq adds column = value.
func (f *filter) Eq(column string, value any) *filter {
	return f.add(column+" = ?", value)
}

// Gte adds column >= value.
func (f *filter) Gte(column string, value any) *filter {
	return f.add(column+" >= ?", value)
}

// Lte adds column <= value.
func (f *filter) Lte(column string, value any) *filter {
	return f.add(column+" <= ?", value)
}

// Contains adds column @> ARRAY[value] for array columns of elemType.
func (f *filter) Contains(column, elemType string, value any) *filter {
	return f.add(column+" @> ARRAY[?::"+elemType+"]", value)
}

// ILikeAny adds a case-insensitive substring match of needle against any
// of the columns. LIKE wildcards in needle are matched literally.
func (f *filter) ILikeAny(needle string, columns ...string) *filter {
	if len(columns) == 0 {
		return f
	}
	pattern := "%" + escapeLike(needle) + "%"
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE ?"
		args[i] = pattern
	}
	return f.add("("+strings.Join(parts, " OR ")+")", args...)
}

func (f *filter) add(cond string, args ...any) *filter {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
	return f
}

// Where renders "WHERE ..." numbering placeholders from $start, or "" when
// the filter is empty.
func (f *filter) Where(start int) (string, []any) {
	if len(f.conds) == 0 {
		return "", nil
	}
	joined := strings.Join(f.conds, " AND ")

	var b strings.Builder
	b.Grow(len(joined) + 8)
	b.WriteString("WHERE ")
	n := start
	for _, r := range joined {
		if r == '?' {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), f.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
