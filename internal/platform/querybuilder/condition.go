package querybuilder

type Condition interface {
	write(w *writer)
}

type condFunc func(w *writer)

func (f condFunc) write(w *writer) { f(w) }

func Eq(column string, value any) Condition {
	return condFunc(func(w *writer) {
		w.raw(column, " = ")
		w.bind(value)
	})
}

// EqFold compares a text column case-insensitively.
func EqFold(column, value string) Condition {
	return condFunc(func(w *writer) {
		w.raw("LOWER(", column, ") = LOWER(")
		w.bind(value)
		w.raw(")")
	})
}

func IsNull(column string) Condition {
	return condFunc(func(w *writer) {
		w.raw(column, " IS NULL")
	})
}

// Expr embeds a raw predicate; each '?' is replaced by the next value.
func Expr(text string, values ...any) Condition {
	return condFunc(func(w *writer) {
		w.expr(text, values)
	})
}

// CountFilter renders an aggregate column counting rows whose column
// matches one of the given literal values.
func CountFilter(alias, column string, values ...string) string {
	var w writer
	w.raw("COUNT(*) FILTER (WHERE ", column)
	switch len(values) {
	case 0:
		w.raw(" IS NOT NULL")
	case 1:
		w.raw(" = ", quoteLiteral(values[0]))
	default:
		w.raw(" IN (")
		for i, v := range values {
			if i > 0 {
				w.raw(", ")
			}
			w.raw(quoteLiteral(v))
		}
		w.raw(")")
	}
	w.raw(") AS ", alias)
	query, _ := w.result()
	return query
}
