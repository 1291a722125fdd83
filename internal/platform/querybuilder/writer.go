package querybuilder

import (
	"strconv"
	"strings"
)

// writer collects SQL text and the positional args bound to $n placeholders.
type writer struct {
	sb   strings.Builder
	args []any
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.sb.WriteByte('$')
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

// expr copies text into the buffer, binding one value per '?' marker.
// Markers beyond the supplied values are left untouched.
func (w *writer) expr(text string, values []any) {
	next := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '?' && next < len(values) {
			w.bind(values[next])
			next++
			continue
		}
		w.sb.WriteByte(text[i])
	}
}

func (w *writer) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			w.raw(" WHERE ")
		} else {
			w.raw(" AND ")
		}
		c.write(w)
	}
}

func (w *writer) result() (string, []any) {
	return w.sb.String(), w.args
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
