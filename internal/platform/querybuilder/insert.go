package querybuilder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds a single-row INSERT from the db-tagged exported fields
// of model. suffix is appended verbatim (ON CONFLICT, RETURNING, ...).
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	if strings.TrimSpace(table) == "" {
		return "", nil, errors.New("insert table is required")
	}
	columns, values, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}

	var w writer
	w.raw("INSERT INTO ", table, " (", strings.Join(columns, ", "), ") VALUES (")
	for i, v := range values {
		if i > 0 {
			w.raw(", ")
		}
		w.bind(v)
	}
	w.raw(")")
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		w.raw(" ", suffix)
	}

	query, args := w.result()
	return query, args, nil
}

func modelColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, errors.New("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	var (
		typ     = value.Type()
		columns []string
		values  []any
	)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, name)
		values = append(values, value.Field(i).Interface())
	}

	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return columns, values, nil
}
