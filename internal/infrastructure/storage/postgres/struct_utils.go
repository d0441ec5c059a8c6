package postgres

import (
	"fmt"
	"reflect"
	"strings"
)

// ExtractDBColumns returns the column names of a struct type as declared
// by its `db` tags, in field order. Fields without a db tag or tagged
// "-" are skipped. Embedded structs are flattened.
func ExtractDBColumns(model any) []string {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return structColumns(t)
}

func structColumns(t reflect.Type) []string {
	var cols []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			ft := f.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				cols = append(cols, structColumns(ft)...)
				continue
			}
		}
		tag := dbTag(f)
		if tag == "" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

// StructToMap converts a struct to a column->value map keyed by db tags.
// Used to build INSERT and UPDATE statements without enumerating columns
// by hand in every repository.
func StructToMap(model any) (map[string]any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("struct_to_map: nil pointer")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("struct_to_map: expected struct, got %s", v.Kind())
	}

	out := make(map[string]any)
	structValues(v, out)
	return out, nil
}

func structValues(v reflect.Value, out map[string]any) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous {
			for fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					break
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				structValues(fv, out)
				continue
			}
		}
		tag := dbTag(f)
		if tag == "" {
			continue
		}
		out[tag] = fv.Interface()
	}
}

func dbTag(f reflect.StructField) string {
	tag := f.Tag.Get("db")
	if tag == "" || tag == "-" {
		return ""
	}
	// Strip tag options such as ",omitempty"
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
