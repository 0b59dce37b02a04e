package models

import (
	"reflect"
	"strings"
)

// PatchFields turns a patch struct into a column map, keeping only the fields
// that were supplied (non-nil pointers and non-nil slices).
func PatchFields(patch interface{}) map[string]interface{} {
	fields := make(map[string]interface{})

	v := reflect.ValueOf(patch)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fields
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fields
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		column := strings.Split(t.Field(i).Tag.Get("db"), ",")[0]
		if column == "" || column == "-" {
			continue
		}

		f := v.Field(i)
		switch f.Kind() {
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			fields[column] = f.Elem().Interface()
		case reflect.Slice:
			if f.IsNil() {
				continue
			}
			fields[column] = f.Interface()
		default:
			fields[column] = f.Interface()
		}
	}

	return fields
}
