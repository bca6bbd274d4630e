package utils

import (
	"errors"
	"reflect"
	"strings"
)

var ErrNotStructPointer = errors.New("sanitize: expected pointer to struct")

// Sanitize trims surrounding whitespace from every string, *string and
// []string field of the struct o points to.
func Sanitize(o any) error {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrNotStructPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
	return nil
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
