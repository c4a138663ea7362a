package dto

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Format renders v as `TypeName{Field: value, ...}` listing only the fields
// that are set. Fields tagged `sensitive:"true"` print as Redacted.
func Format[T any](v *T) string {
	if v == nil {
		return "<nil>"
	}

	rv := reflect.ValueOf(v).Elem()

	var b strings.Builder

	b.WriteString(rv.Type().Name())
	writeStruct(&b, rv)

	return b.String()
}

func writeStruct(b *strings.Builder, v reflect.Value) {
	b.WriteByte('{')

	first := true

	for i := range v.NumField() {
		field := v.Type().Field(i)
		if !field.IsExported() || isUnset(v.Field(i)) {
			continue
		}

		if !first {
			b.WriteString(", ")
		}

		first = false

		b.WriteString(field.Name)
		b.WriteString(": ")

		if field.Tag.Get(SensitiveTag) == "true" {
			b.WriteString(Redacted)

			continue
		}

		writeValue(b, v.Field(i))
	}

	b.WriteByte('}')
}

//nolint:exhaustive // unsupported kinds fall back to fmt
func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		// string-based enums use "" for unset
		return v.Len() == 0
	default:
		return false
	}
}

//nolint:exhaustive // unsupported kinds fall back to fmt
func writeValue(b *strings.Builder, v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString("<nil>")

			return
		}

		writeValue(b, v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			//nolint:forcetypeassert // guarded by the type check above
			b.WriteString(v.Interface().(time.Time).UTC().Format(time.RFC3339))

			return
		}

		writeStruct(b, v)
	case reflect.String:
		b.WriteString(strconv.Quote(v.String()))
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b.WriteString(base64.StdEncoding.EncodeToString(v.Bytes()))

			return
		}

		b.WriteByte('[')

		for i := range v.Len() {
			if i > 0 {
				b.WriteString(", ")
			}

			writeValue(b, v.Index(i))
		}

		b.WriteByte(']')
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, compareKeys)

		b.WriteByte('{')

		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}

			writeValue(b, k)
			b.WriteString(": ")
			writeValue(b, v.MapIndex(k))
		}

		b.WriteByte('}')
	default:
		_, _ = fmt.Fprint(b, v.Interface())
	}
}
