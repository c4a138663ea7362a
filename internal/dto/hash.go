package dto

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
)

//nolint:gochecknoglobals // immutable reflect type used for comparisons
var timeType = reflect.TypeFor[time.Time]()

// markers separate nil from empty and keep adjacent fields from colliding.
const (
	markNil byte = iota
	markPresent
)

// Hash returns a 64-bit digest of v's field values.
// Values that are Equal hash identically; in particular timestamps hash by
// instant, so the same moment in two locations yields the same digest.
func Hash[T any](v *T) uint64 {
	d := xxhash.New()
	if v == nil {
		_, _ = d.Write([]byte{markNil})

		return d.Sum64()
	}

	h := hasher{d: d}
	h.value(reflect.ValueOf(v).Elem())

	return d.Sum64()
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) marker(b byte) {
	_, _ = h.d.Write([]byte{b})
}

func (h *hasher) uint(u uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], u)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) string(s string) {
	h.uint(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

//nolint:cyclop,exhaustive // one case per supported kind; the rest go through fmt
func (h *hasher) value(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			h.marker(markNil)

			return
		}

		h.marker(markPresent)
		h.value(v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			//nolint:forcetypeassert // guarded by the type check above
			h.uint(uint64(v.Interface().(time.Time).UnixNano()))

			return
		}

		for i := range v.NumField() {
			if !v.Type().Field(i).IsExported() {
				continue
			}

			h.value(v.Field(i))
		}
	case reflect.String:
		h.string(v.String())
	case reflect.Bool:
		if v.Bool() {
			h.marker(1)
		} else {
			h.marker(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.uint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		h.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.uint(math.Float64bits(v.Float()))
	case reflect.Slice:
		if v.IsNil() {
			h.marker(markNil)

			return
		}

		h.marker(markPresent)
		h.uint(uint64(v.Len()))

		if v.Type().Elem().Kind() == reflect.Uint8 {
			_, _ = h.d.Write(v.Bytes())

			return
		}

		for i := range v.Len() {
			h.value(v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			h.marker(markNil)

			return
		}

		h.marker(markPresent)
		h.uint(uint64(v.Len()))

		keys := v.MapKeys()
		slices.SortFunc(keys, compareKeys)

		for _, k := range keys {
			h.value(k)
			h.value(v.MapIndex(k))
		}
	default:
		h.string(fmt.Sprint(v.Interface()))
	}
}

func compareKeys(a, b reflect.Value) int {
	as, bs := fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface())

	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
