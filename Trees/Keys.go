package Trees

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// KeyOf converts x to a key of type K. x may be of any Go integer kind as long
// as its value is representable by K. Everything else is rejected with ErrInvalidKey.
func KeyOf[K constraints.Integer](x any) (K, error) {
	switch a := x.(type) {
	case int:
		return signedKey[K](int64(a))
	case int8:
		return signedKey[K](int64(a))
	case int16:
		return signedKey[K](int64(a))
	case int32:
		return signedKey[K](int64(a))
	case int64:
		return signedKey[K](a)
	case uint:
		return unsignedKey[K](uint64(a))
	case uint8:
		return unsignedKey[K](uint64(a))
	case uint16:
		return unsignedKey[K](uint64(a))
	case uint32:
		return unsignedKey[K](uint64(a))
	case uint64:
		return unsignedKey[K](a)
	case uintptr:
		return unsignedKey[K](uint64(a))
	default:
		return 0, fmt.Errorf("%w: %v (%T)", ErrInvalidKey, x, x)
	}
}

func signedKey[K constraints.Integer](x int64) (K, error) {
	if k := K(x); int64(k) == x && (k < 0) == (x < 0) {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %d overflows the key type", ErrInvalidKey, x)
}

func unsignedKey[K constraints.Integer](x uint64) (K, error) {
	if k := K(x); uint64(k) == x && k >= 0 {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %d overflows the key type", ErrInvalidKey, x)
}

// ParseKey parses a base 10 integer key.
func ParseKey[K constraints.Integer](s string) (K, error) {
	if a, e := strconv.ParseInt(s, 10, 64); e == nil {
		return signedKey[K](a)
	}
	if a, e := strconv.ParseUint(s, 10, 64); e == nil {
		return unsignedKey[K](a)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
}

// absent reports whether v carries nothing: a nil interface, or a nil pointer, map,
// slice, channel or function.
func absent[V any](v V) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
