package fp

import "reflect"

// IsNil reports whether v is the absence sentinel: a nil interface or a nil
// pointer, map, slice, channel, func or unsafe pointer. Zero values of other
// kinds are ordinary values.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Equal compares two contained values. Values implementing Equaler decide
// for themselves, everything else is compared structurally.
func Equal[T any](a, b T) bool {
	if eq, ok := any(a).(Equaler[T]); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
