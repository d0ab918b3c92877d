package shapecheck

import "reflect"

// sameValue applies the repository-wide rule for "did a child validation
// change this value": reference equality for maps, slices, pointers,
// channels and funcs, value equality for comparable types, and false for
// everything else.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Len() == rb.Len() && (ra.Len() == 0 || ra.Pointer() == rb.Pointer())
	default:
		if ra.Comparable() {
			return a == b
		}
		return false
	}
}
