package arr

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Compare orders two values for sorting: nil first, then numbers
// (numerically, across Go numeric types), then everything else by its
// [KeyString] form. Integers are compared exactly, without a detour
// through float64.
func Compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	an, bn := numberOf(a), numberOf(b)
	switch {
	case an.kind != notNumber && bn.kind != notNumber:
		return compareNumbers(an, bn)
	case an.kind != notNumber:
		return -1
	case bn.kind != notNumber:
		return 1
	}
	return cmp.Compare(KeyString(a), KeyString(b))
}

// KeyString returns the string used when v becomes a map key: strings as-is,
// numbers in shortest decimal form, nil as "".
func KeyString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	}
	switch n := numberOf(v); n.kind {
	case signedNumber:
		return strconv.FormatInt(n.i, 10)
	case unsignedNumber:
		return strconv.FormatUint(n.u, 10)
	}
	return fmt.Sprint(v)
}

type numberKind uint8

const (
	notNumber numberKind = iota
	signedNumber
	unsignedNumber
	floatNumber
)

// number is an exact view of a built-in Go numeric value.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func numberOf(v any) number {
	switch n := v.(type) {
	case int:
		return number{kind: signedNumber, i: int64(n)}
	case int8:
		return number{kind: signedNumber, i: int64(n)}
	case int16:
		return number{kind: signedNumber, i: int64(n)}
	case int32:
		return number{kind: signedNumber, i: int64(n)}
	case int64:
		return number{kind: signedNumber, i: n}
	case uint:
		return number{kind: unsignedNumber, u: uint64(n)}
	case uint8:
		return number{kind: unsignedNumber, u: uint64(n)}
	case uint16:
		return number{kind: unsignedNumber, u: uint64(n)}
	case uint32:
		return number{kind: unsignedNumber, u: uint64(n)}
	case uint64:
		return number{kind: unsignedNumber, u: n}
	case float32:
		return number{kind: floatNumber, f: float64(n)}
	case float64:
		return number{kind: floatNumber, f: n}
	}
	return number{}
}

func (n number) float() float64 {
	switch n.kind {
	case signedNumber:
		return float64(n.i)
	case unsignedNumber:
		return float64(n.u)
	}
	return n.f
}

func (n number) isNaN() bool {
	return n.kind == floatNumber && math.IsNaN(n.f)
}

// compareNumbers orders two numbers. Both must be numbers.
func compareNumbers(a, b number) int {
	switch {
	case a.kind == floatNumber && b.kind == floatNumber:
		return cmp.Compare(a.f, b.f)
	case a.kind == floatNumber:
		return -compareIntFloat(b, a.f)
	case b.kind == floatNumber:
		return compareIntFloat(a, b.f)
	case a.kind == signedNumber && b.kind == signedNumber:
		return cmp.Compare(a.i, b.i)
	case a.kind == unsignedNumber && b.kind == unsignedNumber:
		return cmp.Compare(a.u, b.u)
	case a.kind == signedNumber:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
}

// compareIntFloat orders an integer against f. Integral floats in range are
// compared as integers so large values keep every digit.
func compareIntFloat(a number, f float64) int {
	if math.IsNaN(f) {
		return 1
	}
	if f == math.Trunc(f) {
		if a.kind == signedNumber && f >= -(1<<63) && f < 1<<63 {
			return cmp.Compare(a.i, int64(f))
		}
		if a.kind == unsignedNumber && f >= 0 && f < 1<<64 {
			return cmp.Compare(a.u, uint64(f))
		}
	}
	return cmp.Compare(a.float(), f)
}

// numbersEqual reports numeric equality. NaN equals nothing.
func numbersEqual(a, b number) bool {
	if a.isNaN() || b.isNaN() {
		return false
	}
	return compareNumbers(a, b) == 0
}
