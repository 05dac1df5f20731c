// Package safe converts between integer types, refusing values that would
// wrap around.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func fits[T Integer](v T, limit uint64) bool {
	return v >= 0 && uint64(v) <= limit
}

// Uint16 converts v to uint16.
func Uint16[T Integer](v T) (uint16, error) {
	if !fits(v, math.MaxUint16) {
		return 0, fmt.Errorf("%w: %d does not fit uint16", ErrOutOfRange, v)
	}
	return uint16(v), nil
}

// Uint32 converts v to uint32.
func Uint32[T Integer](v T) (uint32, error) {
	if !fits(v, math.MaxUint32) {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64. Only negative values fail.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOutOfRange, v)
	}
	return uint64(v), nil
}

// Int converts a non-negative v to int.
func Int[T Integer](v T) (int, error) {
	if !fits(v, math.MaxInt) {
		return 0, fmt.Errorf("%w: %d does not fit int", ErrOutOfRange, v)
	}
	return int(v), nil
}
