// Package adder sums unsigned integers.
//
// Add follows Go's unsigned arithmetic: a sum larger than math.MaxUint64
// wraps modulo 2^64. Callers that need to reject such sums use AddChecked.
package adder

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

var ErrOverflow = errors.New("sum overflows uint64")

// Add returns left + right, wrapping on overflow.
func Add(left, right uint64) uint64 {
	return left + right
}

// AddChecked returns left + right, or ErrOverflow when the sum does not fit
// in a uint64.
func AddChecked(left, right uint64) (uint64, error) {
	sum, carry := bits.Add64(left, right, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%d + %d: %w", left, right, ErrOverflow)
	}
	return sum, nil
}

// AddUnsigned is Add for any unsigned width, including the pointer-sized uint.
func AddUnsigned[T constraints.Unsigned](left, right T) T {
	return left + right
}
