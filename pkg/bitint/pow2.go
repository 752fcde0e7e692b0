/*
Package bitint provides power-of-2 math used for FFT window and band
sizing. All operations are O(1) bit manipulation with no allocations.

The band layout derives its width from the largest power of two strictly
below the column count, so both directions are provided:

	bitint.NextPowerOfTwo(10) // 16, smallest power of 2 >= 10
	bitint.PrevPowerOfTwo(10) // 8, largest power of 2 < 10

PrevPowerOfTwo is strict: PrevPowerOfTwo(8) is 4, not 8. Callers that
want to preserve exact powers of two should check IsPowerOfTwo first.
*/
package bitint

import "math/bits"

// NextPowerOfTwo returns the smallest power of 2 >= size.
// The size-1 subtraction keeps exact powers of two from doubling:
// bits.Len64(7) = 3, 1<<3 = 8, so 8 maps to itself.
//
//	Input  Output
//	4      4
//	5      8
//	0      1
//	-1     1
func NextPowerOfTwo(size int) int {
	if size <= 0 {
		return 1
	}
	return int(1 << bits.Len64(uint64(size-1)))
}

// PrevPowerOfTwo returns the largest power of 2 strictly below size,
// with a floor of 1 for size <= 2.
//
//	Input  Output
//	10     8
//	9      8
//	8      4
//	2      1
//	0      1
func PrevPowerOfTwo(size int) int {
	if size <= 2 {
		return 1
	}
	return int(1 << (bits.Len64(uint64(size-1)) - 1))
}

// IsPowerOfTwo reports whether n is a power of 2. Powers of 2 have
// exactly one bit set, so n & (n-1) is zero only for them.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
