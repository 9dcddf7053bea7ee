package utils

// Number is the set of operand types accepted by Min and Max.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Min returns the smaller of a and b. b is converted to the type of a
// before the comparison, so the result always has a's type.
func Min[T, U Number](a T, b U) T {
	bt := T(b)
	if a < bt {
		return a
	}
	return bt
}

// Max returns the larger of a and b. b is converted to the type of a
// before the comparison, so the result always has a's type.
func Max[T, U Number](a T, b U) T {
	bt := T(b)
	if a > bt {
		return a
	}
	return bt
}

// Swap exchanges the values stored at a and b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
