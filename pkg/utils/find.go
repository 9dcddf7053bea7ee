package utils

// Find scans s[first:last] and returns the index of the first element equal
// to value, or last if there is none. The scan is a single forward pass.
func Find[T comparable](s []T, first, last int, value T) int {
	for first != last && s[first] != value {
		first++
	}
	return first
}
