package util

// RotateRight returns a copy of s with the last element moved to the front.
// An empty s is returned as is.
func RotateRight[T any](s []T) []T {
	if len(s) == 0 {
		return s
	}

	rotated := make([]T, len(s))
	rotated[0] = s[len(s)-1]
	copy(rotated[1:], s[:len(s)-1])

	return rotated
}
