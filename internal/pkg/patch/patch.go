package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// PositiveOr returns v when it is set and > 0, otherwise fallback.
func PositiveOr(v *int, fallback int) int {
	if v != nil && *v > 0 {
		return *v
	}
	return fallback
}
