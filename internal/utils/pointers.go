package utils

// Ptr returns a pointer to v, for optional fields such as max_age or discovery flags.
func Ptr[T any](v T) *T {
	return &v
}

// ValueOr dereferences v, returning def when v is nil.
func ValueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
