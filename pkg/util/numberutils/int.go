package numberutils

// ClampInt bounds n to [lo, hi].
func ClampInt(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
