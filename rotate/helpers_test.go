package rotate

func refLeft[T any](s []T, mid int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[mid:]...)
	return append(out, s[:mid]...)
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}
