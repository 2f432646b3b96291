package a

import "sort"

// Sorted sorts xs in place and returns it.
func Sorted(xs []string) []string {
	sort.Strings(xs)
	return xs
}
