// Package xslices provides the few generic slice and map helpers the rest of
// the repository needs beyond the standard slices package.
package xslices

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// At returns the element at the given index, where a negative index counts
// from the end of the slice.
func At[T any](slice []T, index int) T {
	if index < 0 {
		index = len(slice) + index
	}
	return slice[index]
}

// Last returns the last element of a slice.
func Last[T any](slice []T) T {
	return At(slice, -1)
}

// Map applies fn to each element of from, returning the slice of results.
func Map[In, Out any](from []In, fn func(In) Out) []Out {
	to := make([]Out, len(from))
	for i, elem := range from {
		to[i] = fn(elem)
	}
	return to
}

// Keys returns the keys of a map, in no particular order.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of a map in increasing order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}
