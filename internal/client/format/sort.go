package format

import (
	"cmp"
	"slices"
	"strings"
)

type Order int

const (
	Asc Order = iota
	Desc
)

// SortByNumber sorts items in place by key.
func SortByNumber[T any](items []T, key func(T) float64, order Order) {
	slices.SortStableFunc(items, func(a, b T) int {
		if order == Desc {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
}

// SortByString sorts items in place by key, ignoring case.
func SortByString[T any](items []T, key func(T) string, order Order) {
	slices.SortStableFunc(items, func(a, b T) int {
		x, y := strings.ToLower(key(a)), strings.ToLower(key(b))
		if order == Desc {
			return strings.Compare(y, x)
		}
		return strings.Compare(x, y)
	})
}
