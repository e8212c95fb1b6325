package util

import (
	"strings"

	"github.com/rhonix/rboot/util/set"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func Keys[K comparable, V any](m map[K]V, filter ...func(k K) bool) []K {
	if len(filter) == 0 {
		return maps.Keys(m)
	}
	ret := make([]K, 0, len(m))
	for k := range m {
		if filter[0](k) {
			ret = append(ret, k)
		}
	}
	return ret
}

// SortedKeys returns keys in ascending order, i.e. deterministic
func SortedKeys[K constraints.Ordered, V any](m map[K]V, filter ...func(k K) bool) []K {
	ret := Keys(m, filter...)
	slices.Sort(ret)
	return ret
}

func KeySet[K comparable, V any](m map[K]V) set.Set[K] {
	return set.New[K](maps.Keys(m)...)
}

func FilterSlice[T any](slice []T, filter func(el T) bool) []T {
	ret := make([]T, 0, len(slice))
	for _, el := range slice {
		if filter(el) {
			ret = append(ret, el)
		}
	}
	return ret
}

var prn = message.NewPrinter(language.English)

// GoThousands formats integer with '_' as thousands separator, like Go literals
func GoThousands[T constraints.Integer](v T) string {
	return strings.Replace(prn.Sprintf("%d", v), ",", "_", -1)
}

// Th is a short alias of GoThousands
func Th[T constraints.Integer](v T) string {
	return GoThousands(v)
}
