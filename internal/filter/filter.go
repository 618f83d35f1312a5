// Package filter provides composable predicates over entity fields.
//
// A filter built with an empty search list matches nothing, so callers should
// only attach the filters they intend to constrain a query by.
package filter

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

// Filter reports whether an entity satisfies a predicate.
type Filter[T any] interface {
	Apply(item T) bool
}

// Func adapts a plain function into a Filter.
type Func[T any] func(item T) bool

func (f Func[T]) Apply(item T) bool {
	return f(item)
}

// All reports whether every filter matches the item. No filters matches everything.
func All[T any](item T, filters ...Filter[T]) bool {
	for _, f := range filters {
		if !f.Apply(item) {
			return false
		}
	}
	return true
}

// ParseBigInt parses a hex (0x prefixed) or decimal string of at most 256 bits.
func ParseBigInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if strings.HasPrefix(s, "0X") {
		s = "0x" + s[2:]
	}
	return math.ParseBig256(s)
}

// BigIntEqual compares two numeric strings by value, so "0x01" equals "0x1".
func BigIntEqual(a, b string) bool {
	x, ok := ParseBigInt(a)
	if !ok {
		return false
	}
	y, ok := ParseBigInt(b)
	if !ok {
		return false
	}
	return x.Cmp(y) == 0
}

// CanonicalHex renders a numeric string as lower case 0x hex without leading
// zeros. Unparsable input is returned lower cased.
func CanonicalHex(s string) string {
	v, ok := ParseBigInt(s)
	if !ok {
		return strings.ToLower(s)
	}
	return "0x" + v.Text(16)
}

// BigIntFilter matches when the field parses to one of the searched values.
type BigIntFilter[T any] struct {
	search map[string]struct{}
	value  func(T) string
}

func NewBigIntFilter[T any](values []string, value func(T) string) *BigIntFilter[T] {
	search := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n, ok := ParseBigInt(v); ok {
			search[n.Text(16)] = struct{}{}
		}
	}
	return &BigIntFilter[T]{
		search: search,
		value:  value,
	}
}

func (f *BigIntFilter[T]) Apply(item T) bool {
	n, ok := ParseBigInt(f.value(item))
	if !ok {
		return false
	}
	_, found := f.search[n.Text(16)]
	return found
}

// StringFilter matches case-insensitively against a set of strings.
type StringFilter[T any] struct {
	search map[string]struct{}
	value  func(T) string
}

func NewStringFilter[T any](values []string, value func(T) string) *StringFilter[T] {
	search := make(map[string]struct{}, len(values))
	for _, v := range values {
		search[strings.ToLower(v)] = struct{}{}
	}
	return &StringFilter[T]{
		search: search,
		value:  value,
	}
}

func (f *StringFilter[T]) Apply(item T) bool {
	_, found := f.search[strings.ToLower(f.value(item))]
	return found
}

// Len returns the number of searched values.
func (f *StringFilter[T]) Len() int {
	return len(f.search)
}

// NumberFilter matches when the field is greater than or equal to the threshold.
type NumberFilter[T any] struct {
	threshold int64
	value     func(T) int64
}

func NewNumberFilter[T any](threshold int64, value func(T) int64) *NumberFilter[T] {
	return &NumberFilter[T]{
		threshold: threshold,
		value:     value,
	}
}

func (f *NumberFilter[T]) Apply(item T) bool {
	return f.value(item) >= f.threshold
}
