package gridsearch

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used as a cell value or an edge cost.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}

// isInf reports whether v is positive infinity. Integer types never are.
func isInf[T Number](v T) bool {
	return math.IsInf(float64(v), 1)
}

// Digit returns the digit value of the rune.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit: %q", r)
	}
	return int(r - '0'), nil
}

// Digits returns the individual digits of the string.
func Digits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for _, c := range line {
		d, err := Digit(c)
		if err != nil {
			return nil, err
		}
		in = append(in, d)
	}
	return in, nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	MustDo(err)
	return v
}
