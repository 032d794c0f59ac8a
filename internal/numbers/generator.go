package numbers

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

var (
	// ErrInvalidRange is returned when the maximum is less than the minimum,
	// or when the range is wider than the source can draw from
	ErrInvalidRange = errors.New("invalid range")

	// ErrNegativeCount is returned when a negative number of values is requested
	ErrNegativeCount = errors.New("count must not be negative")
)

// Source provides random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// WideSource is a Source that can also draw from ranges wider than math.MaxInt.
// *rand.Rand satisfies it.
type WideSource interface {
	Source
	Uint64() uint64
	Uint64N(n uint64) uint64
}

// NewSource returns a time-seeded pseudo-random source
func NewSource() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Populate returns count values drawn independently and uniformly from [minNum, maxNum]
func Populate(src Source, minNum, maxNum, count int) ([]int, error) {
	if maxNum < minNum {
		return nil, fmt.Errorf("%w: max %d is less than min %d", ErrInvalidRange, maxNum, minNum)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count=%d", ErrNegativeCount, count)
	}

	// Offset of maxNum from minNum; always fits in uint64
	diff := uint64(maxNum) - uint64(minNum)
	draw, err := drawer(src, diff)
	if err != nil {
		return nil, fmt.Errorf("%w: min=%d max=%d", err, minNum, maxNum)
	}

	values := make([]int, count)
	for i := range values {
		// Wrapping addition lands back inside [minNum, maxNum]
		values[i] = minNum + int(draw())
	}
	return values, nil
}

// drawer returns a function drawing uniformly from [0, diff]
func drawer(src Source, diff uint64) (func() uint64, error) {
	if diff < math.MaxInt {
		n := int(diff) + 1
		return func() uint64 { return uint64(src.IntN(n)) }, nil
	}

	wide, ok := src.(WideSource)
	if !ok {
		return nil, fmt.Errorf("%w: too wide for source", ErrInvalidRange)
	}
	if diff == math.MaxUint64 {
		return wide.Uint64, nil
	}
	return func() uint64 { return wide.Uint64N(diff + 1) }, nil
}
