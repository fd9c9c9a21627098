package ledger

import "fmt"

// SplitEvenly distributes totalMinor across n parts so that the parts sum
// exactly to totalMinor and no two parts differ by more than one minor unit.
// The first remainder parts each carry the extra unit.
//
// totalMinor may be negative; the split floors toward negative infinity so
// the remainder stays non-negative. n must be at least 1.
func SplitEvenly(totalMinor int64, n int) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: split count must be positive, got %d", ErrInvalidArgument, n)
	}

	base := totalMinor / int64(n)
	if totalMinor%int64(n) != 0 && totalMinor < 0 {
		base-- // floor division, Go truncates toward zero
	}
	remainder := totalMinor - base*int64(n)

	parts := make([]int64, n)
	for i := range parts {
		parts[i] = base
		if int64(i) < remainder {
			parts[i]++
		}
	}
	return parts, nil
}
