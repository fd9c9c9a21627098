package ledger

import (
	"errors"
	"fmt"
)

// MaxShares caps how many shares one expense may carry. This is a guard
// against unbounded request payloads, not a domain rule.
const MaxShares = 100

var (
	// ErrInvalidArgument marks malformed input: negative amounts, empty
	// identifiers, empty or oversized share lists.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPayerNotParticipant means the payer does not appear among the
	// expense's own shares.
	ErrPayerNotParticipant = errors.New("payer is not among the expense shares")

	// ErrShareSumMismatch means the shares do not sum to the expense amount.
	ErrShareSumMismatch = errors.New("shares do not sum to the expense amount")
)

// ValidateShares checks a proposed set of shares against the expense amount
// before anything is written. On success it returns the shares unchanged:
// validation is a pure guard, not a transform.
//
// There is no rounding correction here. Callers that derive shares from
// SplitEvenly or a user-entered custom split must absorb any remainder
// themselves before calling; a sum off by even one minor unit is rejected.
func ValidateShares(amountMinor int64, payerID string, shares []Share) ([]Share, error) {
	if amountMinor < 0 {
		return nil, fmt.Errorf("%w: expense amount must be non-negative, got %d", ErrInvalidArgument, amountMinor)
	}
	if payerID == "" {
		return nil, fmt.Errorf("%w: payer id is required", ErrInvalidArgument)
	}
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: at least one share is required", ErrInvalidArgument)
	}
	if len(shares) > MaxShares {
		return nil, fmt.Errorf("%w: too many shares (%d > %d)", ErrInvalidArgument, len(shares), MaxShares)
	}

	var sum int64
	payerFound := false
	for _, sh := range shares {
		if sh.UserID == "" {
			return nil, fmt.Errorf("%w: share user id is required", ErrInvalidArgument)
		}
		if sh.ShareMinor < 0 {
			return nil, fmt.Errorf("%w: share for %q must be non-negative, got %d", ErrInvalidArgument, sh.UserID, sh.ShareMinor)
		}
		if sh.UserID == payerID {
			payerFound = true
		}
		sum += sh.ShareMinor
	}

	if !payerFound {
		return nil, fmt.Errorf("%w: %q", ErrPayerNotParticipant, payerID)
	}
	if sum != amountMinor {
		return nil, fmt.Errorf("%w: shares sum to %d, expense is %d", ErrShareSumMismatch, sum, amountMinor)
	}
	return shares, nil
}
