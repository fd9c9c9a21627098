package models

// Settlement represents a direct payment between group members to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromUserID is the member who paid (debtor settling up).
	FromUserID string

	// ToUserID is the member who received payment (creditor being paid).
	ToUserID string

	// AmountMinor is the payment amount in the group's base currency minor
	// units. Always positive.
	AmountMinor int64

	// Note is an optional description for the settlement.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64

	// CreatedBy is the user who recorded this settlement.
	CreatedBy string
}

// Snapshot is one consistent read of everything the ledger engine needs for
// a single group: the roster plus every expense, share, and settlement. The
// store produces it inside one read transaction so aggregation never observes
// a partial write.
type Snapshot struct {
	GroupID     string
	Members     []Member
	Expenses    []Expense
	Settlements []Settlement
}
