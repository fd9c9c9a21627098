package models

// Expense represents one payment made by a member on behalf of the group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// PayerID is the member who paid the expense.
	PayerID string

	// Description is a human-readable label (e.g., "Groceries").
	Description string

	// Currency is the ISO 4217 code the expense was paid in. Empty means
	// the group's base currency.
	Currency string

	// AmountMinor is the amount paid, in minor units of Currency.
	AmountMinor int64

	// BaseAmountMinor is the amount converted to the group's base currency,
	// computed once at write time as round(AmountMinor * fxRate). Balance
	// aggregation uses this field only.
	BaseAmountMinor int64

	// Shares is how BaseAmountMinor is divided among members. Shares always
	// sum exactly to BaseAmountMinor; the write gate rejects anything else.
	Shares []Share

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// CreatedBy is the user who recorded the expense.
	CreatedBy string
}

// Share represents one user's portion of one expense, in the group's base
// currency.
type Share struct {
	// ExpenseID is the expense this share belongs to.
	ExpenseID string

	// UserID is the member who owes this share.
	UserID string

	// ShareMinor is the owed amount in minor units. Never negative.
	ShareMinor int64

	// IsIncluded marks whether the share counts toward balances. Excluded
	// shares are kept for audit but ignored by aggregation.
	IsIncluded bool
}
