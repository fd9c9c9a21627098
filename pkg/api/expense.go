package api

// ShareInput is one user's proposed portion of a new or edited expense, in
// the group's base currency minor units.
type ShareInput struct {
	UserID     string `json:"user_id"`
	ShareMinor int64  `json:"share_minor"`
}

// Share is one user's persisted portion of an expense.
type Share struct {
	UserID     string `json:"user_id"`
	ShareMinor int64  `json:"share_minor"`
	IsIncluded bool   `json:"is_included"`
}

// Expense is one payment made on behalf of the group. AmountMinor is in
// Currency; BaseAmountMinor is the fx-converted amount the ledger uses.
type Expense struct {
	ID              string  `json:"id"`
	GroupID         string  `json:"group_id"`
	PayerID         string  `json:"payer_id"`
	Description     string  `json:"description"`
	Currency        string  `json:"currency,omitempty"`
	AmountMinor     int64   `json:"amount_minor"`
	BaseAmountMinor int64   `json:"base_amount_minor"`
	Shares          []Share `json:"shares"`
	CreatedAt       int64   `json:"created_at"`
	CreatedBy       string  `json:"created_by"`
}

// CreateExpenseRequest records a new expense. FxRate converts AmountMinor
// into the group's base currency (0 means 1.0, i.e. already base currency).
// An empty Shares list asks the server to split evenly among the group's
// active members.
type CreateExpenseRequest struct {
	GroupID     string       `json:"group_id"`
	PayerID     string       `json:"payer_id"`
	Description string       `json:"description"`
	Currency    string       `json:"currency,omitempty"`
	AmountMinor int64        `json:"amount_minor"`
	FxRate      float64      `json:"fx_rate,omitempty"`
	Shares      []ShareInput `json:"shares,omitempty"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

// UpdateExpenseRequest rewrites an expense. Semantics match
// CreateExpenseRequest; the share list is replaced wholesale.
type UpdateExpenseRequest struct {
	ExpenseID   string       `json:"expense_id"`
	PayerID     string       `json:"payer_id"`
	Description string       `json:"description"`
	Currency    string       `json:"currency,omitempty"`
	AmountMinor int64        `json:"amount_minor"`
	FxRate      float64      `json:"fx_rate,omitempty"`
	Shares      []ShareInput `json:"shares,omitempty"`
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

type ListExpensesByGroupRequest struct {
	GroupID string `json:"group_id"`
}

type ListExpensesByGroupResponse struct {
	Expenses []*Expense `json:"expenses"`
}
