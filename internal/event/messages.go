package event

// ExpenseCreatedMessage is a lightweight notification that an expense was
// written. Consumers fetch the full row themselves; carrying only IDs keeps
// the broker out of the consistency story.
type ExpenseCreatedMessage struct {
	ExpenseID       string `json:"expense_id"`
	GroupID         string `json:"group_id"`
	PayerID         string `json:"payer_id"`
	BaseAmountMinor int64  `json:"base_amount_minor"`
	CreatedAt       int64  `json:"created_at"`
}

// SettlementRecordedMessage notifies that a settlement was recorded.
type SettlementRecordedMessage struct {
	SettlementID string `json:"settlement_id"`
	GroupID      string `json:"group_id"`
	FromUserID   string `json:"from_user_id"`
	ToUserID     string `json:"to_user_id"`
	AmountMinor  int64  `json:"amount_minor"`
	CreatedAt    int64  `json:"created_at"`
}
