package api

// NetBalance is one active member's derived balance. Positive
// NetBalanceMinor means the group owes them; negative means they owe the
// group. NetBalanceMinor = TotalPaidMinor - TotalOwedMinor +
// SettlementsPaidMinor - SettlementsReceivedMinor.
type NetBalance struct {
	UserID                   string `json:"user_id"`
	TotalPaidMinor           int64  `json:"total_paid_minor"`
	TotalOwedMinor           int64  `json:"total_owed_minor"`
	SettlementsPaidMinor     int64  `json:"settlements_paid_minor"`
	SettlementsReceivedMinor int64  `json:"settlements_received_minor"`
	NetBalanceMinor          int64  `json:"net_balance_minor"`
}

// Transfer is one suggested payment in a settlement plan. Always positive,
// never self-directed.
type Transfer struct {
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	AmountMinor int64  `json:"amount_minor"`
}

// Settlement is a recorded direct payment between two members.
type Settlement struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	AmountMinor int64  `json:"amount_minor"`
	Note        string `json:"note,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	CreatedBy   string `json:"created_by"`
}

type GetGroupBalancesRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupBalancesResponse struct {
	Balances []NetBalance `json:"balances"`
}

type GetSettlementPlanRequest struct {
	GroupID string `json:"group_id"`
}

type GetSettlementPlanResponse struct {
	Transfers []Transfer `json:"transfers"`
}

type RecordSettlementRequest struct {
	GroupID     string `json:"group_id"`
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	AmountMinor int64  `json:"amount_minor"`
	Note        string `json:"note,omitempty"`
}

type RecordSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type ListSettlementsRequest struct {
	GroupID string `json:"group_id"`
}

type ListSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type DeleteSettlementRequest struct {
	SettlementID string `json:"settlement_id"`
}

type DeleteSettlementResponse struct{}
