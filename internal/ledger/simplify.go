package ledger

import "sort"

// Transfer is one suggested payment in a simplified settlement plan. It is
// distinct from a persisted Settlement: transfers are recomputed on demand
// and never stored.
type Transfer struct {
	FromUserID  string
	ToUserID    string
	AmountMinor int64
}

// Simplify turns a net-balance vector into an ordered list of transfers that
// would bring every balance to zero.
//
// The matching is greedy: debtors and creditors are sorted by descending
// amount (ties broken by user ID ascending, so output is deterministic
// regardless of input order) and walked with two pointers, each step paying
// min(debt, credit). For m debtors and n creditors this emits at most
// m + n - 1 transfers. That is not always the theoretical minimum; finding
// the true minimum-transaction plan is a hard combinatorial problem, and the
// greedy plan trades optimality for a simple, deterministic algorithm that
// is linear after the sort.
//
// Every emitted transfer has a strictly positive amount, and the amounts sum
// to the total positive balance. Zero balances are dropped up front.
func Simplify(balances []NetBalance) []Transfer {
	type party struct {
		userID string
		amount int64
	}

	var debtors, creditors []party
	for _, b := range balances {
		switch {
		case b.NetBalanceMinor < 0:
			debtors = append(debtors, party{b.UserID, -b.NetBalanceMinor})
		case b.NetBalanceMinor > 0:
			creditors = append(creditors, party{b.UserID, b.NetBalanceMinor})
		}
	}

	byAmountDesc := func(ps []party) func(i, j int) bool {
		return func(i, j int) bool {
			if ps[i].amount != ps[j].amount {
				return ps[i].amount > ps[j].amount
			}
			return ps[i].userID < ps[j].userID
		}
	}
	sort.Slice(debtors, byAmountDesc(debtors))
	sort.Slice(creditors, byAmountDesc(creditors))

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		pay := min(debtors[i].amount, creditors[j].amount)
		if pay > 0 {
			transfers = append(transfers, Transfer{
				FromUserID:  debtors[i].userID,
				ToUserID:    creditors[j].userID,
				AmountMinor: pay,
			})
		}
		debtors[i].amount -= pay
		creditors[j].amount -= pay
		if debtors[i].amount == 0 {
			i++
		}
		if creditors[j].amount == 0 {
			j++
		}
	}
	return transfers
}
