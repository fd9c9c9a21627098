package ledger

import "sort"

// Member is a group member with the minimal information needed for balance
// calculations.
type Member struct {
	UserID string
	Active bool
}

// Expense is an expense row with the minimal information needed for balance
// calculations. BaseAmountMinor is the amount already converted to the
// group's base currency.
type Expense struct {
	ID              string
	PayerID         string
	BaseAmountMinor int64
}

// Share is one user's portion of one expense, in the group's base currency.
type Share struct {
	ExpenseID  string
	UserID     string
	ShareMinor int64
	Included   bool
}

// Settlement is a direct payment between two members.
type Settlement struct {
	FromUserID  string
	ToUserID    string
	AmountMinor int64
}

// NetBalance is the derived balance for one active member. Positive
// NetBalanceMinor means the group owes them; negative means they owe the
// group.
type NetBalance struct {
	UserID                   string
	TotalPaidMinor           int64
	TotalOwedMinor           int64
	SettlementsPaidMinor     int64
	SettlementsReceivedMinor int64
	NetBalanceMinor          int64
}

// Aggregate folds one group's rows into a net balance per active member,
// ordered by user ID. Every active member appears in the output, with all
// fields zero if they have no activity.
//
// Filtering rules:
//   - An expense whose payer is inactive is void in its entirety: neither the
//     payment nor any of its shares counts, even shares belonging to active
//     members. An expense is atomic; if its payer is invalid the whole row is
//     dropped.
//   - Shares with Included = false, or whose user is inactive, are dropped.
//   - Settlements touching an inactive member on either side are dropped.
//
// Malformed rows are handled by these filters, never by errors: by the time
// data reaches aggregation it has already passed the write-time share gate.
func Aggregate(members []Member, expenses []Expense, shares []Share, settlements []Settlement) []NetBalance {
	active := make(map[string]*NetBalance, len(members))
	for _, m := range members {
		if m.Active {
			active[m.UserID] = &NetBalance{UserID: m.UserID}
		}
	}

	// Expenses that survive the inactive-payer filter; their IDs gate the
	// share pass below.
	counted := make(map[string]bool, len(expenses))
	for _, e := range expenses {
		bal, ok := active[e.PayerID]
		if !ok {
			continue
		}
		counted[e.ID] = true
		bal.TotalPaidMinor += e.BaseAmountMinor
	}

	for _, sh := range shares {
		if !sh.Included || !counted[sh.ExpenseID] {
			continue
		}
		bal, ok := active[sh.UserID]
		if !ok {
			continue
		}
		bal.TotalOwedMinor += sh.ShareMinor
	}

	for _, s := range settlements {
		from, okFrom := active[s.FromUserID]
		to, okTo := active[s.ToUserID]
		if !okFrom || !okTo {
			continue
		}
		from.SettlementsPaidMinor += s.AmountMinor
		to.SettlementsReceivedMinor += s.AmountMinor
	}

	balances := make([]NetBalance, 0, len(active))
	for _, bal := range active {
		bal.NetBalanceMinor = bal.TotalPaidMinor - bal.TotalOwedMinor +
			bal.SettlementsPaidMinor - bal.SettlementsReceivedMinor
		balances = append(balances, *bal)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].UserID < balances[j].UserID
	})
	return balances
}
