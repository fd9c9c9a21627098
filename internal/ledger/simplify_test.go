package ledger

import (
	"reflect"
	"testing"
)

func netBalances(nets map[string]int64) []NetBalance {
	balances := make([]NetBalance, 0, len(nets))
	for userID, net := range nets {
		balances = append(balances, NetBalance{UserID: userID, NetBalanceMinor: net})
	}
	return balances
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		nets map[string]int64
		want []Transfer
	}{
		{
			name: "single debtor single creditor",
			nets: map[string]int64{"alice": 1000, "bob": -1000},
			want: []Transfer{
				{FromUserID: "bob", ToUserID: "alice", AmountMinor: 1000},
			},
		},
		{
			name: "two debtors one creditor",
			nets: map[string]int64{"alice": 2000, "bob": -1000, "carol": -1000},
			want: []Transfer{
				{FromUserID: "bob", ToUserID: "alice", AmountMinor: 1000},
				{FromUserID: "carol", ToUserID: "alice", AmountMinor: 1000},
			},
		},
		{
			name: "net after crossing expenses",
			nets: map[string]int64{"alice": 500, "bob": -500},
			want: []Transfer{
				{FromUserID: "bob", ToUserID: "alice", AmountMinor: 500},
			},
		},
		{
			name: "debtor split across creditors",
			nets: map[string]int64{"alice": 700, "bob": 300, "carol": -1000},
			want: []Transfer{
				{FromUserID: "carol", ToUserID: "alice", AmountMinor: 700},
				{FromUserID: "carol", ToUserID: "bob", AmountMinor: 300},
			},
		},
		{
			name: "zero balances dropped",
			nets: map[string]int64{"alice": 0, "bob": 0},
			want: nil,
		},
		{
			name: "empty input",
			nets: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(netBalances(tt.nets))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Simplify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Equal amounts are matched in user-ID order, so the plan does not depend on
// the order balances arrive in.
func TestSimplifyDeterministicTieBreak(t *testing.T) {
	forward := []NetBalance{
		{UserID: "alice", NetBalanceMinor: -500},
		{UserID: "bob", NetBalanceMinor: -500},
		{UserID: "carol", NetBalanceMinor: 500},
		{UserID: "dave", NetBalanceMinor: 500},
	}
	backward := []NetBalance{
		{UserID: "dave", NetBalanceMinor: 500},
		{UserID: "carol", NetBalanceMinor: 500},
		{UserID: "bob", NetBalanceMinor: -500},
		{UserID: "alice", NetBalanceMinor: -500},
	}

	want := []Transfer{
		{FromUserID: "alice", ToUserID: "carol", AmountMinor: 500},
		{FromUserID: "bob", ToUserID: "dave", AmountMinor: 500},
	}

	if got := Simplify(forward); !reflect.DeepEqual(got, want) {
		t.Errorf("forward order: got %+v, want %+v", got, want)
	}
	if got := Simplify(backward); !reflect.DeepEqual(got, want) {
		t.Errorf("backward order: got %+v, want %+v", got, want)
	}
}

// Simplifier totals: transfers sum to the total positive balance, every
// amount is strictly positive, and nobody pays themselves.
func TestSimplifyTotals(t *testing.T) {
	nets := map[string]int64{
		"alice": 2117,
		"bob":   -433,
		"carol": -1684,
		"dave":  950,
		"erin":  -950,
		"frank": 0,
	}
	balances := netBalances(nets)

	var totalCredit int64
	for _, net := range nets {
		if net > 0 {
			totalCredit += net
		}
	}

	transfers := Simplify(balances)

	var totalTransferred int64
	for _, tr := range transfers {
		if tr.AmountMinor <= 0 {
			t.Errorf("transfer %+v has non-positive amount", tr)
		}
		if tr.FromUserID == tr.ToUserID {
			t.Errorf("transfer %+v pays itself", tr)
		}
		totalTransferred += tr.AmountMinor
	}
	if totalTransferred != totalCredit {
		t.Errorf("transferred %d, want %d (total positive balance)", totalTransferred, totalCredit)
	}

	// At most m + n - 1 transfers for m debtors, n creditors.
	if len(transfers) > 3+2-1 {
		t.Errorf("got %d transfers, want at most 4", len(transfers))
	}

	// Same snapshot, same plan.
	again := Simplify(balances)
	if !reflect.DeepEqual(transfers, again) {
		t.Errorf("repeated simplification differs:\nfirst:  %+v\nsecond: %+v", transfers, again)
	}
}
