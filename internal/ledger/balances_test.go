package ledger

import (
	"reflect"
	"testing"
)

func activeMembers(ids ...string) []Member {
	members := make([]Member, len(ids))
	for i, id := range ids {
		members[i] = Member{UserID: id, Active: true}
	}
	return members
}

func balanceByUser(t *testing.T, balances []NetBalance, userID string) NetBalance {
	t.Helper()
	for _, b := range balances {
		if b.UserID == userID {
			return b
		}
	}
	t.Fatalf("no balance for user %q", userID)
	return NetBalance{}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name        string
		members     []Member
		expenses    []Expense
		shares      []Share
		settlements []Settlement
		wantNet     map[string]int64
	}{
		{
			name:    "one expense split evenly between two",
			members: activeMembers("alice", "bob"),
			expenses: []Expense{
				{ID: "e1", PayerID: "alice", BaseAmountMinor: 2000},
			},
			shares: []Share{
				{ExpenseID: "e1", UserID: "alice", ShareMinor: 1000, Included: true},
				{ExpenseID: "e1", UserID: "bob", ShareMinor: 1000, Included: true},
			},
			wantNet: map[string]int64{"alice": 1000, "bob": -1000},
		},
		{
			name:    "one payer three ways",
			members: activeMembers("alice", "bob", "carol"),
			expenses: []Expense{
				{ID: "e1", PayerID: "alice", BaseAmountMinor: 3000},
			},
			shares: []Share{
				{ExpenseID: "e1", UserID: "alice", ShareMinor: 1000, Included: true},
				{ExpenseID: "e1", UserID: "bob", ShareMinor: 1000, Included: true},
				{ExpenseID: "e1", UserID: "carol", ShareMinor: 1000, Included: true},
			},
			wantNet: map[string]int64{"alice": 2000, "bob": -1000, "carol": -1000},
		},
		{
			name:    "two expenses crossing payers",
			members: activeMembers("alice", "bob"),
			expenses: []Expense{
				{ID: "e1", PayerID: "alice", BaseAmountMinor: 2000},
				{ID: "e2", PayerID: "bob", BaseAmountMinor: 1000},
			},
			shares: []Share{
				{ExpenseID: "e1", UserID: "alice", ShareMinor: 1000, Included: true},
				{ExpenseID: "e1", UserID: "bob", ShareMinor: 1000, Included: true},
				{ExpenseID: "e2", UserID: "alice", ShareMinor: 500, Included: true},
				{ExpenseID: "e2", UserID: "bob", ShareMinor: 500, Included: true},
			},
			wantNet: map[string]int64{"alice": 500, "bob": -500},
		},
		{
			name:    "settlement clears debt",
			members: activeMembers("alice", "bob"),
			expenses: []Expense{
				{ID: "e1", PayerID: "alice", BaseAmountMinor: 2000},
			},
			shares: []Share{
				{ExpenseID: "e1", UserID: "alice", ShareMinor: 1000, Included: true},
				{ExpenseID: "e1", UserID: "bob", ShareMinor: 1000, Included: true},
			},
			settlements: []Settlement{
				{FromUserID: "bob", ToUserID: "alice", AmountMinor: 1000},
			},
			wantNet: map[string]int64{"alice": 0, "bob": 0},
		},
		{
			name:    "excluded share does not count",
			members: activeMembers("alice", "bob"),
			expenses: []Expense{
				{ID: "e1", PayerID: "alice", BaseAmountMinor: 2000},
			},
			shares: []Share{
				{ExpenseID: "e1", UserID: "alice", ShareMinor: 1000, Included: true},
				{ExpenseID: "e1", UserID: "bob", ShareMinor: 1000, Included: false},
			},
			wantNet: map[string]int64{"alice": 1000, "bob": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := Aggregate(tt.members, tt.expenses, tt.shares, tt.settlements)

			if len(balances) != len(tt.wantNet) {
				t.Fatalf("got %d balances, want %d", len(balances), len(tt.wantNet))
			}
			for userID, want := range tt.wantNet {
				got := balanceByUser(t, balances, userID)
				if got.NetBalanceMinor != want {
					t.Errorf("%s net = %d, want %d", userID, got.NetBalanceMinor, want)
				}
			}
		})
	}
}

// Every active member appears in the output, even with no activity at all.
func TestAggregateZeroActivityPresence(t *testing.T) {
	members := activeMembers("alice", "bob", "idle")
	expenses := []Expense{{ID: "e1", PayerID: "alice", BaseAmountMinor: 600}}
	shares := []Share{
		{ExpenseID: "e1", UserID: "alice", ShareMinor: 300, Included: true},
		{ExpenseID: "e1", UserID: "bob", ShareMinor: 300, Included: true},
	}

	balances := Aggregate(members, expenses, shares, nil)
	if len(balances) != 3 {
		t.Fatalf("got %d balances, want 3", len(balances))
	}

	idle := balanceByUser(t, balances, "idle")
	if idle != (NetBalance{UserID: "idle"}) {
		t.Errorf("idle member balance = %+v, want all-zero", idle)
	}
}

func TestAggregateInactiveExclusion(t *testing.T) {
	members := []Member{
		{UserID: "alice", Active: true},
		{UserID: "bob", Active: true},
		{UserID: "carol", Active: false},
	}

	t.Run("inactive member's share is dropped", func(t *testing.T) {
		expenses := []Expense{{ID: "e1", PayerID: "alice", BaseAmountMinor: 3000}}
		shares := []Share{
			{ExpenseID: "e1", UserID: "alice", ShareMinor: 1000, Included: true},
			{ExpenseID: "e1", UserID: "bob", ShareMinor: 1000, Included: true},
			{ExpenseID: "e1", UserID: "carol", ShareMinor: 1000, Included: true},
		}

		balances := Aggregate(members, expenses, shares, nil)
		if len(balances) != 2 {
			t.Fatalf("got %d balances, want 2 (carol must not appear)", len(balances))
		}
		// Alice still paid the full 3000; only carol's owed share is dropped.
		alice := balanceByUser(t, balances, "alice")
		if alice.TotalPaidMinor != 3000 {
			t.Errorf("alice paid = %d, want 3000", alice.TotalPaidMinor)
		}
		if alice.TotalOwedMinor != 1000 {
			t.Errorf("alice owed = %d, want 1000", alice.TotalOwedMinor)
		}
		if alice.NetBalanceMinor != 2000 {
			t.Errorf("alice net = %d, want 2000", alice.NetBalanceMinor)
		}
		if got := balanceByUser(t, balances, "bob").NetBalanceMinor; got != -1000 {
			t.Errorf("bob net = %d, want -1000", got)
		}
	})

	t.Run("inactive payer voids the whole expense", func(t *testing.T) {
		expenses := []Expense{
			{ID: "e1", PayerID: "carol", BaseAmountMinor: 2000},
			{ID: "e2", PayerID: "alice", BaseAmountMinor: 1000},
		}
		shares := []Share{
			// e1's shares belong to active members but die with the expense.
			{ExpenseID: "e1", UserID: "alice", ShareMinor: 1000, Included: true},
			{ExpenseID: "e1", UserID: "bob", ShareMinor: 1000, Included: true},
			{ExpenseID: "e2", UserID: "alice", ShareMinor: 500, Included: true},
			{ExpenseID: "e2", UserID: "bob", ShareMinor: 500, Included: true},
		}

		balances := Aggregate(members, expenses, shares, nil)
		if got := balanceByUser(t, balances, "alice").NetBalanceMinor; got != 500 {
			t.Errorf("alice net = %d, want 500 (only e2 counts)", got)
		}
		if got := balanceByUser(t, balances, "bob").NetBalanceMinor; got != -500 {
			t.Errorf("bob net = %d, want -500 (only e2 counts)", got)
		}
	})

	t.Run("settlement touching inactive member is dropped", func(t *testing.T) {
		settlements := []Settlement{
			{FromUserID: "bob", ToUserID: "carol", AmountMinor: 700},
			{FromUserID: "carol", ToUserID: "alice", AmountMinor: 700},
		}

		balances := Aggregate(members, nil, nil, settlements)
		for _, b := range balances {
			if b.NetBalanceMinor != 0 {
				t.Errorf("%s net = %d, want 0", b.UserID, b.NetBalanceMinor)
			}
		}
	})
}

// Balance conservation: every unit paid is owed by someone, every settlement
// credits one account exactly as it debits another, so nets sum to zero.
func TestAggregateConservation(t *testing.T) {
	members := activeMembers("alice", "bob", "carol", "dave")
	expenses := []Expense{
		{ID: "e1", PayerID: "alice", BaseAmountMinor: 1001},
		{ID: "e2", PayerID: "bob", BaseAmountMinor: 2500},
		{ID: "e3", PayerID: "carol", BaseAmountMinor: 37},
	}
	shares := []Share{
		{ExpenseID: "e1", UserID: "alice", ShareMinor: 334, Included: true},
		{ExpenseID: "e1", UserID: "bob", ShareMinor: 334, Included: true},
		{ExpenseID: "e1", UserID: "carol", ShareMinor: 333, Included: true},
		{ExpenseID: "e2", UserID: "bob", ShareMinor: 1250, Included: true},
		{ExpenseID: "e2", UserID: "dave", ShareMinor: 1250, Included: true},
		{ExpenseID: "e3", UserID: "alice", ShareMinor: 19, Included: true},
		{ExpenseID: "e3", UserID: "carol", ShareMinor: 18, Included: true},
	}
	settlements := []Settlement{
		{FromUserID: "dave", ToUserID: "bob", AmountMinor: 600},
		{FromUserID: "carol", ToUserID: "alice", AmountMinor: 100},
	}

	balances := Aggregate(members, expenses, shares, settlements)

	var sum int64
	for _, b := range balances {
		sum += b.NetBalanceMinor
		want := b.TotalPaidMinor - b.TotalOwedMinor + b.SettlementsPaidMinor - b.SettlementsReceivedMinor
		if b.NetBalanceMinor != want {
			t.Errorf("%s net = %d, want %d from components", b.UserID, b.NetBalanceMinor, want)
		}
	}
	if sum != 0 {
		t.Errorf("net balances sum to %d, want 0", sum)
	}
}

func TestAggregateOrderedAndIdempotent(t *testing.T) {
	members := []Member{
		{UserID: "zoe", Active: true},
		{UserID: "alice", Active: true},
		{UserID: "mark", Active: true},
	}
	expenses := []Expense{{ID: "e1", PayerID: "zoe", BaseAmountMinor: 900}}
	shares := []Share{
		{ExpenseID: "e1", UserID: "zoe", ShareMinor: 300, Included: true},
		{ExpenseID: "e1", UserID: "alice", ShareMinor: 300, Included: true},
		{ExpenseID: "e1", UserID: "mark", ShareMinor: 300, Included: true},
	}

	first := Aggregate(members, expenses, shares, nil)
	second := Aggregate(members, expenses, shares, nil)

	wantOrder := []string{"alice", "mark", "zoe"}
	for i, b := range first {
		if b.UserID != wantOrder[i] {
			t.Errorf("balance %d is %s, want %s", i, b.UserID, wantOrder[i])
		}
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
