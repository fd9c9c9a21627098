// Package models defines the persisted domain models for Splitledger.
//
// All monetary amounts are int64 values in the currency's minor unit
// (cents for EUR/USD). No floating point is stored or computed on amounts;
// the only float in the system is the fx rate applied once, at write time,
// when an expense is converted into its group's base currency.
//
// # Models
//
//   - User: a registered account (email + bcrypt password hash)
//   - Group: a set of members who share expenses
//   - Member: one user's membership in a group, with an active flag
//   - Expense: one payment made on behalf of the group, with per-user shares
//   - Share: one user's portion of one expense
//   - Settlement: a direct payment between two members that clears debt
//
// # Design Principles
//
//  1. Members are referenced by opaque user IDs everywhere; display names and
//     emails live on User only and never enter balance computation.
//  2. Rows are created and deleted by the service layer; balances and
//     settlement plans are always derived from the current rows by
//     internal/ledger, never stored.
//  3. Deactivated members keep their rows (is_active = false) so that
//     historical expenses stay intact while aggregation excludes them.
package models
