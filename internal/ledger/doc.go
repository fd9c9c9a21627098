// Package ledger is the computational core of Splitledger: it turns a
// snapshot of expenses, per-user shares, and recorded settlements into
// per-member net balances and a settlement plan that would zero the group out.
//
// Every function here is pure and synchronous: no I/O, no shared state, no
// mutation of inputs. Callers hand in a consistent snapshot (the store reads
// it inside one transaction) and may invoke any function from any number of
// goroutines. Running the same computation twice on the same snapshot yields
// identical output.
//
// All amounts are int64 minor units (cents). The package never touches
// floating point; fx conversion happens upstream, once per expense, before
// rows reach this package.
//
// The package consumes its own narrow row types (Member, Expense, Share,
// Settlement) rather than the persisted models, so it stays decoupled from
// storage concerns and trivially testable.
package ledger
