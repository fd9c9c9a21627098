// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no
	// such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when no such
	// user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group and its initial members.
	// The group's ID and CreatedAt fields are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its full membership roster.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups the given user is an active member of.
	ListGroups(ctx context.Context, userID string) ([]*models.Group, error)

	// UpdateGroup renames an existing group.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group and all of its rows.
	DeleteGroup(ctx context.Context, groupID string) error

	// AddGroupMembers adds members to a group, reactivating any that were
	// previously deactivated.
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error

	// DeactivateGroupMember flips a member's active flag off. The member's
	// historical rows stay in place.
	DeactivateGroupMember(ctx context.Context, groupID, userID string) error

	// CreateExpense persists an expense together with its shares.
	// The expense's ID and CreatedAt fields are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense with its shares.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an expense and its shares atomically.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense and its shares.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpensesByGroup retrieves all expenses for a group, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// CreateSettlement persists a new settlement.
	// The settlement's ID and CreatedAt fields are populated by the store.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// GetSettlement retrieves a settlement by ID.
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)

	// ListSettlementsByGroup retrieves all settlements for a group, newest
	// first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// DeleteSettlement removes a settlement by ID.
	DeleteSettlement(ctx context.Context, settlementID string) error

	// LedgerSnapshot reads the group's members, expenses (with shares), and
	// settlements inside a single read transaction, so balance computation
	// never observes a partial write.
	LedgerSnapshot(ctx context.Context, groupID string) (*models.Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
