package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmynk/splitledger/internal/models"
)

// CreateExpense persists an expense together with its shares.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, payer_id, description, currency, amount_minor, base_amount_minor, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.PayerID, expense.Description, expense.Currency,
		expense.AmountMinor, expense.BaseAmountMinor, expense.CreatedAt, expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertShares(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense with its shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, payer_id, description, currency, amount_minor, base_amount_minor, created_at, created_by
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.PayerID, &expense.Description, &expense.Currency,
		&expense.AmountMinor, &expense.BaseAmountMinor, &expense.CreatedAt, &expense.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense not found: %s", expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	expense.Shares, err = queryShares(ctx, s.db, expenseID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense replaces an expense and its shares atomically.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses
		 SET payer_id = ?, description = ?, currency = ?, amount_minor = ?, base_amount_minor = ?
		 WHERE id = ?`,
		expense.PayerID, expense.Description, expense.Currency,
		expense.AmountMinor, expense.BaseAmountMinor, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense not found: %s", expense.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_shares WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear expense shares: %w", err)
	}
	if err := insertShares(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense; its shares cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense not found: %s", expenseID)
	}
	return nil
}

// ListExpensesByGroup retrieves all expenses for a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	expenses, err := queryExpenses(ctx, s.db, groupID)
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func insertShares(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for i := range expense.Shares {
		sh := &expense.Shares[i]
		sh.ExpenseID = expense.ID
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, user_id, share_minor, is_included) VALUES (?, ?, ?, ?)",
			sh.ExpenseID, sh.UserID, sh.ShareMinor, sh.IsIncluded,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}
	return nil
}

// queryExpenses reads a group's expenses, newest first, shares included.
func queryExpenses(ctx context.Context, q querier, groupID string) ([]*models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, group_id, payer_id, description, currency, amount_minor, base_amount_minor, created_at, created_by
		 FROM expenses WHERE group_id = ? ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.PayerID, &expense.Description,
			&expense.Currency, &expense.AmountMinor, &expense.BaseAmountMinor,
			&expense.CreatedAt, &expense.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		expense.Shares, err = queryShares(ctx, q, expense.ID)
		if err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

// queryShares reads one expense's shares, ordered by user ID.
func queryShares(ctx context.Context, q querier, expenseID string) ([]models.Share, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT expense_id, user_id, share_minor, is_included FROM expense_shares WHERE expense_id = ? ORDER BY user_id",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	var shares []models.Share
	for rows.Next() {
		var sh models.Share
		if err := rows.Scan(&sh.ExpenseID, &sh.UserID, &sh.ShareMinor, &sh.IsIncluded); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		shares = append(shares, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}
	return shares, nil
}
