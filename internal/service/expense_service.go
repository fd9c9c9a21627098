package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"connectrpc.com/connect"
	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/event"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	store  storage.Store
	events *event.Publisher // nil when no broker is configured
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend. events may be nil, in which case no notifications are published.
func NewExpenseService(store storage.Store, events *event.Publisher) *ExpenseService {
	return &ExpenseService{store: store, events: events}
}

// ledgerErr converts a validation error from the ledger engine into a
// connect error, keeping the sentinel chain intact for callers that inspect
// the message.
func ledgerErr(err error) error {
	if errors.Is(err, ledger.ErrInvalidArgument) ||
		errors.Is(err, ledger.ErrPayerNotParticipant) ||
		errors.Is(err, ledger.ErrShareSumMismatch) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// toBaseMinor converts a paid amount into the group's base currency. A zero
// fx rate means the amount is already in base currency.
func toBaseMinor(amountMinor int64, fxRate float64) (int64, error) {
	if fxRate == 0 {
		return amountMinor, nil
	}
	if fxRate < 0 {
		return 0, fmt.Errorf("%w: fx rate must be positive, got %v", ledger.ErrInvalidArgument, fxRate)
	}
	return int64(math.Round(float64(amountMinor) * fxRate)), nil
}

// resolveShares turns the request's share list into validated model shares.
// An empty list means an even split among the group's active members, with
// any remainder going to the first members in ID order.
func resolveShares(group *models.Group, payerID string, baseMinor int64, inputs []api.ShareInput) ([]models.Share, error) {
	active := map[string]bool{}
	for _, id := range group.ActiveMemberIDs() {
		active[id] = true
	}
	if !active[payerID] {
		return nil, fmt.Errorf("%w: payer %q is not an active member of group %s",
			ledger.ErrInvalidArgument, payerID, group.ID)
	}

	var proposed []ledger.Share
	if len(inputs) == 0 {
		ids := group.ActiveMemberIDs()
		parts, err := ledger.SplitEvenly(baseMinor, len(ids))
		if err != nil {
			return nil, err
		}
		for i, id := range ids {
			proposed = append(proposed, ledger.Share{UserID: id, ShareMinor: parts[i], Included: true})
		}
	} else {
		for _, in := range inputs {
			if in.UserID != "" && !active[in.UserID] {
				return nil, fmt.Errorf("%w: share user %q is not an active member of group %s",
					ledger.ErrInvalidArgument, in.UserID, group.ID)
			}
			proposed = append(proposed, ledger.Share{UserID: in.UserID, ShareMinor: in.ShareMinor, Included: true})
		}
	}

	validated, err := ledger.ValidateShares(baseMinor, payerID, proposed)
	if err != nil {
		return nil, err
	}

	shares := make([]models.Share, len(validated))
	for i, sh := range validated {
		shares[i] = models.Share{
			UserID:     sh.UserID,
			ShareMinor: sh.ShareMinor,
			IsIncluded: true,
		}
	}
	return shares, nil
}

// CreateExpense records a new expense after validating its shares.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("CreateExpense request received",
		"group_id", req.Msg.GroupID,
		"payer_id", req.Msg.PayerID,
		"amount_minor", req.Msg.AmountMinor,
	)

	group, err := requireMember(ctx, s.store, req.Msg.GroupID, userID)
	if err != nil {
		return nil, err
	}

	baseMinor, err := toBaseMinor(req.Msg.AmountMinor, req.Msg.FxRate)
	if err != nil {
		return nil, ledgerErr(err)
	}

	shares, err := resolveShares(group, req.Msg.PayerID, baseMinor, req.Msg.Shares)
	if err != nil {
		slog.Warn("CreateExpense rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, ledgerErr(err)
	}

	expense := &models.Expense{
		GroupID:         req.Msg.GroupID,
		PayerID:         req.Msg.PayerID,
		Description:     req.Msg.Description,
		Currency:        req.Msg.Currency,
		AmountMinor:     req.Msg.AmountMinor,
		BaseAmountMinor: baseMinor,
		Shares:          shares,
		CreatedBy:       userID,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "group_id", expense.GroupID)

	if s.events != nil {
		msg := &event.ExpenseCreatedMessage{
			ExpenseID:       expense.ID,
			GroupID:         expense.GroupID,
			PayerID:         expense.PayerID,
			BaseAmountMinor: expense.BaseAmountMinor,
			CreatedAt:       expense.CreatedAt,
		}
		if err := s.events.ExpenseCreated(ctx, msg); err != nil {
			slog.Warn("Failed to publish expense event", "expense_id", expense.ID, "error", err)
		}
	}

	return connect.NewResponse(&api.CreateExpenseResponse{Expense: apiExpense(expense)}), nil
}

// GetExpense retrieves an expense with its shares.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("GetExpense request received", "expense_id", req.Msg.ExpenseID)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	if _, err := requireMember(ctx, s.store, expense.GroupID, userID); err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: apiExpense(expense)}), nil
}

// UpdateExpense rewrites an expense and its shares. The share list is
// replaced wholesale under the same validation as CreateExpense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("UpdateExpense request received",
		"expense_id", req.Msg.ExpenseID,
		"amount_minor", req.Msg.AmountMinor,
	)

	existing, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("UpdateExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	group, err := requireMember(ctx, s.store, existing.GroupID, userID)
	if err != nil {
		return nil, err
	}

	baseMinor, err := toBaseMinor(req.Msg.AmountMinor, req.Msg.FxRate)
	if err != nil {
		return nil, ledgerErr(err)
	}

	shares, err := resolveShares(group, req.Msg.PayerID, baseMinor, req.Msg.Shares)
	if err != nil {
		slog.Warn("UpdateExpense rejected", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, ledgerErr(err)
	}

	expense := &models.Expense{
		ID:              existing.ID,
		GroupID:         existing.GroupID,
		PayerID:         req.Msg.PayerID,
		Description:     req.Msg.Description,
		Currency:        req.Msg.Currency,
		AmountMinor:     req.Msg.AmountMinor,
		BaseAmountMinor: baseMinor,
		Shares:          shares,
		CreatedAt:       existing.CreatedAt,
		CreatedBy:       existing.CreatedBy,
	}
	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense updated", "expense_id", expense.ID)

	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: apiExpense(expense)}), nil
}

// DeleteExpense removes an expense and its shares.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	if _, err := requireMember(ctx, s.store, expense.GroupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ListExpensesByGroup retrieves all expenses for a group, newest first.
func (s *ExpenseService) ListExpensesByGroup(ctx context.Context, req *connect.Request[api.ListExpensesByGroupRequest]) (*connect.Response[api.ListExpensesByGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("ListExpensesByGroup request received", "group_id", req.Msg.GroupID)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("ListExpensesByGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	apiExpenses := make([]*api.Expense, len(expenses))
	for i, expense := range expenses {
		apiExpenses[i] = apiExpense(expense)
	}

	slog.Info("ListExpensesByGroup successful", "group_id", req.Msg.GroupID, "count", len(expenses))

	return connect.NewResponse(&api.ListExpensesByGroupResponse{Expenses: apiExpenses}), nil
}
