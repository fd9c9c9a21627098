package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/event"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// LedgerService implements the Connect LedgerService: derived balances,
// settlement plans, and recorded settlements.
type LedgerService struct {
	store  storage.Store
	events *event.Publisher // nil when no broker is configured
}

// NewLedgerService creates a new LedgerService with the given storage
// backend. events may be nil, in which case no notifications are published.
func NewLedgerService(store storage.Store, events *event.Publisher) *LedgerService {
	return &LedgerService{store: store, events: events}
}

// snapshotRows converts a storage snapshot into the ledger engine's row
// types.
func snapshotRows(snap *models.Snapshot) ([]ledger.Member, []ledger.Expense, []ledger.Share, []ledger.Settlement) {
	members := make([]ledger.Member, len(snap.Members))
	for i, m := range snap.Members {
		members[i] = ledger.Member{UserID: m.UserID, Active: m.IsActive}
	}

	var expenses []ledger.Expense
	var shares []ledger.Share
	for _, e := range snap.Expenses {
		expenses = append(expenses, ledger.Expense{
			ID:              e.ID,
			PayerID:         e.PayerID,
			BaseAmountMinor: e.BaseAmountMinor,
		})
		for _, sh := range e.Shares {
			shares = append(shares, ledger.Share{
				ExpenseID:  sh.ExpenseID,
				UserID:     sh.UserID,
				ShareMinor: sh.ShareMinor,
				Included:   sh.IsIncluded,
			})
		}
	}

	settlements := make([]ledger.Settlement, len(snap.Settlements))
	for i, s := range snap.Settlements {
		settlements[i] = ledger.Settlement{
			FromUserID:  s.FromUserID,
			ToUserID:    s.ToUserID,
			AmountMinor: s.AmountMinor,
		}
	}
	return members, expenses, shares, settlements
}

// balances reads one consistent snapshot of the group and aggregates it.
func (s *LedgerService) balances(ctx context.Context, groupID string) ([]ledger.NetBalance, error) {
	snap, err := s.store.LedgerSnapshot(ctx, groupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	members, expenses, shares, settlements := snapshotRows(snap)
	return ledger.Aggregate(members, expenses, shares, settlements), nil
}

// GetGroupBalances computes each active member's net balance across all of
// the group's expenses and settlements.
func (s *LedgerService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("GetGroupBalances request received", "group_id", req.Msg.GroupID)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	balances, err := s.balances(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetGroupBalances failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	apiBalances := make([]api.NetBalance, len(balances))
	for i, b := range balances {
		apiBalances[i] = api.NetBalance{
			UserID:                   b.UserID,
			TotalPaidMinor:           b.TotalPaidMinor,
			TotalOwedMinor:           b.TotalOwedMinor,
			SettlementsPaidMinor:     b.SettlementsPaidMinor,
			SettlementsReceivedMinor: b.SettlementsReceivedMinor,
			NetBalanceMinor:          b.NetBalanceMinor,
		}
	}

	slog.Info("GetGroupBalances successful",
		"group_id", req.Msg.GroupID,
		"members_count", len(balances),
	)

	return connect.NewResponse(&api.GetGroupBalancesResponse{Balances: apiBalances}), nil
}

// GetSettlementPlan suggests a minimal set of transfers that clears the
// group's outstanding balances.
func (s *LedgerService) GetSettlementPlan(ctx context.Context, req *connect.Request[api.GetSettlementPlanRequest]) (*connect.Response[api.GetSettlementPlanResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("GetSettlementPlan request received", "group_id", req.Msg.GroupID)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	balances, err := s.balances(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetSettlementPlan failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	transfers := ledger.Simplify(balances)

	apiTransfers := make([]api.Transfer, len(transfers))
	for i, t := range transfers {
		apiTransfers[i] = api.Transfer{
			FromUserID:  t.FromUserID,
			ToUserID:    t.ToUserID,
			AmountMinor: t.AmountMinor,
		}
	}

	slog.Info("GetSettlementPlan successful",
		"group_id", req.Msg.GroupID,
		"transfers_count", len(transfers),
	)

	return connect.NewResponse(&api.GetSettlementPlanResponse{Transfers: apiTransfers}), nil
}

// RecordSettlement records a direct payment between two members.
func (s *LedgerService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("RecordSettlement request received",
		"group_id", req.Msg.GroupID,
		"from_user_id", req.Msg.FromUserID,
		"to_user_id", req.Msg.ToUserID,
		"amount_minor", req.Msg.AmountMinor,
	)

	if req.Msg.FromUserID == "" || req.Msg.ToUserID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("from_user_id and to_user_id required"))
	}
	if req.Msg.FromUserID == req.Msg.ToUserID {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("settlement cannot be self-directed"))
	}
	if req.Msg.AmountMinor <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("settlement amount must be positive, got %d", req.Msg.AmountMinor))
	}

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	settlement := &models.Settlement{
		GroupID:     req.Msg.GroupID,
		FromUserID:  req.Msg.FromUserID,
		ToUserID:    req.Msg.ToUserID,
		AmountMinor: req.Msg.AmountMinor,
		Note:        req.Msg.Note,
		CreatedBy:   userID,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Settlement recorded", "settlement_id", settlement.ID, "group_id", settlement.GroupID)

	if s.events != nil {
		msg := &event.SettlementRecordedMessage{
			SettlementID: settlement.ID,
			GroupID:      settlement.GroupID,
			FromUserID:   settlement.FromUserID,
			ToUserID:     settlement.ToUserID,
			AmountMinor:  settlement.AmountMinor,
			CreatedAt:    settlement.CreatedAt,
		}
		if err := s.events.SettlementRecorded(ctx, msg); err != nil {
			slog.Warn("Failed to publish settlement event", "settlement_id", settlement.ID, "error", err)
		}
	}

	return connect.NewResponse(&api.RecordSettlementResponse{Settlement: apiSettlement(settlement)}), nil
}

// ListSettlements retrieves all settlements for a group, newest first.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("ListSettlements request received", "group_id", req.Msg.GroupID)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	settlements, err := s.store.ListSettlementsByGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("ListSettlements failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	apiSettlements := make([]*api.Settlement, len(settlements))
	for i, settlement := range settlements {
		apiSettlements[i] = apiSettlement(settlement)
	}

	slog.Info("ListSettlements successful", "group_id", req.Msg.GroupID, "count", len(settlements))

	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: apiSettlements}), nil
}

// DeleteSettlement removes a recorded settlement, restoring the debt it had
// cleared.
func (s *LedgerService) DeleteSettlement(ctx context.Context, req *connect.Request[api.DeleteSettlementRequest]) (*connect.Response[api.DeleteSettlementResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("DeleteSettlement request received", "settlement_id", req.Msg.SettlementID)

	settlement, err := s.store.GetSettlement(ctx, req.Msg.SettlementID)
	if err != nil {
		slog.Error("DeleteSettlement failed", "settlement_id", req.Msg.SettlementID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	if _, err := requireMember(ctx, s.store, settlement.GroupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteSettlement(ctx, req.Msg.SettlementID); err != nil {
		slog.Error("DeleteSettlement failed", "settlement_id", req.Msg.SettlementID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	slog.Info("Settlement deleted", "settlement_id", req.Msg.SettlementID)

	return connect.NewResponse(&api.DeleteSettlementResponse{}), nil
}
