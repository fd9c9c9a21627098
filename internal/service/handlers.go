package service

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/mmynk/splitledger/pkg/api"
)

// The handlers below register one connect unary handler per procedure.
// Generated protoconnect code would normally do this; with the plain JSON
// codec there is nothing to generate, so registration lives here. Each
// constructor returns the service's path prefix and a handler to mount on it.

// NewAuthServiceHandler builds the HTTP handler for AuthService.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.Codec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(api.AuthServiceRegisterProcedure,
		connect.NewUnaryHandler(api.AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(api.AuthServiceLoginProcedure,
		connect.NewUnaryHandler(api.AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(api.AuthServiceLogoutProcedure,
		connect.NewUnaryHandler(api.AuthServiceLogoutProcedure, svc.Logout, opts...))
	mux.Handle(api.AuthServiceGetCurrentUserProcedure,
		connect.NewUnaryHandler(api.AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...))
	return "/splitledger.v1.AuthService/", mux
}

// NewGroupServiceHandler builds the HTTP handler for GroupService.
func NewGroupServiceHandler(svc *GroupService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.Codec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(api.GroupServiceCreateGroupProcedure,
		connect.NewUnaryHandler(api.GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(api.GroupServiceGetGroupProcedure,
		connect.NewUnaryHandler(api.GroupServiceGetGroupProcedure, svc.GetGroup, opts...))
	mux.Handle(api.GroupServiceListGroupsProcedure,
		connect.NewUnaryHandler(api.GroupServiceListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(api.GroupServiceUpdateGroupProcedure,
		connect.NewUnaryHandler(api.GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...))
	mux.Handle(api.GroupServiceDeleteGroupProcedure,
		connect.NewUnaryHandler(api.GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...))
	mux.Handle(api.GroupServiceAddGroupMembersProcedure,
		connect.NewUnaryHandler(api.GroupServiceAddGroupMembersProcedure, svc.AddGroupMembers, opts...))
	mux.Handle(api.GroupServiceRemoveGroupMemberProcedure,
		connect.NewUnaryHandler(api.GroupServiceRemoveGroupMemberProcedure, svc.RemoveGroupMember, opts...))
	return "/splitledger.v1.GroupService/", mux
}

// NewExpenseServiceHandler builds the HTTP handler for ExpenseService.
func NewExpenseServiceHandler(svc *ExpenseService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.Codec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(api.ExpenseServiceCreateExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...))
	mux.Handle(api.ExpenseServiceGetExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts...))
	mux.Handle(api.ExpenseServiceUpdateExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...))
	mux.Handle(api.ExpenseServiceDeleteExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(api.ExpenseServiceListExpensesByGroupProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceListExpensesByGroupProcedure, svc.ListExpensesByGroup, opts...))
	return "/splitledger.v1.ExpenseService/", mux
}

// NewLedgerServiceHandler builds the HTTP handler for LedgerService.
func NewLedgerServiceHandler(svc *LedgerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.Codec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(api.LedgerServiceGetGroupBalancesProcedure,
		connect.NewUnaryHandler(api.LedgerServiceGetGroupBalancesProcedure, svc.GetGroupBalances, opts...))
	mux.Handle(api.LedgerServiceGetSettlementPlanProcedure,
		connect.NewUnaryHandler(api.LedgerServiceGetSettlementPlanProcedure, svc.GetSettlementPlan, opts...))
	mux.Handle(api.LedgerServiceRecordSettlementProcedure,
		connect.NewUnaryHandler(api.LedgerServiceRecordSettlementProcedure, svc.RecordSettlement, opts...))
	mux.Handle(api.LedgerServiceListSettlementsProcedure,
		connect.NewUnaryHandler(api.LedgerServiceListSettlementsProcedure, svc.ListSettlements, opts...))
	mux.Handle(api.LedgerServiceDeleteSettlementProcedure,
		connect.NewUnaryHandler(api.LedgerServiceDeleteSettlementProcedure, svc.DeleteSettlement, opts...))
	return "/splitledger.v1.LedgerService/", mux
}
