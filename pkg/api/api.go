// Package api defines the wire types and procedure names for the Splitledger
// Connect RPC surface.
//
// The services speak the Connect protocol with a plain encoding/json codec
// over the structs in this package; there is no protobuf schema or code
// generation step. Clients POST application/json bodies to the procedure
// paths below.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Procedure paths, one per RPC method.
const (
	AuthServiceRegisterProcedure       = "/splitledger.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/splitledger.v1.AuthService/Login"
	AuthServiceLogoutProcedure         = "/splitledger.v1.AuthService/Logout"
	AuthServiceGetCurrentUserProcedure = "/splitledger.v1.AuthService/GetCurrentUser"

	GroupServiceCreateGroupProcedure        = "/splitledger.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure           = "/splitledger.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure         = "/splitledger.v1.GroupService/ListGroups"
	GroupServiceUpdateGroupProcedure        = "/splitledger.v1.GroupService/UpdateGroup"
	GroupServiceDeleteGroupProcedure        = "/splitledger.v1.GroupService/DeleteGroup"
	GroupServiceAddGroupMembersProcedure    = "/splitledger.v1.GroupService/AddGroupMembers"
	GroupServiceRemoveGroupMemberProcedure  = "/splitledger.v1.GroupService/RemoveGroupMember"

	ExpenseServiceCreateExpenseProcedure       = "/splitledger.v1.ExpenseService/CreateExpense"
	ExpenseServiceGetExpenseProcedure          = "/splitledger.v1.ExpenseService/GetExpense"
	ExpenseServiceUpdateExpenseProcedure       = "/splitledger.v1.ExpenseService/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure       = "/splitledger.v1.ExpenseService/DeleteExpense"
	ExpenseServiceListExpensesByGroupProcedure = "/splitledger.v1.ExpenseService/ListExpensesByGroup"

	LedgerServiceGetGroupBalancesProcedure  = "/splitledger.v1.LedgerService/GetGroupBalances"
	LedgerServiceGetSettlementPlanProcedure = "/splitledger.v1.LedgerService/GetSettlementPlan"
	LedgerServiceRecordSettlementProcedure  = "/splitledger.v1.LedgerService/RecordSettlement"
	LedgerServiceListSettlementsProcedure   = "/splitledger.v1.LedgerService/ListSettlements"
	LedgerServiceDeleteSettlementProcedure  = "/splitledger.v1.LedgerService/DeleteSettlement"
)

// jsonCodec marshals request and response structs with encoding/json. Its
// name matches the application/json content type of the Connect protocol.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (jsonCodec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }

// Codec returns the connect option that installs the JSON codec. Pass it to
// every handler and client built against this package.
func Codec() connect.Option { return connect.WithCodec(jsonCodec{}) }
