package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// GroupService implements the Connect GroupService.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// requireMember loads the group and checks that userID is an active member.
func requireMember(ctx context.Context, store storage.Store, groupID, userID string) (*models.Group, error) {
	group, err := store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	for _, m := range group.Members {
		if m.UserID == userID && m.IsActive {
			return group, nil
		}
	}
	return nil, connect.NewError(connect.CodePermissionDenied,
		fmt.Errorf("user %s is not an active member of group %s", userID, groupID))
}

// CreateGroup creates a new group. The caller is always added as a member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.MemberIDs),
	)

	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	memberIDs := req.Msg.MemberIDs
	seen := map[string]bool{userID: true}
	members := []models.Member{{UserID: userID, IsActive: true}}
	for _, id := range memberIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		members = append(members, models.Member{UserID: id, IsActive: true})
	}

	group := &models.Group{
		Name:    req.Msg.Name,
		Members: members,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{Group: apiGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	group, err := requireMember(ctx, s.store, req.Msg.GroupID, userID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&api.GetGroupResponse{Group: apiGroup(group)}), nil
}

// ListGroups retrieves the caller's groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("ListGroups request received", "user_id", userID)

	groups, err := s.store.ListGroups(ctx, userID)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	apiGroups := make([]*api.Group, len(groups))
	for i, group := range groups {
		apiGroups[i] = apiGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{Groups: apiGroups}), nil
}

// UpdateGroup renames an existing group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("UpdateGroup request received",
		"group_id", req.Msg.GroupID,
		"name", req.Msg.Name,
	)

	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	group := &models.Group{
		ID:   req.Msg.GroupID,
		Name: req.Msg.Name,
	}
	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("UpdateGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	// Fetch the updated group to get the full roster and CreatedAt.
	updated, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Group updated", "group_id", updated.ID)

	return connect.NewResponse(&api.UpdateGroupResponse{Group: apiGroup(updated)}), nil
}

// DeleteGroup removes a group by ID.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		slog.Error("DeleteGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupID)

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// AddGroupMembers adds members to a group, reactivating previously removed
// members in place.
func (s *GroupService) AddGroupMembers(ctx context.Context, req *connect.Request[api.AddGroupMembersRequest]) (*connect.Response[api.AddGroupMembersResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("AddGroupMembers request received",
		"group_id", req.Msg.GroupID,
		"members_count", len(req.Msg.UserIDs),
	)

	if len(req.Msg.UserIDs) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("user_ids required"))
	}

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.AddGroupMembers(ctx, req.Msg.GroupID, req.Msg.UserIDs); err != nil {
		slog.Error("AddGroupMembers failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Members added", "group_id", group.ID, "members_count", len(group.Members))

	return connect.NewResponse(&api.AddGroupMembersResponse{Group: apiGroup(group)}), nil
}

// RemoveGroupMember deactivates a member. Their historical expenses stay in
// place; balances simply stop counting them.
func (s *GroupService) RemoveGroupMember(ctx context.Context, req *connect.Request[api.RemoveGroupMemberRequest]) (*connect.Response[api.RemoveGroupMemberResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("RemoveGroupMember request received",
		"group_id", req.Msg.GroupID,
		"user_id", req.Msg.UserID,
	)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeactivateGroupMember(ctx, req.Msg.GroupID, req.Msg.UserID); err != nil {
		slog.Error("RemoveGroupMember failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Member removed", "group_id", group.ID, "user_id", req.Msg.UserID)

	return connect.NewResponse(&api.RemoveGroupMemberResponse{Group: apiGroup(group)}), nil
}
