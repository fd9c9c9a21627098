package api

// Member is one user's membership in a group.
type Member struct {
	UserID   string `json:"user_id"`
	IsActive bool   `json:"is_active"`
	JoinedAt int64  `json:"joined_at"`
}

// Group is a set of members who share expenses. Members includes deactivated
// members, flagged inactive.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []Member `json:"members"`
	CreatedAt int64    `json:"created_at"`
}

type CreateGroupRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type UpdateGroupRequest struct {
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id"`
}

type DeleteGroupResponse struct{}

type AddGroupMembersRequest struct {
	GroupID string   `json:"group_id"`
	UserIDs []string `json:"user_ids"`
}

type AddGroupMembersResponse struct {
	Group *Group `json:"group"`
}

type RemoveGroupMemberRequest struct {
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
}

type RemoveGroupMemberResponse struct {
	Group *Group `json:"group"`
}
