package models

// Group represents a set of people who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// Members is the full membership roster, including deactivated members.
	Members []Member

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Member is one user's membership in a group.
//
// Members are never deleted. Removing someone from a group flips IsActive to
// false; their historical expenses and shares stay in place, and the ledger
// engine excludes them from aggregation.
type Member struct {
	// UserID identifies the member. Opaque to everything below the
	// presentation layer.
	UserID string

	// IsActive reports whether the member currently participates in the
	// group. Only active members appear in balances.
	IsActive bool

	// JoinedAt is the Unix timestamp when the member was added.
	JoinedAt int64
}

// ActiveMemberIDs returns the IDs of the group's active members.
func (g *Group) ActiveMemberIDs() []string {
	ids := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		if m.IsActive {
			ids = append(ids, m.UserID)
		}
	}
	return ids
}
