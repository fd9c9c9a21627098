package service

import (
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

// Converters from storage models to wire types.

func apiUser(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func apiGroup(g *models.Group) *api.Group {
	members := make([]api.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = api.Member{
			UserID:   m.UserID,
			IsActive: m.IsActive,
			JoinedAt: m.JoinedAt,
		}
	}
	return &api.Group{
		ID:        g.ID,
		Name:      g.Name,
		Members:   members,
		CreatedAt: g.CreatedAt,
	}
}

func apiExpense(e *models.Expense) *api.Expense {
	shares := make([]api.Share, len(e.Shares))
	for i, sh := range e.Shares {
		shares[i] = api.Share{
			UserID:     sh.UserID,
			ShareMinor: sh.ShareMinor,
			IsIncluded: sh.IsIncluded,
		}
	}
	return &api.Expense{
		ID:              e.ID,
		GroupID:         e.GroupID,
		PayerID:         e.PayerID,
		Description:     e.Description,
		Currency:        e.Currency,
		AmountMinor:     e.AmountMinor,
		BaseAmountMinor: e.BaseAmountMinor,
		Shares:          shares,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

func apiSettlement(s *models.Settlement) *api.Settlement {
	return &api.Settlement{
		ID:          s.ID,
		GroupID:     s.GroupID,
		FromUserID:  s.FromUserID,
		ToUserID:    s.ToUserID,
		AmountMinor: s.AmountMinor,
		Note:        s.Note,
		CreatedAt:   s.CreatedAt,
		CreatedBy:   s.CreatedBy,
	}
}
