// Package report is the read-side aggregation over the ledger: summary
// figures and feeds consumed by the home and reports screens. Everything
// here is a pure projection of committed state.
package report

import (
	"context"
	"time"

	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
)

type Repository interface {
	// SumPaidBetween sums paid transactions created in [from, to).
	SumPaidBetween(ctx context.Context, userID string, from, to int64) (int64, error)
	// SumBalances sums all customer balances for the user.
	SumBalances(ctx context.Context, userID string) (int64, error)
}

// FeedSource supplies the recency-ordered transaction feed.
type FeedSource interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error)
}

type Service struct {
	repo Repository
	feed FeedSource
}

func NewService(repo Repository, feed FeedSource) *Service {
	return &Service{repo: repo, feed: feed}
}

// Summary is what the home screen shows at a glance.
type Summary struct {
	TodaysCollection int64 // paise received as paid transactions today
	PendingDues      int64 // sum of all customer balances
}

// Summarize computes today's figures relative to now in now's location.
func (s *Service) Summarize(ctx context.Context, userID string, now time.Time) (*Summary, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	collected, err := s.repo.SumPaidBetween(ctx, userID, dayStart.Unix(), dayEnd.Unix())
	if err != nil {
		return nil, err
	}

	dues, err := s.repo.SumBalances(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{TodaysCollection: collected, PendingDues: dues}, nil
}

// RecentActivity returns the user's transaction feed, most recent first.
func (s *Service) RecentActivity(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error) {
	return s.feed.ListRecent(ctx, userID, limit)
}
