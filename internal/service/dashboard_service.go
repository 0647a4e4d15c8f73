package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/repair-dashboard/internal/domain"
)

// DashboardService computes the card-stat summary shown on the landing
// dashboard.
type DashboardService struct {
	users  UserFetcher
	orders OrderFetcher
}

// NewDashboardService constructs the service.
func NewDashboardService(users UserFetcher, orders OrderFetcher) *DashboardService {
	return &DashboardService{users: users, orders: orders}
}

// Summary holds the aggregate counts for the dashboard landing view.
type Summary struct {
	TotalUsers   int
	TotalOrders  int
	StatusCounts map[string]int
}

// LoadSummary fetches both collections concurrently and tallies them.
// Unlike the per-row enrichment fan-outs, the summary needs both lists,
// so the first failure cancels the other fetch and fails the view.
func (s *DashboardService) LoadSummary(ctx context.Context) (*Summary, error) {
	var (
		users  []domain.User
		orders []domain.Order
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.ListUsers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders.ListOrders(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		TotalUsers:   len(users),
		TotalOrders:  len(orders),
		StatusCounts: StatusCounts(orders),
	}, nil
}
