package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/repair-dashboard/internal/domain"
)

// UsersService aggregates the user views.
type UsersService struct {
	users  UserFetcher
	orders OrderFetcher
	logger *zap.Logger
}

// NewUsersService constructs the service.
func NewUsersService(users UserFetcher, orders OrderFetcher, logger *zap.Logger) *UsersService {
	return &UsersService{users: users, orders: orders, logger: logger}
}

// LoadUsers fetches the full user collection as returned by the user
// service. Search filtering and the descending-ID display order are
// derived downstream; the fetched collection stays untouched.
func (s *UsersService) LoadUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}

// UserDetail is one user plus their repair orders, resolved row by row.
// Orders is parallel to User.RepairOrders: Orders[i] resolves
// RepairOrders[i], and a failed fetch leaves a nil placeholder at that
// position instead of shortening the slice. Position is load-bearing —
// rows are joined back to RepairOrders[index] for display and navigation.
type UserDetail struct {
	User   *domain.User
	Orders []*domain.Order
}

// LoadUserDetail fetches the user record, then fans out one order fetch
// per repairOrders entry. Fetches run concurrently with no retry and no
// de-duplication; each goroutine writes only its own index, so the slice
// needs no locking. Cancellation of ctx discards whatever has not
// completed.
func (s *UsersService) LoadUserDetail(ctx context.Context, userID string) (*UserDetail, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(user.RepairOrders))
	var wg sync.WaitGroup
	for i, orderID := range user.RepairOrders {
		i, orderID := i, orderID
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := s.orders.GetOrder(ctx, orderID)
			if err != nil {
				s.logger.Warn("repair order fetch failed",
					zap.String("order_id", orderID), zap.Error(err))
				return
			}
			orders[i] = order
		}()
	}
	wg.Wait()

	return &UserDetail{User: user, Orders: orders}, nil
}
