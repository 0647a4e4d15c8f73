package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/repair-dashboard/internal/domain"
	"github.com/spec-kit/repair-dashboard/internal/events"
	apperrors "github.com/spec-kit/repair-dashboard/pkg/util"
)

// OrdersService aggregates the order views: the enriched list, the detail
// view and the status-update passthrough.
type OrdersService struct {
	orders     OrderFetcher
	users      UserFetcher
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// OrdersDependencies bundles collaborators for the orders service.
type OrdersDependencies struct {
	OrderClient OrderFetcher
	UserClient  UserFetcher
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewOrdersService constructs the service.
func NewOrdersService(deps OrdersDependencies) *OrdersService {
	return &OrdersService{
		orders:     deps.OrderClient,
		users:      deps.UserClient,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// OrdersView is the assembled orders list: the base collection newest
// first, the name lookup built by the enrichment fan-out, and the
// per-status tallies over the full collection.
type OrdersView struct {
	Orders       []domain.Order
	Names        *domain.NameLookup
	StatusCounts map[string]int
}

// LoadOrders fetches the full order collection and resolves the display
// name behind every order's reqUserId.
//
// The list arrives oldest-first and is reversed once so the base display
// order approximates newest-first. Enrichment issues one lookup per order
// with no de-duplication of repeated user ids; the merge is idempotent,
// so refetching the same id is wasteful but harmless. Completions land in
// arrival order, each merging its own key without disturbing peers. A
// failed lookup merges the error sentinel so the caller can tell
// "failed" from "never resolved". Everything is scoped to ctx: when the
// request ends, outstanding lookups are cancelled rather than leaking.
func (s *OrdersService) LoadOrders(ctx context.Context) (*OrdersView, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	reverseOrders(orders)

	lookup := domain.NewNameLookup()
	var wg sync.WaitGroup
	for _, order := range orders {
		userID := order.ReqUserID
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := s.users.GetUser(ctx, userID)
			if err != nil {
				s.logger.Warn("name enrichment failed",
					zap.String("user_id", userID), zap.Error(err))
				lookup.MergeError(userID)
				return
			}
			lookup.Merge(userID, user.Name)
		}()
	}
	wg.Wait()

	return &OrdersView{
		Orders:       orders,
		Names:        lookup,
		StatusCounts: StatusCounts(orders),
	}, nil
}

// OrderDetail is one order plus its history log.
type OrderDetail struct {
	Order   *domain.Order
	History []domain.OrderHistoryItem
}

// LoadOrderDetail fetches the order record and its history concurrently.
// The two fetches are independent; neither may assume the other finished
// first. A failed history fetch degrades to an empty log with a warning,
// while a failed order fetch fails the whole view.
func (s *OrdersService) LoadOrderDetail(ctx context.Context, orderID string) (*OrderDetail, error) {
	var (
		order    *domain.Order
		orderErr error
		history  []domain.OrderHistoryItem
		histErr  error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		order, orderErr = s.orders.GetOrder(ctx, orderID)
	}()
	go func() {
		defer wg.Done()
		history, histErr = s.orders.ListHistory(ctx, orderID)
	}()
	wg.Wait()

	if orderErr != nil {
		return nil, orderErr
	}
	if histErr != nil {
		s.logger.Warn("order history fetch failed",
			zap.String("order_id", orderID), zap.Error(histErr))
		history = []domain.OrderHistoryItem{}
	}
	return &OrderDetail{Order: order, History: history}, nil
}

// UpdateOrderStatus submits {taskStatus, comment} for an order. The
// comment is fire-and-forget: it surfaces in the history log only after
// the upstream records it, never from local state. On success the caller
// may overwrite its displayed status with the submitted value without a
// re-fetch; on failure the error is returned so prior state stays intact
// and the failure is visible.
func (s *OrdersService) UpdateOrderStatus(ctx context.Context, orderID, taskStatus, comment, staffName string) error {
	if taskStatus == "" {
		return apperrors.NewValidationError("taskStatus required", nil)
	}
	if !domain.IsValidStatus(taskStatus) {
		return apperrors.NewValidationError("unknown taskStatus", map[string]any{"taskStatus": taskStatus})
	}

	if err := s.orders.UpdateStatus(ctx, orderID, taskStatus, comment); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventOrderStatusUpdated,
		OrderID: orderID,
		Actor:   staffName,
		Payload: events.OrderStatusUpdatedPayload{
			NewStatus: taskStatus,
			Comment:   comment,
		},
	})
	return nil
}

func (s *OrdersService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func reverseOrders(orders []domain.Order) {
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
}
