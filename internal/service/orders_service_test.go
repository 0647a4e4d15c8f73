package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/repair-dashboard/internal/domain"
	"github.com/spec-kit/repair-dashboard/internal/events"
)

func newOrdersService(t *testing.T, orders OrderFetcher, users UserFetcher, dispatcher events.Dispatcher) *OrdersService {
	t.Helper()
	return NewOrdersService(OrdersDependencies{
		OrderClient: orders,
		UserClient:  users,
		Dispatcher:  dispatcher,
		Logger:      zaptest.NewLogger(t),
	})
}

func TestLoadOrdersReversesAndEnriches(t *testing.T) {
	orderFetcher := &stubOrderFetcher{
		listOrders: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{
				{OrderID: "o1", ReqUserID: "u1", TaskStatus: "Pending"},
				{OrderID: "o2", ReqUserID: "u2", TaskStatus: "Complete"},
				{OrderID: "o3", ReqUserID: "u1", TaskStatus: "Pending"},
			}, nil
		},
	}
	var mu sync.Mutex
	fetchCounts := map[string]int{}
	userFetcher := &stubUserFetcher{
		getUser: func(ctx context.Context, userID string) (*domain.User, error) {
			mu.Lock()
			fetchCounts[userID]++
			mu.Unlock()
			if userID == "u2" {
				return nil, errUpstreamDown
			}
			return &domain.User{UserID: userID, Name: "Alice"}, nil
		},
	}

	svc := newOrdersService(t, orderFetcher, userFetcher, nil)
	view, err := svc.LoadOrders(context.Background())
	require.NoError(t, err)

	// displayed base ordering is the reverse of arrival order
	require.Len(t, view.Orders, 3)
	assert.Equal(t, "o3", view.Orders[0].OrderID)
	assert.Equal(t, "o1", view.Orders[2].OrderID)

	// success merges the name, failure merges the sentinel
	assert.Equal(t, map[string]string{"u1": "Alice", "u2": domain.NameError}, view.Names.Snapshot())

	// one fetch per order, repeated ids not de-duplicated
	assert.Equal(t, 2, fetchCounts["u1"])
	assert.Equal(t, 1, fetchCounts["u2"])

	assert.Equal(t, map[string]int{"pending": 2, "complete": 1}, view.StatusCounts)
}

func TestLoadOrdersListFailureLeavesCollectionUnset(t *testing.T) {
	orderFetcher := &stubOrderFetcher{
		listOrders: func(ctx context.Context) ([]domain.Order, error) {
			return nil, errUpstreamDown
		},
	}

	svc := newOrdersService(t, orderFetcher, &stubUserFetcher{}, nil)
	view, err := svc.LoadOrders(context.Background())

	assert.Error(t, err)
	assert.Nil(t, view, "a failed primary fetch yields no view, not an empty one")
}

func TestLoadOrderDetailFetchesConcurrently(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	orderFetcher := &stubOrderFetcher{
		getOrder: func(ctx context.Context, orderID string) (*domain.Order, error) {
			started <- struct{}{}
			<-release
			return &domain.Order{OrderID: orderID, TaskStatus: "Pending"}, nil
		},
		listHistory: func(ctx context.Context, orderID string) ([]domain.OrderHistoryItem, error) {
			started <- struct{}{}
			<-release
			return []domain.OrderHistoryItem{{TaskStatus: "Pending", StaffName: "Sam"}}, nil
		},
	}

	svc := newOrdersService(t, orderFetcher, &stubUserFetcher{}, nil)

	done := make(chan *OrderDetail, 1)
	go func() {
		detail, err := svc.LoadOrderDetail(context.Background(), "o1")
		require.NoError(t, err)
		done <- detail
	}()

	// both fetches must be in flight before either completes
	<-started
	<-started
	close(release)

	detail := <-done
	assert.Equal(t, "o1", detail.Order.OrderID)
	assert.Len(t, detail.History, 1)
}

func TestLoadOrderDetailHistoryFailureDegrades(t *testing.T) {
	orderFetcher := &stubOrderFetcher{
		getOrder: func(ctx context.Context, orderID string) (*domain.Order, error) {
			return &domain.Order{OrderID: orderID}, nil
		},
		listHistory: func(ctx context.Context, orderID string) ([]domain.OrderHistoryItem, error) {
			return nil, errUpstreamDown
		},
	}

	svc := newOrdersService(t, orderFetcher, &stubUserFetcher{}, nil)
	detail, err := svc.LoadOrderDetail(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, "o1", detail.Order.OrderID)
	assert.Empty(t, detail.History)
}

func TestLoadOrderDetailOrderFailureFailsView(t *testing.T) {
	orderFetcher := &stubOrderFetcher{
		getOrder: func(ctx context.Context, orderID string) (*domain.Order, error) {
			return nil, errUpstreamDown
		},
		listHistory: func(ctx context.Context, orderID string) ([]domain.OrderHistoryItem, error) {
			return []domain.OrderHistoryItem{}, nil
		},
	}

	svc := newOrdersService(t, orderFetcher, &stubUserFetcher{}, nil)
	detail, err := svc.LoadOrderDetail(context.Background(), "o1")

	assert.Error(t, err)
	assert.Nil(t, detail)
}

func TestUpdateOrderStatusPublishesEvent(t *testing.T) {
	var submitted []string
	orderFetcher := &stubOrderFetcher{
		updateStatus: func(ctx context.Context, orderID, taskStatus, comment string) error {
			submitted = []string{orderID, taskStatus, comment}
			return nil
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventOrderStatusUpdated, func(ctx context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := newOrdersService(t, orderFetcher, &stubUserFetcher{}, dispatcher)
	err := svc.UpdateOrderStatus(context.Background(), "o1", "Repair Completed", "done", "Sam")

	require.NoError(t, err)
	assert.Equal(t, []string{"o1", "Repair Completed", "done"}, submitted)
	require.Len(t, published, 1)
	assert.Equal(t, "o1", published[0].OrderID)
	assert.Equal(t, "Sam", published[0].Actor)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	called := false
	orderFetcher := &stubOrderFetcher{
		updateStatus: func(ctx context.Context, orderID, taskStatus, comment string) error {
			called = true
			return nil
		},
	}

	svc := newOrdersService(t, orderFetcher, &stubUserFetcher{}, nil)

	assert.Error(t, svc.UpdateOrderStatus(context.Background(), "o1", "", "", "Sam"))
	assert.Error(t, svc.UpdateOrderStatus(context.Background(), "o1", "Teleported", "", "Sam"))
	assert.False(t, called, "no submission without a valid status")
}

func TestUpdateOrderStatusFailureSurfaces(t *testing.T) {
	orderFetcher := &stubOrderFetcher{
		updateStatus: func(ctx context.Context, orderID, taskStatus, comment string) error {
			return errUpstreamDown
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventOrderStatusUpdated, func(ctx context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := newOrdersService(t, orderFetcher, &stubUserFetcher{}, dispatcher)
	err := svc.UpdateOrderStatus(context.Background(), "o1", "Pending", "", "Sam")

	assert.Error(t, err)
	assert.Empty(t, published, "a rejected update publishes nothing")
}
