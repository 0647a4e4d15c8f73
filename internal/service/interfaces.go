package service

import (
	"context"

	"github.com/spec-kit/repair-dashboard/internal/domain"
)

// UserFetcher is the slice of the user service the dashboard consumes.
type UserFetcher interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// OrderFetcher is the slice of the order service the dashboard consumes.
type OrderFetcher interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListHistory(ctx context.Context, orderID string) ([]domain.OrderHistoryItem, error)
	UpdateStatus(ctx context.Context, orderID, taskStatus, comment string) error
}
