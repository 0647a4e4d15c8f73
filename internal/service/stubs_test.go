package service

import (
	"context"
	"errors"

	"github.com/spec-kit/repair-dashboard/internal/domain"
)

var errUpstreamDown = errors.New("upstream down")

type stubUserFetcher struct {
	getUser   func(ctx context.Context, userID string) (*domain.User, error)
	listUsers func(ctx context.Context) ([]domain.User, error)
}

func (s *stubUserFetcher) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.getUser(ctx, userID)
}

func (s *stubUserFetcher) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listUsers(ctx)
}

type stubOrderFetcher struct {
	listOrders   func(ctx context.Context) ([]domain.Order, error)
	getOrder     func(ctx context.Context, orderID string) (*domain.Order, error)
	listHistory  func(ctx context.Context, orderID string) ([]domain.OrderHistoryItem, error)
	updateStatus func(ctx context.Context, orderID, taskStatus, comment string) error
}

func (s *stubOrderFetcher) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.listOrders(ctx)
}

func (s *stubOrderFetcher) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.getOrder(ctx, orderID)
}

func (s *stubOrderFetcher) ListHistory(ctx context.Context, orderID string) ([]domain.OrderHistoryItem, error) {
	return s.listHistory(ctx, orderID)
}

func (s *stubOrderFetcher) UpdateStatus(ctx context.Context, orderID, taskStatus, comment string) error {
	return s.updateStatus(ctx, orderID, taskStatus, comment)
}
