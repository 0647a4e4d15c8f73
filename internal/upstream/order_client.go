package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/repair-dashboard/internal/config"
	"github.com/spec-kit/repair-dashboard/internal/domain"
	"github.com/spec-kit/repair-dashboard/internal/observability"
	apperrors "github.com/spec-kit/repair-dashboard/pkg/util"
)

// OrderClient talks to the remote repair-order service.
type OrderClient struct {
	client
}

// NewOrderClient constructs the adapter.
func NewOrderClient(cfg config.UpstreamConfig, metrics *observability.Metrics) *OrderClient {
	return &OrderClient{client: client{
		name:       "order-service",
		baseURL:    cfg.OrderServiceURL,
		httpClient: &http.Client{Timeout: cfg.ClientTimeout()},
		metrics:    metrics,
	}}
}

// orderPayload mirrors the upstream order document. The identifier arrives
// under both "_id" and "orderId" depending on the endpoint; toDomain picks
// the canonical one so neither spelling leaks past this adapter.
type orderPayload struct {
	MongoID         string            `json:"_id"`
	OrderID         string            `json:"orderId"`
	TaskName        string            `json:"taskName"`
	TaskStatus      string            `json:"taskStatus"`
	OrderDate       string            `json:"orderDate"`
	ReqUserID       string            `json:"reqUserId"`
	ReqUserPhone    string            `json:"reqUserPhone"`
	ReqUserEmail    string            `json:"reqUserEmail"`
	ReqUserStreet   string            `json:"reqUserStreet"`
	ReqUserCity     string            `json:"reqUserCity"`
	ReqUserState    string            `json:"reqUserState"`
	TaskDescription string            `json:"taskDescription"`
	CostBreakDown   []costItemPayload `json:"costBreakDown"`
}

type costItemPayload struct {
	IssueName string  `json:"issueName"`
	IssueCost float64 `json:"issueCost"`
}

type historyPayload struct {
	Datetime   string `json:"datetime"`
	Comment    string `json:"comment"`
	TaskStatus string `json:"taskStatus"`
	StaffName  string `json:"staffName"`
}

func (p orderPayload) toDomain() domain.Order {
	id := p.OrderID
	if id == "" {
		id = p.MongoID
	}
	items := make([]domain.CostItem, 0, len(p.CostBreakDown))
	for _, item := range p.CostBreakDown {
		items = append(items, domain.CostItem{IssueName: item.IssueName, IssueCost: item.IssueCost})
	}
	return domain.Order{
		OrderID:         id,
		TaskName:        p.TaskName,
		TaskStatus:      p.TaskStatus,
		OrderDate:       p.OrderDate,
		ReqUserID:       p.ReqUserID,
		ReqUserPhone:    p.ReqUserPhone,
		ReqUserEmail:    p.ReqUserEmail,
		ReqUserStreet:   p.ReqUserStreet,
		ReqUserCity:     p.ReqUserCity,
		ReqUserState:    p.ReqUserState,
		TaskDescription: p.TaskDescription,
		CostBreakDown:   items,
	}
}

// ListOrders fetches the full order collection. GET /api/users/viewAllTasks.
func (c *OrderClient) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var payloads []orderPayload
	if err := c.getJSON(ctx, "viewAllTasks", "/api/users/viewAllTasks", nil, &payloads); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, p.toDomain())
	}
	return orders, nil
}

// GetOrder fetches one order by id. GET /api/users/getRepairOrderById?id=.
// The endpoint answers with either a bare order object or a one-element
// array wrapping it; both shapes are normalized here into a single record.
func (c *OrderClient) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var raw json.RawMessage
	query := url.Values{"id": {orderID}}
	if err := c.getJSON(ctx, "getRepairOrderById", "/api/users/getRepairOrderById", query, &raw); err != nil {
		return nil, err
	}

	payload, err := decodeOrderPayload(raw)
	if err != nil {
		return nil, apperrors.NewUpstreamError(c.name, err)
	}
	if payload == nil {
		return nil, apperrors.NewNotFound("order", map[string]any{"orderId": orderID})
	}
	order := payload.toDomain()
	return &order, nil
}

func decodeOrderPayload(raw json.RawMessage) (*orderPayload, error) {
	trimmed := firstNonSpace(raw)
	if trimmed == '[' {
		var payloads []orderPayload
		if err := json.Unmarshal(raw, &payloads); err != nil {
			return nil, fmt.Errorf("decode order array: %w", err)
		}
		if len(payloads) == 0 {
			return nil, nil
		}
		return &payloads[0], nil
	}
	var payload orderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode order object: %w", err)
	}
	return &payload, nil
}

func firstNonSpace(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

// ListHistory fetches the append-only history log for an order.
// GET /api/users/viewOrderHistory?id=.
func (c *OrderClient) ListHistory(ctx context.Context, orderID string) ([]domain.OrderHistoryItem, error) {
	var payloads []historyPayload
	query := url.Values{"id": {orderID}}
	if err := c.getJSON(ctx, "viewOrderHistory", "/api/users/viewOrderHistory", query, &payloads); err != nil {
		return nil, err
	}
	items := make([]domain.OrderHistoryItem, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, domain.OrderHistoryItem{
			Datetime:   p.Datetime,
			Comment:    p.Comment,
			TaskStatus: p.TaskStatus,
			StaffName:  p.StaffName,
		})
	}
	return items, nil
}

type updateTaskRequest struct {
	TaskStatus string `json:"taskStatus"`
	Comment    string `json:"comment"`
}

// UpdateStatus submits a status change for an order.
// POST /api/users/updateTasks?id= with body {taskStatus, comment}. The
// upstream declares no success body beyond HTTP-OK, so none is decoded.
func (c *OrderClient) UpdateStatus(ctx context.Context, orderID, taskStatus, comment string) error {
	query := url.Values{"id": {orderID}}
	body := updateTaskRequest{TaskStatus: taskStatus, Comment: comment}
	return c.postJSON(ctx, "updateTasks", "/api/users/updateTasks", query, body)
}
