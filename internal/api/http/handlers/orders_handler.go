package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repair-dashboard/internal/api/dto"
	"github.com/spec-kit/repair-dashboard/internal/auth"
	"github.com/spec-kit/repair-dashboard/internal/domain"
	"github.com/spec-kit/repair-dashboard/internal/service"
	apperrors "github.com/spec-kit/repair-dashboard/pkg/util"
)

// OrdersHandler serves the orders list, order detail and status update.
type OrdersHandler struct {
	orders *service.OrdersService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrdersService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// ListOrders GET /orders?status=&search=.
func (h *OrdersHandler) ListOrders(c *fiber.Ctx) error {
	view, err := h.orders.LoadOrders(c.UserContext())
	if err != nil {
		return err
	}

	names := view.Names.Snapshot()
	filtered := service.FilterOrders(view.Orders, names, c.Query("status"), c.Query("search"))

	items := make([]dto.OrderSummary, 0, len(filtered))
	for _, o := range filtered {
		items = append(items, orderSummary(o))
	}
	return c.JSON(fiber.Map{"data": dto.OrdersListResponse{
		Orders:        items,
		UserNames:     names,
		StatusCounts:  view.StatusCounts,
		StatusOptions: domain.StatusOptions,
	}})
}

// GetOrder GET /orders/:id.
func (h *OrdersHandler) GetOrder(c *fiber.Ctx) error {
	detail, err := h.orders.LoadOrderDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderDetail(detail)})
}

// UpdateStatus POST /orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("staff required")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	orderID := c.Params("id")
	if err := h.orders.UpdateOrderStatus(c.UserContext(), orderID, req.TaskStatus, req.Comment, principal.StaffName); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UpdateStatusResponse{
		OrderID:    orderID,
		TaskStatus: req.TaskStatus,
	}})
}

func orderSummary(o domain.Order) dto.OrderSummary {
	return dto.OrderSummary{
		OrderID:      o.OrderID,
		TaskName:     o.TaskName,
		TaskStatus:   o.TaskStatus,
		OrderDate:    o.OrderDate,
		ReqUserID:    o.ReqUserID,
		ReqUserPhone: o.ReqUserPhone,
	}
}

func orderDetail(detail *service.OrderDetail) dto.OrderDetailResponse {
	order := detail.Order
	items := make([]dto.CostItemResponse, 0, len(order.CostBreakDown))
	for _, item := range order.CostBreakDown {
		items = append(items, dto.CostItemResponse{IssueName: item.IssueName, IssueCost: item.IssueCost})
	}
	history := make([]dto.OrderHistoryResponse, 0, len(detail.History))
	for _, entry := range detail.History {
		history = append(history, dto.OrderHistoryResponse{
			Datetime:   entry.Datetime,
			Comment:    entry.Comment,
			TaskStatus: entry.TaskStatus,
			StaffName:  entry.StaffName,
		})
	}
	return dto.OrderDetailResponse{
		OrderID:         order.OrderID,
		TaskName:        order.TaskName,
		TaskStatus:      order.TaskStatus,
		OrderDate:       order.OrderDate,
		ReqUserID:       order.ReqUserID,
		ReqUserPhone:    order.ReqUserPhone,
		ReqUserEmail:    order.ReqUserEmail,
		ReqUserStreet:   order.ReqUserStreet,
		ReqUserCity:     order.ReqUserCity,
		ReqUserState:    order.ReqUserState,
		TaskDescription: order.TaskDescription,
		CostBreakDown:   items,
		TotalCost:       order.TotalCost(),
		History:         history,
	}
}
