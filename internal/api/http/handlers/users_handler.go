package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repair-dashboard/internal/api/dto"
	"github.com/spec-kit/repair-dashboard/internal/domain"
	"github.com/spec-kit/repair-dashboard/internal/service"
)

// UsersHandler serves the users list and user detail views.
type UsersHandler struct {
	users *service.UsersService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UsersService) *UsersHandler {
	return &UsersHandler{users: users}
}

// ListUsers GET /dashboard/users?search=.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.LoadUsers(c.UserContext())
	if err != nil {
		return err
	}

	filtered := service.FilterUsers(users, c.Query("search"))
	sorted := service.SortUsersByIDDesc(filtered)

	items := make([]dto.UserSummary, 0, len(sorted))
	for _, u := range sorted {
		items = append(items, userSummary(u))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetUser GET /dashboard/users/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	detail, err := h.users.LoadUserDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userDetail(detail)})
}

func userSummary(u domain.User) dto.UserSummary {
	return dto.UserSummary{
		UserID:      u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

func userDetail(detail *service.UserDetail) dto.UserDetailResponse {
	user := detail.User
	rows := make([]*dto.RepairOrderRow, len(detail.Orders))
	for i, order := range detail.Orders {
		if order == nil {
			// failed fetch keeps its position as a null row
			continue
		}
		rows[i] = &dto.RepairOrderRow{
			OrderID:         user.RepairOrders[i],
			TaskDescription: order.TaskDescription,
			OrderDate:       order.OrderDate,
		}
	}
	return dto.UserDetailResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Address:      user.Address(),
		TypeOfUser:   user.TypeOfUser,
		RepairOrders: user.RepairOrders,
		Orders:       rows,
	}
}
