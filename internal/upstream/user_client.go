package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/repair-dashboard/internal/config"
	"github.com/spec-kit/repair-dashboard/internal/domain"
	"github.com/spec-kit/repair-dashboard/internal/observability"
)

// UserClient talks to the remote end-user service.
type UserClient struct {
	client
}

// NewUserClient constructs the adapter.
func NewUserClient(cfg config.UpstreamConfig, metrics *observability.Metrics) *UserClient {
	return &UserClient{client: client{
		name:       "user-service",
		baseURL:    cfg.UserServiceURL,
		httpClient: &http.Client{Timeout: cfg.ClientTimeout()},
		metrics:    metrics,
	}}
}

type userPayload struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PhoneNumber  string   `json:"phoneNumber"`
	BuildingNo   string   `json:"buildingNo"`
	StreetName   string   `json:"streetName"`
	Area         string   `json:"area"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PinCode      string   `json:"pinCode"`
	TypeOfUser   string   `json:"typeOfUser"`
	RepairOrders []string `json:"repairOrders"`
}

func (p userPayload) toDomain() domain.User {
	return domain.User{
		UserID:       p.UserID,
		Name:         p.Name,
		Email:        p.Email,
		PhoneNumber:  p.PhoneNumber,
		BuildingNo:   p.BuildingNo,
		StreetName:   p.StreetName,
		Area:         p.Area,
		City:         p.City,
		State:        p.State,
		PinCode:      p.PinCode,
		TypeOfUser:   p.TypeOfUser,
		RepairOrders: p.RepairOrders,
	}
}

// GetUser fetches one user by id. GET /endUser/viewUser?id={userId}.
func (c *UserClient) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var payload userPayload
	query := url.Values{"id": {userID}}
	if err := c.getJSON(ctx, "viewUser", "/endUser/viewUser", query, &payload); err != nil {
		return nil, err
	}
	user := payload.toDomain()
	return &user, nil
}

// ListUsers fetches the full user collection. GET /endUser/viewAllUsers.
func (c *UserClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	var payloads []userPayload
	if err := c.getJSON(ctx, "viewAllUsers", "/endUser/viewAllUsers", nil, &payloads); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(payloads))
	for _, p := range payloads {
		users = append(users, p.toDomain())
	}
	return users, nil
}
