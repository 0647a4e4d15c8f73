package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/repair-dashboard/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated staff member, as asserted by the
// external identity provider's token. No local user store is consulted;
// the claims are the whole identity.
type Principal struct {
	StaffID   string
	StaffName string
	Role      string
}

// GateMiddleware is the authentication gate in front of the dashboard
// views: it validates bearer tokens and loads the staff principal.
type GateMiddleware struct {
	tokens *TokenManager
}

// NewGateMiddleware constructs middleware.
func NewGateMiddleware(tokens *TokenManager) *GateMiddleware {
	return &GateMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *GateMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{
		StaffID:   claims.StaffID,
		StaffName: claims.StaffName,
		Role:      claims.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated staff member.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
