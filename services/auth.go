package services

import (
	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/shared"
)

// AuthService resolves the caller's identity. Every request that
// touches per-user state must carry a verified user id; there is no
// implicit default user.
type AuthService struct {
	appContext.DefaultService
	jwt *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Start() error {
	svc.jwt = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

// RequiredAuth rejects requests without a valid bearer token and
// stores the subject user id in request locals.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwt.ExtractTokenFromHeader(c.Get("Authorization"))
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		userID, err := svc.jwt.VerifyJWTToken(token)
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}

// UserID reads the authenticated user id set by RequiredAuth.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(shared.UserID).(string); ok {
		return id
	}
	return ""
}
