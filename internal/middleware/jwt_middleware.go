package middleware

import (
	"errors"
	"strings"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Keys under which the resolved identity is stored in fiber.Ctx locals.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// TokenResolver turns a bearer token into the user it was issued to.
type TokenResolver interface {
	ResolveToken(token string) (*models.User, error)
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(resolver TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "No token, authorization denied")
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			return unauthorized(c, "Authorization header format must be 'Bearer <token>'")
		}

		user, err := resolver.ResolveToken(token)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidToken) {
				log.WithFields(log.Fields{
					"method":     c.Method(),
					"path":       c.Path(),
					"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
				}).Errorf("Failed to resolve token: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Server error"})
			}
			log.WithField("path", c.Path()).Debugf("JWT validation failed: %v", err)
			return unauthorized(c, "Token is not valid")
		}

		// Store identity in Fiber context for subsequent handlers
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

// AdminOnly rejects requests whose resolved user is not an administrator.
// It must run after AuthRequired.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Role(c) != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "Access denied. Admin only.",
			})
		}
		return c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// every request through regardless.
func OptionalAuth(resolver TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
			user, err := resolver.ResolveToken(token)
			switch {
			case err == nil:
				c.Locals(LocalUserID, user.ID)
				c.Locals(LocalRole, user.Role)
			case !errors.Is(err, services.ErrInvalidToken):
				log.WithField("path", c.Path()).Errorf("Failed to resolve token: %v", err)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's id, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

// Role returns the authenticated user's role, or "" for anonymous requests.
func Role(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(LocalRole).(models.Role)
	return role
}

// Expected format: "Bearer <token>"
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": msg})
}

var _ TokenResolver = (*services.AuthService)(nil)
