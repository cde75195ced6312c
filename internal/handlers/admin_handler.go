package handlers

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/middleware"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the administrator dashboard.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, g Guards) {
	adminRoutes := router.Group("/admin", g.Auth, g.Admin)
	adminRoutes.Get("/stats", h.HandleStats)
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Patch("/users/:id/role", h.HandleUpdateRole)
	adminRoutes.Delete("/users/:id", h.HandleDeleteUser)
}

// RoleRequest is the body of the role endpoint.
type RoleRequest struct {
	Role models.Role `json:"role" validate:"required"`
}

// HandleStats returns the dashboard counters.
func (h *AdminHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return respondError(c, err, "Stats")
	}
	return c.JSON(stats)
}

// HandleListUsers lists every account.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(users)
}

// HandleUpdateRole changes a user's role.
func (h *AdminHandler) HandleUpdateRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "User")
	}
	user, err := h.service.UpdateUserRole(middleware.UserID(c), c.Params("id"), req.Role)
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes an account other than the caller's.
func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err, "User")
	}
	return message(c, "User removed")
}
