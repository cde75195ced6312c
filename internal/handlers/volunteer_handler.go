package handlers

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/middleware"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VolunteerHandler handles HTTP requests for volunteers.
type VolunteerHandler struct {
	service *services.VolunteerService
}

// NewVolunteerHandler creates a new VolunteerHandler.
func NewVolunteerHandler(service *services.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{service: service}
}

// RegisterRoutes registers the volunteer routes with the Fiber app.
func (h *VolunteerHandler) RegisterRoutes(router fiber.Router, g Guards) {
	volunteerRoutes := router.Group("/volunteers")
	volunteerRoutes.Post("/", g.Optional, h.HandleCreateVolunteer)
	volunteerRoutes.Get("/", g.Auth, g.Admin, h.HandleListVolunteers)
	volunteerRoutes.Get("/:id", g.Auth, h.HandleGetVolunteer)
	volunteerRoutes.Put("/:id", g.Auth, g.Admin, h.HandleUpdateVolunteer)
	volunteerRoutes.Patch("/:id/status", g.Auth, g.Admin, h.HandleUpdateStatus)
	volunteerRoutes.Patch("/:id/background-check", g.Auth, g.Admin, h.HandleUpdateBackgroundCheck)
	volunteerRoutes.Patch("/:id/hours", g.Auth, g.Admin, h.HandleAddHours)
	volunteerRoutes.Delete("/:id", g.Auth, g.Admin, h.HandleDeleteVolunteer)
}

// VolunteerRequest is the body of volunteer registration and profile updates.
type VolunteerRequest struct {
	Name             *string                  `json:"name"`
	Email            *string                  `json:"email" validate:"omitempty,email"`
	Phone            *string                  `json:"phone"`
	Address          *string                  `json:"address"`
	ShelterID        *string                  `json:"shelterId"`
	Skills           []string                 `json:"skills"`
	Availability     map[string][]string      `json:"availability"`
	Experience       *string                  `json:"experience"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact"`
}

func (r VolunteerRequest) input() services.VolunteerInput {
	return services.VolunteerInput{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		ShelterID:        r.ShelterID,
		Skills:           r.Skills,
		Availability:     r.Availability,
		Experience:       r.Experience,
		EmergencyContact: r.EmergencyContact,
	}
}

// VolunteerStatusRequest is the body of the status endpoint.
type VolunteerStatusRequest struct {
	Status models.VolunteerStatus `json:"status" validate:"required"`
}

// BackgroundCheckRequest is the body of the background check endpoint.
type BackgroundCheckRequest struct {
	BackgroundCheck models.BackgroundCheck `json:"backgroundCheck" validate:"required"`
}

// HoursRequest is the body of the hours endpoint. The value is added to the
// running total.
type HoursRequest struct {
	HoursToAdd *float64 `json:"hoursToAdd"`
}

// HandleCreateVolunteer registers a volunteer, linking the signed-in user if any.
func (h *VolunteerHandler) HandleCreateVolunteer(c *fiber.Ctx) error {
	var req VolunteerRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Volunteer")
	}
	v, err := h.service.CreateVolunteer(req.input(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Volunteer")
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// HandleListVolunteers lists volunteers filtered by shelterId, status,
// backgroundCheck or skill.
func (h *VolunteerHandler) HandleListVolunteers(c *fiber.Ctx) error {
	volunteers, err := h.service.ListVolunteers(repositories.VolunteerFilter{
		ShelterID:       c.Query("shelterId"),
		Status:          models.VolunteerStatus(c.Query("status")),
		BackgroundCheck: models.BackgroundCheck(c.Query("backgroundCheck")),
		Skill:           c.Query("skill"),
	})
	if err != nil {
		return respondError(c, err, "Volunteer")
	}
	return c.JSON(volunteers)
}

// HandleGetVolunteer returns a single volunteer.
func (h *VolunteerHandler) HandleGetVolunteer(c *fiber.Ctx) error {
	v, err := h.service.GetVolunteer(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Volunteer")
	}
	return c.JSON(v)
}

// HandleUpdateVolunteer updates the supplied profile fields of a volunteer.
func (h *VolunteerHandler) HandleUpdateVolunteer(c *fiber.Ctx) error {
	var req VolunteerRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Volunteer")
	}
	v, err := h.service.UpdateVolunteer(c.Params("id"), req.input())
	if err != nil {
		return respondError(c, err, "Volunteer")
	}
	return c.JSON(v)
}

// HandleUpdateStatus changes a volunteer's engagement status.
func (h *VolunteerHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req VolunteerStatusRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Volunteer")
	}
	v, err := h.service.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err, "Volunteer")
	}
	return c.JSON(v)
}

// HandleUpdateBackgroundCheck records the outcome of a volunteer's background check.
func (h *VolunteerHandler) HandleUpdateBackgroundCheck(c *fiber.Ctx) error {
	var req BackgroundCheckRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Volunteer")
	}
	v, err := h.service.UpdateBackgroundCheck(c.Params("id"), req.BackgroundCheck)
	if err != nil {
		return respondError(c, err, "Volunteer")
	}
	return c.JSON(v)
}

// HandleAddHours adds completed hours to a volunteer's total.
func (h *VolunteerHandler) HandleAddHours(c *fiber.Ctx) error {
	var req HoursRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Volunteer")
	}
	v, err := h.service.AddHours(c.Params("id"), req.HoursToAdd)
	if err != nil {
		return respondError(c, err, "Volunteer")
	}
	return c.JSON(v)
}

// HandleDeleteVolunteer deletes a volunteer.
func (h *VolunteerHandler) HandleDeleteVolunteer(c *fiber.Ctx) error {
	if err := h.service.DeleteVolunteer(c.Params("id")); err != nil {
		return respondError(c, err, "Volunteer")
	}
	return message(c, "Volunteer removed")
}
