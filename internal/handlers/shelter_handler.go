package handlers

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ShelterHandler handles HTTP requests for shelters.
type ShelterHandler struct {
	service *services.ShelterService
}

// NewShelterHandler creates a new ShelterHandler.
func NewShelterHandler(service *services.ShelterService) *ShelterHandler {
	return &ShelterHandler{service: service}
}

// RegisterRoutes registers the shelter routes with the Fiber app.
func (h *ShelterHandler) RegisterRoutes(router fiber.Router, g Guards) {
	shelterRoutes := router.Group("/shelters")
	shelterRoutes.Get("/", h.HandleListShelters)
	shelterRoutes.Get("/:id", h.HandleGetShelter)
	shelterRoutes.Post("/", g.Auth, g.Admin, h.HandleCreateShelter)
	shelterRoutes.Put("/:id", g.Auth, g.Admin, h.HandleUpdateShelter)
	shelterRoutes.Delete("/:id", g.Auth, g.Admin, h.HandleDeleteShelter)
}

// ShelterRequest is the body of shelter create and update calls.
type ShelterRequest struct {
	Name           *string             `json:"name"`
	Address        *string             `json:"address"`
	City           *string             `json:"city"`
	State          *string             `json:"state"`
	ZipCode        *string             `json:"zipCode"`
	Phone          *string             `json:"phone"`
	Email          *string             `json:"email" validate:"omitempty,email"`
	Website        *string             `json:"website"`
	Description    *string             `json:"description"`
	Capacity       *int                `json:"capacity"`
	Coordinates    *models.Coordinates `json:"coordinates"`
	OperatingHours map[string]string   `json:"operatingHours"`
}

func (r ShelterRequest) input() services.ShelterInput {
	return services.ShelterInput{
		Name:           r.Name,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		ZipCode:        r.ZipCode,
		Phone:          r.Phone,
		Email:          r.Email,
		Website:        r.Website,
		Description:    r.Description,
		Capacity:       r.Capacity,
		Coordinates:    r.Coordinates,
		OperatingHours: r.OperatingHours,
	}
}

// HandleListShelters lists shelters, filtered by name, city or state.
func (h *ShelterHandler) HandleListShelters(c *fiber.Ctx) error {
	shelters, err := h.service.ListShelters(repositories.ShelterFilter{
		Name:  c.Query("name"),
		City:  c.Query("city"),
		State: c.Query("state"),
	})
	if err != nil {
		return respondError(c, err, "Shelter")
	}
	return c.JSON(shelters)
}

// HandleGetShelter returns a shelter with its pet counts.
func (h *ShelterHandler) HandleGetShelter(c *fiber.Ctx) error {
	shelter, err := h.service.GetShelter(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Shelter")
	}
	return c.JSON(shelter)
}

// HandleCreateShelter creates a new shelter.
func (h *ShelterHandler) HandleCreateShelter(c *fiber.Ctx) error {
	var req ShelterRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Shelter")
	}
	shelter, err := h.service.CreateShelter(req.input())
	if err != nil {
		return respondError(c, err, "Shelter")
	}
	return c.Status(fiber.StatusCreated).JSON(shelter)
}

// HandleUpdateShelter updates the supplied fields of a shelter.
func (h *ShelterHandler) HandleUpdateShelter(c *fiber.Ctx) error {
	var req ShelterRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Shelter")
	}
	shelter, err := h.service.UpdateShelter(c.Params("id"), req.input())
	if err != nil {
		return respondError(c, err, "Shelter")
	}
	return c.JSON(shelter)
}

// HandleDeleteShelter deletes a shelter that houses no pets.
func (h *ShelterHandler) HandleDeleteShelter(c *fiber.Ctx) error {
	if err := h.service.DeleteShelter(c.Params("id")); err != nil {
		return respondError(c, err, "Shelter")
	}
	return message(c, "Shelter removed")
}
