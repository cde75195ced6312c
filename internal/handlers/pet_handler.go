package handlers

import (
	"strconv"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PetHandler handles HTTP requests for pets.
type PetHandler struct {
	service *services.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *services.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// RegisterRoutes registers the pet routes with the Fiber app.
func (h *PetHandler) RegisterRoutes(router fiber.Router, g Guards) {
	petRoutes := router.Group("/pets")
	petRoutes.Get("/", h.HandleListPets)
	petRoutes.Get("/:id", h.HandleGetPet)
	petRoutes.Post("/", g.Auth, g.Admin, h.HandleCreatePet)
	petRoutes.Put("/:id", g.Auth, g.Admin, h.HandleUpdatePet)
	petRoutes.Patch("/:id/status", g.Auth, g.Admin, h.HandleUpdateStatus)
	petRoutes.Delete("/:id", g.Auth, g.Admin, h.HandleDeletePet)
}

// PetRequest is the body of pet create and update calls. The adoption status
// is not part of it; it has its own endpoint.
type PetRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Breed       *string  `json:"breed"`
	Age         *int     `json:"age" validate:"omitempty,gte=0"`
	Gender      *string  `json:"gender"`
	Size        *string  `json:"size"`
	Color       *string  `json:"color"`
	Weight      *float64 `json:"weight" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Vaccinated  *bool    `json:"vaccinated"`
	Neutered    *bool    `json:"neutered"`
	AdoptionFee *float64 `json:"adoptionFee" validate:"omitempty,gte=0"`
	ShelterID   *string  `json:"shelterId"`
}

func (r PetRequest) input() services.PetInput {
	return services.PetInput{
		Name:        r.Name,
		Type:        r.Type,
		Breed:       r.Breed,
		Age:         r.Age,
		Gender:      r.Gender,
		Size:        r.Size,
		Color:       r.Color,
		Weight:      r.Weight,
		Description: r.Description,
		Images:      r.Images,
		Vaccinated:  r.Vaccinated,
		Neutered:    r.Neutered,
		AdoptionFee: r.AdoptionFee,
		ShelterID:   r.ShelterID,
	}
}

// PetStatusRequest is the body of the adoption status endpoint.
type PetStatusRequest struct {
	AdoptionStatus models.AdoptionStatus `json:"adoptionStatus" validate:"required"`
}

// HandleListPets lists pets. Every query parameter narrows the result; age is
// an upper bound.
func (h *PetHandler) HandleListPets(c *fiber.Ctx) error {
	filter := repositories.PetFilter{
		Type:           c.Query("type"),
		Breed:          c.Query("breed"),
		Name:           c.Query("name"),
		Gender:         c.Query("gender"),
		Size:           c.Query("size"),
		AdoptionStatus: models.AdoptionStatus(c.Query("adoptionStatus")),
		ShelterID:      c.Query("shelterId"),
	}
	if raw := c.Query("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "age must be a non-negative integer"})
		}
		filter.MaxAge = &age
	}
	if filter.AdoptionStatus != "" && !filter.AdoptionStatus.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Invalid adoption status"})
	}

	pets, err := h.service.ListPets(filter)
	if err != nil {
		return respondError(c, err, "Pet")
	}
	return c.JSON(pets)
}

// HandleGetPet returns a single pet with its shelter.
func (h *PetHandler) HandleGetPet(c *fiber.Ctx) error {
	pet, err := h.service.GetPet(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Pet")
	}
	return c.JSON(pet)
}

// HandleCreatePet creates a new pet in an existing shelter.
func (h *PetHandler) HandleCreatePet(c *fiber.Ctx) error {
	var req PetRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Pet")
	}
	pet, err := h.service.CreatePet(req.input())
	if err != nil {
		return respondError(c, err, "Pet")
	}
	return c.Status(fiber.StatusCreated).JSON(pet)
}

// HandleUpdatePet updates the supplied fields of a pet.
func (h *PetHandler) HandleUpdatePet(c *fiber.Ctx) error {
	var req PetRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Pet")
	}
	pet, err := h.service.UpdatePet(c.Params("id"), req.input())
	if err != nil {
		return respondError(c, err, "Pet")
	}
	return c.JSON(pet)
}

// HandleUpdateStatus changes a pet's adoption status.
func (h *PetHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req PetStatusRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Pet")
	}
	pet, err := h.service.UpdateAdoptionStatus(c.Params("id"), req.AdoptionStatus)
	if err != nil {
		return respondError(c, err, "Pet")
	}
	return c.JSON(pet)
}

// HandleDeletePet deletes a pet and frees its shelter place.
func (h *PetHandler) HandleDeletePet(c *fiber.Ctx) error {
	if err := h.service.DeletePet(c.Params("id")); err != nil {
		return respondError(c, err, "Pet")
	}
	return message(c, "Pet removed")
}
