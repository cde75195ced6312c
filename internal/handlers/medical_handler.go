package handlers

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/middleware"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MedicalRecordHandler handles HTTP requests for pet medical records.
type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

// RegisterRoutes registers the medical record routes with the Fiber app.
func (h *MedicalRecordHandler) RegisterRoutes(router fiber.Router, g Guards) {
	medicalRoutes := router.Group("/medical", g.Auth)
	medicalRoutes.Get("/pet/:petId", h.HandleListByPet)
	medicalRoutes.Get("/pet/:petId/vaccinations", h.HandleVaccinationHistory)
	medicalRoutes.Get("/:id", h.HandleGetRecord)
	medicalRoutes.Post("/", g.Admin, h.HandleCreateRecord)
	medicalRoutes.Put("/:id", g.Admin, h.HandleUpdateRecord)
	medicalRoutes.Delete("/:id", g.Admin, h.HandleDeleteRecord)
}

// MedicalRecordRequest is the body of medical record create and update calls.
// Dates are RFC 3339 timestamps or plain calendar dates.
type MedicalRecordRequest struct {
	PetID           *string              `json:"petId"`
	RecordType      *models.RecordType   `json:"recordType"`
	Title           *string              `json:"title"`
	Description     *string              `json:"description"`
	Veterinarian    *string              `json:"veterinarian"`
	Clinic          *string              `json:"clinic"`
	Date            *Date                `json:"date"`
	NextAppointment *Date                `json:"nextAppointment"`
	Medications     []models.Medication  `json:"medications" validate:"omitempty,dive"`
	Vaccinations    []models.Vaccination `json:"vaccinations" validate:"omitempty,dive"`
	Cost            *float64             `json:"cost" validate:"omitempty,gte=0"`
	Notes           *string              `json:"notes"`
}

func (r MedicalRecordRequest) input() services.MedicalRecordInput {
	return services.MedicalRecordInput{
		PetID:           r.PetID,
		RecordType:      r.RecordType,
		Title:           r.Title,
		Description:     r.Description,
		Veterinarian:    r.Veterinarian,
		Clinic:          r.Clinic,
		Date:            r.Date.ptr(),
		NextAppointment: r.NextAppointment.ptr(),
		Medications:     r.Medications,
		Vaccinations:    r.Vaccinations,
		Cost:            r.Cost,
		Notes:           r.Notes,
	}
}

// HandleListByPet lists a pet's records, optionally of one recordType.
func (h *MedicalRecordHandler) HandleListByPet(c *fiber.Ctx) error {
	records, err := h.service.ListByPet(c.Params("petId"), models.RecordType(c.Query("recordType")))
	if err != nil {
		return respondError(c, err, "Pet")
	}
	return c.JSON(records)
}

// HandleVaccinationHistory returns every vaccination the pet received, oldest first.
func (h *MedicalRecordHandler) HandleVaccinationHistory(c *fiber.Ctx) error {
	history, err := h.service.VaccinationHistory(c.Params("petId"))
	if err != nil {
		return respondError(c, err, "Pet")
	}
	return c.JSON(history)
}

// HandleGetRecord returns a single medical record.
func (h *MedicalRecordHandler) HandleGetRecord(c *fiber.Ctx) error {
	rec, err := h.service.GetRecord(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Medical record")
	}
	return c.JSON(rec)
}

// HandleCreateRecord creates a medical record authored by the signed-in admin.
func (h *MedicalRecordHandler) HandleCreateRecord(c *fiber.Ctx) error {
	var req MedicalRecordRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Medical record")
	}
	rec, err := h.service.CreateRecord(req.input(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Medical record")
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleUpdateRecord updates the supplied fields of a medical record.
func (h *MedicalRecordHandler) HandleUpdateRecord(c *fiber.Ctx) error {
	var req MedicalRecordRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Medical record")
	}
	rec, err := h.service.UpdateRecord(c.Params("id"), req.input())
	if err != nil {
		return respondError(c, err, "Medical record")
	}
	return c.JSON(rec)
}

// HandleDeleteRecord deletes a medical record.
func (h *MedicalRecordHandler) HandleDeleteRecord(c *fiber.Ctx) error {
	if err := h.service.DeleteRecord(c.Params("id")); err != nil {
		return respondError(c, err, "Medical record")
	}
	return message(c, "Medical record removed")
}
