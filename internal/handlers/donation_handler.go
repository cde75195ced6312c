package handlers

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/middleware"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DonationHandler handles HTTP requests for donations.
type DonationHandler struct {
	service *services.DonationService
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(service *services.DonationService) *DonationHandler {
	return &DonationHandler{service: service}
}

// RegisterRoutes registers the donation routes with the Fiber app.
func (h *DonationHandler) RegisterRoutes(router fiber.Router, g Guards) {
	donationRoutes := router.Group("/donations")
	donationRoutes.Post("/", g.Optional, h.HandleCreateDonation)
	donationRoutes.Get("/", g.Auth, g.Admin, h.HandleListDonations)
	donationRoutes.Get("/mine", g.Auth, h.HandleListMine)
	donationRoutes.Get("/:id", g.Auth, h.HandleGetDonation)
	donationRoutes.Patch("/:id/payment-status", g.Auth, g.Admin, h.HandleUpdatePaymentStatus)
	donationRoutes.Delete("/:id", g.Auth, g.Admin, h.HandleDeleteDonation)
}

// DonationRequest is the body of the donation create call.
type DonationRequest struct {
	DonorName *string  `json:"donorName"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Phone     *string  `json:"phone"`
	Amount    *float64 `json:"amount"`
	Message   *string  `json:"message"`
	Anonymous *bool    `json:"anonymous"`
	PaymentID *string  `json:"paymentId"`
	OrderID   *string  `json:"orderId"`
}

// PaymentStatusRequest is the body of the payment status endpoint.
type PaymentStatusRequest struct {
	PaymentStatus models.PaymentStatus `json:"paymentStatus" validate:"required"`
	PaymentID     string               `json:"paymentId"`
}

// HandleCreateDonation records a pending donation.
func (h *DonationHandler) HandleCreateDonation(c *fiber.Ctx) error {
	var req DonationRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Donation")
	}
	d, err := h.service.CreateDonation(services.DonationInput{
		DonorName: req.DonorName,
		Email:     req.Email,
		Phone:     req.Phone,
		Amount:    req.Amount,
		Message:   req.Message,
		Anonymous: req.Anonymous,
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
	}, middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Donation")
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

// HandleListDonations lists donations filtered by paymentStatus or email.
func (h *DonationHandler) HandleListDonations(c *fiber.Ctx) error {
	donations, err := h.service.ListDonations(repositories.DonationFilter{
		PaymentStatus: models.PaymentStatus(c.Query("paymentStatus")),
		Email:         c.Query("email"),
	})
	if err != nil {
		return respondError(c, err, "Donation")
	}
	return c.JSON(donations)
}

// HandleListMine lists the signed-in user's donations.
func (h *DonationHandler) HandleListMine(c *fiber.Ctx) error {
	donations, err := h.service.ListDonations(repositories.DonationFilter{UserID: middleware.UserID(c)})
	if err != nil {
		return respondError(c, err, "Donation")
	}
	return c.JSON(donations)
}

// HandleGetDonation returns a donation to its donor or an admin.
func (h *DonationHandler) HandleGetDonation(c *fiber.Ctx) error {
	d, err := h.service.GetDonation(c.Params("id"), middleware.UserID(c), middleware.Role(c) == models.RoleAdmin)
	if err != nil {
		return respondError(c, err, "Donation")
	}
	return c.JSON(d)
}

// HandleUpdatePaymentStatus sets a donation's payment status.
func (h *DonationHandler) HandleUpdatePaymentStatus(c *fiber.Ctx) error {
	var req PaymentStatusRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Donation")
	}
	d, err := h.service.UpdatePaymentStatus(c.Params("id"), req.PaymentStatus, req.PaymentID)
	if err != nil {
		return respondError(c, err, "Donation")
	}
	return c.JSON(d)
}

// HandleDeleteDonation deletes a donation.
func (h *DonationHandler) HandleDeleteDonation(c *fiber.Ctx) error {
	if err := h.service.DeleteDonation(c.Params("id")); err != nil {
		return respondError(c, err, "Donation")
	}
	return message(c, "Donation removed")
}
