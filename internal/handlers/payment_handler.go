package handlers

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/payment"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles the checkout endpoints of the donation flow.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router, g Guards) {
	paymentRoutes := router.Group("/payments", g.Optional)
	paymentRoutes.Post("/create-order", h.HandleCreateOrder)
	paymentRoutes.Post("/verify", h.HandleVerify)
}

// CreateOrderRequest is the body of the create-order call.
type CreateOrderRequest struct {
	Amount  float64 `json:"amount"`
	Receipt string  `json:"receipt"`
}

// VerifyPaymentRequest carries the checkout confirmation for a donation.
type VerifyPaymentRequest struct {
	DonationID string `json:"donationId"`
	OrderID    string `json:"orderId"`
	PaymentID  string `json:"paymentId"`
	Signature  string `json:"signature"`
}

// HandleCreateOrder opens a payment order.
func (h *PaymentHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Order")
	}
	order, err := h.service.CreateOrder(c.UserContext(), req.Amount, req.Receipt)
	if err != nil {
		return respondError(c, err, "Order")
	}
	return c.JSON(order)
}

// HandleVerify checks a payment confirmation and settles the donation.
func (h *PaymentHandler) HandleVerify(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err, "Donation")
	}
	d, ok, err := h.service.VerifyPayment(c.UserContext(), req.DonationID, payment.Confirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return respondError(c, err, "Donation")
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg":      "Payment verification failed",
			"success":  false,
			"donation": d,
		})
	}
	return c.JSON(fiber.Map{
		"msg":      "Payment verified successfully",
		"success":  true,
		"donation": d,
	})
}
