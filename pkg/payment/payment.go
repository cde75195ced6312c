// Package payment abstracts the external payment processor used for donations.
package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidAmount is returned when an order is requested for a non-positive amount.
var ErrInvalidAmount = errors.New("amount must be greater than 0")

// Order is a payment order opened with the processor.
type Order struct {
	ID       string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
	Status   string  `json:"status"`
	DemoMode bool    `json:"demoMode"`
}

// Confirmation is what the client relays back after checkout.
type Confirmation struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// Gateway opens orders and verifies payment confirmations.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (Order, error)
	Verify(ctx context.Context, c Confirmation) (bool, error)
}

// Simulator is a demo-mode Gateway that never contacts a processor. Every
// call waits Delay (honouring ctx) to mimic network latency.
type Simulator struct {
	Delay time.Duration
}

// NewSimulator returns a Simulator with the given fixed delay.
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{Delay: delay}
}

// CreateOrder returns a demo order with an id of the form order_demo_<hex>.
func (s *Simulator) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (Order, error) {
	if amount <= 0 {
		return Order{}, ErrInvalidAmount
	}
	if err := s.wait(ctx); err != nil {
		return Order{}, err
	}
	return Order{
		ID:       "order_demo_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:14],
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
		DemoMode: true,
	}, nil
}

// Verify accepts any confirmation that names an order and a payment.
func (s *Simulator) Verify(ctx context.Context, c Confirmation) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	return c.OrderID != "" && c.PaymentID != "", nil
}

// NewDemoPaymentID returns a payment id in the simulator's format, for clients
// that have no real checkout to obtain one from.
func NewDemoPaymentID() string {
	return "pay_demo_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:14]
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
