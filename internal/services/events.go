package services

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/metrics"

	log "github.com/sirupsen/logrus"
)

// Domain event types.
const (
	EventPetStatusChanged       = "pet.status_changed"
	EventDonationCreated        = "donation.created"
	EventDonationPaymentUpdated = "donation.payment_updated"
	EventVolunteerRegistered    = "volunteer.registered"
)

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	Publish(eventType string, data interface{}) error
}

// publish sends the event if a publisher is configured. Failures are logged and
// never fail the operation that produced the event.
func publish(p EventPublisher, eventType string, data interface{}) {
	if p == nil {
		return
	}
	err := p.Publish(eventType, data)
	metrics.RecordEvent(eventType, err)
	if err != nil {
		log.Warnf("Failed to publish %s event: %v", eventType, err)
	}
}
