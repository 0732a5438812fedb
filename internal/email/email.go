package email

import (
	"context"
	"log"

	"github.com/vkarpenko/flightgate/internal/kafka"
)

// Sender is a stand-in for a real mail integration; it logs the confirmation
// that would be sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("booking confirmation for %s: %s %s -> %s, %s %s",
		event.PassengerName, event.AirlineCode, event.DepartureAirport,
		event.ArrivalAirport, event.Price, event.Currency)
	return nil
}
