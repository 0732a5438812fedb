package booking

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vkarpenko/flightgate/internal/domain"
	"github.com/vkarpenko/flightgate/internal/kafka"
	"github.com/vkarpenko/flightgate/internal/repository"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// CreateBookingInput uses pointers for the required fields so an absent JSON
// key is distinguishable from an empty value.
type CreateBookingInput struct {
	PassengerName    *string          `json:"passenger_name"`
	PassportNumber   *string          `json:"passport_number"`
	AirlineCode      *string          `json:"airline_code"`
	DepartureAirport *string          `json:"departure_airport"`
	ArrivalAirport   *string          `json:"arrival_airport"`
	DepartureTime    *string          `json:"departure_time"`
	ArrivalTime      *string          `json:"arrival_time"`
	Price            *decimal.Decimal `json:"price"`
	Currency         string           `json:"currency"`
	TripType         string           `json:"trip_type"`
}

// MissingFieldsError lists every required field absent from the request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	notificationsTopic string
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, notificationsTopic string) *BookingService {
	return &BookingService{
		bookings:           bookings,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if missing := missingFields(input); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	booking := &domain.Booking{
		PassengerName:    *input.PassengerName,
		PassportNumber:   *input.PassportNumber,
		AirlineCode:      *input.AirlineCode,
		DepartureAirport: *input.DepartureAirport,
		ArrivalAirport:   *input.ArrivalAirport,
		DepartureTime:    *input.DepartureTime,
		ArrivalTime:      *input.ArrivalTime,
		Price:            *input.Price,
		Currency:         input.Currency,
		TripType:         input.TripType,
	}
	if booking.Currency == "" {
		booking.Currency = domain.DefaultCurrency
	}
	if booking.TripType == "" {
		booking.TripType = domain.DefaultTripType
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	// notification publish is best-effort, the booking is already durable
	if s.producer != nil {
		event := kafka.BookingEvent{
			Type:             "booking_created",
			BookingID:        booking.ID,
			PassengerName:    booking.PassengerName,
			AirlineCode:      booking.AirlineCode,
			DepartureAirport: booking.DepartureAirport,
			ArrivalAirport:   booking.ArrivalAirport,
			Price:            booking.Price.StringFixed(2),
			Currency:         booking.Currency,
			CreatedAt:        booking.CreatedAt,
		}
		if err := s.producer.Publish(ctx, s.notificationsTopic, strconv.FormatInt(booking.ID, 10), event); err != nil {
			log.Printf("WARNING: failed to publish booking_created event for booking %d: %v", booking.ID, err)
		}
	}

	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func missingFields(input CreateBookingInput) []string {
	var missing []string
	if input.PassengerName == nil {
		missing = append(missing, "passenger_name")
	}
	if input.PassportNumber == nil {
		missing = append(missing, "passport_number")
	}
	if input.AirlineCode == nil {
		missing = append(missing, "airline_code")
	}
	if input.DepartureAirport == nil {
		missing = append(missing, "departure_airport")
	}
	if input.ArrivalAirport == nil {
		missing = append(missing, "arrival_airport")
	}
	if input.DepartureTime == nil {
		missing = append(missing, "departure_time")
	}
	if input.ArrivalTime == nil {
		missing = append(missing, "arrival_time")
	}
	if input.Price == nil {
		missing = append(missing, "price")
	}
	return missing
}

var _ BookingUseCase = (*BookingService)(nil)
