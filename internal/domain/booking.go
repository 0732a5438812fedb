package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "USD"
	DefaultTripType = "one-way"
)

// Booking is the only persisted entity. Times are stored as the free-form
// strings the search results carry, not parsed timestamps. Price is an exact
// decimal so monetary values never drift through float rounding.
type Booking struct {
	ID               int64
	PassengerName    string
	PassportNumber   string
	AirlineCode      string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    string
	ArrivalTime      string
	Price            decimal.Decimal
	Currency         string
	TripType         string
	CreatedAt        time.Time
}
