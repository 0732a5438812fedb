package domain

// FlightOffer is one flattened itinerary of an upstream flight offer. A
// round-trip offer produces two of these sharing the same ID and total
// price, one per itinerary.
type FlightOffer struct {
	ID               string    `json:"id"`
	AirlineCode      string    `json:"airline_code"`
	AirlineName      string    `json:"airline_name"`
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	DepartureTime    string    `json:"departure_time"`
	ArrivalAirport   string    `json:"arrival_airport"`
	ArrivalTime      string    `json:"arrival_time"`
	Duration         string    `json:"duration"`
	Price            string    `json:"price"`
	Currency         string    `json:"currency"`
	BookableSeats    any       `json:"numberOfBookableSeats"`
	Stops            int       `json:"stops"`
	IsDirect         bool      `json:"is_direct"`
	Segments         []Segment `json:"segments"`
}

// Segment is a single non-stop leg within an itinerary.
type Segment struct {
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Carrier          string `json:"carrier"`
	FlightNumber     string `json:"flight_number"`
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Type    string `json:"type"`
}

type Destination struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Type      string  `json:"type,omitempty"`
	Relevance float64 `json:"relevance,omitempty"`
	Image     string  `json:"image,omitempty"`
}
