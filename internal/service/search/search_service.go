package search

import (
	"context"
	"fmt"

	"github.com/vkarpenko/flightgate/internal/amadeus"
	"github.com/vkarpenko/flightgate/internal/domain"
)

// Offers are always priced in the settlement currency regardless of what the
// client displayed; the cap keeps the upstream response bounded.
const (
	settlementCurrency = "IDR"
	maxOffers          = 50
	defaultAdults      = 1
)

type SearchUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]domain.FlightOffer, error)
}

type OffersClient interface {
	SearchFlightOffers(ctx context.Context, query amadeus.FlightOffersQuery) ([]amadeus.FlightOffer, error)
}

type SearchInput struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
}

// ValidationError reports missing required parameters and echoes back the
// received values for diagnostics.
type ValidationError struct {
	Origin        string
	Destination   string
	DepartureDate string
}

func (e *ValidationError) Error() string {
	return "Missing required parameters: origin, destination, departure_date"
}

func (e *ValidationError) Details() string {
	return fmt.Sprintf("Received - origin: %s, destination: %s, departure_date: %s",
		e.Origin, e.Destination, e.DepartureDate)
}

type SearchService struct {
	client OffersClient
}

func NewSearchService(client OffersClient) *SearchService {
	return &SearchService{client: client}
}

func (s *SearchService) Search(ctx context.Context, input SearchInput) ([]domain.FlightOffer, error) {
	if input.Origin == "" || input.Destination == "" || input.DepartureDate == "" {
		return nil, &ValidationError{
			Origin:        input.Origin,
			Destination:   input.Destination,
			DepartureDate: input.DepartureDate,
		}
	}

	adults := input.Adults
	if adults <= 0 {
		adults = defaultAdults
	}

	offers, err := s.client.SearchFlightOffers(ctx, amadeus.FlightOffersQuery{
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ReturnDate:    input.ReturnDate,
		Adults:        adults,
		CurrencyCode:  settlementCurrency,
		Max:           maxOffers,
	})
	if err != nil {
		return nil, err
	}

	return flattenOffers(offers), nil
}

// flattenOffers turns every itinerary of every offer into one output record.
// A round-trip offer therefore yields two records sharing the offer's id and
// full price.
func flattenOffers(offers []amadeus.FlightOffer) []domain.FlightOffer {
	flights := make([]domain.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		var seats any = "N/A"
		if offer.NumberOfBookableSeats != nil {
			seats = *offer.NumberOfBookableSeats
		}

		for _, itinerary := range offer.Itineraries {
			if len(itinerary.Segments) == 0 {
				continue
			}

			first := itinerary.Segments[0]
			last := itinerary.Segments[len(itinerary.Segments)-1]

			segments := make([]domain.Segment, 0, len(itinerary.Segments))
			for _, seg := range itinerary.Segments {
				segments = append(segments, domain.Segment{
					DepartureAirport: seg.Departure.IataCode,
					ArrivalAirport:   seg.Arrival.IataCode,
					DepartureTime:    seg.Departure.At,
					ArrivalTime:      seg.Arrival.At,
					Carrier:          seg.CarrierCode,
					FlightNumber:     seg.Number,
				})
			}

			flights = append(flights, domain.FlightOffer{
				ID:               offer.ID,
				AirlineCode:      first.CarrierCode,
				AirlineName:      domain.AirlineName(first.CarrierCode),
				FlightNumber:     first.Number,
				DepartureAirport: first.Departure.IataCode,
				DepartureTime:    first.Departure.At,
				ArrivalAirport:   last.Arrival.IataCode,
				ArrivalTime:      last.Arrival.At,
				Duration:         itinerary.Duration,
				Price:            offer.Price.Total,
				Currency:         offer.Price.Currency,
				BookableSeats:    seats,
				Stops:            len(itinerary.Segments) - 1,
				IsDirect:         len(itinerary.Segments) == 1,
				Segments:         segments,
			})
		}
	}
	return flights
}

var _ SearchUseCase = (*SearchService)(nil)
