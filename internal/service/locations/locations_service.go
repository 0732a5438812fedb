package locations

import (
	"context"
	"errors"
	"strings"

	"github.com/vkarpenko/flightgate/internal/amadeus"
	"github.com/vkarpenko/flightgate/internal/domain"
)

// ErrKeywordTooShort rejects airport searches before any upstream call is
// made.
var ErrKeywordTooShort = errors.New("keyword must be at least 2 characters")

const maxDestinations = 8

type LocationUseCase interface {
	SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error)
	PopularDestinations(ctx context.Context) ([]domain.Destination, error)
}

type Client interface {
	SearchLocations(ctx context.Context, keyword string) ([]amadeus.Location, error)
	RecommendedLocations(ctx context.Context) ([]amadeus.RecommendedLocation, error)
}

type Cache interface {
	GetAirports(ctx context.Context, keyword string) ([]domain.Airport, error)
	SetAirports(ctx context.Context, keyword string, airports []domain.Airport) error
	GetDestinations(ctx context.Context) ([]domain.Destination, error)
	SetDestinations(ctx context.Context, destinations []domain.Destination) error
}

type LocationService struct {
	client Client
	cache  Cache
}

func NewLocationService(client Client, cache Cache) *LocationService {
	return &LocationService{client: client, cache: cache}
}

func (s *LocationService) SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < 2 {
		return nil, ErrKeywordTooShort
	}

	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx, keyword); err == nil && cached != nil {
			return cached, nil
		}
	}

	locations, err := s.client.SearchLocations(ctx, keyword)
	if err != nil {
		return nil, err
	}

	airports := make([]domain.Airport, 0, len(locations))
	for _, loc := range locations {
		// entries without an IATA code are unusable as search keys
		if loc.IataCode == "" {
			continue
		}
		airports = append(airports, domain.Airport{
			Code:    loc.IataCode,
			Name:    loc.Name,
			City:    loc.Address.CityName,
			Country: loc.Address.CountryName,
			Type:    loc.SubType,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, keyword, airports)
	}
	return airports, nil
}

// PopularDestinations returns the upstream recommendations when they are
// usable and the static fallback list when the upstream returns nothing or
// fails with an API error. Only non-API failures propagate.
func (s *LocationService) PopularDestinations(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDestinations(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	recommended, err := s.client.RecommendedLocations(ctx)

	var apiErr *amadeus.APIError
	if errors.As(err, &apiErr) {
		return FallbackDestinations(), nil
	}
	if err != nil {
		return nil, err
	}

	// only the first 8 upstream entries are considered; codeless entries
	// inside that window shrink the result rather than pulling in later ones
	window := recommended
	if len(window) > maxDestinations {
		window = window[:maxDestinations]
	}

	destinations := make([]domain.Destination, 0, len(window))
	for _, loc := range window {
		if loc.IataCode == "" {
			continue
		}
		destinations = append(destinations, domain.Destination{
			Code:      loc.IataCode,
			Name:      loc.Name,
			City:      loc.Address.CityName,
			Country:   loc.Address.CountryName,
			Type:      loc.Type,
			Relevance: loc.Relevance,
		})
	}

	if len(destinations) == 0 {
		return FallbackDestinations(), nil
	}

	if s.cache != nil {
		_ = s.cache.SetDestinations(ctx, destinations)
	}
	return destinations, nil
}

// FallbackDestinations is the degraded-service list served when the
// recommendations endpoint yields nothing usable.
func FallbackDestinations() []domain.Destination {
	return []domain.Destination{
		{Code: "PAR", City: "Paris", Country: "France", Name: "Paris", Image: "https://images.unsplash.com/photo-1511739001486-6bfe10ce785f?w=800&q=80"},
		{Code: "LON", City: "London", Country: "United Kingdom", Name: "London", Image: "https://images.unsplash.com/photo-1505761671935-60b3a7427bad?w=800&q=80"},
		{Code: "NYC", City: "New York", Country: "United States", Name: "New York", Image: "https://images.unsplash.com/photo-1485871981521-5b1fd3805eee?w=800&q=80"},
		{Code: "DXB", City: "Dubai", Country: "United Arab Emirates", Name: "Dubai", Image: "https://images.unsplash.com/photo-1518684079-3c830dcef090?w=800&q=80"},
		{Code: "TYO", City: "Tokyo", Country: "Japan", Name: "Tokyo", Image: "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?w=800&q=80"},
		{Code: "BKK", City: "Bangkok", Country: "Thailand", Name: "Bangkok", Image: "https://images.unsplash.com/photo-1563492065599-3520f775eeed?w=800&q=80"},
		{Code: "SIN", City: "Singapore", Country: "Singapore", Name: "Singapore", Image: "https://images.unsplash.com/photo-1508964942454-1a56651d54ac?w=800&q=80"},
		{Code: "IST", City: "Istanbul", Country: "Turkey", Name: "Istanbul", Image: "https://images.unsplash.com/photo-1541432901042-2d8bd64b4a9b?w=800&q=80"},
	}
}

var _ LocationUseCase = (*LocationService)(nil)
