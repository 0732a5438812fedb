// Package amadeus is a thin typed client for the Amadeus Self-Service APIs:
// airport/city search, travel recommendations and flight offer search.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vkarpenko/flightgate/config"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg config.AmadeusConfig) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// APIError is an error reported by the Amadeus API itself, decoded from its
// {"errors":[...]} envelope. Transport and decoding failures are returned as
// plain errors, not APIErrors.
type APIError struct {
	StatusCode int
	Code       int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("amadeus: %s: %s", e.Title, e.Detail)
	}
	return fmt.Sprintf("amadeus: %s (status %d)", e.Title, e.StatusCode)
}

type errorEnvelope struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = tok.AccessToken
	// renew slightly early so in-flight requests never carry a stale token
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn-30) * time.Second)
	c.mu.Unlock()
	return nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	tok := c.accessToken
	expired := tok == "" || time.Now().After(c.tokenExpiry)
	c.mu.Unlock()

	if expired {
		if err := c.refreshToken(ctx); err != nil {
			return "", fmt.Errorf("auth failed: %w", err)
		}
		c.mu.Lock()
		tok = c.accessToken
		c.mu.Unlock()
	}
	return tok, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unexpected response shape: %w", err)
	}
	return nil
}

func decodeAPIError(status int, body []byte) *APIError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		first := env.Errors[0]
		return &APIError{
			StatusCode: status,
			Code:       first.Code,
			Title:      first.Title,
			Detail:     first.Detail,
		}
	}
	return &APIError{StatusCode: status, Title: "API error", Detail: string(body)}
}

// Location is an airport or city entry from the locations search.
type Location struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
	SubType  string `json:"subType"`
	Address  struct {
		CityName    string `json:"cityName"`
		CountryName string `json:"countryName"`
	} `json:"address"`
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

// SearchLocations looks up airports and cities matching the keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]Location, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("subType", "AIRPORT,CITY")

	var resp locationsResponse
	if err := c.get(ctx, "/v1/reference-data/locations?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RecommendedLocation is one entry of the travel recommendations endpoint.
type RecommendedLocation struct {
	IataCode  string  `json:"iataCode"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Relevance float64 `json:"relevance"`
	Address   struct {
		CityName    string `json:"cityName"`
		CountryName string `json:"countryName"`
	} `json:"address"`
}

type recommendedResponse struct {
	Data []RecommendedLocation `json:"data"`
}

// RecommendedLocations fetches the recommended travel destinations.
func (c *Client) RecommendedLocations(ctx context.Context) ([]RecommendedLocation, error) {
	var resp recommendedResponse
	if err := c.get(ctx, "/v1/reference-data/recommended-locations", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FlightOffersQuery holds the flight offer search parameters. ReturnDate is
// included in the request only when non-empty.
type FlightOffersQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	CurrencyCode  string
	Max           int
}

type FlightEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type FlightSegment struct {
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
}

type Itinerary struct {
	Duration string          `json:"duration"`
	Segments []FlightSegment `json:"segments"`
}

type FlightOffer struct {
	ID                    string      `json:"id"`
	NumberOfBookableSeats *int        `json:"numberOfBookableSeats"`
	Itineraries           []Itinerary `json:"itineraries"`
	Price                 struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
}

type flightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

// SearchFlightOffers runs the flight offer search and returns the raw
// upstream offers.
func (c *Client) SearchFlightOffers(ctx context.Context, query FlightOffersQuery) ([]FlightOffer, error) {
	q := url.Values{}
	q.Set("originLocationCode", query.Origin)
	q.Set("destinationLocationCode", query.Destination)
	q.Set("departureDate", query.DepartureDate)
	q.Set("adults", strconv.Itoa(query.Adults))
	q.Set("currencyCode", query.CurrencyCode)
	q.Set("max", strconv.Itoa(query.Max))
	if query.ReturnDate != "" {
		q.Set("returnDate", query.ReturnDate)
	}

	var resp flightOffersResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
