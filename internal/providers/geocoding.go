package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"

	"ulascansenturk/weather-lookup/internal/apperrors"
)

const (
	DefaultSearchLimit    = 5
	DefaultSearchLanguage = "en"
)

type CityCandidate struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Label is the display form used when a candidate is selected.
func (c CityCandidate) Label() string {
	return c.Name + ", " + c.Country
}

type GeocodingClient interface {
	Search(ctx context.Context, query string, limit int, lang string) ([]CityCandidate, error)
	GetHTTPClient() *http.Client
}

type geocodingClient struct {
	*baseClient
}

func NewGeocodingClient(cfg ClientConfig) GeocodingClient {
	return &geocodingClient{
		baseClient: newBaseClient("geocoding", DefaultGeocodingBaseURL, cfg),
	}
}

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

// Coordinates are pointers so a missing field can be told apart from zero.
type geocodingResult struct {
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (c *geocodingClient) Search(ctx context.Context, query string, limit int, lang string) (candidates []CityCandidate, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Validation("query cannot be empty")
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	if lang == "" {
		lang = DefaultSearchLanguage
	}
	if _, err := language.Parse(lang); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid language code %q", lang))
	}

	ctx, span := c.startSpan(ctx, "geocoding.search",
		attribute.String("geocoding.query", query),
		attribute.Int("geocoding.count", limit),
		attribute.String("geocoding.language", lang),
	)
	defer func() { c.finishSpan(span, err) }()

	body, err := c.get(ctx, "/v1/search", map[string]string{
		"name":     query,
		"count":    strconv.Itoa(limit),
		"language": lang,
	})
	if err != nil {
		return nil, err
	}

	var resp geocodingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.Parse("geocoding returned malformed JSON", err)
	}

	candidates = make([]CityCandidate, 0, len(resp.Results))
	for i, r := range resp.Results {
		if r.Latitude == nil || r.Longitude == nil {
			return nil, apperrors.Parse(fmt.Sprintf("geocoding result %d is missing coordinates", i), nil)
		}
		candidates = append(candidates, CityCandidate{
			Name:      r.Name,
			Country:   r.Country,
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
		})
	}

	c.logger.Debug().Str("query", query).Int("results", len(candidates)).Msg("geocoding search completed")

	return candidates, nil
}
