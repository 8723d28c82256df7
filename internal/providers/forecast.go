package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"ulascansenturk/weather-lookup/internal/apperrors"
)

type WeatherReading struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
}

type ForecastClient interface {
	FetchCurrent(ctx context.Context, latitude, longitude float64) (WeatherReading, error)
	GetHTTPClient() *http.Client
}

type forecastClient struct {
	*baseClient
}

func NewForecastClient(cfg ClientConfig) ForecastClient {
	return &forecastClient{
		baseClient: newBaseClient("forecast", DefaultForecastBaseURL, cfg),
	}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WindSpeed   *float64 `json:"windspeed"`
		WeatherCode *int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (c *forecastClient) FetchCurrent(ctx context.Context, latitude, longitude float64) (reading WeatherReading, err error) {
	ctx, span := c.startSpan(ctx, "forecast.current",
		attribute.Float64("forecast.latitude", latitude),
		attribute.Float64("forecast.longitude", longitude),
	)
	defer func() { c.finishSpan(span, err) }()

	body, err := c.get(ctx, "/v1/forecast", map[string]string{
		"latitude":        strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude":       strconv.FormatFloat(longitude, 'f', -1, 64),
		"current_weather": "true",
	})
	if err != nil {
		return WeatherReading{}, err
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return WeatherReading{}, apperrors.Parse("forecast returned malformed JSON", err)
	}

	cw := resp.CurrentWeather
	switch {
	case cw == nil:
		return WeatherReading{}, apperrors.Parse("forecast response has no current_weather", nil)
	case cw.Temperature == nil:
		return WeatherReading{}, apperrors.Parse("current_weather is missing temperature", nil)
	case cw.WindSpeed == nil:
		return WeatherReading{}, apperrors.Parse("current_weather is missing windspeed", nil)
	case cw.WeatherCode == nil:
		return WeatherReading{}, apperrors.Parse("current_weather is missing weathercode", nil)
	}

	return WeatherReading{
		Temperature: *cw.Temperature,
		WindSpeed:   *cw.WindSpeed,
		WeatherCode: *cw.WeatherCode,
	}, nil
}
