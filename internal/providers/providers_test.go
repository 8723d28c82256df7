package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-lookup/internal/apperrors"
	"ulascansenturk/weather-lookup/internal/providers"
)

type ProvidersTestSuite struct {
	suite.Suite
	geocodingServer *httptest.Server
	forecastServer  *httptest.Server
	geocoding       providers.GeocodingClient
	forecast        providers.ForecastClient
	geocodingCalls  atomic.Int32
	lastQuery       atomic.Value
}

func (s *ProvidersTestSuite) SetupTest() {
	s.geocodingCalls.Store(0)

	s.geocodingServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.geocodingCalls.Add(1)
		s.lastQuery.Store(r.URL.Query())

		if r.URL.Path != "/v1/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.URL.Query().Get("name") {
		case "Paris":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{
					{"name": "Paris", "country": "France", "latitude": 48.85341, "longitude": 2.3488},
					{"name": "Paris", "country": "United States", "latitude": 33.66094, "longitude": -95.55551},
				},
			})
		case "NoCountry":
			w.Write([]byte(`{"results":[{"name":"Atlantis","latitude":1,"longitude":2}]}`))
		case "NullResults":
			w.Write([]byte(`{"results":null}`))
		case "Nowhere":
			w.Write([]byte(`{"generationtime_ms":0.5}`))
		case "MissingLatitude":
			w.Write([]byte(`{"results":[{"name":"Broken","country":"X","longitude":2}]}`))
		case "StringLatitude":
			w.Write([]byte(`{"results":[{"name":"Broken","country":"X","latitude":"north","longitude":2}]}`))
		case "MalformedJSON":
			w.Write([]byte("{malformed json"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.forecastServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v1/forecast" || q.Get("current_weather") != "true" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch q.Get("latitude") {
		case "52.52":
			w.Write([]byte(`{"latitude":52.52,"longitude":13.405,"current_weather":{"temperature":18.3,"windspeed":9.1,"weathercode":3}}`))
		case "1":
			w.Write([]byte(`{"latitude":1,"longitude":1}`))
		case "2":
			w.Write([]byte(`{"current_weather":{"windspeed":9.1,"weathercode":3}}`))
		case "3":
			w.Write([]byte(`{"current_weather":{"temperature":18.3,"weathercode":3}}`))
		case "4":
			w.Write([]byte(`{"current_weather":{"temperature":18.3,"windspeed":9.1}}`))
		case "5":
			w.Write([]byte(`{"current_weather":{"temperature":"warm","windspeed":9.1,"weathercode":3}}`))
		case "6":
			w.Write([]byte(`{"current_weather":{"temperature":18.3,"windspeed":9.1,"weathercode":2.5}}`))
		case "7":
			w.Write([]byte("<html>oops"))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))

	logger := zerolog.Nop()
	s.geocoding = providers.NewGeocodingClient(providers.ClientConfig{BaseURL: s.geocodingServer.URL, Logger: &logger})
	s.forecast = providers.NewForecastClient(providers.ClientConfig{BaseURL: s.forecastServer.URL, Logger: &logger})
}

func (s *ProvidersTestSuite) TearDownTest() {
	s.geocodingServer.Close()
	s.forecastServer.Close()
}

func (s *ProvidersTestSuite) TestSearch_TwoResults() {
	candidates, err := s.geocoding.Search(context.Background(), "Paris", 5, "en")
	s.Require().NoError(err)
	s.Require().Len(candidates, 2)

	s.Equal(providers.CityCandidate{Name: "Paris", Country: "France", Latitude: 48.85341, Longitude: 2.3488}, candidates[0])
	s.Equal(providers.CityCandidate{Name: "Paris", Country: "United States", Latitude: 33.66094, Longitude: -95.55551}, candidates[1])

	query := s.lastQuery.Load().(url.Values)
	s.Equal("5", query.Get("count"))
	s.Equal("en", query.Get("language"))
}

func (s *ProvidersTestSuite) TestSearch_Defaults() {
	_, err := s.geocoding.Search(context.Background(), "  Paris  ", 0, "")
	s.Require().NoError(err)

	query := s.lastQuery.Load().(url.Values)
	s.Equal("Paris", query.Get("name"))
	s.Equal("5", query.Get("count"))
	s.Equal("en", query.Get("language"))
}

func (s *ProvidersTestSuite) TestSearch_MissingStringFieldsDefaultToEmpty() {
	candidates, err := s.geocoding.Search(context.Background(), "NoCountry", 5, "en")
	s.Require().NoError(err)
	s.Require().Len(candidates, 1)
	s.Equal("Atlantis", candidates[0].Name)
	s.Empty(candidates[0].Country)
}

func (s *ProvidersTestSuite) TestSearch_NoResultsIsNotAnError() {
	for _, query := range []string{"Nowhere", "NullResults"} {
		candidates, err := s.geocoding.Search(context.Background(), query, 5, "en")
		s.NoError(err, query)
		s.NotNil(candidates, query)
		s.Empty(candidates, query)
	}
}

func (s *ProvidersTestSuite) TestSearch_ParseErrors() {
	for _, query := range []string{"MissingLatitude", "StringLatitude", "MalformedJSON"} {
		_, err := s.geocoding.Search(context.Background(), query, 5, "en")
		s.Error(err, query)
		s.ErrorIs(err, apperrors.ErrParse, query)
	}
}

func (s *ProvidersTestSuite) TestSearch_ServerError() {
	_, err := s.geocoding.Search(context.Background(), "ServerError", 5, "en")
	s.ErrorIs(err, apperrors.ErrNetwork)
	s.Contains(err.Error(), "status code")
}

func (s *ProvidersTestSuite) TestSearch_ValidationNeverHitsNetwork() {
	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := s.geocoding.Search(context.Background(), query, 5, "en")
		s.ErrorIs(err, apperrors.ErrValidation)
	}

	_, err := s.geocoding.Search(context.Background(), "Paris", 5, "not a language!")
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Equal(int32(0), s.geocodingCalls.Load())
}

func (s *ProvidersTestSuite) TestSearch_TransportFailure() {
	s.geocodingServer.Close()

	_, err := s.geocoding.Search(context.Background(), "Paris", 5, "en")
	s.ErrorIs(err, apperrors.ErrNetwork)
	s.Contains(err.Error(), "request failed")
}

func (s *ProvidersTestSuite) TestFetchCurrent_Success() {
	reading, err := s.forecast.FetchCurrent(context.Background(), 52.52, 13.405)
	s.Require().NoError(err)
	s.Equal(providers.WeatherReading{Temperature: 18.3, WindSpeed: 9.1, WeatherCode: 3}, reading)
}

func (s *ProvidersTestSuite) TestFetchCurrent_ParseErrors() {
	cases := map[float64]string{
		1: "no current_weather",
		2: "missing temperature",
		3: "missing windspeed",
		4: "missing weathercode",
		5: "malformed JSON",
		6: "malformed JSON",
		7: "malformed JSON",
	}

	for latitude, message := range cases {
		_, err := s.forecast.FetchCurrent(context.Background(), latitude, 0)
		s.Require().Error(err)
		s.ErrorIs(err, apperrors.ErrParse)
		s.Contains(err.Error(), message)
	}
}

func (s *ProvidersTestSuite) TestFetchCurrent_ServerError() {
	_, err := s.forecast.FetchCurrent(context.Background(), 99, 0)
	s.ErrorIs(err, apperrors.ErrNetwork)
	s.Contains(err.Error(), "status code: 503")
}

func (s *ProvidersTestSuite) TestFetchCurrent_ContextCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.forecast.FetchCurrent(ctx, 52.52, 13.405)
	s.ErrorIs(err, apperrors.ErrNetwork)
}

func (s *ProvidersTestSuite) TestFetchCurrent_RateLimitWaitCanceled() {
	logger := zerolog.Nop()
	limited := providers.NewForecastClient(providers.ClientConfig{
		BaseURL:   s.forecastServer.URL,
		RateLimit: 0.001,
		RateBurst: 1,
		Logger:    &logger,
	})

	_, err := limited.FetchCurrent(context.Background(), 52.52, 13.405)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = limited.FetchCurrent(ctx, 52.52, 13.405)
	s.ErrorIs(err, apperrors.ErrNetwork)
	s.Contains(err.Error(), "rate limit")
}

func (s *ProvidersTestSuite) TestDefaultBaseURLs() {
	logger := zerolog.Nop()
	geocoding := providers.NewGeocodingClient(providers.ClientConfig{Logger: &logger})
	forecast := providers.NewForecastClient(providers.ClientConfig{Logger: &logger})

	transport := &mockTransport{
		geocodingURL: s.geocodingServer.URL,
		forecastURL:  s.forecastServer.URL,
	}
	geocoding.GetHTTPClient().Transport = transport
	forecast.GetHTTPClient().Transport = transport

	candidates, err := geocoding.Search(context.Background(), "Paris", 5, "en")
	s.Require().NoError(err)
	s.Len(candidates, 2)

	reading, err := forecast.FetchCurrent(context.Background(), 52.52, 13.405)
	s.Require().NoError(err)
	s.Equal(3, reading.WeatherCode)
}

type mockTransport struct {
	geocodingURL string
	forecastURL  string
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var target string
	switch req.URL.Host {
	case "geocoding-api.open-meteo.com":
		target = m.geocodingURL
	case "api.open-meteo.com":
		target = m.forecastURL
	default:
		return http.DefaultTransport.RoundTrip(req)
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return nil, err
	}

	newURL := *req.URL
	newURL.Scheme = parsed.Scheme
	newURL.Host = parsed.Host
	req.URL = &newURL
	return http.DefaultTransport.RoundTrip(req)
}

func TestProvidersSuite(t *testing.T) {
	suite.Run(t, new(ProvidersTestSuite))
}
