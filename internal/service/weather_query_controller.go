package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/apperrors"
	"ulascansenturk/weather-lookup/internal/location"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/weathercode"
)

const (
	EmptyQueryMessage    = "Please enter a city name."
	NoSelectionMessage   = "Please select a city first."
	DefaultLocationLabel = "My Location"
)

type WeatherQueryController interface {
	SearchCities(ctx context.Context, query string) error
	SelectCity(ctx context.Context, candidate providers.CityCandidate) error
	FetchWeather(ctx context.Context, latitude, longitude float64, label string) error
	FetchWeatherForCurrentLocation(ctx context.Context) error
	RefreshWeather(ctx context.Context) error
	State() QueryState
	Subscribe(observer Observer) (unsubscribe func())
}

type observerEntry struct {
	id       int
	observer Observer
}

// fetchTarget is what the current snapshot was fetched for.
type fetchTarget struct {
	latitude  float64
	longitude float64
	label     string
}

type weatherQueryController struct {
	geocoder   providers.GeocodingClient
	forecaster providers.ForecastClient
	locator    location.Provider

	searchLimit int
	language    string
	logger      zerolog.Logger

	mu        sync.Mutex
	state     QueryState
	outcome   Phase
	inFlight  int
	searchSeq uint64
	fetchSeq  uint64
	lastFetch *fetchTarget

	observers      []observerEntry
	nextObserverID int

	// stateSeq stamps every update; notifyMu serializes delivery so observers
	// never see an older state after a newer one.
	stateSeq     uint64
	notifyMu     sync.Mutex
	deliveredSeq uint64
}

type Option func(*weatherQueryController)

func WithSearchLimit(limit int) Option {
	return func(c *weatherQueryController) {
		if limit > 0 {
			c.searchLimit = limit
		}
	}
}

func WithLanguage(lang string) Option {
	return func(c *weatherQueryController) {
		if lang != "" {
			c.language = lang
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *weatherQueryController) {
		c.logger = logger
	}
}

// NewWeatherQueryController wires the two Open-Meteo clients and an optional
// location provider. A nil locator makes FetchWeatherForCurrentLocation fail.
func NewWeatherQueryController(
	geocoder providers.GeocodingClient,
	forecaster providers.ForecastClient,
	locator location.Provider,
	opts ...Option,
) WeatherQueryController {
	c := &weatherQueryController{
		geocoder:    geocoder,
		forecaster:  forecaster,
		locator:     locator,
		searchLimit: providers.DefaultSearchLimit,
		language:    providers.DefaultSearchLanguage,
		logger:      log.Logger,
		outcome:     PhaseIdle,
		state: QueryState{
			CityCandidates: []providers.CityCandidate{},
			Phase:          PhaseIdle,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *weatherQueryController) SearchCities(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		c.update(func(s *QueryState) {
			s.LastError = EmptyQueryMessage
			c.outcome = PhaseFailed
		})
		return apperrors.Validation(EmptyQueryMessage)
	}

	var seq uint64
	c.update(func(s *QueryState) {
		c.searchSeq++
		seq = c.searchSeq
		c.enterLoading(s)
	})

	candidates, err := c.geocoder.Search(ctx, query, c.searchLimit, c.language)

	stale := false
	c.update(func(s *QueryState) {
		c.leaveLoading()

		if seq != c.searchSeq {
			stale = true
			return
		}

		if err != nil {
			c.fail(s, err)
			return
		}

		s.CityCandidates = candidates
		c.outcome = PhaseSuccess
	})

	if stale {
		c.logger.Debug().Str("query", query).Msg("discarding stale city search result")
		return err
	}

	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("failed to search cities")
		return err
	}

	c.logger.Info().Str("query", query).Int("results", len(candidates)).Msg("city search completed")

	return nil
}

func (c *weatherQueryController) SelectCity(ctx context.Context, candidate providers.CityCandidate) error {
	return c.FetchWeather(ctx, candidate.Latitude, candidate.Longitude, candidate.Label())
}

func (c *weatherQueryController) FetchWeather(ctx context.Context, latitude, longitude float64, label string) error {
	seq := c.beginFetch()
	return c.fetchWeather(ctx, seq, latitude, longitude, label)
}

func (c *weatherQueryController) FetchWeatherForCurrentLocation(ctx context.Context) error {
	seq := c.beginFetch()

	if c.locator == nil {
		return c.abortFetch(seq, location.ErrLocationUnavailable)
	}

	coords, err := c.locator.CurrentCoordinates(ctx)
	if err != nil {
		if !errors.Is(err, location.ErrLocationUnavailable) && !isContextError(err) {
			err = fmt.Errorf("%w: %w", location.ErrLocationUnavailable, err)
		}
		return c.abortFetch(seq, err)
	}

	place, err := c.locator.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		c.logger.Warn().Err(err).Msg("reverse geocoding failed, using default label")
		place = location.Place{}
	}

	return c.fetchWeather(ctx, seq, coords.Latitude, coords.Longitude, placeLabel(place))
}

// RefreshWeather repeats the fetch behind the current snapshot.
func (c *weatherQueryController) RefreshWeather(ctx context.Context) error {
	c.mu.Lock()
	target := c.lastFetch
	c.mu.Unlock()

	if target == nil {
		c.update(func(s *QueryState) {
			s.LastError = NoSelectionMessage
			c.outcome = PhaseFailed
		})
		return apperrors.Validation(NoSelectionMessage)
	}

	return c.FetchWeather(ctx, target.latitude, target.longitude, target.label)
}

func (c *weatherQueryController) State() QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *weatherQueryController) Subscribe(observer Observer) func() {
	c.mu.Lock()
	id := c.nextObserverID
	c.nextObserverID++
	c.observers = append(c.observers, observerEntry{id: id, observer: observer})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, entry := range c.observers {
				if entry.id == id {
					c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (c *weatherQueryController) beginFetch() uint64 {
	var seq uint64
	c.update(func(s *QueryState) {
		c.fetchSeq++
		seq = c.fetchSeq
		c.enterLoading(s)
	})
	return seq
}

func (c *weatherQueryController) fetchWeather(ctx context.Context, seq uint64, latitude, longitude float64, label string) error {
	reading, err := c.forecaster.FetchCurrent(ctx, latitude, longitude)
	if err != nil {
		c.logger.Error().Err(err).Str("location", label).Msg("failed to get weather data")
		return c.abortFetch(seq, err)
	}

	classification := weathercode.Classify(reading.WeatherCode)
	snapshot := &WeatherSnapshot{
		LocationLabel: label,
		Temperature:   reading.Temperature,
		WindSpeed:     reading.WindSpeed,
		Condition:     classification.Condition,
		Icon:          classification.Icon,
	}

	published := false
	c.update(func(s *QueryState) {
		c.leaveLoading()

		if seq != c.fetchSeq {
			return
		}

		s.CurrentWeather = snapshot
		s.WeatherVersion++
		c.lastFetch = &fetchTarget{latitude: latitude, longitude: longitude, label: label}
		c.outcome = PhaseSuccess
		published = true
	})

	if !published {
		c.logger.Debug().Str("location", label).Msg("discarding stale weather result")
		return nil
	}

	c.logger.Info().
		Str("location", label).
		Float64("temperature", reading.Temperature).
		Int("weather_code", reading.WeatherCode).
		Msg("weather updated")

	return nil
}

// abortFetch ends a fetch without publishing a snapshot. The error is only
// recorded if no newer fetch has started in the meantime.
func (c *weatherQueryController) abortFetch(seq uint64, err error) error {
	c.update(func(s *QueryState) {
		c.leaveLoading()
		if seq == c.fetchSeq {
			c.fail(s, err)
		}
	})
	return err
}

func (c *weatherQueryController) enterLoading(s *QueryState) {
	c.inFlight++
	s.LastError = ""
}

func (c *weatherQueryController) leaveLoading() {
	if c.inFlight > 0 {
		c.inFlight--
	}
}

func (c *weatherQueryController) fail(s *QueryState, err error) {
	s.LastError = err.Error()
	c.outcome = PhaseFailed
}

// update applies fn under the lock, then notifies observers with a copy of
// the resulting state outside of it. A state older than one already
// delivered is skipped, so the last delivery always matches State().
// Observers must not call mutating operations synchronously.
func (c *weatherQueryController) update(fn func(s *QueryState)) {
	c.mu.Lock()
	fn(&c.state)
	c.stateSeq++
	seq := c.stateSeq

	c.state.IsLoading = c.inFlight > 0
	if c.state.IsLoading {
		c.state.Phase = PhaseLoading
	} else {
		c.state.Phase = c.outcome
	}

	snapshot := c.state.clone()
	observers := make([]Observer, len(c.observers))
	for i, entry := range c.observers {
		observers[i] = entry.observer
	}
	c.mu.Unlock()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if seq <= c.deliveredSeq {
		return
	}
	c.deliveredSeq = seq

	for _, o := range observers {
		o.StateChanged(snapshot.clone())
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func placeLabel(place location.Place) string {
	locality := strings.TrimSpace(place.Locality)
	if locality == "" {
		locality = DefaultLocationLabel
	}

	country := strings.TrimSpace(place.Country)
	if country == "" {
		return locality
	}

	return locality + ", " + country
}
