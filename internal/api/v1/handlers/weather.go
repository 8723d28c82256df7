package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/service"
)

type WeatherHandler struct {
	controller service.WeatherQueryController
	timeout    time.Duration
	router     chi.Router
}

func NewWeatherHandler(controller service.WeatherQueryController, timeout time.Duration) *WeatherHandler {
	h := &WeatherHandler{
		controller: controller,
		timeout:    timeout,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/cities", h.SearchCities)
	r.Post("/cities/select", h.SelectCity)
	r.Get("/weather", h.GetWeather)
	r.Get("/weather/current-location", h.GetWeatherForCurrentLocation)
	r.Post("/weather/refresh", h.RefreshWeather)
	r.Get("/state", h.GetState)

	h.router = r

	return h
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *WeatherHandler) SearchCities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.controller.SearchCities(ctx, query); err != nil {
		h.respondWithControllerError(w, err, "failed to search cities")
		return
	}

	respondWithJSON(w, http.StatusOK, h.controller.State())
}

func (h *WeatherHandler) SelectCity(w http.ResponseWriter, r *http.Request) {
	var req SelectCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		respondWithError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	candidate := providers.CityCandidate{
		Name:      req.Name,
		Country:   req.Country,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.controller.SelectCity(ctx, candidate); err != nil {
		h.respondWithControllerError(w, err, "failed to get weather data")
		return
	}

	respondWithJSON(w, http.StatusOK, h.controller.State())
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	latitude, err := parseCoordinate(q.Get("lat"), 90)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "parameter 'lat' must be a number between -90 and 90")
		return
	}

	longitude, err := parseCoordinate(q.Get("lon"), 180)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "parameter 'lon' must be a number between -180 and 180")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.controller.FetchWeather(ctx, latitude, longitude, q.Get("label")); err != nil {
		h.respondWithControllerError(w, err, "failed to get weather data")
		return
	}

	respondWithJSON(w, http.StatusOK, h.controller.State())
}

func (h *WeatherHandler) GetWeatherForCurrentLocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.controller.FetchWeatherForCurrentLocation(ctx); err != nil {
		h.respondWithControllerError(w, err, "failed to get weather data")
		return
	}

	respondWithJSON(w, http.StatusOK, h.controller.State())
}

func (h *WeatherHandler) RefreshWeather(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.controller.RefreshWeather(ctx); err != nil {
		h.respondWithControllerError(w, err, "failed to refresh weather data")
		return
	}

	respondWithJSON(w, http.StatusOK, h.controller.State())
}

func (h *WeatherHandler) GetState(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, h.controller.State())
}

func (h *WeatherHandler) respondWithControllerError(w http.ResponseWriter, err error, msg string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	}
	respondWithError(w, status, err.Error())
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || value < -limit || value > limit {
		return 0, strconv.ErrRange
	}
	return value, nil
}
