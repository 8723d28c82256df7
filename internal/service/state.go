package service

import "ulascansenturk/weather-lookup/internal/providers"

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailed  Phase = "failed"
)

// WeatherSnapshot is the single current weather result. Humidity is not
// reported by the current_weather endpoint and stays zero.
type WeatherSnapshot struct {
	LocationLabel string  `json:"location_label"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"wind_speed"`
	Humidity      float64 `json:"humidity"`
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon"`
}

// QueryState is what presentation layers observe. Values handed out by the
// controller are copies and safe to keep. WeatherVersion increases by one each
// time a new snapshot is published.
type QueryState struct {
	CityCandidates []providers.CityCandidate `json:"city_candidates"`
	CurrentWeather *WeatherSnapshot          `json:"current_weather"`
	WeatherVersion uint64                    `json:"weather_version"`
	IsLoading      bool                      `json:"is_loading"`
	LastError      string                    `json:"last_error,omitempty"`
	Phase          Phase                     `json:"phase"`
}

func (s QueryState) clone() QueryState {
	out := s
	out.CityCandidates = make([]providers.CityCandidate, len(s.CityCandidates))
	copy(out.CityCandidates, s.CityCandidates)
	if s.CurrentWeather != nil {
		snapshot := *s.CurrentWeather
		out.CurrentWeather = &snapshot
	}
	return out
}

type Observer interface {
	StateChanged(state QueryState)
}

type ObserverFunc func(state QueryState)

func (f ObserverFunc) StateChanged(state QueryState) {
	f(state)
}
