package lookuplog

import (
	"sync"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-lookup/internal/service"
)

// Recorder subscribes to controller state and logs every newly published
// snapshot. Writes happen in the background and failures are only logged.
type Recorder struct {
	repo   Repository
	logger zerolog.Logger

	mu          sync.Mutex
	lastVersion uint64
	wg          sync.WaitGroup
}

func NewRecorder(repo Repository, logger zerolog.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

func (r *Recorder) StateChanged(state service.QueryState) {
	if state.CurrentWeather == nil {
		return
	}

	r.mu.Lock()
	if state.WeatherVersion <= r.lastVersion {
		r.mu.Unlock()
		return
	}
	r.lastVersion = state.WeatherVersion
	r.mu.Unlock()

	snapshot := *state.CurrentWeather

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.repo.LogLookup(snapshot); err != nil {
			r.logger.Error().Err(err).Str("location", snapshot.LocationLabel).Msg("failed to log weather lookup")
		}
	}()
}

// Wait blocks until pending writes have finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

var _ service.Observer = (*Recorder)(nil)
