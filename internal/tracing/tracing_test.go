package tracing_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"ulascansenturk/weather-lookup/internal/tracing"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	shutdown, err := tracing.Setup("weather-lookup", "")
	require.NoError(t, err)

	assert.IsType(t, propagation.TraceContext{}, otel.GetTextMapPropagator())
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupExportsSpansToZipkin(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
	)

	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(body))
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer collector.Close()

	previous := otel.GetTracerProvider()
	defer otel.SetTracerProvider(previous)

	shutdown, err := tracing.Setup("weather-lookup", collector.URL+"/api/v2/spans")
	require.NoError(t, err)

	_, span := otel.Tracer("tracing_test").Start(context.Background(), "forecast.current")
	span.End()

	require.NoError(t, shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, bodies)
	assert.Contains(t, bodies[0], "forecast.current")
	assert.Contains(t, bodies[0], "weather-lookup")
}
