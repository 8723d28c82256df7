package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"ulascansenturk/weather-lookup/internal/apperrors"
)

const (
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastBaseURL  = "https://api.open-meteo.com"

	defaultTimeout = 10 * time.Second
	tracerName     = "ulascansenturk/weather-lookup/providers"
)

// ClientConfig is shared by the geocoding and forecast clients.
// A zero RateLimit disables outbound pacing.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	Logger    *zerolog.Logger
}

type baseClient struct {
	name    string
	client  *resty.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

func newBaseClient(name, defaultBaseURL string, cfg ClientConfig) *baseClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	b := &baseClient{
		name: name,
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		logger: logger.With().Str("provider", name).Logger(),
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		b.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return b
}

// get issues a single GET and returns the raw body of a 2xx response.
// Transport failures and non-2xx statuses are network errors.
func (b *baseClient) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, apperrors.Network(fmt.Sprintf("%s rate limit wait canceled", b.name), err)
		}
	}

	req := b.client.R().
		SetContext(ctx).
		SetQueryParams(params)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	b.logger.Debug().Str("path", path).Interface("params", params).Msg("sending request")

	resp, err := req.Get(path)
	if err != nil {
		return nil, apperrors.Network(fmt.Sprintf("%s request failed", b.name), err)
	}

	if !resp.IsSuccess() {
		return nil, apperrors.Network(fmt.Sprintf("%s returned status code: %d", b.name, resp.StatusCode()), nil)
	}

	return resp.Body(), nil
}

func (b *baseClient) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func (b *baseClient) finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger.Error().Err(err).Msg("provider call failed")
	}
	span.End()
}

func (b *baseClient) GetHTTPClient() *http.Client {
	return b.client.GetClient()
}
