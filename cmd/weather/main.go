package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"ulascansenturk/weather-lookup/config"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/service"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.HTTPTimeoutDuration())
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, conf, logger); err != nil {
		fmt.Fprintln(os.Stderr, "weather:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, conf *config.Config, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(out)
	here := fs.Bool("here", false, "use the configured location instead of a city name")
	verbose := fs.Bool("v", false, "print loading transitions")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: weather [-v] <city name>")
		fmt.Fprintln(fs.Output(), "       weather [-v] -here")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	locator, err := conf.LocationProvider()
	if err != nil {
		return err
	}

	controller := service.NewWeatherQueryController(
		providers.NewGeocodingClient(conf.GeocodingClientConfig(&logger)),
		providers.NewForecastClient(conf.ForecastClientConfig(&logger)),
		locator,
		service.WithSearchLimit(conf.SearchLimit),
		service.WithLanguage(conf.SearchLanguage),
		service.WithLogger(logger),
	)

	if *verbose {
		unsubscribe := controller.Subscribe(loadingPrinter(out))
		defer unsubscribe()
	}

	if *here {
		if err := controller.FetchWeatherForCurrentLocation(ctx); err != nil {
			return err
		}
	} else {
		if err := controller.SearchCities(ctx, strings.Join(fs.Args(), " ")); err != nil {
			return err
		}

		candidates := controller.State().CityCandidates
		if len(candidates) == 0 {
			return errors.New("no matching city found")
		}

		if err := controller.SelectCity(ctx, candidates[0]); err != nil {
			return err
		}
	}

	snapshot := controller.State().CurrentWeather
	if snapshot == nil {
		return errors.New("no weather data available")
	}

	printSnapshot(out, *snapshot)

	return nil
}

// loadingPrinter reports each change of the loading flag.
func loadingPrinter(out io.Writer) service.Observer {
	loading := false
	return service.ObserverFunc(func(state service.QueryState) {
		if state.IsLoading == loading {
			return
		}
		loading = state.IsLoading
		if loading {
			fmt.Fprintln(out, "loading…")
		} else {
			fmt.Fprintf(out, "done (%s)\n", state.Phase)
		}
	})
}

func printSnapshot(out io.Writer, snapshot service.WeatherSnapshot) {
	condition := cases.Title(language.English).String(snapshot.Condition)

	fmt.Fprintln(out, snapshot.LocationLabel)
	fmt.Fprintf(out, "  Condition:   %s [%s]\n", condition, snapshot.Icon)
	fmt.Fprintf(out, "  Temperature: %.1f°C\n", snapshot.Temperature)
	fmt.Fprintf(out, "  Wind speed:  %.1f km/h\n", snapshot.WindSpeed)
}
