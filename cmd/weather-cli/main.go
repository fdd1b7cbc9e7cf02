package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"weather-cli/config"
	"weather-cli/internal/cache"
	v1 "weather-cli/internal/controllers/http/v1"
	"weather-cli/internal/models"
	"weather-cli/internal/render"
	"weather-cli/internal/repositories"
	"weather-cli/internal/services/setup"
	"weather-cli/internal/services/weather"
	"weather-cli/internal/settings"
	"weather-cli/pkg/httpserver"
	"weather-cli/pkg/logger"
	"weather-cli/pkg/observe"
)

// options carries the parsed CLI flags into run.
type options struct {
	setup  bool
	zip    string
	strict bool
	serve  bool
}

// @title Weather CLI
// @version 1.0.0
// @description Command-line weather lookup for OpenWeatherMap-compatible APIs, with an optional HTTP mode.

// @host localhost:8080
// @BasePath /
// @schemes http

// @tag.name Weather
// @tag.description Current weather lookup
func main() {
	var opts options
	flag.BoolVarP(&opts.setup, "setup", "s", false, "run interactive setup instead of fetching weather")
	flag.StringVarP(&opts.zip, "zip", "z", "", "override stored coordinates by geocoding this ZIP code")
	flag.BoolVar(&opts.strict, "strict", false, "exit non-zero when geocoding or the weather fetch fails")
	flag.BoolVar(&opts.serve, "serve", false, "serve the lookup over HTTP instead of printing a report")
	flag.Parse()

	os.Exit(run(opts, os.Stdin, os.Stdout, os.Stderr))
}

func run(opts options, stdin io.Reader, stdout, stderr io.Writer) int {
	_ = godotenv.Load()

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// stdout is the product surface for CLI runs (prompts, progress,
	// the report); diagnostics go to stderr. The HTTP mode logs to
	// stdout like any service.
	logSink := stderr
	if opts.serve {
		logSink = stdout
	}

	sinks := []io.Writer{logSink}
	var sentryHook *observe.SentryHook
	if cnf.SentryDSN != "" {
		sentryHook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.IsDevelopment(), cnf.SentryDSN)
		sinks = append(sinks, sentryHook)
	}

	l := logger.NewZapLogger(cnf.AppEnv, cnf.AppName, sinks...)
	defer func() { _ = l.Stop() }()

	if sentryHook != nil {
		sentryHook.SetLogger(l)
		defer sentryHook.Flush()
	}

	shutdownTracer, err := observe.InitTracer(cnf.ZipkinURL, cnf.AppName, cnf.AppVersion)
	if err != nil {
		l.Warning("tracing disabled", map[string]any{"err": err.Error()})
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracer(shutdownCtx)
		}()
	}

	store := settings.NewStore(cnf.SettingsPath)
	st, created, err := store.LoadOrCreate()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if created {
		fmt.Fprintln(stdout, "Config file not found, creating default...")
	} else {
		fmt.Fprintln(stdout, "Config file found, loading...")
	}

	repo := repositories.NewOpenWeatherRepository(cnf.WeatherBaseURL, l, nil)

	// Only runs that can geocode get a cache handle; a plain fetch must
	// not leave a cache file behind.
	canGeocode := opts.setup || opts.serve || opts.zip != ""
	if cnf.GeocodeCache != "" && canGeocode {
		geoCache, err := cache.Open(cnf.GeocodeCache)
		if err != nil {
			l.Warning("geocode cache unavailable", map[string]any{
				"path": cnf.GeocodeCache,
				"err":  err.Error(),
			})
		} else {
			defer geoCache.Close()
			repo.Cache = geoCache
		}
	}

	service := weather.NewWeatherService(repo, l)

	ctx := context.Background()

	if opts.setup {
		flow := setup.NewFlow(service, stdin, stdout, l)
		flow.Run(ctx, &st)
		if err := store.Save(st); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "Settings saved to %s\n", store.Path)
		return 0
	}

	if st.APIKey == "" {
		fmt.Fprintln(stdout, "No API key configured. Run with --setup to add one.")
		return 0
	}

	if opts.serve {
		return serve(cnf, service, st, l)
	}

	coord := models.Coordinate{Lat: st.Latitude, Lon: st.Longitude}
	if opts.zip != "" {
		resolved, err := service.ResolveZip(ctx, opts.zip, st.APIKey)
		if err != nil {
			fmt.Fprintf(stderr, "could not resolve ZIP %s: %v\n", opts.zip, err)
			if opts.strict {
				return 1
			}
			fmt.Fprintln(stderr, "falling back to stored coordinates")
		} else {
			// The override holds for this run only, never persisted.
			coord = resolved
		}
	}

	report, err := service.Current(ctx, st.APIKey, coord, st.Units)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if opts.strict {
			return 1
		}
		return 0
	}

	fmt.Fprint(stdout, render.Render(report))

	return 0
}

func serve(cnf *config.Config, service *weather.WeatherService, st settings.Settings, l *logger.Logger) int {
	app := httpserver.InitFiberServer(cnf.AppName)

	v1.NewRouter(
		app,
		service,
		st,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	l.Warning("stopping application services")
	signal.Stop(sigCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)

	return 0
}
