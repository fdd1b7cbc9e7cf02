package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"weather-cli/internal/models"
	"weather-cli/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
)

// OpenWeatherRepository talks to the OpenWeatherMap current-weather
// endpoint, which doubles as the geocoder via its zip parameter.
type OpenWeatherRepository struct {
	BaseURL string
	// Cache, when set, short-circuits Geocode on a hit and stores
	// successful resolutions best-effort.
	Cache      GeocodeCache
	httpClient HTTPClient
	l          *logger.Logger
	tracer     trace.Tracer
}

func NewOpenWeatherRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *OpenWeatherRepository {
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherRepository{
		BaseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
		tracer:     otel.Tracer("openweather"),
	}
}

// Geocode resolves a ZIP code to a coordinate pair via
// GET <base>?zip={zip}&appid={key}.
func (o *OpenWeatherRepository) Geocode(ctx context.Context, zip, apiKey string) (models.Coordinate, error) {
	ctx, span := o.tracer.Start(ctx, "openweather.geocode",
		trace.WithAttributes(attribute.String("zip", zip)))
	defer span.End()

	if o.Cache != nil {
		coord, ok, err := o.Cache.Get(zip)
		if err != nil {
			o.l.Warning("geocode cache lookup failed", map[string]any{"zip": zip, "err": err.Error()})
		} else if ok {
			o.l.Debug("geocode cache hit", map[string]any{"zip": zip, "coord": coord.String()})
			return coord, nil
		}
	}

	o.l.Info("making openweather geocode request", map[string]any{"zip": zip})

	requestURL := fmt.Sprintf("%s?zip=%s&appid=%s", o.BaseURL, url.QueryEscape(zip), url.QueryEscape(apiKey))

	body, err := o.get(ctx, requestURL)
	if err != nil {
		return models.Coordinate{}, err
	}

	var response struct {
		Coord map[string]any `json:"coord"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to parse JSON response: %v", models.ErrParse, err)
	}

	lat, okLat := response.Coord["lat"].(float64)
	lon, okLon := response.Coord["lon"].(float64)
	if !okLat || !okLon {
		return models.Coordinate{}, fmt.Errorf("%w: coord.lat or coord.lon absent or not numeric", models.ErrMissingField)
	}

	coord := models.Coordinate{Lat: lat, Lon: lon}

	if o.Cache != nil {
		if err := o.Cache.Put(zip, coord); err != nil {
			o.l.Warning("geocode cache write failed", map[string]any{"zip": zip, "err": err.Error()})
		}
	}

	return coord, nil
}

// CurrentResponse mirrors the provider fields the weather service
// extracts. Pointer fields keep absent values distinguishable from
// zeroes so the service can substitute defaults.
type CurrentResponse struct {
	Name *string `json:"name"`
	Main struct {
		Temp    *float64 `json:"temp"`
		TempMax *float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Main    *string  `json:"main"`
		TempMin *float64 `json:"temp_min"`
	} `json:"weather"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches current conditions via
// GET <base>?lat={lat}&lon={lon}&appid={key}&units={units}.
func (o *OpenWeatherRepository) Current(ctx context.Context, apiKey string, coord models.Coordinate, units string) (CurrentResponse, error) {
	ctx, span := o.tracer.Start(ctx, "openweather.current",
		trace.WithAttributes(
			attribute.Float64("lat", coord.Lat),
			attribute.Float64("lon", coord.Lon),
			attribute.String("units", units),
		))
	defer span.End()

	o.l.Info("making openweather current-conditions request", map[string]any{
		"params": coord.String(),
		"units":  units,
	})

	requestURL := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=%s",
		o.BaseURL, coord.Lat, coord.Lon, url.QueryEscape(apiKey), url.QueryEscape(units))

	body, err := o.get(ctx, requestURL)
	if err != nil {
		return CurrentResponse{}, err
	}

	var response CurrentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return CurrentResponse{}, fmt.Errorf("%w: failed to parse JSON response: %v", models.ErrParse, err)
	}

	return response, nil
}

func (o *OpenWeatherRepository) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", models.ErrNetwork, err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to do request: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	o.l.Info("received openweather API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", models.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP error (status %d): %s", models.ErrNetwork, resp.StatusCode, resp.Status)
	}

	return body, nil
}
