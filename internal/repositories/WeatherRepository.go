package repositories

import (
	"context"
	"net/http"

	"weather-cli/internal/models"
)

// HTTPClient is the transport dependency injected into provider clients.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GeocodeCache fronts the geocoding call. Cache failures are logged by
// the repository and never surface to the caller.
type GeocodeCache interface {
	Get(zip string) (models.Coordinate, bool, error)
	Put(zip string, coord models.Coordinate) error
}

// WeatherRepository is the provider-facing contract consumed by the
// weather service. The API key travels per call because the setup flow
// can change it mid-run.
type WeatherRepository interface {
	Geocode(ctx context.Context, zip, apiKey string) (models.Coordinate, error)
	Current(ctx context.Context, apiKey string, coord models.Coordinate, units string) (CurrentResponse, error)
}
