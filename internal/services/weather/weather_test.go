package weather_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-cli/internal/models"
	"weather-cli/internal/repositories"
	"weather-cli/internal/services/weather"
	"weather-cli/pkg/logger"
)

// MockRepository implements WeatherRepository for testing. Its canned
// current-conditions response is parsed from JSON so the test mirrors
// the wire format.
type MockRepository struct {
	geocodeCoord models.Coordinate
	geocodeErr   error
	currentJSON  string
	currentErr   error
	geocodeCalls int
	currentCalls int
}

func (m *MockRepository) Geocode(ctx context.Context, zip, apiKey string) (models.Coordinate, error) {
	m.geocodeCalls++
	if m.geocodeErr != nil {
		return models.Coordinate{}, m.geocodeErr
	}
	return m.geocodeCoord, nil
}

func (m *MockRepository) Current(ctx context.Context, apiKey string, coord models.Coordinate, units string) (repositories.CurrentResponse, error) {
	m.currentCalls++
	if m.currentErr != nil {
		return repositories.CurrentResponse{}, m.currentErr
	}
	var resp repositories.CurrentResponse
	if err := json.Unmarshal([]byte(m.currentJSON), &resp); err != nil {
		panic(err)
	}
	return resp, nil
}

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test", "weather-cli-test")
}

func TestResolveZip(t *testing.T) {
	repo := &MockRepository{geocodeCoord: models.Coordinate{Lat: 39.5296, Lon: -119.8138}}
	service := weather.NewWeatherService(repo, testLogger())

	coord, err := service.ResolveZip(context.Background(), "89501", "test-key")
	require.NoError(t, err)
	assert.Equal(t, 39.5296, coord.Lat)
	assert.Equal(t, -119.8138, coord.Lon)
	assert.Equal(t, 1, repo.geocodeCalls)
}

func TestResolveZip_Error(t *testing.T) {
	cause := errors.New("boom")
	repo := &MockRepository{geocodeErr: cause}
	service := weather.NewWeatherService(repo, testLogger())

	_, err := service.ResolveZip(context.Background(), "89501", "test-key")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "89501")
}

func TestCurrent_FullResponse(t *testing.T) {
	repo := &MockRepository{currentJSON: `{
		"name": "Reno",
		"main": {"temp": 71.2, "temp_max": 75.0},
		"weather": [{"main": "Clear", "temp_min": 58.4}],
		"wind": {"speed": 4.6}
	}`}
	service := weather.NewWeatherService(repo, testLogger())

	report, err := service.Current(context.Background(), "test-key", models.Coordinate{Lat: 39.5296, Lon: -119.8138}, "imperial")
	require.NoError(t, err)
	assert.Equal(t, models.Report{
		City:        "Reno",
		CurrentTemp: 71.2,
		TempMax:     75.0,
		TempMin:     58.4,
		WindSpeed:   4.6,
		Condition:   "Clear",
	}, report)
}

func TestCurrent_EmptyResponseDefaults(t *testing.T) {
	repo := &MockRepository{currentJSON: `{}`}
	service := weather.NewWeatherService(repo, testLogger())

	report, err := service.Current(context.Background(), "test-key", models.Coordinate{}, "imperial")
	require.NoError(t, err)
	assert.Equal(t, models.Report{
		City:      weather.UnknownLabel,
		Condition: weather.UnknownLabel,
	}, report)
}

func TestCurrent_PartialResponse(t *testing.T) {
	repo := &MockRepository{currentJSON: `{
		"name": "Reno",
		"main": {"temp": 71.2},
		"weather": [{"main": "Clouds"}]
	}`}
	service := weather.NewWeatherService(repo, testLogger())

	report, err := service.Current(context.Background(), "test-key", models.Coordinate{}, "metric")
	require.NoError(t, err)
	assert.Equal(t, "Reno", report.City)
	assert.Equal(t, "Clouds", report.Condition)
	assert.Equal(t, 71.2, report.CurrentTemp)
	assert.Zero(t, report.TempMax)
	assert.Zero(t, report.TempMin)
	assert.Zero(t, report.WindSpeed)
}

func TestCurrent_FetchError(t *testing.T) {
	cause := errors.New("connection refused")
	repo := &MockRepository{currentErr: cause}
	service := weather.NewWeatherService(repo, testLogger())

	_, err := service.Current(context.Background(), "test-key", models.Coordinate{}, "imperial")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
