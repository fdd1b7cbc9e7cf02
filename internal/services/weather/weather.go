package weather

import (
	"context"

	"github.com/pkg/errors"

	"weather-cli/internal/models"
	"weather-cli/internal/repositories"
	"weather-cli/pkg/logger"
)

// UnknownLabel substitutes for absent string fields in a provider
// response. It doubles as the renderer's fallback glyph key.
const UnknownLabel = "Unknown"

// WeatherService is the use-case layer shared by the CLI and the HTTP
// mode.
type WeatherService struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

// ResolveZip resolves a ZIP code to a coordinate pair.
func (s *WeatherService) ResolveZip(ctx context.Context, zip, apiKey string) (models.Coordinate, error) {
	s.l.Info("resolving ZIP code", map[string]any{"zip": zip})

	coord, err := s.repo.Geocode(ctx, zip, apiKey)
	if err != nil {
		return models.Coordinate{}, errors.Wrapf(err, "resolve ZIP %s", zip)
	}

	s.l.Info("resolved ZIP code", map[string]any{"zip": zip, "coord": coord.String()})

	return coord, nil
}

// Current fetches current conditions for a coordinate pair and returns
// a fully defaulted report: a fetch that succeeds over the wire never
// fails on missing fields.
func (s *WeatherService) Current(ctx context.Context, apiKey string, coord models.Coordinate, units string) (models.Report, error) {
	s.l.Info("fetching current conditions", map[string]any{
		"coord": coord.String(),
		"units": units,
	})

	resp, err := s.repo.Current(ctx, apiKey, coord, units)
	if err != nil {
		return models.Report{}, errors.Wrap(err, "fetch current conditions")
	}

	report := extractReport(resp)

	s.l.Info("fetched current conditions", map[string]any{
		"city":      report.City,
		"condition": report.Condition,
	})

	return report, nil
}

// extractReport substitutes 0 for absent numeric fields and
// UnknownLabel for absent string fields. The minimum temperature is
// read from the first weather array entry, not from main.
func extractReport(resp repositories.CurrentResponse) models.Report {
	report := models.Report{
		City:      UnknownLabel,
		Condition: UnknownLabel,
	}

	if resp.Name != nil {
		report.City = *resp.Name
	}
	if resp.Main.Temp != nil {
		report.CurrentTemp = *resp.Main.Temp
	}
	if resp.Main.TempMax != nil {
		report.TempMax = *resp.Main.TempMax
	}
	if len(resp.Weather) > 0 {
		if resp.Weather[0].Main != nil {
			report.Condition = *resp.Weather[0].Main
		}
		if resp.Weather[0].TempMin != nil {
			report.TempMin = *resp.Weather[0].TempMin
		}
	}
	if resp.Wind.Speed != nil {
		report.WindSpeed = *resp.Wind.Speed
	}

	return report
}
