package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-cli/internal/services/weather"
	"weather-cli/internal/settings"
	"weather-cli/pkg/logger"
)

type routes struct {
	service *weather.WeatherService
	st      settings.Settings
	l       *logger.Logger
}

// NewRouter wires the weather endpoint and the Swagger UI. The stored
// settings provide the API key and the default unit system for every
// request.
func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	st settings.Settings,
	l *logger.Logger,
) {
	r := &routes{
		service: weatherService,
		st:      st,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/weather", r.handleWeatherCall)
}
