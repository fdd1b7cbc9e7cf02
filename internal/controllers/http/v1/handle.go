package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"weather-cli/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// GetWeather godoc
// @Summary Get current weather
// @Description Fetches current conditions for a ZIP code or a coordinate pair
// @Tags Weather
// @Accept json
// @Produce json
// @Param zip query string false "ZIP code to geocode; takes precedence over lat/lon" example(89501)
// @Param lat query number false "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(39.5296)
// @Param lon query number false "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-119.8138)
// @Param units query string false "Unit system (imperial, metric or standard; defaults to the stored setting)" example(imperial)
// @Success 200 {object} models.Report "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} ErrorResponse "ZIP code could not be resolved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /weather [get]
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	var coord models.Coordinate

	if zip := c.Query("zip"); zip != "" {
		resolved, err := r.service.ResolveZip(c.Context(), zip, r.st.APIKey)
		if err != nil {
			r.l.Error(err, map[string]any{"zip": zip})

			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "ZIP code could not be resolved",
			})
		}
		coord = resolved
	} else {
		lat := c.Query("lat")
		lon := c.Query("lon")

		if lat == "" {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Missing required parameter: lat",
			})
		}

		if lon == "" {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Missing required parameter: lon",
			})
		}

		latFloat, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid latitude format",
			})
		}

		if latFloat < -90 || latFloat > 90 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Latitude must be between -90 and 90",
			})
		}

		lonFloat, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid longitude format",
			})
		}

		if lonFloat < -180 || lonFloat > 180 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Longitude must be between -180 and 180",
			})
		}

		coord = models.Coordinate{Lat: latFloat, Lon: lonFloat}
	}

	units := c.Query("units")
	if units == "" {
		units = r.st.Units
	}

	report, err := r.service.Current(c.Context(), r.st.APIKey, coord, units)
	if err != nil {
		r.l.Error(err, map[string]any{
			"coord": coord.String(),
			"units": units,
		})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}

	return c.JSON(report)
}
