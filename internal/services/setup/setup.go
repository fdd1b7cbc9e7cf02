package setup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"weather-cli/internal/models"
	"weather-cli/internal/settings"
	"weather-cli/pkg/logger"
)

// Geocoder is the single weather-service dependency of the setup flow.
type Geocoder interface {
	ResolveZip(ctx context.Context, zip, apiKey string) (models.Coordinate, error)
}

// Flow walks the user through the interactive setup prompts. Input and
// output are injected so the flow is testable without a terminal.
type Flow struct {
	geocoder Geocoder
	in       *bufio.Scanner
	out      io.Writer
	l        *logger.Logger
}

func NewFlow(geocoder Geocoder, in io.Reader, out io.Writer, l *logger.Logger) *Flow {
	return &Flow{
		geocoder: geocoder,
		in:       bufio.NewScanner(in),
		out:      out,
		l:        l,
	}
}

// keepOrReplace is the single prompt rule: blank input keeps the
// current value, anything else replaces it.
func keepOrReplace(current, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// readLine returns the next input line. EOF reads as blank input (keep
// the current value); a real read error is logged before the same
// fallback.
func (f *Flow) readLine() string {
	if f.in.Scan() {
		return f.in.Text()
	}
	if err := f.in.Err(); err != nil {
		f.l.Warning("reading setup input failed", map[string]any{"err": err.Error()})
	}
	return ""
}

// Run executes the three setup prompts in order, mutating st in place.
// A geocoding failure in the ZIP step is reported and keeps the
// previous coordinates; the flow itself never fails. Persisting the
// result is the caller's job.
func (f *Flow) Run(ctx context.Context, st *settings.Settings) {
	fmt.Fprintf(f.out, "API key [%s]: ", st.APIKey)
	st.APIKey = keepOrReplace(st.APIKey, f.readLine())

	fmt.Fprintf(f.out, "Units (imperial, metric, standard) [%s]: ", st.Units)
	st.Units = keepOrReplace(st.Units, f.readLine())

	fmt.Fprint(f.out, "ZIP code to set coordinates (blank to keep current): ")
	zip := strings.TrimSpace(f.readLine())
	if zip == "" {
		return
	}

	coord, err := f.geocoder.ResolveZip(ctx, zip, st.APIKey)
	if err != nil {
		f.l.Warning("setup geocoding failed", map[string]any{"zip": zip, "err": err.Error()})
		fmt.Fprintf(f.out, "Could not resolve ZIP %s: %v\n", zip, err)
		fmt.Fprintln(f.out, "Keeping previous coordinates.")
		return
	}

	st.Latitude = coord.Lat
	st.Longitude = coord.Lon
	fmt.Fprintf(f.out, "Coordinates set to %s\n", coord)
}
