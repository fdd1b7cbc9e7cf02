package models

import "fmt"

// Coordinate is a latitude/longitude pair. No bounds validation happens
// here; callers that need validated input (the HTTP handlers) check
// ranges themselves.
type Coordinate struct {
	Lat float64 `json:"lat" example:"39.5296"`
	Lon float64 `json:"lon" example:"-119.8138"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Lat, c.Lon)
}
