package models

// Report holds the current conditions for one lookup. It is built fresh
// per fetch with every field already defaulted, rendered once, then
// discarded.
type Report struct {
	City        string  `json:"city" example:"Reno"`
	CurrentTemp float64 `json:"current_temp" example:"71.2"`
	TempMax     float64 `json:"temp_max" example:"75.0"`
	TempMin     float64 `json:"temp_min" example:"58.4"`
	WindSpeed   float64 `json:"wind_speed" example:"4.6"`
	Condition   string  `json:"condition" example:"Clear"`
}
