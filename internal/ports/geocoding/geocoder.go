package geocoding

import "context"

// Location es un resultado de geocoding.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name,omitempty"`
}

// Geocoder resuelve texto libre (ciudad + código postal, o código postal solo).
// Sin match => (nil, nil): no es un error.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Location, error)
}
