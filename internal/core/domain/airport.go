package domain

import "math"

// Airport is a static, authored airport record.
type Airport struct {
	// Code is the unique IATA identifier, e.g. "DEL".
	Code string `toml:"code" json:"code"`

	Name string `toml:"name" json:"name"`
	City string `toml:"city" json:"city"`

	Latitude  float64 `toml:"latitude" json:"latitude"`
	Longitude float64 `toml:"longitude" json:"longitude"`
}

// NearbyAirport is an airport annotated with the distance from the user.
// It exists only as the output of a nearby lookup and is never persisted.
type NearbyAirport struct {
	Airport

	// DistanceKm is the great-circle distance, rounded to one decimal.
	DistanceKm float64 `json:"distanceKm"`

	// DriveTime is a human-readable road-time estimate, e.g. "≈45 min drive".
	DriveTime string `json:"driveTime"`
}

// ValidCoordinate reports whether the latitude/longitude pair is a real
// coordinate. NaN or out-of-range values indicate a caller bug; the nearby
// lookup rejects them up front rather than producing garbage distances.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
