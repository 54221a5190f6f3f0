package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
	"github.com/yourtravelguide/tripcheck-cli/internal/logger"
)

// Defaults for the nearby lookup, matching the site's "airports within
// 300 km, top three" behaviour.
const (
	DefaultRadiusKm = 300.0
	DefaultTopK     = 3
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Ensure NearbyService implements the interface.
var _ driving.NearbyService = (*NearbyService)(nil)

// NearbyService ranks airports by great-circle distance from a coordinate.
type NearbyService struct {
	airports driven.AirportCatalog
}

// NewNearbyService creates a new nearby lookup service.
func NewNearbyService(airports driven.AirportCatalog) *NearbyService {
	return &NearbyService{airports: airports}
}

// Nearby implements driving.NearbyService.
func (s *NearbyService) Nearby(
	ctx context.Context, lat, lon float64, radiusKm float64, topK int,
) ([]domain.NearbyAirport, error) {
	if s.airports == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	if !domain.ValidCoordinate(lat, lon) {
		return nil, fmt.Errorf("%w: (%v, %v)", domain.ErrInvalidCoordinate, lat, lon)
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	airports, err := s.airports.Airports(ctx)
	if err != nil {
		return nil, fmt.Errorf("load airports: %w", err)
	}

	logger.Section("Nearby Lookup")
	logger.Debug("Coordinate: (%.4f, %.4f), radius %.0f km, top %d", lat, lon, radiusKm, topK)

	results := make([]domain.NearbyAirport, 0, len(airports))
	for _, ap := range airports {
		dist := roundTenth(haversineKm(lat, lon, ap.Latitude, ap.Longitude))
		if dist > radiusKm {
			continue
		}
		results = append(results, domain.NearbyAirport{
			Airport:    ap,
			DistanceKm: dist,
			DriveTime:  driveTime(dist),
		})
	}

	// Stable sort keeps catalog order for equal distances.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if len(results) > topK {
		results = results[:topK]
	}

	logger.Info("Found %d airports in range", len(results))
	return results, nil
}

// haversineKm computes the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// driveTime estimates road travel time from straight-line distance: slower
// average speeds for short hops, faster for highway distances.
func driveTime(distanceKm float64) string {
	speedKmph := 65.0
	if distanceKm < 80 {
		speedKmph = 45.0
	}

	minutes := int(math.Round(distanceKm / speedKmph * 60))
	if minutes < 5 {
		minutes = 5
	}
	if minutes < 60 {
		return fmt.Sprintf("≈%d min drive", minutes)
	}

	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("≈%d hr drive", hours)
	}
	return fmt.Sprintf("≈%d hr %d min drive", hours, mins)
}
