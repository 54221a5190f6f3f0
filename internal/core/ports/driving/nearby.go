package driving

import (
	"context"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// NearbyService finds airports close to a coordinate.
type NearbyService interface {
	// Nearby returns up to topK airports within radiusKm of the given
	// coordinate, closest first. The caller guarantees the coordinate comes
	// from a real geolocation source; NaN or out-of-range values return
	// domain.ErrInvalidCoordinate.
	Nearby(ctx context.Context, lat, lon float64, radiusKm float64, topK int) ([]domain.NearbyAirport, error)
}
