// Package geo implements proximity queries by scanning a snapshot of the
// location store. The query interface is narrow enough that a spatial index
// (geohash buckets, an R-tree) can replace the scan without touching callers.
package geo

import (
	"context"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"sosradar/internal/domain/repository"
	"sosradar/internal/domain/service"
)

// Index answers nearby-user queries over the location repository.
type Index struct {
	locations repository.LocationRepository
}

// NewIndex creates a geo index backed by the given location repository.
func NewIndex(locations repository.LocationRepository) *Index {
	return &Index{locations: locations}
}

// NearbyUsers returns users within radiusMeters of the query point, boundary
// inclusive, excluding excludeUserID, ordered nearest first.
func (idx *Index) NearbyUsers(ctx context.Context, lat, lon, radiusMeters float64, excludeUserID string) ([]service.NearbyUser, error) {
	snapshot, err := idx.locations.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{lon, lat}
	var nearby []service.NearbyUser
	for _, loc := range snapshot {
		if loc.UserID == excludeUserID {
			continue
		}
		dist := haversineDistance(origin, orb.Point{loc.Longitude, loc.Latitude})
		if dist <= radiusMeters {
			nearby = append(nearby, service.NearbyUser{
				Location:       loc,
				DistanceMeters: dist,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	return nearby, nil
}

// haversineDistance returns the great-circle distance in meters between two
// points.
func haversineDistance(p1, point2 orb.Point) float64 {
	const earthRadiusM = 6371000.0

	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := point2[1] * math.Pi / 180
	lng2Rad := point2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
