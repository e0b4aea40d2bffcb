package services

import (
	"touristguide/internal/domain/models"
	"touristguide/internal/itinerary"
)

// TimezoneFinder resolves an IANA zone name for a coordinate. tzf.F satisfies it.
type TimezoneFinder interface {
	GetTimezoneName(lng float64, lat float64) string
}

type NearbyService struct {
	Zones TimezoneFinder
}

func (s NearbyService) Nearby(req models.LocationRequest) (models.NearbyResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return models.NearbyResponse{}, err
	}

	lat, lng := *req.Latitude, *req.Longitude
	loc := models.Coordinate{Lat: lat, Lng: lng}
	if s.Zones != nil {
		loc.Timezone = s.Zones.GetTimezoneName(lng, lat)
	}
	return models.NearbyResponse{
		Location: loc,
		Places:   itinerary.NearbyPlaces(lat, lng),
	}, nil
}
