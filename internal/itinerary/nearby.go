package itinerary

import "touristguide/internal/domain/models"

// NearbyPlaces returns four canned points of interest a few hundred metres from the
// given coordinate.
func NearbyPlaces(lat, lng float64) []models.PlaceOfInterest {
	return []models.PlaceOfInterest{
		{Name: "Central Park", Type: "Park", Distance: "0.5 km", Rating: 4.8, Lat: lat + 0.002, Lng: lng + 0.002},
		{Name: "Joe's Coffee", Type: "Cafe", Distance: "0.2 km", Rating: 4.5, Lat: lat - 0.001, Lng: lng + 0.001},
		{Name: "City Mall", Type: "Shopping", Distance: "1.2 km", Rating: 4.2, Lat: lat + 0.005, Lng: lng - 0.002},
		{Name: "History Museum", Type: "Attraction", Distance: "0.8 km", Rating: 4.7, Lat: lat - 0.003, Lng: lng - 0.003},
	}
}
