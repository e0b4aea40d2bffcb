package models

const DefaultRadiusKm = 5.0

// LocationRequest is the payload of POST /api/nearby. RadiusKm is accepted for client
// compatibility; the lookup always returns the same four places.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	RadiusKm  float64  `json:"radius_km" validate:"gte=0"`
}

func (r *LocationRequest) ApplyDefaults() {
	if r.RadiusKm == 0 {
		r.RadiusKm = DefaultRadiusKm
	}
}

func (r LocationRequest) Validate() error {
	return validateStruct(r)
}

type PlaceOfInterest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Distance string  `json:"distance"`
	Rating   float64 `json:"rating"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type Coordinate struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Timezone string  `json:"timezone,omitempty"`
}

type NearbyResponse struct {
	Location Coordinate        `json:"location"`
	Places   []PlaceOfInterest `json:"places"`
}
