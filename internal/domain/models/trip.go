package models

import (
	"fmt"
	"strings"

	"touristguide/internal/domain"
)

const (
	DefaultCurrency      = "INR"
	DefaultTravelMode    = "Flight"
	DefaultStayType      = "Hotel"
	DefaultFoodPref      = "Any"
	DefaultActivityLevel = "Moderate"
	DefaultAgeGroup      = "Adult"

	// MaxDaysCeiling bounds trip length even when no configured limit applies.
	MaxDaysCeiling = 3650
)

// TripRequest is the payload of POST /api/plan-trip.
type TripRequest struct {
	Place          string   `json:"place" validate:"required"`
	Budget         float64  `json:"budget" validate:"gte=0"`
	Currency       string   `json:"currency"`
	Days           int      `json:"days" validate:"gte=1"`
	NumberOfPeople int      `json:"number_of_people" validate:"gte=1"`
	StartCity      *string  `json:"start_city"`
	TravelMode     string   `json:"travel_mode"`
	StayType       string   `json:"stay_type"`
	FoodPref       string   `json:"food_pref"`
	ActivityLevel  string   `json:"activity_level"`
	AgeGroup       string   `json:"age_group"`
	Preferences    []string `json:"preferences"`
}

// ApplyDefaults trims text fields and fills the optional ones the client left empty.
func (r *TripRequest) ApplyDefaults() {
	r.Place = strings.TrimSpace(r.Place)
	r.Currency = orDefault(r.Currency, DefaultCurrency)
	r.TravelMode = orDefault(r.TravelMode, DefaultTravelMode)
	r.StayType = orDefault(r.StayType, DefaultStayType)
	r.FoodPref = orDefault(r.FoodPref, DefaultFoodPref)
	r.ActivityLevel = orDefault(r.ActivityLevel, DefaultActivityLevel)
	r.AgeGroup = orDefault(r.AgeGroup, DefaultAgeGroup)
	if r.StartCity != nil {
		city := strings.TrimSpace(*r.StartCity)
		if city == "" {
			r.StartCity = nil
		} else {
			r.StartCity = &city
		}
	}
	if r.Preferences == nil {
		r.Preferences = []string{}
	}
}

// Validate checks the invariants the synthesizer relies on. maxDays <= 0 or above
// MaxDaysCeiling falls back to MaxDaysCeiling.
func (r TripRequest) Validate(maxDays int) error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if maxDays <= 0 || maxDays > MaxDaysCeiling {
		maxDays = MaxDaysCeiling
	}
	if r.Days > maxDays {
		return domain.ValidationError{Field: "days", Msg: fmt.Sprintf("must be at most %d", maxDays)}
	}
	return nil
}

func orDefault(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
