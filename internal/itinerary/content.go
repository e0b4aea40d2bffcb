package itinerary

import (
	"touristguide/internal/domain/models"
	"touristguide/internal/utils"
)

const (
	NightlifeAdult   = "Night Club Hopping"
	NightlifeKidSafe = "Evening Light Show"

	shoppingAdult   = "Shopping at the Grand Bazaar"
	shoppingKidSafe = "Visit the Zoo/Aquarium"

	weatherNote = "Weather is expected to be sunny. Pack light cotton clothes."
)

// The per-day lists and hotels do not depend on destination or budget tier.
var (
	dayPlaces     = []string{"City Museum", "Old Town", "Hilltop Park"}
	dayFood       = []string{"Local Bistro", "Street Food Market"}
	dayPhotoSpots = []string{"The Big Arch", "Sunset Point"}
	daySafety     = []string{"Watch out for pickpockets in crowded areas", "Drink bottled water"}

	emergencyContacts = models.EmergencyContacts{
		Police:         "911 or Local 100",
		Ambulance:      "911 or Local 102",
		EmbassyContact: "+1-800-555-0199",
	}
)

func activityPool(name string, kidSafe bool) []models.ScheduleEntry {
	shopping, nightlife := shoppingAdult, NightlifeAdult
	if kidSafe {
		shopping, nightlife = shoppingKidSafe, NightlifeKidSafe
	}
	return []models.ScheduleEntry{
		{Time: "09:00", Activity: "Visit the famous " + name + " Museum", Location: "City Center"},
		{Time: "11:00", Activity: "Walking tour of the Old Town", Location: "Old Town"},
		{Time: "13:00", Activity: "Lunch at a local delicacy spot", Location: "Downtown"},
		{Time: "15:00", Activity: shopping, Location: "Market District"},
		{Time: "17:00", Activity: "Sunset view from the Hilltop", Location: "Hilltop Park"},
		{Time: "20:00", Activity: "Dinner with live music", Location: "Harbor View"},
		{Time: "22:00", Activity: nightlife, Location: "City Center"},
	}
}

func hotelOptions(currency string) []models.HotelOption {
	return []models.HotelOption{
		{Name: "Grand Hotel", Rating: 4.5, PricePerNight: utils.FormatGrouped(currency, 12000), Location: "City Center"},
		{Name: "Cozy Hostel", Rating: 4.0, PricePerNight: utils.FormatGrouped(currency, 2500), Location: "Old Town"},
		{Name: "Sunrise Apartment", Rating: 4.8, PricePerNight: utils.FormatGrouped(currency, 6000), Location: "Beachfront"},
	}
}
