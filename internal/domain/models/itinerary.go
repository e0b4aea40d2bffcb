package models

// ScheduleEntry is one slot of a day plan, drawn from the activity pool.
type ScheduleEntry struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}

type DayPlan struct {
	Day        int             `json:"day"`
	Title      string          `json:"title"`
	Schedule   []ScheduleEntry `json:"schedule"`
	Places     []string        `json:"places"`
	Food       []string        `json:"food"`
	PhotoSpots []string        `json:"photo_spots"`
	Safety     []string        `json:"safety"`
}

type TripSummary struct {
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Travelers   int    `json:"travelers"`
	Style       string `json:"style"`
	TotalBudget string `json:"total_budget"`
	Notes       string `json:"notes"`
}

type BudgetBreakdown struct {
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
	Travel        string `json:"travel"`
	Misc          string `json:"misc"`
}

type HotelOption struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight string  `json:"price_per_night"`
	Location      string  `json:"location"`
}

type EmergencyContacts struct {
	Police         string `json:"police"`
	Ambulance      string `json:"ambulance"`
	EmbassyContact string `json:"embassy_contact"`
}

type ItineraryDocument struct {
	TripSummary     TripSummary       `json:"trip_summary"`
	BudgetBreakdown BudgetBreakdown   `json:"budget_breakdown"`
	Days            []DayPlan         `json:"days"`
	HotelOptions    []HotelOption     `json:"hotel_options"`
	Emergency       EmergencyContacts `json:"emergency"`
}

// PlannedItinerary is an ItineraryDocument addressed by id so it can be fetched and
// exported after generation. The document fields stay at the top level of the JSON.
type PlannedItinerary struct {
	ID string `json:"id"`
	ItineraryDocument
}
