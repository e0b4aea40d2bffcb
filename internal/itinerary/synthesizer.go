// Package itinerary builds the mock trip plans served by the API. Everything here is a
// pure transformation of the request plus a random draw of activities per day.
package itinerary

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"touristguide/internal/domain/models"
	"touristguide/internal/utils"

	"github.com/samber/lo"
)

const (
	TierLuxury   = "Luxury"
	TierStandard = "Standard"
	TierBudget   = "Budget"

	luxuryThreshold = 40000
	budgetThreshold = 10000

	// activities drawn per day
	dailyActivities = 5
)

// Synthesizer turns a validated TripRequest into an ItineraryDocument. It is safe for
// concurrent use; the random source is the only shared state.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Synthesizer)

// WithRand replaces the clock-seeded random source, mainly for reproducible tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Synthesizer) {
		if r != nil {
			s.rng = r
		}
	}
}

func New(opts ...Option) *Synthesizer {
	seed := uint64(time.Now().UnixNano())
	s := &Synthesizer{rng: rand.New(rand.NewPCG(seed, seed>>1))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BudgetTier classifies per-person spend. The thresholds are compared against the raw
// amount whatever the currency.
func BudgetTier(perPerson float64) string {
	switch {
	case perPerson > luxuryThreshold:
		return TierLuxury
	case perPerson < budgetThreshold:
		return TierBudget
	default:
		return TierStandard
	}
}

// IsKidSafe reports whether adult-oriented suggestions must be suppressed.
func IsKidSafe(ageGroup string) bool {
	return ageGroup == "Kid" || ageGroup == "Teen"
}

// Synthesize assumes req passed TripRequest.Validate: NumberOfPeople and Days are >= 1.
func (s *Synthesizer) Synthesize(req models.TripRequest) models.ItineraryDocument {
	perPerson := req.Budget / float64(req.NumberOfPeople)
	tier := BudgetTier(perPerson)
	kidSafe := IsKidSafe(req.AgeGroup)
	name := utils.TitleCase(req.Place)

	pool := activityPool(name, kidSafe)
	days := make([]models.DayPlan, 0, req.Days)
	for i := 1; i <= req.Days; i++ {
		days = append(days, models.DayPlan{
			Day:        i,
			Title:      fmt.Sprintf("Day %d: Exploring %s", i, name),
			Schedule:   s.drawSchedule(pool),
			Places:     slices.Clone(dayPlaces),
			Food:       slices.Clone(dayFood),
			PhotoSpots: slices.Clone(dayPhotoSpots),
			Safety:     slices.Clone(daySafety),
		})
	}

	return models.ItineraryDocument{
		TripSummary: models.TripSummary{
			Destination: name,
			Duration:    fmt.Sprintf("%d Days", req.Days),
			Travelers:   req.NumberOfPeople,
			Style:       fmt.Sprintf("%s, %s", req.ActivityLevel, tier),
			TotalBudget: utils.FormatRaw(req.Currency, req.Budget),
			Notes:       weatherNote,
		},
		BudgetBreakdown: Breakdown(req.Currency, req.Budget),
		Days:            days,
		HotelOptions:    hotelOptions(req.Currency),
		Emergency:       emergencyContacts,
	}
}

// Breakdown splits the total budget 40/20/20/10/10.
func Breakdown(currency string, budget float64) models.BudgetBreakdown {
	return models.BudgetBreakdown{
		Accommodation: utils.FormatMoney(currency, budget*0.4),
		Food:          utils.FormatMoney(currency, budget*0.2),
		Activities:    utils.FormatMoney(currency, budget*0.2),
		Travel:        utils.FormatMoney(currency, budget*0.1),
		Misc:          utils.FormatMoney(currency, budget*0.1),
	}
}

// drawSchedule samples without replacement and orders by "HH:MM", which sorts
// chronologically as long as labels stay zero-padded.
func (s *Synthesizer) drawSchedule(pool []models.ScheduleEntry) []models.ScheduleEntry {
	picked := lo.SamplesBy(pool, min(len(pool), dailyActivities), s.intN)
	slices.SortStableFunc(picked, func(a, b models.ScheduleEntry) int {
		return strings.Compare(a.Time, b.Time)
	})
	return picked
}

func (s *Synthesizer) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
