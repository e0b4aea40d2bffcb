package services

import (
	"context"
	"strings"
	"time"

	"touristguide/internal/domain"
	"touristguide/internal/domain/models"
	"touristguide/internal/itinerary"
	"touristguide/internal/logger"
	"touristguide/internal/metrics"
	"touristguide/internal/repositories"

	"github.com/google/uuid"
)

// TripService validates trip requests, synthesizes the itinerary and keeps the
// history and itinerary cache up to date.
type TripService struct {
	Synthesizer *itinerary.Synthesizer
	History     repositories.HistoryRepository
	Itineraries *repositories.ItineraryCache
	Logger      logger.Logger
	MaxTripDays int

	Now   func() time.Time
	NewID func() string
}

func (s TripService) PlanTrip(ctx context.Context, req models.TripRequest) (models.PlannedItinerary, error) {
	req.ApplyDefaults()
	if err := req.Validate(s.MaxTripDays); err != nil {
		return models.PlannedItinerary{}, err
	}

	doc := s.Synthesizer.Synthesize(req)
	planned := models.PlannedItinerary{ID: s.newID(), ItineraryDocument: doc}
	tier := itinerary.BudgetTier(req.Budget / float64(req.NumberOfPeople))
	metrics.ItinerariesGenerated.WithLabelValues(tier).Inc()

	if s.Itineraries != nil {
		s.Itineraries.Put(planned)
	}

	entry := models.HistoryEntry{
		ID:        planned.ID,
		Place:     req.Place,
		Days:      req.Days,
		Budget:    req.Budget,
		Summary:   doc.TripSummary,
		CreatedAt: s.now(),
	}
	// a lost history record must not cost the caller their itinerary
	if err := s.History.Append(ctx, entry); err != nil {
		metrics.HistoryWriteFailures.WithLabelValues(s.History.Name()).Inc()
		s.log().WithError(err).Warn("history append failed", map[string]interface{}{
			"itinerary_id": planned.ID,
			"store":        s.History.Name(),
		})
	}

	s.log().Info("itinerary generated", map[string]interface{}{
		"itinerary_id": planned.ID,
		"destination":  doc.TripSummary.Destination,
		"days":         req.Days,
		"style":        doc.TripSummary.Style,
	})
	return planned, nil
}

func (s TripService) GetItinerary(id string) (models.PlannedItinerary, error) {
	id = strings.TrimSpace(id)
	if s.Itineraries != nil {
		if doc, ok := s.Itineraries.Get(id); ok {
			return doc, nil
		}
	}
	return models.PlannedItinerary{}, domain.NotFoundError{Resource: "itinerary", ID: id}
}

func (s TripService) ListHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	entries, err := s.History.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "history unavailable", Err: err}
	}
	return entries, nil
}

func (s TripService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s TripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s TripService) log() logger.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logger.NewNoOpLogger()
}
