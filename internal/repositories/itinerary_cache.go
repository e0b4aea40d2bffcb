package repositories

import (
	"time"

	"touristguide/internal/domain/models"

	"github.com/patrickmn/go-cache"
)

// ItineraryCache keeps generated itineraries around long enough to be fetched again
// or exported.
type ItineraryCache struct {
	c *cache.Cache
}

func NewItineraryCache(ttl time.Duration) *ItineraryCache {
	return &ItineraryCache{c: cache.New(ttl, 2*ttl)}
}

func (c *ItineraryCache) Put(doc models.PlannedItinerary) {
	c.c.Set(doc.ID, doc, cache.DefaultExpiration)
}

func (c *ItineraryCache) Get(id string) (models.PlannedItinerary, bool) {
	v, ok := c.c.Get(id)
	if !ok {
		return models.PlannedItinerary{}, false
	}
	doc, ok := v.(models.PlannedItinerary)
	return doc, ok
}
