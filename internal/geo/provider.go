// Package geo abstracts how a complaint gets its coordinates when the
// reporter asks to attach their location. The store never depends on it.
package geo

import (
	"math/rand"

	"civigo/backend/internal/config"
	"civigo/backend/internal/models"
)

// Provider supplies a geographic point for a new complaint.
type Provider interface {
	Locate() models.Coordinates
}

// RandomProvider draws a point inside the configured city bounds. The
// prototype has no device geolocation, so a plausible in-town point stands
// in for it.
type RandomProvider struct {
	rng *rand.Rand
}

// NewRandomProvider creates a provider seeded from the given source.
func NewRandomProvider(seed int64) *RandomProvider {
	return &RandomProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomProvider) Locate() models.Coordinates {
	return models.Coordinates{
		Lat: config.CityLatMin + p.rng.Float64()*(config.CityLatMax-config.CityLatMin),
		Lng: config.CityLngMin + p.rng.Float64()*(config.CityLngMax-config.CityLngMin),
	}
}

// FixedProvider always returns the same point. Used in tests and anywhere a
// deterministic location is needed.
type FixedProvider struct {
	Point models.Coordinates
}

func (p *FixedProvider) Locate() models.Coordinates {
	return p.Point
}
