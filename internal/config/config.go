package config

import (
	"time"

	"civigo/backend/internal/models"
)

const (
	// Session
	JWTIssuer = "civigo-service"
	JWTExpiry = 72 * time.Hour

	// Map feed
	FeedSendBuffer = 32

	// City bounds used by the random coordinate provider (Recife metro area).
	CityLatMin = -8.135
	CityLatMax = -8.040
	CityLngMin = -34.905
	CityLngMax = -34.865

	// DefaultLocale is the fallback language for category labels.
	DefaultLocale = "pt"
)

// SeverityWeights orders severities for the "severity desc" sort.
// Higher weight sorts first.
var SeverityWeights = map[models.Severity]int{
	models.SeverityLow:    1,
	models.SeverityMedium: 2,
	models.SeverityHigh:   3,
}
