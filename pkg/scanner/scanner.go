// Package scanner implements the pairwise collision threat scan over the
// constellation's latest orbital samples.
package scanner

import (
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

// Default proximity thresholds in kilometres.
const (
	DefaultCriticalRangeKm = 10.0
	DefaultHighRangeKm     = 50.0
	DefaultCloseRangeKm    = 100.0

	// DefaultTimeToCollisionHours is reported when the relative velocity
	// gives no closing component to estimate from.
	DefaultTimeToCollisionHours = 24.0
)

// Config holds the scan thresholds. A pair is reported only when its
// separation is below CloseRangeKm; HighRangeKm and CriticalRangeKm refine
// the classification inside that band.
type Config struct {
	CriticalRangeKm float64
	HighRangeKm     float64
	CloseRangeKm    float64
}

// DefaultConfig returns the 10/50/100 km defaults.
func DefaultConfig() Config {
	return Config{
		CriticalRangeKm: DefaultCriticalRangeKm,
		HighRangeKm:     DefaultHighRangeKm,
		CloseRangeKm:    DefaultCloseRangeKm,
	}
}

// Scanner detects close approaches between satellites. The scan is
// deliberately O(n²) over the pair set: correct and simple for
// constellations in the tens to low hundreds. Larger fleets would want a
// spatial index (grid or k-d tree) in front of the pair loop.
type Scanner struct {
	cfg Config
	now func() time.Time
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithConfig overrides the proximity thresholds.
func WithConfig(cfg Config) Option {
	return func(s *Scanner) { s.cfg = cfg }
}

// WithClock overrides the time source used for threat timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) { s.now = now }
}

// New creates a scanner with the default thresholds.
func New(opts ...Option) *Scanner {
	s := &Scanner{cfg: DefaultConfig(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks every unordered pair (i, j) with i < j of the given samples
// in their given order, so threat ids and emission order are stable for
// the same input snapshot. Callers pass the latest sample per satellite
// in satellite insertion order.
func (s *Scanner) Scan(samples []models.OrbitalData) []models.CollisionThreat {
	var threats []models.CollisionThreat
	now := s.now()

	for i := 0; i < len(samples); i++ {
		for j := i + 1; j < len(samples); j++ {
			a, b := &samples[i], &samples[j]

			dist := a.Position.Sub(b.Position).Norm()
			if dist >= s.cfg.CloseRangeKm {
				continue
			}

			risk := s.classify(dist)
			threats = append(threats, models.CollisionThreat{
				ThreatID:        models.ThreatID(a.SatelliteID, b.SatelliteID),
				SatelliteA:      a.SatelliteID,
				SatelliteB:      b.SatelliteID,
				DistanceKm:      dist,
				TimeToCollision: timeToCollision(a, b, dist),
				RiskLevel:       risk,
				ManeuverNeeded:  risk == models.RiskHigh || risk == models.RiskCritical,
				Maneuver:        maneuverFor(risk),
				Confidence:      confidenceFor(dist, s.cfg.CloseRangeKm),
				Timestamp:       now,
			})
		}
	}
	return threats
}

func (s *Scanner) classify(dist float64) models.RiskLevel {
	switch {
	case dist < s.cfg.CriticalRangeKm:
		return models.RiskCritical
	case dist < s.cfg.HighRangeKm:
		return models.RiskHigh
	default:
		return models.RiskMedium
	}
}

// timeToCollision estimates hours to closest approach from the relative
// velocity. A pair that is not closing reports the default horizon.
func timeToCollision(a, b *models.OrbitalData, dist float64) float64 {
	relPos := a.Position.Sub(b.Position)
	relVel := a.Velocity.Sub(b.Velocity)

	// Closing speed is the component of relative velocity along the
	// separation vector, in km/s.
	closing := -relPos.Dot(relVel) / dist
	if dist == 0 || closing <= 0 {
		return DefaultTimeToCollisionHours
	}

	hours := dist / closing / 3600.0
	if hours > DefaultTimeToCollisionHours {
		return DefaultTimeToCollisionHours
	}
	return hours
}

func maneuverFor(risk models.RiskLevel) string {
	switch risk {
	case models.RiskCritical:
		return "Immediate avoidance maneuver required"
	case models.RiskHigh:
		return "Avoidance maneuver required"
	default:
		return "Monitor closely"
	}
}

// confidenceFor grows linearly as the separation shrinks: 0.5 at the
// emission threshold, approaching 1.0 at contact.
func confidenceFor(dist, closeRange float64) float64 {
	if closeRange <= 0 {
		return 0.5
	}
	return 0.5 + 0.5*(1.0-dist/closeRange)
}
