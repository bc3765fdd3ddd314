package providers

import (
	"context"
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

// SGP4Telemetry propagates satellites that carry a two-line element set
// with the SGP4 model and falls back to the Kepler model for the rest.
// Vitals, health and debris delegate to the Kepler provider.
type SGP4Telemetry struct {
	*KeplerTelemetry

	sats map[string]satellite.Satellite
}

// NewSGP4Telemetry parses the given element sets. Satellites without a
// TLE are propagated by the embedded Kepler model.
func NewSGP4Telemetry(epoch time.Time, tles map[string]TLE) *SGP4Telemetry {
	parsed := make(map[string]satellite.Satellite, len(tles))
	for id, tle := range tles {
		parsed[id] = satellite.TLEToSat(tle.Line1, tle.Line2, satellite.GravityWGS72)
	}
	return &SGP4Telemetry{
		KeplerTelemetry: NewKeplerTelemetry(epoch),
		sats:            parsed,
	}
}

// UpdatePositions propagates each satellite to the provider's clock time.
// SGP4 output is in the ECI frame in kilometres, the same frame the
// Kepler fallback produces, so the scanner sees a consistent snapshot.
func (s *SGP4Telemetry) UpdatePositions(ctx context.Context, sats []models.Satellite) ([]models.OrbitalData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]models.OrbitalData, 0, len(sats))

	for _, sat := range sats {
		rec, ok := s.sats[sat.ID]
		if !ok {
			fallback, err := s.KeplerTelemetry.UpdatePositions(ctx, []models.Satellite{sat})
			if err != nil {
				return nil, err
			}
			out = append(out, fallback[0])
			continue
		}

		year, month, day := now.UTC().Date()
		hour, min, sec := now.UTC().Clock()
		pos, vel := satellite.Propagate(rec, year, int(month), day, hour, min, sec)

		position := models.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
		r := position.Norm()
		period := 2 * math.Pi * math.Sqrt(r*r*r/earthMuKm3S2)

		out = append(out, models.OrbitalData{
			SatelliteID:      sat.ID,
			Position:         position,
			Velocity:         models.Vector3{X: vel.X, Y: vel.Y, Z: vel.Z},
			OrbitalPeriodSec: period,
			Inclination:      sat.Inclination,
			Timestamp:        now,
		})
	}
	return out, nil
}

func init() {
	_ = DefaultRegistry.Register("sgp4", func(opts Options) (TelemetryProvider, error) {
		return NewSGP4Telemetry(opts.Epoch, opts.TLEs), nil
	})
}
