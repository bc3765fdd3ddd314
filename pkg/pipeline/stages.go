package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/astrogrid/constellation-ops/pkg/logger"
	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

// orbitalUpdate propagates every satellite and appends one orbital
// sample each. The satellite's velocity field tracks the propagated
// speed so later stages see a consistent view.
func (o *Orchestrator) orbitalUpdate(ctx context.Context) (stageResult, error) {
	sats := o.store.Satellites()

	samples, err := o.telemetry.UpdatePositions(ctx, sats)
	if err != nil {
		return stageResult{}, fmt.Errorf("propagate constellation: %w", err)
	}

	for _, od := range samples {
		o.store.AddOrbitalData(od)
		speed := od.Velocity.Norm()
		if uerr := o.store.UpdateSatellite(od.SatelliteID, models.SatelliteUpdate{
			VelocityKms: &speed,
		}); uerr != nil {
			return stageResult{}, uerr
		}
	}

	return stageResult{
		decision:  fmt.Sprintf("Propagated %d satellites to current epoch", len(samples)),
		reasoning: "Fresh orbital elements are required before collision monitoring",
		impact:    fmt.Sprintf("%d orbital samples recorded", len(samples)),
	}, nil
}

// constellationOptimize refreshes vitals for every satellite and moves
// power-starved ones to STANDBY.
func (o *Orchestrator) constellationOptimize(ctx context.Context) (stageResult, error) {
	sats := o.store.Satellites()

	vitals, err := o.telemetry.SampleVitals(ctx, sats)
	if err != nil {
		return stageResult{}, fmt.Errorf("sample vitals: %w", err)
	}

	standby := 0
	for _, v := range vitals {
		v := v
		if uerr := o.store.UpdateSatellite(v.SatelliteID, models.SatelliteUpdate{
			Status:         &v.Status,
			BatteryLevel:   &v.BatteryLevel,
			SignalStrength: &v.SignalStrength,
		}); uerr != nil {
			return stageResult{}, uerr
		}
		if v.Status == models.SatelliteStatusStandby {
			standby++
		}
	}

	return stageResult{
		decision:  fmt.Sprintf("Refreshed vitals for %d satellites, %d moved to standby", len(vitals), standby),
		reasoning: "Battery and signal levels drive operational status",
		impact:    "Constellation status synchronized with telemetry",
	}, nil
}

// threatScan runs the pairwise proximity scan over the latest sample per
// satellite, records the detected threats and raises one alert when any
// pair needs a maneuver.
func (o *Orchestrator) threatScan(ctx context.Context) (stageResult, error) {
	if err := ctx.Err(); err != nil {
		return stageResult{}, err
	}

	samples := o.store.LatestOrbitalData()
	threats := o.scan.Scan(samples)

	maneuvers := 0
	for _, t := range threats {
		o.store.AddCollisionThreat(t)

		risk := 1.0 - t.DistanceKm/100.0
		if risk < 0 {
			risk = 0
		}
		for _, id := range []string{t.SatelliteA, t.SatelliteB} {
			sat, err := o.store.SatelliteByID(id)
			if err != nil {
				return stageResult{}, err
			}
			if risk > sat.CollisionRisk {
				r := risk
				if uerr := o.store.UpdateSatellite(id, models.SatelliteUpdate{CollisionRisk: &r}); uerr != nil {
					return stageResult{}, uerr
				}
			}
		}
		if t.ManeuverNeeded {
			maneuvers++
		}
	}

	if maneuvers > 0 {
		o.store.AddAlert(models.Alert{
			ID:        uuid.NewString(),
			Type:      "COLLISION_RISK",
			Severity:  models.SeverityHigh,
			Message:   fmt.Sprintf("%d satellite pairs require avoidance maneuvers", maneuvers),
			Timestamp: o.now(),
		})
	}

	return stageResult{
		decision:  fmt.Sprintf("Scanned %d satellite pairs, %d threats detected", pairCount(len(samples)), len(threats)),
		reasoning: "Pairwise proximity scan over the latest orbital snapshot",
		impact:    fmt.Sprintf("%d threats recorded, %d require maneuvers", len(threats), maneuvers),
	}, nil
}

func pairCount(n int) int {
	return n * (n - 1) / 2
}

// missionPlan derives the operating plan from the current state: active
// objectives, a timeline over the remaining phases and the committed
// resources.
func (o *Orchestrator) missionPlan(ctx context.Context) (stageResult, error) {
	if err := ctx.Err(); err != nil {
		return stageResult{}, err
	}

	st := o.store.State()

	objectives := []string{
		"Maintain constellation coverage",
		"Monitor collision threats",
		"Coordinate ground station contacts",
	}
	if len(o.store.HighRiskThreats()) > 0 {
		objectives = append([]string{"Execute collision avoidance maneuvers"}, objectives...)
	}

	plan := models.MissionPlan{
		Name:       st.MissionName + " Operations Plan",
		Objectives: objectives,
		Timeline: models.MissionTimeline{
			Start:    st.StartTime,
			Duration: "24h",
			Phases: []string{
				string(models.PhaseGroundCoordination),
				string(models.PhaseMaintenance),
				string(models.PhaseDebrisMonitoring),
			},
		},
		Resources: models.MissionResources{
			Satellites:     st.SatelliteCount,
			GroundStations: len(st.GroundStations),
			Bandwidth:      "1 Gbps aggregate",
			Power:          "Nominal",
		},
		SuccessCriteria: map[string]string{
			"coverage":     "above 95 percent",
			"collisions":   "zero unmitigated CRITICAL threats",
			"ground_links": "every satellite assigned a station",
		},
		Status: "ACTIVE",
	}
	o.store.SetMissionPlan(plan)

	return stageResult{
		decision:  fmt.Sprintf("Published operations plan with %d objectives", len(objectives)),
		reasoning: "Plan reflects current threat picture and committed assets",
		impact:    "Mission plan refreshed",
	}, nil
}

// groundCoordinate distributes satellites over the active stations
// round-robin and refreshes each station's contact window.
func (o *Orchestrator) groundCoordinate(ctx context.Context) (stageResult, error) {
	if err := ctx.Err(); err != nil {
		return stageResult{}, err
	}

	stations := o.store.GroundStations()
	sats := o.store.Satellites()

	if len(stations) == 0 {
		return stageResult{
			decision:  "No ground stations available, skipped assignment",
			reasoning: "Station network is empty",
			impact:    "No contacts scheduled",
		}, nil
	}

	assigned := make([][]string, len(stations))
	for i, sat := range sats {
		slot := i % len(stations)
		assigned[slot] = append(assigned[slot], sat.ID)
	}

	active := "ACTIVE"
	for i, gs := range stations {
		list := assigned[i]
		if uerr := o.store.UpdateGroundStation(gs.ID, models.GroundStationUpdate{
			Status:              &active,
			ConnectedSatellites: &list,
		}); uerr != nil {
			return stageResult{}, uerr
		}
	}

	return stageResult{
		decision:  fmt.Sprintf("Assigned %d satellites across %d stations", len(sats), len(stations)),
		reasoning: "Round-robin assignment balances station load",
		impact:    "Ground contact schedule refreshed",
	}, nil
}

// maintenancePredict asks the telemetry provider for health findings and
// schedules one task per finding. A task id already on the books gets its
// schedule refreshed instead of a duplicate entry.
func (o *Orchestrator) maintenancePredict(ctx context.Context) (stageResult, error) {
	sats := o.store.Satellites()

	tasks, err := o.telemetry.AssessHealth(ctx, sats)
	if err != nil {
		return stageResult{}, fmt.Errorf("assess health: %w", err)
	}

	scheduled := 0
	for _, t := range tasks {
		t := t
		aerr := o.store.AddMaintenanceTask(t)
		switch {
		case aerr == nil:
			scheduled++
		case errors.Is(aerr, state.ErrDuplicateEntity):
			if uerr := o.store.UpdateMaintenanceTask(t.ID, models.MaintenanceTaskUpdate{
				Priority:      &t.Priority,
				ScheduledTime: &t.ScheduledTime,
				Confidence:    &t.Confidence,
			}); uerr != nil {
				return stageResult{}, uerr
			}
		default:
			return stageResult{}, aerr
		}

		due := true
		if uerr := o.store.UpdateSatellite(t.SatelliteID, models.SatelliteUpdate{MaintenanceDue: &due}); uerr != nil {
			return stageResult{}, uerr
		}
	}

	return stageResult{
		decision:  fmt.Sprintf("Scheduled %d maintenance tasks from %d findings", scheduled, len(tasks)),
		reasoning: "Threshold checks on battery, thermal and health score",
		impact:    fmt.Sprintf("%d satellites flagged for maintenance", len(tasks)),
	}, nil
}

// debrisMonitor refreshes the tracked debris catalog and raises a
// warning when elevated-threat objects are present.
func (o *Orchestrator) debrisMonitor(ctx context.Context) (stageResult, error) {
	catalog, err := o.telemetry.CatalogDebris(ctx)
	if err != nil {
		return stageResult{}, fmt.Errorf("catalog debris: %w", err)
	}

	elevated := 0
	for _, d := range catalog {
		d := d
		aerr := o.store.AddSpaceDebris(d)
		if errors.Is(aerr, state.ErrDuplicateEntity) {
			aerr = o.store.UpdateSpaceDebris(d.ID, models.SpaceDebrisUpdate{
				VelocityKms:      &d.VelocityKms,
				OrbitAltitude:    &d.OrbitAltitude,
				ThreatLevel:      &d.ThreatLevel,
				TrackingAccuracy: &d.TrackingAccuracy,
			})
		}
		if aerr != nil {
			return stageResult{}, aerr
		}
		if d.ThreatLevel == models.RiskHigh || d.ThreatLevel == models.RiskCritical {
			elevated++
		}
	}

	if elevated > 0 {
		o.store.AddAlert(models.Alert{
			ID:        uuid.NewString(),
			Type:      "DEBRIS_THREAT",
			Severity:  models.SeverityWarning,
			Message:   fmt.Sprintf("%d debris objects at elevated threat level", elevated),
			Timestamp: o.now(),
		})
	}

	o.log.Debugf("%s debris catalog holds %d objects", logger.IconDebris, len(catalog))

	return stageResult{
		decision:  fmt.Sprintf("Tracked %d debris objects, %d at elevated threat", len(catalog), elevated),
		reasoning: "Catalog refresh from the tracking provider",
		impact:    "Debris picture current",
	}, nil
}
