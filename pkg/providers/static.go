package providers

import (
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

// StaticConstellation serves a fixed satellite and ground-station set,
// typically loaded from a scenario file.
type StaticConstellation struct {
	satellites []models.Satellite
	stations   []models.GroundStation
}

// NewStaticConstellation wraps the given assets.
func NewStaticConstellation(sats []models.Satellite, stations []models.GroundStation) *StaticConstellation {
	return &StaticConstellation{satellites: sats, stations: stations}
}

// InitialSatellites returns a copy of the configured constellation.
func (p *StaticConstellation) InitialSatellites() ([]models.Satellite, error) {
	return append([]models.Satellite(nil), p.satellites...), nil
}

// GroundStations returns a copy of the configured station network.
func (p *StaticConstellation) GroundStations() ([]models.GroundStation, error) {
	out := make([]models.GroundStation, len(p.stations))
	for i, gs := range p.stations {
		out[i] = gs.Clone()
	}
	return out, nil
}

// DefaultConstellation is the built-in five-satellite demo constellation
// with the three deep-space ground stations.
func DefaultConstellation(now time.Time) *StaticConstellation {
	specs := []struct {
		id, name, typ string
		altitude      float64
	}{
		{"SAT-001", "Communication Alpha", "Communication", 400},
		{"SAT-002", "Navigation Beta", "Navigation", 450},
		{"SAT-003", "Earth Observation Gamma", "Earth Observation", 500},
		{"SAT-004", "Weather Delta", "Weather", 550},
		{"SAT-005", "Scientific Epsilon", "Scientific", 600},
	}

	sats := make([]models.Satellite, 0, len(specs))
	for i, sp := range specs {
		sats = append(sats, models.Satellite{
			ID:               sp.id,
			Name:             sp.name,
			Type:             sp.typ,
			Status:           models.SatelliteStatusActive,
			AltitudeKm:       sp.altitude,
			Inclination:      51.6,
			Longitude:        -180 + float64(i)*72,
			Latitude:         0,
			VelocityKms:      7.5,
			BatteryLevel:     90 + float64(i)*2,
			SignalStrength:   95 + float64(i),
			TemperatureC:     20,
			PowerConsumption: 1000,
			DataThroughput:   100,
			LastContact:      now,
			HealthScore:      95,
		})
	}

	stations := []models.GroundStation{
		{
			ID:                  "GS-001",
			Name:                "Houston Mission Control",
			Location:            "Houston, Texas",
			Latitude:            29.7604,
			Longitude:           -95.3698,
			Status:              "ACTIVE",
			ConnectedSatellites: []string{"SAT-001", "SAT-002"},
			DataRateGbps:        1.0,
			AntennaDiameter:     34.0,
			FrequencyBand:       "S-Band",
			LastContact:         now,
		},
		{
			ID:                  "GS-002",
			Name:                "Canberra Deep Space",
			Location:            "Canberra, Australia",
			Latitude:            -35.2809,
			Longitude:           149.1300,
			Status:              "ACTIVE",
			ConnectedSatellites: []string{"SAT-003", "SAT-004"},
			DataRateGbps:        1.0,
			AntennaDiameter:     34.0,
			FrequencyBand:       "S-Band",
			LastContact:         now,
		},
		{
			ID:                  "GS-003",
			Name:                "Madrid Deep Space",
			Location:            "Madrid, Spain",
			Latitude:            40.4168,
			Longitude:           -3.7038,
			Status:              "ACTIVE",
			ConnectedSatellites: []string{"SAT-005"},
			DataRateGbps:        1.0,
			AntennaDiameter:     34.0,
			FrequencyBand:       "S-Band",
			LastContact:         now,
		},
	}

	return NewStaticConstellation(sats, stations)
}
