// Package config defines the mission scenario configuration: the
// constellation, the ground station network, engine tuning and scanner
// thresholds, loaded from YAML with environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/providers"
)

// MissionConfig holds the complete scenario configuration.
type MissionConfig struct {
	// Mission identity
	Mission MissionSettings `yaml:"mission"`

	// Constellation to seed the mission with
	Satellites []SatelliteSpec `yaml:"satellites"`

	// Ground station network
	GroundStations []StationSpec `yaml:"ground_stations"`

	// Optional element sets keyed by satellite id, for the sgp4 provider
	TLEs map[string]providers.TLE `yaml:"tles,omitempty"`

	// Engine tuning
	Engine EngineConfig `yaml:"engine"`

	// Collision scan thresholds
	Scanner ScannerConfig `yaml:"scanner"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// MissionSettings names the mission.
type MissionSettings struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SatelliteSpec describes one satellite in the scenario file. Fields left
// zero fall back to sensible flight defaults when converted.
type SatelliteSpec struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Type           string  `yaml:"type"`
	AltitudeKm     float64 `yaml:"altitude_km"`
	Inclination    float64 `yaml:"inclination_deg"`
	Longitude      float64 `yaml:"longitude_deg"`
	BatteryLevel   float64 `yaml:"battery_level"`
	SignalStrength float64 `yaml:"signal_strength"`
	HealthScore    float64 `yaml:"health_score"`
}

// StationSpec describes one ground station in the scenario file.
type StationSpec struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Location        string  `yaml:"location"`
	Latitude        float64 `yaml:"latitude_deg"`
	Longitude       float64 `yaml:"longitude_deg"`
	DataRateGbps    float64 `yaml:"data_rate_gbps"`
	AntennaDiameter float64 `yaml:"antenna_diameter_m"`
	FrequencyBand   string  `yaml:"frequency_band"`
}

// EngineConfig tunes the state store and provider selection.
type EngineConfig struct {
	Provider        string `yaml:"provider"`         // "kepler" or "sgp4"
	HistoryCapacity int    `yaml:"history_capacity"` // snapshot ring size
	OrbitalCapacity int    `yaml:"orbital_capacity"` // retained orbital samples
}

// ScannerConfig sets the proximity thresholds in kilometres.
type ScannerConfig struct {
	CriticalRangeKm float64 `yaml:"critical_range_km"`
	HighRangeKm     float64 `yaml:"high_range_km"`
	CloseRangeKm    float64 `yaml:"close_range_km"`
}

// LoggingConfig defines console logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"` // "debug", "info", "warn", "error"
	NoColor bool   `yaml:"no_color"`
}

// Validate checks the configuration for consistency.
func (c *MissionConfig) Validate() error {
	if c.Mission.Name == "" {
		return fmt.Errorf("mission name is required")
	}

	seen := make(map[string]bool, len(c.Satellites))
	for _, s := range c.Satellites {
		if s.ID == "" {
			return fmt.Errorf("satellite id is required")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate satellite id: %s", s.ID)
		}
		seen[s.ID] = true
		if s.AltitudeKm <= 0 {
			return fmt.Errorf("satellite %s: altitude must be positive", s.ID)
		}
	}

	stations := make(map[string]bool, len(c.GroundStations))
	for _, gs := range c.GroundStations {
		if gs.ID == "" {
			return fmt.Errorf("ground station id is required")
		}
		if stations[gs.ID] {
			return fmt.Errorf("duplicate ground station id: %s", gs.ID)
		}
		stations[gs.ID] = true
	}

	for id := range c.TLEs {
		if !seen[id] {
			return fmt.Errorf("tle for unknown satellite: %s", id)
		}
	}

	if c.Engine.HistoryCapacity <= 0 {
		return fmt.Errorf("engine history_capacity must be positive")
	}
	if c.Engine.OrbitalCapacity <= 0 {
		return fmt.Errorf("engine orbital_capacity must be positive")
	}

	sc := c.Scanner
	if !(0 < sc.CriticalRangeKm && sc.CriticalRangeKm < sc.HighRangeKm && sc.HighRangeKm < sc.CloseRangeKm) {
		return fmt.Errorf("scanner thresholds must satisfy 0 < critical < high < close")
	}
	return nil
}

// BuildSatellites converts the specs into seed satellites. Zero battery,
// signal or health fall back to full-charge defaults.
func (c *MissionConfig) BuildSatellites(now time.Time) []models.Satellite {
	out := make([]models.Satellite, 0, len(c.Satellites))
	for _, sp := range c.Satellites {
		battery := sp.BatteryLevel
		if battery == 0 {
			battery = 100
		}
		signal := sp.SignalStrength
		if signal == 0 {
			signal = 95
		}
		health := sp.HealthScore
		if health == 0 {
			health = 95
		}
		out = append(out, models.Satellite{
			ID:               sp.ID,
			Name:             sp.Name,
			Type:             sp.Type,
			Status:           models.SatelliteStatusActive,
			AltitudeKm:       sp.AltitudeKm,
			Inclination:      sp.Inclination,
			Longitude:        sp.Longitude,
			VelocityKms:      7.5,
			BatteryLevel:     battery,
			SignalStrength:   signal,
			TemperatureC:     20,
			PowerConsumption: 1000,
			DataThroughput:   100,
			LastContact:      now,
			HealthScore:      health,
		})
	}
	return out
}

// BuildStations converts the specs into seed ground stations.
func (c *MissionConfig) BuildStations(now time.Time) []models.GroundStation {
	out := make([]models.GroundStation, 0, len(c.GroundStations))
	for _, sp := range c.GroundStations {
		rate := sp.DataRateGbps
		if rate == 0 {
			rate = 1.0
		}
		band := sp.FrequencyBand
		if band == "" {
			band = "S-Band"
		}
		out = append(out, models.GroundStation{
			ID:              sp.ID,
			Name:            sp.Name,
			Location:        sp.Location,
			Latitude:        sp.Latitude,
			Longitude:       sp.Longitude,
			Status:          "ACTIVE",
			DataRateGbps:    rate,
			AntennaDiameter: sp.AntennaDiameter,
			FrequencyBand:   band,
			LastContact:     now,
		})
	}
	return out
}

// GetDefaultConfig returns the built-in five-satellite demo scenario.
func GetDefaultConfig() *MissionConfig {
	return &MissionConfig{
		Mission: MissionSettings{
			Name:        "Autonomous Space Mission",
			Description: "Five-satellite LEO constellation with deep space network coverage",
		},
		Satellites: []SatelliteSpec{
			{ID: "SAT-001", Name: "Communication Alpha", Type: "Communication", AltitudeKm: 400, Inclination: 51.6, Longitude: -180, BatteryLevel: 90, SignalStrength: 95, HealthScore: 95},
			{ID: "SAT-002", Name: "Navigation Beta", Type: "Navigation", AltitudeKm: 450, Inclination: 51.6, Longitude: -108, BatteryLevel: 92, SignalStrength: 96, HealthScore: 95},
			{ID: "SAT-003", Name: "Earth Observation Gamma", Type: "Earth Observation", AltitudeKm: 500, Inclination: 51.6, Longitude: -36, BatteryLevel: 94, SignalStrength: 97, HealthScore: 95},
			{ID: "SAT-004", Name: "Weather Delta", Type: "Weather", AltitudeKm: 550, Inclination: 51.6, Longitude: 36, BatteryLevel: 96, SignalStrength: 98, HealthScore: 95},
			{ID: "SAT-005", Name: "Scientific Epsilon", Type: "Scientific", AltitudeKm: 600, Inclination: 51.6, Longitude: 108, BatteryLevel: 98, SignalStrength: 99, HealthScore: 95},
		},
		GroundStations: []StationSpec{
			{ID: "GS-001", Name: "Houston Mission Control", Location: "Houston, Texas", Latitude: 29.7604, Longitude: -95.3698, DataRateGbps: 1.0, AntennaDiameter: 34.0, FrequencyBand: "S-Band"},
			{ID: "GS-002", Name: "Canberra Deep Space", Location: "Canberra, Australia", Latitude: -35.2809, Longitude: 149.1300, DataRateGbps: 1.0, AntennaDiameter: 34.0, FrequencyBand: "S-Band"},
			{ID: "GS-003", Name: "Madrid Deep Space", Location: "Madrid, Spain", Latitude: 40.4168, Longitude: -3.7038, DataRateGbps: 1.0, AntennaDiameter: 34.0, FrequencyBand: "S-Band"},
		},
		Engine: EngineConfig{
			Provider:        "kepler",
			HistoryCapacity: 100,
			OrbitalCapacity: 1024,
		},
		Scanner: ScannerConfig{
			CriticalRangeKm: 10,
			HighRangeKm:     50,
			CloseRangeKm:    100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
