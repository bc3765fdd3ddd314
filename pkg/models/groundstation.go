package models

import (
	"time"
)

// GroundStation is an Earth-side communication site. ConnectedSatellites
// holds logical references into the satellite collection; the store does
// not enforce referential integrity, callers supply consistent ids.
type GroundStation struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Location  string  `yaml:"location"`
	Latitude  float64 `yaml:"latitude_deg"`
	Longitude float64 `yaml:"longitude_deg"`
	Status    string  `yaml:"status"`

	ConnectedSatellites []string `yaml:"satellites_connected"`

	DataRateGbps    float64   `yaml:"data_rate_gbps"`
	AntennaDiameter float64   `yaml:"antenna_diameter_m"`
	FrequencyBand   string    `yaml:"frequency_band"`
	LastContact     time.Time `yaml:"last_contact"`
}

// Clone returns a deep copy of the station.
func (g GroundStation) Clone() GroundStation {
	out := g
	out.ConnectedSatellites = append([]string(nil), g.ConnectedSatellites...)
	return out
}

// GroundStationUpdate carries a partial in-place update for a station.
type GroundStationUpdate struct {
	Status              *string
	ConnectedSatellites *[]string
	DataRateGbps        *float64
}

// Apply merges the non-nil fields of the update into the station.
func (u GroundStationUpdate) Apply(g *GroundStation) {
	if u.Status != nil {
		g.Status = *u.Status
	}
	if u.ConnectedSatellites != nil {
		g.ConnectedSatellites = append([]string(nil), (*u.ConnectedSatellites)...)
	}
	if u.DataRateGbps != nil {
		g.DataRateGbps = *u.DataRateGbps
	}
}
