package models

import "time"

// Location represents a geographic coordinate
type Location struct {
	Latitude  float64   `json:"latitude" bson:"latitude"`
	Longitude float64   `json:"longitude" bson:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}

// Valid reports whether the coordinate is inside the WGS84 bounds
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// GeoHit is one match from the geo index: a member and its distance from
// the query origin
type GeoHit struct {
	MechanicID string  `json:"mechanic_id"`
	DistanceKm float64 `json:"distance_km"`
}

// Now returns the current time, truncated to millisecond precision so
// round-trips through Mongo and JSON stay comparable
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
