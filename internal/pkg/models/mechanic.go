package models

import "time"

// RatingSummary is the discoverable rating of a mechanic. The stored
// representation is a running sum and count; the average is derived so
// concurrent rating submissions reduce to a single atomic increment.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// MechanicProfile represents a registered mechanic as seen by the directory
type MechanicProfile struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Phone       string    `json:"phone" bson:"phone"`
	Location    Location  `json:"location" bson:"location"`
	Geohash     string    `json:"-" bson:"geohash"`
	Address     string    `json:"address" bson:"address"`
	Services    []string  `json:"services" bson:"services"`
	Available   bool      `json:"available" bson:"available"`
	RatingSum   int64     `json:"-" bson:"rating_sum"`
	RatingCount int64     `json:"-" bson:"rating_count"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Rating derives the rating summary from the stored running sum and count
func (m *MechanicProfile) Rating() RatingSummary {
	if m.RatingCount == 0 {
		return RatingSummary{}
	}
	return RatingSummary{
		Average: float64(m.RatingSum) / float64(m.RatingCount),
		Count:   m.RatingCount,
	}
}

// OffersAny reports whether the mechanic offers at least one of the
// requested services. An empty request set matches every mechanic.
func (m *MechanicProfile) OffersAny(services []string) bool {
	if len(services) == 0 {
		return true
	}
	for _, want := range services {
		for _, have := range m.Services {
			if want == have {
				return true
			}
		}
	}
	return false
}

// NearbyMechanic is a mechanic profile annotated with the distance from
// the search origin
type NearbyMechanic struct {
	MechanicProfile
	Rating     RatingSummary `json:"rating"`
	DistanceKm float64       `json:"distance_km"`
}

// NearbyFilter holds the secondary filters applied after the radius cut
type NearbyFilter struct {
	MinRating     float64  `json:"min_rating,omitempty"`
	Services      []string `json:"services,omitempty"`
	AvailableOnly bool     `json:"available_only,omitempty"`
}
