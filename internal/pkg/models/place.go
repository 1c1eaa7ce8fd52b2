package models

import (
	"encoding/json"
	"time"
)

// Place represents a point of interest from the place catalog
type Place struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Latitude    *float64   `json:"latitude" db:"latitude"`
	Longitude   *float64   `json:"longitude" db:"longitude"`
	Geohash     string     `json:"geohash,omitempty" db:"geohash"`
	Category    string     `json:"category" db:"category"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// placeWire mirrors Place but carries the alternate coordinate field names some
// backends use (lat/lng instead of latitude/longitude). Capitalized-initial
// variants of the canonical names are already covered by encoding/json's
// case-insensitive key matching.
type placeWire struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Lat         *float64   `json:"lat"`
	Lng         *float64   `json:"lng"`
	Geohash     string     `json:"geohash"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// UnmarshalJSON normalizes the two coordinate namings into the canonical
// latitude/longitude fields. This is the single canonicalization boundary;
// code past this point never checks for the lat/lng form again.
func (p *Place) UnmarshalJSON(data []byte) error {
	var w placeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	p.ID = w.ID
	p.Name = w.Name
	p.Geohash = w.Geohash
	p.Category = w.Category
	p.Description = w.Description
	p.CreatedAt = w.CreatedAt
	p.UpdatedAt = w.UpdatedAt

	p.Latitude = w.Latitude
	if p.Latitude == nil {
		p.Latitude = w.Lat
	}
	p.Longitude = w.Longitude
	if p.Longitude == nil {
		p.Longitude = w.Lng
	}

	return nil
}

// HasCoordinates reports whether the place carries a usable coordinate pair.
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
