// Package domain holds the entity shapes shared by the store, repository and UI.
package domain

import (
	"slices"
	"time"
)

// Launch is a single mission as shown by the client.
type Launch struct {
	ID           string
	Name         string
	FlightNumber int
	DateUTC      time.Time
	Upcoming     bool
	Success      *bool // nil while unknown (upcoming or unreported)
	Details      string
	RocketID     string
	PatchURL     string
	Failures     []Failure
	CapsuleIDs   []string
}

// Failure describes why a launch failed.
type Failure struct {
	TimeSeconds int    `json:"time"`
	Altitude    *int   `json:"altitude,omitempty"`
	Reason      string `json:"reason"`
}

// Rocket is a launch vehicle.
type Rocket struct {
	ID             string
	Name           string
	Type           string
	Active         bool
	Stages         int
	Boosters       int
	CostPerLaunch  int64
	SuccessRatePct int
	FirstFlight    string
	Country        string
	Company        string
	Description    string
	Wikipedia      string
	Images         []string
}

// Capsule is a Dragon capsule.
type Capsule struct {
	ID            string
	Serial        string
	Status        string
	Type          string
	ReuseCount    int
	WaterLandings int
	LandLandings  int
	LastUpdate    string
	LaunchIDs     []string
}

// Succeeded reports whether the launch is known to have succeeded.
func (l Launch) Succeeded() bool {
	return l.Success != nil && *l.Success
}

// Failed reports whether the launch is known to have failed.
func (l Launch) Failed() bool {
	return l.Success != nil && !*l.Success
}

// Equal compares two launches field by field.
func (l Launch) Equal(o Launch) bool {
	if l.ID != o.ID || l.Name != o.Name || l.FlightNumber != o.FlightNumber ||
		!l.DateUTC.Equal(o.DateUTC) || l.Upcoming != o.Upcoming ||
		l.Details != o.Details || l.RocketID != o.RocketID || l.PatchURL != o.PatchURL {
		return false
	}
	if !equalBoolPtr(l.Success, o.Success) {
		return false
	}
	if !slices.Equal(l.CapsuleIDs, o.CapsuleIDs) {
		return false
	}
	return slices.EqualFunc(l.Failures, o.Failures, Failure.Equal)
}

// Equal compares two failure descriptors.
func (f Failure) Equal(o Failure) bool {
	if f.TimeSeconds != o.TimeSeconds || f.Reason != o.Reason {
		return false
	}
	if f.Altitude == nil || o.Altitude == nil {
		return f.Altitude == nil && o.Altitude == nil
	}
	return *f.Altitude == *o.Altitude
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
