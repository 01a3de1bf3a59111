package spacex

import (
	"slices"
	"strings"
	"time"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
)

const legacyTimestampLayout = "2006-01-02 15:04:05"

// LaunchRecord mirrors a launch object returned by /launches and its variants.
type LaunchRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	FlightNumber int             `json:"flight_number"`
	DateUTC      string          `json:"date_utc"`
	DateUnix     int64           `json:"date_unix"`
	Upcoming     bool            `json:"upcoming"`
	Success      *bool           `json:"success"`
	Details      *string         `json:"details"`
	Rocket       string          `json:"rocket"`
	Capsules     []string        `json:"capsules"`
	Failures     []FailureRecord `json:"failures"`
	Links        LaunchLinks     `json:"links"`
}

// FailureRecord describes one failure reported for a launch.
type FailureRecord struct {
	Time     int    `json:"time"`
	Altitude *int   `json:"altitude"`
	Reason   string `json:"reason"`
}

// LaunchLinks carries the subset of media links the client shows.
type LaunchLinks struct {
	Patch struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"patch"`
	Webcast   string `json:"webcast"`
	Wikipedia string `json:"wikipedia"`
}

// RocketRecord mirrors /rockets entries.
type RocketRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Active         bool     `json:"active"`
	Stages         int      `json:"stages"`
	Boosters       int      `json:"boosters"`
	CostPerLaunch  int64    `json:"cost_per_launch"`
	SuccessRatePct int      `json:"success_rate_pct"`
	FirstFlight    string   `json:"first_flight"`
	Country        string   `json:"country"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	Wikipedia      string   `json:"wikipedia"`
	FlickrImages   []string `json:"flickr_images"`
}

// CapsuleRecord mirrors /capsules entries.
type CapsuleRecord struct {
	ID            string   `json:"id"`
	Serial        string   `json:"serial"`
	Status        string   `json:"status"`
	Type          string   `json:"type"`
	ReuseCount    int      `json:"reuse_count"`
	WaterLandings int      `json:"water_landings"`
	LandLandings  int      `json:"land_landings"`
	LastUpdate    *string  `json:"last_update"`
	Launches      []string `json:"launches"`
}

// ParsedDate returns the launch date, preferring date_utc over date_unix.
func (r LaunchRecord) ParsedDate() time.Time {
	if t := parseTime(r.DateUTC); !t.IsZero() {
		return t
	}
	if r.DateUnix > 0 {
		return time.Unix(r.DateUnix, 0).UTC()
	}
	return time.Time{}
}

// ToDomain maps the wire record into a domain launch.
func (r LaunchRecord) ToDomain() domain.Launch {
	launch := domain.Launch{
		ID:           r.ID,
		Name:         strings.TrimSpace(r.Name),
		FlightNumber: r.FlightNumber,
		DateUTC:      r.ParsedDate(),
		Upcoming:     r.Upcoming,
		RocketID:     r.Rocket,
		PatchURL:     r.Links.Patch.Small,
		CapsuleIDs:   slices.Clone(r.Capsules),
	}
	if r.Success != nil {
		v := *r.Success
		launch.Success = &v
	}
	if r.Details != nil {
		launch.Details = strings.TrimSpace(*r.Details)
	}
	if len(r.Failures) > 0 {
		launch.Failures = make([]domain.Failure, len(r.Failures))
		for i, f := range r.Failures {
			launch.Failures[i] = domain.Failure{TimeSeconds: f.Time, Altitude: f.Altitude, Reason: f.Reason}
		}
	}
	return launch
}

// ToDomain maps the wire record into a domain rocket.
func (r RocketRecord) ToDomain() domain.Rocket {
	return domain.Rocket{
		ID:             r.ID,
		Name:           strings.TrimSpace(r.Name),
		Type:           r.Type,
		Active:         r.Active,
		Stages:         r.Stages,
		Boosters:       r.Boosters,
		CostPerLaunch:  r.CostPerLaunch,
		SuccessRatePct: r.SuccessRatePct,
		FirstFlight:    r.FirstFlight,
		Country:        r.Country,
		Company:        r.Company,
		Description:    strings.TrimSpace(r.Description),
		Wikipedia:      r.Wikipedia,
		Images:         slices.Clone(r.FlickrImages),
	}
}

// ToDomain maps the wire record into a domain capsule.
func (r CapsuleRecord) ToDomain() domain.Capsule {
	c := domain.Capsule{
		ID:            r.ID,
		Serial:        r.Serial,
		Status:        r.Status,
		Type:          r.Type,
		ReuseCount:    r.ReuseCount,
		WaterLandings: r.WaterLandings,
		LandLandings:  r.LandLandings,
		LaunchIDs:     slices.Clone(r.Launches),
	}
	if r.LastUpdate != nil {
		c.LastUpdate = strings.TrimSpace(*r.LastUpdate)
	}
	return c
}

// LaunchesToDomain maps a slice of wire launches.
func LaunchesToDomain(records []LaunchRecord) []domain.Launch {
	out := make([]domain.Launch, len(records))
	for i, r := range records {
		out[i] = r.ToDomain()
	}
	return out
}

// RocketsToDomain maps a slice of wire rockets.
func RocketsToDomain(records []RocketRecord) []domain.Rocket {
	out := make([]domain.Rocket, len(records))
	for i, r := range records {
		out[i] = r.ToDomain()
	}
	return out
}

// CapsulesToDomain maps a slice of wire capsules.
func CapsulesToDomain(records []CapsuleRecord) []domain.Capsule {
	out := make([]domain.Capsule, len(records))
	for i, r := range records {
		out[i] = r.ToDomain()
	}
	return out
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	if t, err := time.ParseInLocation(legacyTimestampLayout, value, time.UTC); err == nil {
		return t
	}
	return time.Time{}
}
