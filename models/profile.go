package models

import "time"

type Platform string

const (
	PlatformLinkedIn Platform = "linkedin"
	PlatformTwitter  Platform = "twitter"
)

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	return p == PlatformLinkedIn || p == PlatformTwitter
}

type ProfileStatus string

const (
	ProfileActive   ProfileStatus = "active"
	ProfilePaused   ProfileStatus = "paused"
	ProfileInactive ProfileStatus = "inactive"
)

func (s ProfileStatus) Valid() bool {
	return s == ProfileActive || s == ProfilePaused || s == ProfileInactive
}

// MonitoredProfile is a target account whose activity is sampled during a run.
type MonitoredProfile struct {
	ID          string        `db:"id" json:"id"`
	OwnerID     string        `db:"user_id" json:"owner_id"`
	DisplayName string        `db:"name" json:"display_name"`
	Handle      string        `db:"handle" json:"handle"`
	Platform    Platform      `db:"platform" json:"platform"`
	Status      ProfileStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}
