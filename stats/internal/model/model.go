package model

import "time"

// StatsInfo is the per-car booking aggregate served to the back office.
type StatsInfo struct {
	CarUid    string    `json:"carUid" db:"car_uid"`
	Created   int       `json:"created" db:"created"`
	Cancelled int       `json:"cancelled" db:"cancelled"`
	Revenue   float64   `json:"revenue" db:"revenue"`
	LastEvent time.Time `json:"lastEvent" db:"last_event"`
}
