package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// SetCreatedAt stamps the record in UTC, truncated to the millisecond
// precision BSON dates keep.
func (m *TimeModel) SetCreatedAt(now time.Time) {
	m.CreatedAt = now.UTC().Truncate(time.Millisecond)
}
