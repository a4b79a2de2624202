package model

import "time"

// Record is a single row of the keyed record store. Every domain entity
// is serialized as JSON into Data under a (category, key) pair.
type Record struct {
	Category  string `gorm:"primaryKey;size:32"`
	Key       string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}
