package model

import "time"

// Token is a bearer credential binding a random 20-character id to a
// phone number until it expires.
type Token struct {
	ID      string    `json:"id"`
	Phone   string    `json:"phone"`
	Expires time.Time `json:"expires"`
}

// Valid reports whether the token belongs to phone and hasn't expired yet.
// All failure cases look the same to the caller on purpose.
func (t *Token) Valid(phone string, now time.Time) bool {
	return t.Phone == phone && t.Expires.After(now)
}
