package api

import (
	"time"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
)

// verifyToken reports whether tokenID is currently valid for phone.
// A missing token, a phone mismatch and an expired token all come back
// as a plain false; callers can't tell which case applied.
func (a *API) verifyToken(tokenID, phone string) bool {
	var tok model.Token

	if err := a.Store.Read(db.CategoryTokens, tokenID, &tok); err != nil {
		return false
	}

	return tok.Valid(phone, time.Now())
}
