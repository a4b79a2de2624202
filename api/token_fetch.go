package api

import (
	"errors"
	"net/http"
	"strings"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// TokenFetch returns the token record for the id query parameter.
func (a *API) TokenFetch(r *Request) (*Response, error) {
	id := strings.TrimSpace(r.Query["id"])
	if validators.IDValidator(id) != nil {
		return nil, errValidation("Missing required field")
	}

	var tok model.Token

	err := a.Store.Read(db.CategoryTokens, id, &tok)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, errNotFound("")
		}

		zap.L().Error("Failed to read token", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	return &Response{Status: http.StatusOK, Payload: tok}, nil
}
