package api

import (
	"errors"
	"net/http"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// CheckUpdate merges any subset of the mutable check fields. Each field
// that is present must validate; ownership follows the stored record.
func (a *API) CheckUpdate(r *Request) (*Response, error) {
	id := r.String("id")
	if validators.IDValidator(id) != nil {
		return nil, errValidation("Missing required field")
	}

	if !r.Has("protocol") && !r.Has("url") && !r.Has("method") &&
		!r.Has("successCodes") && !r.Has("timeoutSeconds") {
		return nil, errValidation("Missing fields to update")
	}

	var check model.Check

	err := a.Store.Read(db.CategoryChecks, id, &check)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Kept at 400 for compatibility with the original API
			return nil, errValidation("Check ID did not exist")
		}

		zap.L().Error("Failed to read check", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if !a.verifyToken(r.Token(), check.UserPhone) {
		return nil, errAuth()
	}

	if r.Has("protocol") {
		p := r.String("protocol")
		if err := validators.ProtocolValidator(p); err != nil {
			return nil, errValidation(err.Error())
		}
		check.Protocol = p
	}

	if r.Has("url") {
		u := r.String("url")
		if err := validators.CheckURLValidator(u); err != nil {
			return nil, errValidation(err.Error())
		}
		check.URL = u
	}

	if r.Has("method") {
		m := r.String("method")
		if err := validators.CheckMethodValidator(m); err != nil {
			return nil, errValidation(err.Error())
		}
		check.Method = m
	}

	if r.Has("successCodes") {
		codes, ok := r.Ints("successCodes")
		if !ok {
			return nil, errValidation(validators.ErrSuccessCodesEmpty.Error())
		}
		if err := validators.SuccessCodesValidator(codes); err != nil {
			return nil, errValidation(err.Error())
		}
		check.SuccessCodes = codes
	}

	if r.Has("timeoutSeconds") {
		t, ok := r.Int("timeoutSeconds")
		if !ok {
			return nil, errValidation(validators.ErrTimeoutRange.Error())
		}
		if err := validators.TimeoutValidator(t); err != nil {
			return nil, errValidation(err.Error())
		}
		check.TimeoutSeconds = t
	}

	if err := a.Store.Update(db.CategoryChecks, id, &check); err != nil {
		zap.L().Error("Failed to update check", zap.Error(err))
		return nil, errInternal("Could not update the check")
	}

	return &Response{Status: http.StatusOK}, nil
}
