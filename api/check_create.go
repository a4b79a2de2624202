package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/util"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// CheckCreate creates a new check owned by whoever the bearer token
// resolves to. The token, never a caller-supplied phone, determines
// ownership. Creation is two-step (check record, then the owner's
// checks list); a failed second step deletes the just-created check so
// no orphan survives.
func (a *API) CheckCreate(r *Request) (*Response, error) {
	protocol := r.String("protocol")
	url := r.String("url")
	method := r.String("method")
	codes, codesOK := r.Ints("successCodes")
	timeout, timeoutOK := r.Int("timeoutSeconds")

	if err := validators.ProtocolValidator(protocol); err != nil {
		return nil, errValidation(err.Error())
	}
	if err := validators.CheckURLValidator(url); err != nil {
		return nil, errValidation(err.Error())
	}
	if err := validators.CheckMethodValidator(method); err != nil {
		return nil, errValidation(err.Error())
	}
	if !codesOK {
		return nil, errValidation(validators.ErrSuccessCodesEmpty.Error())
	}
	if err := validators.SuccessCodesValidator(codes); err != nil {
		return nil, errValidation(err.Error())
	}
	if !timeoutOK {
		return nil, errValidation(validators.ErrTimeoutRange.Error())
	}
	if err := validators.TimeoutValidator(timeout); err != nil {
		return nil, errValidation(err.Error())
	}

	var tok model.Token

	if err := a.Store.Read(db.CategoryTokens, r.Token(), &tok); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, errAuth()
		}

		zap.L().Error("Failed to read token", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if !tok.Expires.After(time.Now()) {
		return nil, errAuth()
	}

	phone := tok.Phone

	unlock := a.userLocks.Lock(phone)
	defer unlock()

	var user model.User

	if err := a.Store.Read(db.CategoryUsers, phone, &user); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, errAuth()
		}

		zap.L().Error("Failed to read the token's user", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if len(user.Checks) >= a.MaxChecks {
		return nil, errQuotaExceeded(fmt.Sprintf("The user already has the maximum number of checks (%d)", a.MaxChecks))
	}

	id, err := util.NewID()
	if err != nil {
		zap.L().Error("Failed to generate check ID", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	check := model.Check{
		ID:             id,
		UserPhone:      phone,
		Protocol:       protocol,
		URL:            url,
		Method:         method,
		SuccessCodes:   codes,
		TimeoutSeconds: timeout,
	}

	if err := a.Store.Create(db.CategoryChecks, id, &check); err != nil {
		zap.L().Error("Failed to create check", zap.Error(err))
		return nil, errInternal("Could not create the new check")
	}

	user.Checks = append(user.Checks, id)

	if err := a.Store.Update(db.CategoryUsers, phone, &user); err != nil {
		zap.L().Error("Failed to append check to user, rolling the check back",
			zap.Error(err),
			zap.String("checkID", id))

		// Compensate so the check doesn't survive without an owner entry
		if derr := a.Store.Delete(db.CategoryChecks, id); derr != nil {
			zap.L().Error("Failed to roll back orphaned check",
				zap.Error(derr),
				zap.String("checkID", id))
		}

		return nil, errInternal("Could not update the user with the new check")
	}

	return &Response{Status: http.StatusOK, Payload: check}, nil
}
