// Package service contains background maintenance jobs
package service

import (
	"time"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"

	"go.uber.org/zap"
)

// TokenCleanup defines a function used to periodically cleanup expired
// tokens that aren't needed anymore. Expired tokens already fail
// verification, so sweeping them changes no API behavior.
func TokenCleanup(t time.Duration, store db.Store) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			ids, err := store.List(db.CategoryTokens)
			if err != nil {
				zap.L().Error("Failed to list tokens to clean", zap.Error(err))
				continue
			}

			for _, id := range ids {
				var tok model.Token

				if err := store.Read(db.CategoryTokens, id, &tok); err != nil {
					continue
				}

				if tok.Expires.After(time.Now()) {
					continue
				}

				if err := store.Delete(db.CategoryTokens, id); err != nil {
					zap.L().Error("Failed to cleanup expired token", zap.Error(err), zap.String("id", id))
				}
			}
		}
	}()
}
