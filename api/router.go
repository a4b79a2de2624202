// Package api contains the request dispatch engine and all resource handlers
package api

import (
	"time"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/middleware"
	"pinghq/uptime-api/security"
	"pinghq/uptime-api/util"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	Store     db.Store
	Hasher    *security.Hasher
	Routes    *Table
	Router    *gin.Engine
	MaxChecks int
	StaticDir string

	userLocks *util.KeyedMutex
}

// NewRouter builds the production API from the loaded configuration.
func NewRouter() (*API, error) {
	store, err := db.New()
	if err != nil {
		return nil, err
	}

	makeLogger()

	a := newAPI(
		store,
		security.NewHasher(viper.GetString("security.hashing_secret")),
		viper.GetInt("checks.max_per_user"),
		viper.GetString("static.dir"),
	)

	return a, nil
}

// newAPI wires the route table and the gin engine around the given
// collaborators. Tests construct the API through here with their own store.
func newAPI(store db.Store, hasher *security.Hasher, maxChecks int, staticDir string) *API {
	a := &API{
		Store:     store,
		Hasher:    hasher,
		MaxChecks: maxChecks,
		StaticDir: staticDir,
		userLocks: util.NewKeyedMutex(),
	}
	a.Routes = a.routes()

	router := gin.New()
	a.Router = router

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Token"},
		MaxAge:       12 * time.Hour,
	}
	if origins := viper.GetStringSlice("host.cors_origins"); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}

	router.Use(
		cors.New(corsCfg),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	// The route table owns path resolution, so every request funnels
	// through the dispatcher.
	router.NoRoute(a.Dispatch)

	return a
}

// routes builds the injected route mapping. The static prefix overrides
// exact matches by contract.
func (a *API) routes() *Table {
	t := NewTable("public/", a.StaticAsset, a.NotFound)

	t.Handle("ping", a.Ping)
	t.Handle("favicon.ico", a.Favicon)

	t.Handle("users", resource(map[string]Handler{
		"post":   a.UserCreate,
		"get":    a.UserFetch,
		"put":    a.UserUpdate,
		"delete": a.UserDelete,
	}))

	t.Handle("tokens", resource(map[string]Handler{
		"post":   a.TokenCreate,
		"get":    a.TokenFetch,
		"put":    a.TokenExtend,
		"delete": a.TokenDelete,
	}))

	t.Handle("checks", resource(map[string]Handler{
		"post":   a.CheckCreate,
		"get":    a.CheckFetch,
		"put":    a.CheckUpdate,
		"delete": a.CheckDelete,
	}))

	return t
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
