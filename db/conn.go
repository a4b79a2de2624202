// Package db implements the keyed record store on top of gorm
package db

import (
	"fmt"

	"pinghq/uptime-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database selected by storage.driver and returns a
// record store bound to it.
func New() (*RecordStore, error) {
	dsn := viper.GetString("storage.dsn")

	var dial gorm.Dialector
	switch viper.GetString("storage.driver") {
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		dial = sqlite.Open(dsn)
	}

	g, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = g.AutoMigrate(model.Record{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return NewStore(g), nil
}
