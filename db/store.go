package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"pinghq/uptime-api/model"

	"gorm.io/gorm"
)

// Record categories used throughout the API.
const (
	CategoryUsers  = "users"
	CategoryTokens = "tokens"
	CategoryChecks = "checks"
)

var (
	ErrExists   = errors.New("record already exists")
	ErrNotFound = errors.New("record not found")
)

// Store is the keyed record store the handlers talk to. Every operation
// is atomic per record; there is no cross-record transaction.
type Store interface {
	Create(category, key string, v any) error
	Read(category, key string, out any) error
	Update(category, key string, v any) error
	Delete(category, key string) error
	List(category string) ([]string, error)
}

// RecordStore implements Store on a single records table.
type RecordStore struct {
	db *gorm.DB
}

func NewStore(g *gorm.DB) *RecordStore {
	return &RecordStore{db: g}
}

func (s *RecordStore) Create(category, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record, %w", err)
	}

	err = s.db.Create(&model.Record{
		Category: category,
		Key:      key,
		Data:     b,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrExists
		}

		return err
	}

	return nil
}

func (s *RecordStore) Read(category, key string, out any) error {
	var rec model.Record

	err := s.db.
		Where("category = ? AND key = ?", category, key).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	return json.Unmarshal(rec.Data, out)
}

func (s *RecordStore) Update(category, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record, %w", err)
	}

	r := s.db.
		Model(model.Record{}).
		Where("category = ? AND key = ?", category, key).
		Update("data", b)
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *RecordStore) Delete(category, key string) error {
	r := s.db.
		Where("category = ? AND key = ?", category, key).
		Delete(model.Record{})
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *RecordStore) List(category string) ([]string, error) {
	var keys []string

	err := s.db.
		Model(model.Record{}).
		Where("category = ?", category).
		Pluck("key", &keys).
		Error
	if err != nil {
		return nil, err
	}

	return keys, nil
}
