package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Store is the generic gorm-backed persistence collaborator shared by every
// entity. Per-entity repositories compose it and add their own named lookups
// (eager loads, email lookups, pagination) instead of overriding behavior.
//
// Ids are supplied by the caller; Add never assigns one. Delete is a soft
// delete: it flips the active flag and persists, so the row stays
// addressable by id afterwards. GetAll filters to active rows only, while
// GetByID deliberately does not, keeping "deleted" entities readable for
// audit.
type Store[T any] struct {
	db *gorm.DB
}

// NewStore builds a Store over the given database handle.
func NewStore[T any](db *gorm.DB) Store[T] {
	return Store[T]{db: db}
}

// GetByID fetches an entity by its id, regardless of the active flag.
func (s Store[T]) GetByID(id string) (*T, error) {
	var entity T
	if err := s.db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Add persists a new entity. The caller supplies the id.
func (s Store[T]) Add(entity *T) error {
	return s.db.Create(entity).Error
}

// Update persists changes to an existing entity.
func (s Store[T]) Update(entity *T) error {
	return s.db.Save(entity).Error
}

// Delete soft-deletes the entity: the active flag is flipped and the row
// is kept.
func (s Store[T]) Delete(entity *T) error {
	return s.db.Model(entity).Update("active", false).Error
}

// GetAll returns all active entities.
func (s Store[T]) GetAll() ([]T, error) {
	var entities []T
	if err := s.db.Where("active = ?", true).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
