// Package instances provides database operations for physical book copies.
//
// This package implements the InstanceStore interface defined in
// internal/http/instances.go.
package instances

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/entities"
)

// Repository handles all book instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new instances repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListInstances returns all copies with their books populated.
// A non-empty status narrows the listing to copies in that status.
func (r *Repository) ListInstances(status entities.InstanceStatus) ([]entities.BookInstance, error) {
	q := r.db.Preload("Book")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var instances []entities.BookInstance
	err := q.Find(&instances).Error
	return instances, err
}

// GetInstanceByID retrieves a copy with its book populated, yielding
// (nil, nil) for a missing id.
func (r *Repository) GetInstanceByID(id uint) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	err := r.db.Preload("Book").First(&instance, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// ListInstancesByBook returns the copies of a book.
func (r *Repository) ListInstancesByBook(bookID uint) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.Where("book_id = ?", bookID).Find(&instances).Error
	return instances, err
}

// CreateInstance persists a new copy and assigns its id.
func (r *Repository) CreateInstance(instance *entities.BookInstance) error {
	return r.db.Create(instance).Error
}

// UpdateInstance replaces the stored record for the instance's id.
func (r *Repository) UpdateInstance(instance *entities.BookInstance) error {
	return r.db.Model(&entities.BookInstance{ID: instance.ID}).Updates(map[string]any{
		"book_id":  instance.BookID,
		"imprint":  instance.Imprint,
		"status":   instance.Status,
		"due_back": instance.DueBack,
	}).Error
}

// DeleteInstance removes a copy. Deleting a missing id is a no-op.
func (r *Repository) DeleteInstance(id uint) error {
	return r.db.Delete(&entities.BookInstance{}, id).Error
}

// CountInstances returns the number of copies, optionally narrowed to a
// single status.
func (r *Repository) CountInstances(status entities.InstanceStatus) (int64, error) {
	q := r.db.Model(&entities.BookInstance{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}
