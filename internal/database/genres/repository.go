// Package genres provides database operations for genre records.
//
// This package implements the GenreStore interface defined in
// internal/http/genres.go.
package genres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListGenres returns all genres sorted by name.
func (r *Repository) ListGenres() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name asc").Find(&genres).Error
	return genres, err
}

// GetGenreByID retrieves a genre, yielding (nil, nil) for a missing id.
func (r *Repository) GetGenreByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.First(&genre, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// FindGenreByName looks up a genre by name, case-insensitively.
// Used to deduplicate genre creation.
func (r *Repository) FindGenreByName(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// CreateGenre persists a new genre and assigns its id.
func (r *Repository) CreateGenre(genre *entities.Genre) error {
	return r.db.Create(genre).Error
}

// DeleteGenre removes a genre and its book associations.
// Deleting a missing id is a no-op.
func (r *Repository) DeleteGenre(id uint) error {
	if err := r.db.Exec("DELETE FROM book_genres WHERE genre_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&entities.Genre{}, id).Error
}

// CountGenres returns the total number of genres.
func (r *Repository) CountGenres() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Genre{}).Count(&count).Error
	return count, err
}
