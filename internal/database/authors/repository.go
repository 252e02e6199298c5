// Package authors provides database operations for author records.
//
// This package implements the AuthorStore interface defined in
// internal/http/authors.go.
package authors

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAuthors returns all authors sorted by family name.
func (r *Repository) ListAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("family_name asc").Find(&authors).Error
	return authors, err
}

// GetAuthorByID retrieves an author. A missing id yields (nil, nil):
// absence is a normal outcome, not an error.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// FindAuthorMatching looks up an author with the exact same name and
// life dates. Used to deduplicate author creation.
func (r *Repository) FindAuthorMatching(firstName, familyName string, dateOfBirth, dateOfDeath *time.Time) (*entities.Author, error) {
	q := r.db.Where("first_name = ? AND family_name = ?", firstName, familyName)
	q = whereDate(q, "date_of_birth", dateOfBirth)
	q = whereDate(q, "date_of_death", dateOfDeath)

	var author entities.Author
	err := q.First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// CreateAuthor persists a new author and assigns its id.
func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Create(author).Error
}

// UpdateAuthor replaces the stored record for the author's id.
func (r *Repository) UpdateAuthor(author *entities.Author) error {
	return r.db.Model(&entities.Author{ID: author.ID}).
		Select("FirstName", "FamilyName", "DateOfBirth", "DateOfDeath").
		Updates(map[string]any{
			"first_name":    author.FirstName,
			"family_name":   author.FamilyName,
			"date_of_birth": author.DateOfBirth,
			"date_of_death": author.DateOfDeath,
		}).Error
}

// DeleteAuthor removes an author. Deleting a missing id is a no-op.
func (r *Repository) DeleteAuthor(id uint) error {
	return r.db.Delete(&entities.Author{}, id).Error
}

// CountAuthors returns the total number of authors.
func (r *Repository) CountAuthors() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}

// whereDate matches a nullable date column, treating nil as SQL NULL.
func whereDate(q *gorm.DB, column string, value *time.Time) *gorm.DB {
	if value == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", value)
}
