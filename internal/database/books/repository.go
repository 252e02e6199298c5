// Package books provides database operations for book records, including
// the book/genre many-to-many association.
//
// This package implements the BookStore interface defined in
// internal/http/books.go.
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks returns all books sorted by title, authors populated.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("title asc").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book with its author and genres populated.
// A missing id yields (nil, nil). A dangling author reference leaves the
// Author field zero-valued rather than failing the read.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genres").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooksByAuthor returns the books referencing an author, sorted by title.
func (r *Repository) ListBooksByAuthor(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("author_id = ?", authorID).Order("title asc").Find(&books).Error
	return books, err
}

// ListBooksByGenre returns the books associated with a genre, sorted by title.
func (r *Repository) ListBooksByGenre(genreID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("title asc").
		Find(&books).Error
	return books, err
}

// CreateBook persists a new book and associates the given genres.
func (r *Repository) CreateBook(book *entities.Book, genreIDs []uint) error {
	if err := r.db.Omit("Genres").Create(book).Error; err != nil {
		return err
	}
	return r.replaceGenres(book, genreIDs)
}

// UpdateBook replaces the stored record for the given id, including its
// genre associations. An empty genre set clears the associations.
func (r *Repository) UpdateBook(id uint, book *entities.Book, genreIDs []uint) error {
	book.ID = id
	err := r.db.Model(&entities.Book{ID: id}).Updates(map[string]any{
		"title":     book.Title,
		"summary":   book.Summary,
		"isbn":      book.ISBN,
		"author_id": book.AuthorID,
	}).Error
	if err != nil {
		return err
	}
	return r.replaceGenres(book, genreIDs)
}

// DeleteBook removes a book and its genre associations.
// Deleting a missing id is a no-op.
func (r *Repository) DeleteBook(id uint) error {
	if err := r.db.Exec("DELETE FROM book_genres WHERE book_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&entities.Book{}, id).Error
}

// CountBooks returns the total number of books.
func (r *Repository) CountBooks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

func (r *Repository) replaceGenres(book *entities.Book, genreIDs []uint) error {
	genres := make([]entities.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, entities.Genre{ID: id})
	}
	if len(genres) == 0 {
		return r.db.Model(book).Association("Genres").Clear()
	}
	return r.db.Model(book).Association("Genres").Replace(&genres)
}
