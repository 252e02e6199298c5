package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/entities"
)

func setupDatabase(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_database_" + t.Name() + ".db"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_MigratesAndWiresRepositories(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	require.NotNil(t, db.Authors)
	require.NotNil(t, db.Genres)
	require.NotNil(t, db.Books)
	require.NotNil(t, db.Instances)

	// A full create path across all four tables exercises the migration.
	author := entities.Author{FirstName: "Isaac", FamilyName: "Asimov"}
	require.NoError(t, db.Authors.CreateAuthor(&author))

	genre := entities.Genre{Name: "Science Fiction"}
	require.NoError(t, db.Genres.CreateGenre(&genre))

	book := entities.Book{Title: "I, Robot", Summary: "Robots.", ISBN: "9780553382563", AuthorID: author.ID}
	require.NoError(t, db.Books.CreateBook(&book, []uint{genre.ID}))

	instance := entities.BookInstance{BookID: book.ID, Imprint: "Bantam", Status: entities.StatusAvailable}
	require.NoError(t, db.Instances.CreateInstance(&instance))

	stored, err := db.Books.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asimov", stored.Author.FamilyName)
	require.Len(t, stored.Genres, 1)
	assert.Equal(t, "Science Fiction", stored.Genres[0].Name)
}

func TestDatabase_Close(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	assert.NoError(t, db.Close())
}
