package authors

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/librarian/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_authors_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&entities.BookInstance{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRepository_CreateAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	author := &entities.Author{FirstName: "Isaac", FamilyName: "Asimov"}
	err := repo.CreateAuthor(author)

	require.NoError(t, err)
	assert.NotZero(t, author.ID)
}

func TestRepository_ListAuthors_SortedByFamilyName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.CreateAuthor(&entities.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}))
	require.NoError(t, repo.CreateAuthor(&entities.Author{FirstName: "Isaac", FamilyName: "Asimov"}))
	require.NoError(t, repo.CreateAuthor(&entities.Author{FirstName: "Ben", FamilyName: "Bova"}))

	authors, err := repo.ListAuthors()

	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, "Asimov", authors[0].FamilyName)
	assert.Equal(t, "Bova", authors[1].FamilyName)
	assert.Equal(t, "Rothfuss", authors[2].FamilyName)
}

func TestRepository_GetAuthorByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := &entities.Author{FirstName: "Mary", FamilyName: "Shelley"}
	require.NoError(t, repo.CreateAuthor(created))

	t.Run("existing author", func(t *testing.T) {
		author, err := repo.GetAuthorByID(created.ID)
		require.NoError(t, err)
		require.NotNil(t, author)
		assert.Equal(t, "Shelley", author.FamilyName)
	})

	t.Run("missing author is absent, not an error", func(t *testing.T) {
		author, err := repo.GetAuthorByID(99999)
		require.NoError(t, err)
		assert.Nil(t, author)
	})
}

func TestRepository_FindAuthorMatching(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := &entities.Author{
		FirstName:   "Ursula",
		FamilyName:  "LeGuin",
		DateOfBirth: date(1929, time.October, 21),
	}
	require.NoError(t, repo.CreateAuthor(created))

	t.Run("same name and dates", func(t *testing.T) {
		found, err := repo.FindAuthorMatching("Ursula", "LeGuin", date(1929, time.October, 21), nil)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("same name, different birth date", func(t *testing.T) {
		found, err := repo.FindAuthorMatching("Ursula", "LeGuin", date(1930, time.January, 1), nil)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("same name, missing birth date", func(t *testing.T) {
		found, err := repo.FindAuthorMatching("Ursula", "LeGuin", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("all dates absent matches NULL columns", func(t *testing.T) {
		bare := &entities.Author{FirstName: "Bob", FamilyName: "Billings"}
		require.NoError(t, repo.CreateAuthor(bare))

		found, err := repo.FindAuthorMatching("Bob", "Billings", nil, nil)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, bare.ID, found.ID)
	})
}

func TestRepository_UpdateAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	author := &entities.Author{FirstName: "Iain", FamilyName: "Banks"}
	require.NoError(t, repo.CreateAuthor(author))

	err := repo.UpdateAuthor(&entities.Author{
		ID:          author.ID,
		FirstName:   "Iain",
		FamilyName:  "Banks",
		DateOfBirth: date(1954, time.February, 16),
		DateOfDeath: date(2013, time.June, 9),
	})
	require.NoError(t, err)

	updated, err := repo.GetAuthorByID(author.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.DateOfDeath)
	assert.Equal(t, 2013, updated.DateOfDeath.Year())
}

func TestRepository_UpdateAuthor_CanClearDates(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	author := &entities.Author{
		FirstName:   "Ann",
		FamilyName:  "Leckie",
		DateOfBirth: date(1966, time.March, 2),
	}
	require.NoError(t, repo.CreateAuthor(author))

	err := repo.UpdateAuthor(&entities.Author{ID: author.ID, FirstName: "Ann", FamilyName: "Leckie"})
	require.NoError(t, err)

	updated, err := repo.GetAuthorByID(author.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.DateOfBirth)
}

func TestRepository_DeleteAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	author := &entities.Author{FirstName: "Jorge", FamilyName: "Borges"}
	require.NoError(t, repo.CreateAuthor(author))

	require.NoError(t, repo.DeleteAuthor(author.ID))

	found, err := repo.GetAuthorByID(author.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting again is a no-op.
	assert.NoError(t, repo.DeleteAuthor(author.ID))
}

func TestRepository_CountAuthors(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	count, err := repo.CountAuthors()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.CreateAuthor(&entities.Author{FirstName: "A", FamilyName: "B"}))
	require.NoError(t, repo.CreateAuthor(&entities.Author{FirstName: "C", FamilyName: "D"}))

	count, err = repo.CountAuthors()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
