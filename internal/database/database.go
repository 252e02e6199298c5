// Package database wires the catalog's SQLite store and its per-domain
// repositories. Every repository receives the shared *gorm.DB handle at
// construction; nothing reaches into package-level state.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/librarian/internal/database/authors"
	"github.com/mrlokans/librarian/internal/database/books"
	"github.com/mrlokans/librarian/internal/database/genres"
	"github.com/mrlokans/librarian/internal/database/instances"
	"github.com/mrlokans/librarian/internal/entities"
)

type Database struct {
	DB *gorm.DB

	Authors   *authors.Repository
	Genres    *genres.Repository
	Books     *books.Repository
	Instances *instances.Repository
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&entities.BookInstance{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{
		DB:        db,
		Authors:   authors.NewRepository(db),
		Genres:    genres.NewRepository(db),
		Books:     books.NewRepository(db),
		Instances: instances.NewRepository(db),
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
