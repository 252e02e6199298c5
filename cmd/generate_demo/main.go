// Command generate_demo creates a demo catalog database with sample authors,
// genres, books, and copies.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo catalog at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	genres := createGenres(db)
	authors := createAuthors(db)
	createBooks(db, authors, genres)

	log.Printf("Demo catalog generated at %s", *dbPath)
}

func createGenres(db *database.Database) map[string]entities.Genre {
	names := []string{"Fantasy", "Science Fiction", "Horror", "Poetry"}

	genres := make(map[string]entities.Genre, len(names))
	for _, name := range names {
		genre := entities.Genre{Name: name}
		if err := db.Genres.CreateGenre(&genre); err != nil {
			log.Fatalf("Failed to create genre %s: %v", name, err)
		}
		genres[name] = genre
	}
	return genres
}

func createAuthors(db *database.Database) map[string]entities.Author {
	specs := []struct {
		first, family string
		born, died    string
	}{
		{"Patrick", "Rothfuss", "1973-06-06", ""},
		{"Ben", "Bova", "1932-11-08", "2020-11-29"},
		{"Isaac", "Asimov", "1920-01-02", "1992-04-06"},
		{"Bob", "Billings", "", ""},
	}

	authors := make(map[string]entities.Author, len(specs))
	for _, spec := range specs {
		author := entities.Author{
			FirstName:   spec.first,
			FamilyName:  spec.family,
			DateOfBirth: parseDate(spec.born),
			DateOfDeath: parseDate(spec.died),
		}
		if err := db.Authors.CreateAuthor(&author); err != nil {
			log.Fatalf("Failed to create author %s: %v", author.Name(), err)
		}
		authors[spec.family] = author
	}
	return authors
}

func createBooks(db *database.Database, authors map[string]entities.Author, genres map[string]entities.Genre) {
	specs := []struct {
		title, summary, isbn string
		author               string
		genres               []string
		copies               []entities.InstanceStatus
	}{
		{
			"The Name of the Wind", "The tale of the magically gifted young man Kvothe.",
			"9781473211896", "Rothfuss", []string{"Fantasy"},
			[]entities.InstanceStatus{entities.StatusAvailable, entities.StatusLoaned},
		},
		{
			"The Wise Man's Fear", "Kvothe takes his first steps on the path of the hero.",
			"9780756411336", "Rothfuss", []string{"Fantasy"},
			[]entities.InstanceStatus{entities.StatusLoaned},
		},
		{
			"Apes and Angels", "Humankind headed out to the stars not for conquest, but for survival.",
			"9780765379528", "Bova", []string{"Science Fiction"},
			[]entities.InstanceStatus{entities.StatusAvailable, entities.StatusMaintenance},
		},
		{
			"I, Robot", "The three laws of robotics and their unintended consequences.",
			"9780553382563", "Asimov", []string{"Science Fiction"},
			[]entities.InstanceStatus{entities.StatusReserved},
		},
		{
			"Test Book 1", "A summary of test book 1.",
			"9781234567897", "Billings", []string{"Fantasy", "Science Fiction"},
			nil,
		},
	}

	for _, spec := range specs {
		genreIDs := make([]uint, 0, len(spec.genres))
		for _, name := range spec.genres {
			genreIDs = append(genreIDs, genres[name].ID)
		}

		book := entities.Book{
			Title:    spec.title,
			Summary:  spec.summary,
			ISBN:     spec.isbn,
			AuthorID: authors[spec.author].ID,
		}
		if err := db.Books.CreateBook(&book, genreIDs); err != nil {
			log.Fatalf("Failed to create book %s: %v", spec.title, err)
		}
		log.Printf("Saved: %s (%d copies)", spec.title, len(spec.copies))

		for _, status := range spec.copies {
			instance := entities.BookInstance{
				BookID:  book.ID,
				Imprint: "London Gollancz, 2014.",
				Status:  status,
			}
			if status == entities.StatusLoaned {
				due := time.Now().AddDate(0, 0, 21)
				instance.DueBack = &due
			}
			if err := db.Instances.CreateInstance(&instance); err != nil {
				log.Fatalf("Failed to create copy of %s: %v", spec.title, err)
			}
		}
	}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("Bad demo date %q: %v", value, err)
	}
	return &t
}
