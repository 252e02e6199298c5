package forms

import (
	"github.com/mrlokans/librarian/internal/entities"
)

// GenreOption is a genre annotated with whether the candidate book has it
// selected, for re-displaying the multi-select control.
type GenreOption struct {
	entities.Genre
	Checked bool
}

// MarkSelectedGenres annotates every option in the full list with its
// membership in the selected-id set. Every option is examined, the last one
// included; membership is a set lookup rather than a scan per option.
func MarkSelectedGenres(options []entities.Genre, selected []uint) []GenreOption {
	set := make(map[uint]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}

	out := make([]GenreOption, 0, len(options))
	for _, genre := range options {
		_, checked := set[genre.ID]
		out = append(out, GenreOption{Genre: genre, Checked: checked})
	}
	return out
}
