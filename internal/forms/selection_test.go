package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/entities"
)

func TestMarkSelectedGenres(t *testing.T) {
	options := []entities.Genre{
		{ID: 1, Name: "Fantasy"},
		{ID: 2, Name: "Horror"},
		{ID: 3, Name: "Poetry"},
		{ID: 4, Name: "Romance"},
	}

	t.Run("marks exactly the selected options", func(t *testing.T) {
		marked := MarkSelectedGenres(options, []uint{2})

		require.Len(t, marked, 4)
		assert.False(t, marked[0].Checked)
		assert.True(t, marked[1].Checked)
		assert.False(t, marked[2].Checked)
		assert.False(t, marked[3].Checked)
	})

	t.Run("last option is examined", func(t *testing.T) {
		marked := MarkSelectedGenres(options, []uint{4})

		require.Len(t, marked, 4)
		assert.True(t, marked[3].Checked)
	})

	t.Run("empty selection marks nothing", func(t *testing.T) {
		marked := MarkSelectedGenres(options, nil)

		require.Len(t, marked, 4)
		for _, option := range marked {
			assert.False(t, option.Checked)
		}
	})

	t.Run("selection ids absent from options are ignored", func(t *testing.T) {
		marked := MarkSelectedGenres(options, []uint{1, 99})

		require.Len(t, marked, 4)
		assert.True(t, marked[0].Checked)
		assert.False(t, marked[1].Checked)
	})

	t.Run("preserves option order and data", func(t *testing.T) {
		marked := MarkSelectedGenres(options, []uint{1, 3})

		assert.Equal(t, "Fantasy", marked[0].Name)
		assert.Equal(t, "Poetry", marked[2].Name)
		assert.True(t, marked[0].Checked)
		assert.True(t, marked[2].Checked)
	})

	t.Run("no options yields empty non-nil slice", func(t *testing.T) {
		marked := MarkSelectedGenres(nil, []uint{1})

		assert.NotNil(t, marked)
		assert.Empty(t, marked)
	})
}
