package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/movieshelf/pkg/naming"
)

func TestStore_AddMovie(t *testing.T) {
	store := setupTestStore(t)

	m := testMovie("Fight Club")
	m.Edition = naming.EditionHD
	require.NoError(t, store.AddMovie(TableMovies, m))
	assert.NotZero(t, m.ID)

	got, err := store.GetMovie(TableMovies, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", got.Title)
	assert.Equal(t, 1999, got.Year)
	assert.Equal(t, naming.EditionHD, got.Edition)
	assert.Equal(t, "ENG", got.Language)
	assert.Equal(t, "2:19:00", got.Duration)
	assert.InDelta(t, 1.37, got.SizeGB, 0.0001)
	assert.Equal(t, "2024-03-09", got.AddedAt.Format(DateLayout))
	assert.Equal(t, DefaultReferenceURL, got.ReferenceURL)
	assert.Equal(t, "1920x1080", got.VideoResolution)
	assert.Equal(t, 2, got.AudioChannels)
	assert.Nil(t, got.SeasonID)
}

func TestStore_AddMovie_Tables(t *testing.T) {
	store := setupTestStore(t)

	for _, table := range []Table{TableMovies, TableComedies, TableDocumentaries} {
		t.Run(string(table), func(t *testing.T) {
			m := testMovie("Same Title")
			require.NoError(t, store.AddMovie(table, m))

			got, err := store.ListMovies(table, MovieFilter{})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, m.ID, got[0].ID)
		})
	}
}

func TestStore_AddMovie_WrongTable(t *testing.T) {
	store := setupTestStore(t)

	err := store.AddMovie(TableEpisodeSeasons, testMovie("Nope"))
	assert.ErrorIs(t, err, ErrWrongTable)
}

func TestStore_GetMovie_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetMovie(TableMovies, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_SetMovieSeason(t *testing.T) {
	store := setupTestStore(t)

	season := NewSeason(testDay)
	season.Title = "Planet Earth"
	require.NoError(t, store.AddSeason(TableDocumentarySeasons, season))

	m := testMovie("Pole to Pole")
	require.NoError(t, store.AddMovie(TableDocumentaries, m))
	require.NoError(t, store.SetMovieSeason(TableDocumentaries, m.ID, season.ID))

	got, err := store.GetMovie(TableDocumentaries, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SeasonID)
	assert.Equal(t, season.ID, *got.SeasonID)

	linked, err := store.ListMovies(TableDocumentaries, MovieFilter{SeasonID: ptr(season.ID)})
	require.NoError(t, err)
	assert.Len(t, linked, 1)
}

func TestStore_SetMovieSeason_Errors(t *testing.T) {
	store := setupTestStore(t)

	m := testMovie("Heat")
	require.NoError(t, store.AddMovie(TableMovies, m))

	err := store.SetMovieSeason(TableMovies, m.ID, 1)
	assert.ErrorIs(t, err, ErrNoSeasonColumn)

	err = store.SetMovieSeason(TableDocumentaries, 12345, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	doc := testMovie("Blue Planet")
	require.NoError(t, store.AddMovie(TableDocumentaries, doc))
	err = store.SetMovieSeason(TableDocumentaries, doc.ID, 777)
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestStore_ListMovies_Filter(t *testing.T) {
	store := setupTestStore(t)

	for _, title := range []string{"Alien", "Aliens", "Alien 3"} {
		require.NoError(t, store.AddMovie(TableMovies, testMovie(title)))
	}

	got, err := store.ListMovies(TableMovies, MovieFilter{Title: ptr("Aliens")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Aliens", got[0].Title)

	page, err := store.ListMovies(TableMovies, MovieFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Aliens", page[0].Title)
	assert.Equal(t, "Alien 3", page[1].Title)

	_, err = store.ListMovies(TableComedies, MovieFilter{SeasonID: ptr(int64(1))})
	assert.ErrorIs(t, err, ErrNoSeasonColumn)
}
