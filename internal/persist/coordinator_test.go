package persist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/migrations"
	"github.com/vmunix/movieshelf/pkg/naming"
)

var testDay = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStore(t *testing.T) *library.Store {
	t.Helper()
	db, d, err := library.Open(context.Background(), library.ConnConfig{Driver: "sqlite"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.Schema)
	require.NoError(t, err)
	return library.NewStore(db, d)
}

// recordingWriter is a library.Writer that hands out sequential ids and
// records the order of calls.
type recordingWriter struct {
	nextID int64
	calls  []string
	failOn string
}

func (w *recordingWriter) id() int64 {
	w.nextID++
	return w.nextID
}

func (w *recordingWriter) AddMovie(table library.Table, m *library.Movie) error {
	w.calls = append(w.calls, fmt.Sprintf("movie %s %s", table, m.Title))
	if w.failOn == m.Title {
		return library.ErrConstraint
	}
	m.ID = w.id()
	return nil
}

func (w *recordingWriter) SetMovieSeason(table library.Table, movieID, seasonID int64) error {
	w.calls = append(w.calls, fmt.Sprintf("link %s %d->%d", table, movieID, seasonID))
	return nil
}

func (w *recordingWriter) AddSeason(table library.Table, s *library.Season) error {
	w.calls = append(w.calls, fmt.Sprintf("season %s %s", table, s.Title))
	s.ID = w.id()
	return nil
}

func (w *recordingWriter) AddEpisode(e *library.Episode) error {
	w.calls = append(w.calls, fmt.Sprintf("episode %d %s", e.SeasonID, e.Title))
	e.ID = w.id()
	return nil
}

func movies(titles ...string) []*library.Movie {
	out := make([]*library.Movie, len(titles))
	for i, title := range titles {
		m := library.NewMovie(testDay)
		m.Title = title
		out[i] = m
	}
	return out
}

func episodes(titles ...string) []*library.Episode {
	out := make([]*library.Episode, len(titles))
	for i, title := range titles {
		e := library.NewEpisode()
		e.Title = title
		e.DownloadName = title + ".mp4"
		out[i] = e
	}
	return out
}

func season(title string) *library.Season {
	s := library.NewSeason(testDay)
	s.Title = title
	s.Year = 2008
	s.Edition = naming.EditionHD
	s.Language = "NL"
	s.ReferenceURL = "https://www.imdb.com/title/tt0903747/episodes?season=1"
	return s
}

func TestCoordinator_InsertFlat(t *testing.T) {
	tests := []struct {
		category library.Category
		table    library.Table
	}{
		{library.CategoryMovie, library.TableMovies},
		{library.CategoryComedy, library.TableComedies},
		{library.CategoryDocumentary, library.TableDocumentaries},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			w := &recordingWriter{}
			c := New(tt.category, testLogger())

			ids, err := c.InsertFlat(w, movies("Alien", "Heat"), 0)
			require.NoError(t, err)
			assert.Equal(t, []int64{1, 2}, ids)
			assert.Equal(t, []string{
				fmt.Sprintf("movie %s Alien", tt.table),
				fmt.Sprintf("movie %s Heat", tt.table),
			}, w.calls)
		})
	}
}

func TestCoordinator_InsertFlat_Backfill(t *testing.T) {
	w := &recordingWriter{nextID: 10}
	c := New(library.CategoryDocumentary, testLogger())

	ms := movies("Part One", "Part Two")
	ids, err := c.InsertFlat(w, ms, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12}, ids)
	assert.Equal(t, []string{
		"movie documentary Part One",
		"movie documentary Part Two",
		"link documentary 11->3",
		"link documentary 12->3",
	}, w.calls)
	require.NotNil(t, ms[0].SeasonID)
	assert.Equal(t, int64(3), *ms[0].SeasonID)
}

func TestCoordinator_InsertFlat_BackfillIgnoredOutsideDocumentary(t *testing.T) {
	w := &recordingWriter{}
	c := New(library.CategoryMovie, testLogger())

	_, err := c.InsertFlat(w, movies("Alien"), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"movie films Alien"}, w.calls)
}

func TestCoordinator_InsertFlat_StopsOnError(t *testing.T) {
	w := &recordingWriter{failOn: "Heat"}
	c := New(library.CategoryMovie, testLogger())

	ids, err := c.InsertFlat(w, movies("Alien", "Heat", "Ronin"), 0)
	assert.ErrorIs(t, err, library.ErrConstraint)
	assert.Equal(t, []int64{1}, ids)
	assert.Len(t, w.calls, 2)
}

func TestCoordinator_InsertSeason(t *testing.T) {
	w := &recordingWriter{}
	c := New(library.CategoryEpisode, testLogger())

	id, err := c.InsertSeason(w, season("Breaking Bad"), false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = c.InsertSeason(w, season("Cosmos"), true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	assert.Equal(t, []string{
		"season episodesSeizoen Breaking Bad",
		"season documentarySeizoen Cosmos",
	}, w.calls)
}

func TestCoordinator_InsertEpisodes_ReverseOrder(t *testing.T) {
	w := &recordingWriter{nextID: 100}
	c := New(library.CategoryEpisode, testLogger())

	eps := episodes("Pilot", "Cat's in the Bag", "And the Bag's in the River")
	ids, err := c.InsertEpisodes(w, eps, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{101, 102, 103}, ids)
	assert.Equal(t, []string{
		"episode 7 And the Bag's in the River",
		"episode 7 Cat's in the Bag",
		"episode 7 Pilot",
	}, w.calls)
	for _, e := range eps {
		assert.Equal(t, int64(7), e.SeasonID)
	}
}

func TestCoordinator_InsertEpisodes_UnresolvedSeason(t *testing.T) {
	w := &recordingWriter{}
	c := New(library.CategoryEpisode, testLogger())

	for _, id := range []int64{0, -1} {
		_, err := c.InsertEpisodes(w, episodes("Pilot"), id)
		assert.ErrorIs(t, err, ErrUnresolvedSeason)

		_, err = c.InsertDocumentaryEpisodes(w, season("Cosmos"), episodes("Pilot"), id)
		assert.ErrorIs(t, err, ErrUnresolvedSeason)
	}
	assert.Empty(t, w.calls)
}

func TestReshape(t *testing.T) {
	s := season("Planet Earth")
	e := library.NewEpisode()
	e.Title = "From Pole to Pole"
	e.Duration = "48:51"
	e.SizeGB = 0.51
	e.Download = 1
	e.Downloads = 2
	e.Requests = 5
	e.DownloadName = "Planet Earth - From Pole to Pole.mp4"
	e.Technical.VideoResolution = "1920x1080"

	m := Reshape(s, e)
	assert.Equal(t, "From Pole to Pole", m.Title)
	assert.Equal(t, 5, m.Downloads)
	assert.Equal(t, 5, m.Requests)
	assert.Equal(t, s.Year, m.Year)
	assert.Equal(t, s.Edition, m.Edition)
	assert.Equal(t, s.Language, m.Language)
	assert.Equal(t, s.AddedAt, m.AddedAt)
	assert.Equal(t, s.ReferenceURL, m.ReferenceURL)
	assert.Equal(t, "48:51", m.Duration)
	assert.InDelta(t, 0.51, m.SizeGB, 0.0001)
	assert.Equal(t, 1, m.Download)
	assert.Equal(t, "1920x1080", m.VideoResolution)
	assert.Nil(t, m.SeasonID)
}

func TestCoordinator_InsertDocumentaryEpisodes(t *testing.T) {
	w := &recordingWriter{}
	c := New(library.CategoryDocumentary, testLogger())

	s := season("Cosmos")
	seasonID, err := c.InsertSeason(w, s, true)
	require.NoError(t, err)

	ids, err := c.InsertDocumentaryEpisodes(w, s, episodes("Standing Up", "Some of the Things"), seasonID)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)
	assert.Equal(t, []string{
		"season documentarySeizoen Cosmos",
		"movie documentary Standing Up",
		"movie documentary Some of the Things",
		"link documentary 2->1",
		"link documentary 3->1",
	}, w.calls)
}

func TestCoordinator_SeasonThenEpisodes_SQLite(t *testing.T) {
	store := setupTestStore(t)
	c := New(library.CategoryEpisode, testLogger())

	s := season("Breaking Bad")
	seasonID, err := c.InsertSeason(store, s, false)
	require.NoError(t, err)
	require.Positive(t, seasonID)

	_, err = c.InsertEpisodes(store, episodes("E1", "E2", "E3", "E4"), seasonID)
	require.NoError(t, err)

	got, err := store.ListEpisodes(library.EpisodeFilter{SeasonID: &seasonID})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "E4", got[0].Title)
	assert.Equal(t, "E1", got[3].Title)
	for _, e := range got {
		assert.Equal(t, seasonID, e.SeasonID)
	}
}

func TestCoordinator_Persist(t *testing.T) {
	store := setupTestStore(t)
	c := New(library.CategoryDocumentary, testLogger())

	b := Batch{
		Movies: movies("Baraka", "Samsara"),
		Seasons: []SeasonUnit{
			{Directory: "Cosmos (2014) 2 EPISODES 1", Season: season("Cosmos"), Episodes: episodes("Standing Up", "Some of the Things")},
		},
	}
	report, err := c.Persist(context.Background(), store, b)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 5, report.Rows())

	require.Len(t, report.Inserted, 2)
	assert.Equal(t, library.TableDocumentaries, report.Inserted[0].Table)
	assert.Len(t, report.Inserted[0].IDs, 4)
	assert.Equal(t, library.TableDocumentarySeasons, report.Inserted[1].Table)

	seasonID := b.Seasons[0].Season.ID
	linked, err := store.ListMovies(library.TableDocumentaries, library.MovieFilter{SeasonID: &seasonID})
	require.NoError(t, err)
	require.Len(t, linked, 2)
	for _, m := range linked {
		assert.Equal(t, 2008, m.Year)
		assert.Equal(t, naming.EditionHD, m.Edition)
		assert.Equal(t, "NL", m.Language)
	}

	all, err := store.ListMovies(library.TableDocumentaries, library.MovieFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCoordinator_Persist_DocumentaryCounters(t *testing.T) {
	store := setupTestStore(t)
	c := New(library.CategoryDocumentary, testLogger())

	eps := episodes("From Pole to Pole")
	eps[0].Downloads = 2
	eps[0].Requests = 5

	b := Batch{Seasons: []SeasonUnit{{Directory: "Planet Earth", Season: season("Planet Earth"), Episodes: eps}}}
	report, err := c.Persist(context.Background(), store, b)
	require.NoError(t, err)
	require.True(t, report.OK())

	got, err := store.ListMovies(library.TableDocumentaries, library.MovieFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Downloads)
	assert.Equal(t, 5, got[0].Requests)
	require.NotNil(t, got[0].SeasonID)
	assert.Equal(t, b.Seasons[0].Season.ID, *got[0].SeasonID)
}

func TestCoordinator_Persist_FailedUnitRolledBack(t *testing.T) {
	store := setupTestStore(t)
	c := New(library.CategoryEpisode, testLogger())

	bad := season("Broken")
	bad.Edition = naming.Edition("VHS")

	b := Batch{
		Seasons: []SeasonUnit{
			{Directory: "good", Season: season("Good"), Episodes: episodes("One", "Two")},
			{Directory: "bad", Season: bad, Episodes: episodes("Three")},
			{Directory: "also good", Season: season("Also Good"), Episodes: episodes("Four")},
		},
	}
	report, err := c.Persist(context.Background(), store, b)
	require.NoError(t, err)
	assert.False(t, report.OK())
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "bad", report.Failures[0].Unit)
	assert.ErrorIs(t, report.Failures[0].Err, library.ErrConstraint)

	seasons, err := store.ListSeasons(library.TableEpisodeSeasons)
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, "Good", seasons[0].Title)
	assert.Equal(t, "Also Good", seasons[1].Title)

	eps, err := store.ListEpisodes(library.EpisodeFilter{})
	require.NoError(t, err)
	assert.Len(t, eps, 3)
}

func TestCoordinator_Persist_Cancelled(t *testing.T) {
	store := setupTestStore(t)
	c := New(library.CategoryMovie, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := c.Persist(ctx, store, Batch{Movies: movies("Alien")})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, report.Rows())
}

func TestBatch_Empty(t *testing.T) {
	assert.True(t, Batch{}.Empty())
	assert.False(t, Batch{Movies: movies("Alien")}.Empty())
	assert.False(t, Batch{Seasons: []SeasonUnit{{Directory: "x"}}}.Empty())
}
