// Package persist writes confirmed ingestion batches to the library tables.
//
// A season is always written before its episodes, so every episode carries
// the generated season id. Documentary seasons store their episodes as
// movie rows in the documentary table, linked back through seizoenId.
package persist

import (
	"fmt"
	"log/slog"

	"github.com/vmunix/movieshelf/internal/library"
)

// Coordinator performs the ordered inserts for one category.
type Coordinator struct {
	category library.Category
	log      *slog.Logger
}

// New creates a coordinator writing records of the given category.
func New(category library.Category, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{category: category, log: log}
}

// Category returns the category the coordinator writes.
func (c *Coordinator) Category() library.Category { return c.category }

// InsertFlat writes movie-shaped records to the category's movie table and
// returns their ids in insertion order. A positive documentarySeasonID is
// written to the seizoenId column of every inserted row afterwards; it is
// ignored for categories other than documentary.
func (c *Coordinator) InsertFlat(w library.Writer, movies []*library.Movie, documentarySeasonID int64) ([]int64, error) {
	table := c.category.MovieTable()
	ids := make([]int64, 0, len(movies))
	for _, m := range movies {
		if err := w.AddMovie(table, m); err != nil {
			return ids, fmt.Errorf("insert %q: %w", m.Title, err)
		}
		ids = append(ids, m.ID)
		c.log.Debug("movie inserted", "table", table, "id", m.ID, "title", m.Title)
	}

	if documentarySeasonID <= 0 {
		return ids, nil
	}
	if c.category != library.CategoryDocumentary {
		c.log.Warn("season link ignored", "category", c.category, "season_id", documentarySeasonID)
		return ids, nil
	}
	for i, id := range ids {
		if err := w.SetMovieSeason(table, id, documentarySeasonID); err != nil {
			return ids, fmt.Errorf("link %q to season %d: %w", movies[i].Title, documentarySeasonID, err)
		}
		sid := documentarySeasonID
		movies[i].SeasonID = &sid
	}
	return ids, nil
}

// InsertSeason writes a season to episodesSeizoen, or documentarySeizoen when
// isDocumentary is set, and returns the generated id.
func (c *Coordinator) InsertSeason(w library.Writer, season *library.Season, isDocumentary bool) (int64, error) {
	table := library.TableEpisodeSeasons
	if isDocumentary {
		table = library.TableDocumentarySeasons
	}
	if err := w.AddSeason(table, season); err != nil {
		return 0, fmt.Errorf("insert season %q: %w", season.Title, err)
	}
	c.log.Debug("season inserted", "table", table, "id", season.ID, "title", season.Title)
	return season.ID, nil
}

// InsertEpisodes writes episodes of an already written season. Episodes are
// inserted in reverse encounter order; the returned ids follow insertion order.
func (c *Coordinator) InsertEpisodes(w library.Writer, episodes []*library.Episode, seasonID int64) ([]int64, error) {
	if seasonID <= 0 {
		return nil, fmt.Errorf("insert %d episodes: %w", len(episodes), ErrUnresolvedSeason)
	}
	ids := make([]int64, 0, len(episodes))
	for i := len(episodes) - 1; i >= 0; i-- {
		e := episodes[i]
		e.SeasonID = seasonID
		if err := w.AddEpisode(e); err != nil {
			return ids, fmt.Errorf("insert episode %q: %w", e.Title, err)
		}
		ids = append(ids, e.ID)
	}
	c.log.Debug("episodes inserted", "season_id", seasonID, "count", len(ids))
	return ids, nil
}

// InsertDocumentaryEpisodes reshapes the episodes of a documentary season
// into movies and writes them with their seizoenId set to seasonID.
func (c *Coordinator) InsertDocumentaryEpisodes(w library.Writer, season *library.Season, episodes []*library.Episode, seasonID int64) ([]int64, error) {
	if seasonID <= 0 {
		return nil, fmt.Errorf("insert %d documentary episodes: %w", len(episodes), ErrUnresolvedSeason)
	}
	movies := make([]*library.Movie, len(episodes))
	for i, e := range episodes {
		movies[i] = Reshape(season, e)
	}
	return c.InsertFlat(w, movies, seasonID)
}

// Reshape converts a documentary episode into a movie row. Year, edition,
// language, added date and reference URL come from the season. The episode's
// request counter fills both the download and the request counter of the movie.
func Reshape(season *library.Season, e *library.Episode) *library.Movie {
	return &library.Movie{
		Title:        e.Title,
		Year:         season.Year,
		Edition:      season.Edition,
		Language:     season.Language,
		Duration:     e.Duration,
		SizeGB:       e.SizeGB,
		AddedAt:      season.AddedAt,
		Download:     e.Download,
		ReferenceURL: season.ReferenceURL,
		Downloads:    e.Requests,
		Requests:     e.Requests,
		Technical:    e.Technical,
	}
}
