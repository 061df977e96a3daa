package library

import (
	"database/sql"
	"fmt"
	"strings"
)

var movieColumns = []string{
	"naam", "jaar", "type", "taal", "duur", "grootte", "toegevoegd", "download", "imdb",
	"aantalDownloads", "aantalRequests",
	"fileFormat", "mimeType", "encoding", "bitrate",
	"videoDataformat", "videoResolution", "videoPixelAspectRatio", "videoFrameRate",
	"audioCodec", "audioSampleRate", "audioBitsPerSample", "audioChannelmode", "audioChannels",
}

func movieArgs(m *Movie) []any {
	return []any{
		m.Title, m.Year, m.Edition.String(), m.Language, m.Duration, m.SizeGB, m.AddedAt.Format(DateLayout),
		m.Download, m.ReferenceURL, m.Downloads, m.Requests,
		m.FileFormat, m.MimeType, m.Encoding, m.Bitrate,
		m.VideoDataFormat, m.VideoResolution, m.VideoPixelAspectRatio, m.VideoFrameRate,
		m.AudioCodec, m.AudioSampleRate, m.AudioBitsPerSample, m.AudioChannelMode, m.AudioChannels,
	}
}

func addMovie(c conn, table Table, m *Movie) error {
	if !table.isMovieTable() {
		return fmt.Errorf("insert movie into %s: %w", table, ErrWrongTable)
	}
	id, err := c.insert(table, movieColumns, movieArgs(m))
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// AddMovie inserts a movie into films, comedy or documentary.
// Sets ID on the struct. The season link is written separately with SetMovieSeason.
func (s *Store) AddMovie(table Table, m *Movie) error { return addMovie(s.conn(), table, m) }

// AddMovie inserts a movie within a transaction.
func (t *Tx) AddMovie(table Table, m *Movie) error { return addMovie(t.conn(), table, m) }

func setMovieSeason(c conn, table Table, movieID, seasonID int64) error {
	if table != TableDocumentaries {
		return fmt.Errorf("link movie %d in %s: %w", movieID, table, ErrNoSeasonColumn)
	}
	result, err := c.exec(fmt.Sprintf("UPDATE %s SET seizoenId = ? WHERE id = ?", table), seasonID, movieID)
	if err != nil {
		return fmt.Errorf("link movie %d to season %d: %w", movieID, seasonID, mapError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("link movie %d: %w", movieID, ErrNotFound)
	}
	return nil
}

// SetMovieSeason sets the seizoenId of a documentary row.
// Returns ErrNoSeasonColumn for tables other than documentary.
func (s *Store) SetMovieSeason(table Table, movieID, seasonID int64) error {
	return setMovieSeason(s.conn(), table, movieID, seasonID)
}

// SetMovieSeason sets the seizoenId of a documentary row within a transaction.
func (t *Tx) SetMovieSeason(table Table, movieID, seasonID int64) error {
	return setMovieSeason(t.conn(), table, movieID, seasonID)
}

func movieSelect(table Table) string {
	season := "NULL"
	if table == TableDocumentaries {
		season = "seizoenId"
	}
	return fmt.Sprintf("SELECT id, %s, %s FROM %s", strings.Join(movieColumns, ", "), season, table)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(r rowScanner) (*Movie, error) {
	m := &Movie{}
	var edition string
	var season sql.NullInt64
	err := r.Scan(
		&m.ID, &m.Title, &m.Year, &edition, &m.Language, &m.Duration, &m.SizeGB, dateValue{&m.AddedAt},
		&m.Download, &m.ReferenceURL, &m.Downloads, &m.Requests,
		&m.FileFormat, &m.MimeType, &m.Encoding, &m.Bitrate,
		&m.VideoDataFormat, &m.VideoResolution, &m.VideoPixelAspectRatio, &m.VideoFrameRate,
		&m.AudioCodec, &m.AudioSampleRate, &m.AudioBitsPerSample, &m.AudioChannelMode, &m.AudioChannels,
		&season,
	)
	if err != nil {
		return nil, err
	}
	m.Edition = editionOf(edition)
	if season.Valid {
		id := season.Int64
		m.SeasonID = &id
	}
	return m, nil
}

func getMovie(c conn, table Table, id int64) (*Movie, error) {
	if !table.isMovieTable() {
		return nil, fmt.Errorf("get movie from %s: %w", table, ErrWrongTable)
	}
	m, err := scanMovie(c.queryRow(movieSelect(table)+" WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, mapError(err))
	}
	return m, nil
}

// GetMovie retrieves a movie by ID.
// Returns ErrNotFound if the movie does not exist.
func (s *Store) GetMovie(table Table, id int64) (*Movie, error) { return getMovie(s.conn(), table, id) }

// GetMovie retrieves a movie by ID within a transaction.
func (t *Tx) GetMovie(table Table, id int64) (*Movie, error) { return getMovie(t.conn(), table, id) }

func listMovies(c conn, table Table, f MovieFilter) ([]*Movie, error) {
	if !table.isMovieTable() {
		return nil, fmt.Errorf("list movies from %s: %w", table, ErrWrongTable)
	}
	var conditions []string
	var args []any
	if f.SeasonID != nil {
		if table != TableDocumentaries {
			return nil, fmt.Errorf("list movies from %s: %w", table, ErrNoSeasonColumn)
		}
		conditions = append(conditions, "seizoenId = ?")
		args = append(args, *f.SeasonID)
	}
	if f.Title != nil {
		conditions = append(conditions, "naam = ?")
		args = append(args, *f.Title)
	}

	rows, err := c.query(movieSelect(table)+whereClause(conditions)+" ORDER BY id"+pageClause(f.Limit, f.Offset), args...)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return results, nil
}

// ListMovies returns the movies of a table matching the filter, in id order.
func (s *Store) ListMovies(table Table, f MovieFilter) ([]*Movie, error) {
	return listMovies(s.conn(), table, f)
}

// ListMovies returns movies matching the filter within a transaction.
func (t *Tx) ListMovies(table Table, f MovieFilter) ([]*Movie, error) {
	return listMovies(t.conn(), table, f)
}
