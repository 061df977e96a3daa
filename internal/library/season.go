package library

import (
	"fmt"
	"strings"

	"github.com/vmunix/movieshelf/pkg/naming"
)

var seasonColumns = []string{
	"naam", "jaar", "type", "taal", "aantalEpisodes", "collectie", "toegevoegd",
	"aantalDownloads", "aantalRequests", "imdb", "download",
}

func editionOf(s string) naming.Edition {
	if e := naming.Edition(s); e.Valid() {
		return e
	}
	return naming.DefaultEdition
}

func addSeason(c conn, table Table, s *Season) error {
	if !table.isSeasonTable() {
		return fmt.Errorf("insert season into %s: %w", table, ErrWrongTable)
	}
	id, err := c.insert(table, seasonColumns, []any{
		s.Title, s.Year, s.Edition.String(), s.Language, s.EpisodeCount, s.Collection, s.AddedAt.Format(DateLayout),
		s.Downloads, s.Requests, s.ReferenceURL, s.Download,
	})
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// AddSeason inserts a season into episodesSeizoen or documentarySeizoen.
// Sets ID on the struct.
func (s *Store) AddSeason(table Table, season *Season) error {
	return addSeason(s.conn(), table, season)
}

// AddSeason inserts a season within a transaction.
func (t *Tx) AddSeason(table Table, season *Season) error {
	return addSeason(t.conn(), table, season)
}

func scanSeason(r rowScanner) (*Season, error) {
	s := &Season{}
	var edition string
	err := r.Scan(
		&s.ID, &s.Title, &s.Year, &edition, &s.Language, &s.EpisodeCount, &s.Collection, dateValue{&s.AddedAt},
		&s.Downloads, &s.Requests, &s.ReferenceURL, &s.Download,
	)
	if err != nil {
		return nil, err
	}
	s.Edition = editionOf(edition)
	return s, nil
}

func seasonSelect(table Table) string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(seasonColumns, ", "), table)
}

func getSeason(c conn, table Table, id int64) (*Season, error) {
	if !table.isSeasonTable() {
		return nil, fmt.Errorf("get season from %s: %w", table, ErrWrongTable)
	}
	s, err := scanSeason(c.queryRow(seasonSelect(table)+" WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get season %d: %w", id, mapError(err))
	}
	return s, nil
}

// GetSeason retrieves a season by ID.
// Returns ErrNotFound if the season does not exist.
func (s *Store) GetSeason(table Table, id int64) (*Season, error) {
	return getSeason(s.conn(), table, id)
}

// GetSeason retrieves a season by ID within a transaction.
func (t *Tx) GetSeason(table Table, id int64) (*Season, error) {
	return getSeason(t.conn(), table, id)
}

func listSeasons(c conn, table Table) ([]*Season, error) {
	if !table.isSeasonTable() {
		return nil, fmt.Errorf("list seasons from %s: %w", table, ErrWrongTable)
	}
	rows, err := c.query(seasonSelect(table) + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Season
	for rows.Next() {
		s, err := scanSeason(rows)
		if err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seasons: %w", err)
	}
	return results, nil
}

// ListSeasons returns all seasons of a season table in id order.
func (s *Store) ListSeasons(table Table) ([]*Season, error) { return listSeasons(s.conn(), table) }
