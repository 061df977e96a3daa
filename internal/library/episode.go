package library

import (
	"fmt"
	"strings"
)

var episodeColumns = []string{
	"seizoenId", "naam", "duur", "grootte", "download", "aantalDownloads", "aantalRequests", "downloadNaam",
	"fileFormat", "mimeType", "encoding", "bitrate",
	"videoDataformat", "videoResolution", "videoPixelAspectRatio", "videoFrameRate",
	"audioCodec", "audioSampleRate", "audioBitsPerSample", "audioChannelmode", "audioChannels",
}

func addEpisode(c conn, e *Episode) error {
	id, err := c.insert(TableEpisodes, episodeColumns, []any{
		e.SeasonID, e.Title, e.Duration, e.SizeGB, e.Download, e.Downloads, e.Requests, e.DownloadName,
		e.FileFormat, e.MimeType, e.Encoding, e.Bitrate,
		e.VideoDataFormat, e.VideoResolution, e.VideoPixelAspectRatio, e.VideoFrameRate,
		e.AudioCodec, e.AudioSampleRate, e.AudioBitsPerSample, e.AudioChannelMode, e.AudioChannels,
	})
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// AddEpisode inserts a new episode. SeasonID must reference an existing
// episodesSeizoen row. Sets ID on the struct.
func (s *Store) AddEpisode(e *Episode) error { return addEpisode(s.conn(), e) }

// AddEpisode inserts a new episode within a transaction.
func (t *Tx) AddEpisode(e *Episode) error { return addEpisode(t.conn(), e) }

var episodeSelect = fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(episodeColumns, ", "), TableEpisodes)

func scanEpisode(r rowScanner) (*Episode, error) {
	e := &Episode{}
	err := r.Scan(
		&e.ID, &e.SeasonID, &e.Title, &e.Duration, &e.SizeGB, &e.Download, &e.Downloads, &e.Requests, &e.DownloadName,
		&e.FileFormat, &e.MimeType, &e.Encoding, &e.Bitrate,
		&e.VideoDataFormat, &e.VideoResolution, &e.VideoPixelAspectRatio, &e.VideoFrameRate,
		&e.AudioCodec, &e.AudioSampleRate, &e.AudioBitsPerSample, &e.AudioChannelMode, &e.AudioChannels,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func getEpisode(c conn, id int64) (*Episode, error) {
	e, err := scanEpisode(c.queryRow(episodeSelect+" WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get episode %d: %w", id, mapError(err))
	}
	return e, nil
}

// GetEpisode retrieves an episode by ID.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) GetEpisode(id int64) (*Episode, error) { return getEpisode(s.conn(), id) }

// GetEpisode retrieves an episode by ID within a transaction.
func (t *Tx) GetEpisode(id int64) (*Episode, error) { return getEpisode(t.conn(), id) }

func listEpisodes(c conn, f EpisodeFilter) ([]*Episode, error) {
	var conditions []string
	var args []any
	if f.SeasonID != nil {
		conditions = append(conditions, "seizoenId = ?")
		args = append(args, *f.SeasonID)
	}

	rows, err := c.query(episodeSelect+whereClause(conditions)+" ORDER BY id"+pageClause(f.Limit, f.Offset), args...)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Episode
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}
	return results, nil
}

// ListEpisodes returns episodes matching the filter in insertion order.
func (s *Store) ListEpisodes(f EpisodeFilter) ([]*Episode, error) { return listEpisodes(s.conn(), f) }

// ListEpisodes returns episodes matching the filter within a transaction.
func (t *Tx) ListEpisodes(f EpisodeFilter) ([]*Episode, error) { return listEpisodes(t.conn(), f) }
