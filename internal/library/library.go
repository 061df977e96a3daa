// Package library stores ingested movies, seasons and episodes in the legacy
// six-table schema: films, comedy, documentary, episodes, episodesSeizoen and
// documentarySeizoen. Column names follow that schema; the Go types use
// English field names.
package library

import (
	"time"

	"github.com/vmunix/movieshelf/pkg/naming"
)

// DateLayout is the layout of the "toegevoegd" (added) columns.
const DateLayout = "2006-01-02"

// DefaultReferenceURL is the reference URL of a movie nobody looked up.
const DefaultReferenceURL = "https://"

// DefaultDuration is the duration of a record that was never probed.
const DefaultDuration = "0:0"

// Category selects what a run ingests and, for flat files, the target table.
type Category string

const (
	CategoryMovie       Category = "movie"
	CategoryComedy      Category = "comedy"
	CategoryDocumentary Category = "documentary"
	CategoryEpisode     Category = "episode"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryMovie, CategoryComedy, CategoryDocumentary, CategoryEpisode:
		return true
	}
	return false
}

// MediaType is "episode" for the episode category and "movie" otherwise.
func (c Category) MediaType() string {
	if c == CategoryEpisode {
		return "episode"
	}
	return "movie"
}

// HasFiles reports whether loose files in the root directory are ingested as movies.
func (c Category) HasFiles() bool { return c != CategoryEpisode }

// HasSeasons reports whether subdirectories are ingested as seasons.
func (c Category) HasSeasons() bool {
	return c == CategoryEpisode || c == CategoryDocumentary
}

// MovieTable returns the table flat files of this category are written to.
func (c Category) MovieTable() Table {
	switch c {
	case CategoryComedy:
		return TableComedies
	case CategoryDocumentary:
		return TableDocumentaries
	default:
		return TableMovies
	}
}

// SeasonTable returns the table seasons of this category are written to.
func (c Category) SeasonTable() Table {
	if c == CategoryDocumentary {
		return TableDocumentarySeasons
	}
	return TableEpisodeSeasons
}

// Table names a table of the legacy schema.
type Table string

const (
	TableMovies             Table = "films"
	TableComedies           Table = "comedy"
	TableDocumentaries      Table = "documentary"
	TableEpisodes           Table = "episodes"
	TableEpisodeSeasons     Table = "episodesSeizoen"
	TableDocumentarySeasons Table = "documentarySeizoen"
)

func (t Table) isMovieTable() bool {
	return t == TableMovies || t == TableComedies || t == TableDocumentaries
}

func (t Table) isSeasonTable() bool {
	return t == TableEpisodeSeasons || t == TableDocumentarySeasons
}

// Technical is the probe-derived block shared by movies and episodes.
type Technical struct {
	FileFormat            string
	MimeType              string
	Encoding              string
	Bitrate               string // human readable, e.g. "4.5 Mbps"
	VideoDataFormat       string
	VideoResolution       string // "<w>x<h>"
	VideoPixelAspectRatio float64
	VideoFrameRate        float64
	AudioCodec            string
	AudioSampleRate       float64
	AudioBitsPerSample    int
	AudioChannelMode      string
	AudioChannels         int
}

// Kind discriminates the records a run builds.
type Kind int

const (
	KindMovie Kind = iota
	KindEpisode
)

// Media is implemented by the records built from video files.
type Media interface {
	Kind() Kind
	DisplayTitle() string
	SizeInGB() float64
	PlayTime() string
	TechnicalInfo() Technical
}

// Movie is a row of films, comedy or documentary.
type Movie struct {
	ID           int64
	Title        string
	Year         int
	Edition      naming.Edition
	Language     string
	Duration     string
	SizeGB       float64
	AddedAt      time.Time
	Download     int
	ReferenceURL string
	Downloads    int
	Requests     int
	Technical

	// SeasonID links a documentary episode to its documentarySeizoen row.
	// Only the documentary table has the column.
	SeasonID *int64
}

// NewMovie returns a movie with the legacy defaults.
func NewMovie(now time.Time) *Movie {
	return &Movie{
		Year:         now.Year(),
		Edition:      naming.DefaultEdition,
		Language:     naming.DefaultLanguage,
		Duration:     DefaultDuration,
		AddedAt:      now,
		ReferenceURL: DefaultReferenceURL,
	}
}

func (m *Movie) Kind() Kind               { return KindMovie }
func (m *Movie) DisplayTitle() string     { return m.Title }
func (m *Movie) SizeInGB() float64        { return m.SizeGB }
func (m *Movie) PlayTime() string         { return m.Duration }
func (m *Movie) TechnicalInfo() Technical { return m.Technical }

// Episode is a row of episodes. SeasonID is only known once the owning
// season has been written.
type Episode struct {
	ID           int64
	SeasonID     int64
	Title        string
	Duration     string
	SizeGB       float64
	Download     int
	Downloads    int
	Requests     int
	DownloadName string
	Technical
}

// NewEpisode returns an episode with the legacy defaults.
func NewEpisode() *Episode {
	return &Episode{Duration: DefaultDuration}
}

func (e *Episode) Kind() Kind               { return KindEpisode }
func (e *Episode) DisplayTitle() string     { return e.Title }
func (e *Episode) SizeInGB() float64        { return e.SizeGB }
func (e *Episode) PlayTime() string         { return e.Duration }
func (e *Episode) TechnicalInfo() Technical { return e.Technical }

// Season is a row of episodesSeizoen or documentarySeizoen.
type Season struct {
	ID           int64
	Title        string
	Year         int
	Edition      naming.Edition
	Language     string
	EpisodeCount int
	Collection   string
	AddedAt      time.Time
	Downloads    int
	Requests     int
	ReferenceURL string
	Download     int
}

// NewSeason returns a season with the legacy defaults.
func NewSeason(now time.Time) *Season {
	return &Season{
		Year:     now.Year(),
		Edition:  naming.DefaultEdition,
		Language: naming.DefaultLanguage,
		AddedAt:  now,
	}
}

// Writer is implemented by Store and Tx.
type Writer interface {
	AddMovie(table Table, m *Movie) error
	SetMovieSeason(table Table, movieID, seasonID int64) error
	AddSeason(table Table, s *Season) error
	AddEpisode(e *Episode) error
}

var (
	_ Writer = (*Store)(nil)
	_ Writer = (*Tx)(nil)
)

// MovieFilter specifies criteria for listing movies.
type MovieFilter struct {
	SeasonID *int64
	Title    *string
	Limit    int // 0 = no limit
	Offset   int
}

// EpisodeFilter specifies criteria for listing episodes.
type EpisodeFilter struct {
	SeasonID *int64
	Limit    int
	Offset   int
}
