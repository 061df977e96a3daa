// Package naming parses the legacy media naming convention used by the
// movie library: file names such as "Inception (NL) (2010) HD.mp4" and season
// directories such as "Friends 1 (2004) 24 EPISODES".
//
// The grammar works on fixed byte offsets counted from the end of the name,
// applied in a fixed order. Names that do not follow the layout produce
// best-effort values instead of errors.
package naming

// Edition is the release variant of a title.
type Edition string

const (
	EditionDVD Edition = "DVD"
	EditionHD  Edition = "HD"
	Edition3D  Edition = "3D"
)

// DefaultEdition applies when a name carries no edition marker.
const DefaultEdition = EditionDVD

// DefaultLanguage applies when a name carries no "(XX)" language token.
const DefaultLanguage = "ENG"

func (e Edition) String() string {
	if e == "" {
		return string(DefaultEdition)
	}
	return string(e)
}

// Valid reports whether e is one of the known editions.
func (e Edition) Valid() bool {
	switch e {
	case EditionDVD, EditionHD, Edition3D:
		return true
	}
	return false
}

// MediaName is the metadata encoded in a movie file name.
type MediaName struct {
	Title    string
	Year     int
	YearRaw  string // the token the year was read from
	Edition  Edition
	Language string
}

// SeasonName is the metadata encoded in a season directory name.
type SeasonName struct {
	Title        string
	Year         int
	YearRaw      string
	Edition      Edition
	Language     string
	EpisodeCount int
	SeasonNumber int // only used to build the reference URL
	Collection   string
}

// EpisodeName is the metadata encoded in an episode file name.
type EpisodeName struct {
	Title string
}
