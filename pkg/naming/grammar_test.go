package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMedia(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want MediaName
	}{
		{
			name: "language year and HD",
			in:   "Inception (NL) (2010) HD.mp4",
			want: MediaName{Title: "Inception NL", Year: 2010, YearRaw: "2010", Edition: EditionHD, Language: "NL"},
		},
		{
			name: "defaults",
			in:   "Amelie (2001).mp4",
			want: MediaName{Title: "Amelie", Year: 2001, YearRaw: "2001", Edition: EditionDVD, Language: "ENG"},
		},
		{
			name: "lowercase hd",
			in:   "The Matrix (1999) hd.mkv",
			want: MediaName{Title: "The Matrix", Year: 1999, YearRaw: "1999", Edition: EditionHD, Language: "ENG"},
		},
		{
			name: "3D suffix",
			in:   "Avatar 3D (2009).mp4",
			want: MediaName{Title: "Avatar 3D", Year: 2009, YearRaw: "2009", Edition: Edition3D, Language: "ENG"},
		},
		{
			name: "3D overrides HD",
			in:   "Avatar 3D (2009) HD.mp4",
			want: MediaName{Title: "Avatar 3D", Year: 2009, YearRaw: "2009", Edition: Edition3D, Language: "ENG"},
		},
		{
			name: "language without HD",
			in:   "Intouchables (FR) (2011).mp4",
			want: MediaName{Title: "Intouchables FR", Year: 2011, YearRaw: "2011", Edition: EditionDVD, Language: "FR"},
		},
		{
			name: "no year degrades silently",
			in:   "Movie.mp4",
			want: MediaName{Title: "Movi", Year: 0, YearRaw: "", Edition: EditionDVD, Language: "ENG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMedia(tt.in))
		})
	}
}

func TestParseMedia_ShortNamesDoNotPanic(t *testing.T) {
	for _, in := range []string{"", "a", ".mp4", "HD", ")", "(NL).mp4"} {
		assert.NotPanics(t, func() { ParseMedia(in) }, in)
	}
}

func TestParseMedia_LanguageProperty(t *testing.T) {
	titles := []string{"Inception", "Le Fabuleux Destin", "Das Boot", "X"}
	langs := []string{"NL", "FR", "DE", "ES"}
	for _, title := range titles {
		for _, lang := range langs {
			got := ParseMedia(title + " (" + lang + ") (1984) HD.mp4")
			assert.Equal(t, title+" "+lang, got.Title)
			assert.Equal(t, lang, got.Language)
			assert.Equal(t, 1984, got.Year)
			assert.Equal(t, EditionHD, got.Edition)
		}
	}
}

func TestParseSeason(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SeasonName
	}{
		{
			name: "plain",
			in:   "Friends 1 (2004) 24 EPISODES",
			want: SeasonName{
				Title: "Friends 1", Year: 2004, YearRaw: "2004", Edition: EditionDVD, Language: "ENG",
				EpisodeCount: 24, SeasonNumber: 1, Collection: "Friends",
			},
		},
		{
			name: "language and HD",
			in:   "Friends 1 (NL) (2004) 24 EPISODES HD",
			want: SeasonName{
				Title: "Friends 1", Year: 2004, YearRaw: "2004", Edition: EditionHD, Language: "NL",
				EpisodeCount: 24, SeasonNumber: 1, Collection: "Friends",
			},
		},
		{
			name: "3D season",
			in:   "Planet Earth 2 3D (2016) 6 EPISODES",
			want: SeasonName{
				Title: "Planet Earth 2 3D", Year: 2016, YearRaw: "2016", Edition: Edition3D, Language: "ENG",
				EpisodeCount: 6, SeasonNumber: 2, Collection: "Planet Earth",
			},
		},
		{
			name: "3D with language",
			in:   "Planet Earth 2 3D (NL) (2016) 6 EPISODES",
			want: SeasonName{
				Title: "Planet Earth 2 3D", Year: 2016, YearRaw: "2016", Edition: Edition3D, Language: "NL",
				EpisodeCount: 6, SeasonNumber: 2, Collection: "Planet Earth",
			},
		},
		{
			name: "multi word collection",
			in:   "The Office 3 (2006) 22 EPISODES",
			want: SeasonName{
				Title: "The Office 3", Year: 2006, YearRaw: "2006", Edition: EditionDVD, Language: "ENG",
				EpisodeCount: 22, SeasonNumber: 3, Collection: "The Office",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSeason(tt.in))
		})
	}
}

func TestParseSeason_MalformedDoesNotPanic(t *testing.T) {
	for _, in := range []string{"", "HD", "Friends", "EPISODES", "a b", "(NL)"} {
		assert.NotPanics(t, func() { ParseSeason(in) }, in)
	}
}

func TestParseEpisode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Friends - The One Where It All Began.mp4", "The One Where It All Began"},
		{"Show - Part 1 - Intro.mp4", "Part 1"},
		{"Pilot.mp4", "Pilot"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEpisode(tt.in).Title)
		})
	}
}

func TestEdition_String(t *testing.T) {
	assert.Equal(t, "DVD", Edition("").String())
	assert.Equal(t, "HD", EditionHD.String())
	assert.True(t, Edition3D.Valid())
	assert.False(t, Edition("BLURAY").Valid())
}

func TestSubstr(t *testing.T) {
	tests := []struct {
		s      string
		start  int
		length []int
		want   string
	}{
		{"abcdef", 2, nil, "cdef"},
		{"abcdef", -2, nil, "ef"},
		{"abcdef", -10, nil, "abcdef"},
		{"abcdef", 1, []int{3}, "bcd"},
		{"abcdef", 0, []int{-4}, "ab"},
		{"abc", 0, []int{-4}, ""},
		{"abc", 5, nil, ""},
		{"abc", 1, []int{10}, "bc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, substr(tt.s, tt.start, tt.length...), "substr(%q, %d, %v)", tt.s, tt.start, tt.length)
	}
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 2010, leadingInt("2010"))
	assert.Equal(t, 12, leadingInt(" 12abc"))
	assert.Equal(t, 0, leadingInt("abc"))
	assert.Equal(t, -3, leadingInt("-3"))
}
