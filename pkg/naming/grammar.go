package naming

import "strings"

// extensionLen is the size of the trailing ".ext" token stripped from file names.
const extensionLen = 4

// mediaState carries a file name through the media strip rules.
type mediaState struct {
	work string
	out  MediaName
}

// Media names are reduced by these rules in order. Each rule removes its token
// from the end of the working name, so the order is part of the grammar.
var mediaRules = []func(*mediaState){
	stripExtension,
	stripMediaEdition,
	stripMediaYear,
	stripMediaLanguage,
	detectMedia3D,
}

// ParseMedia parses a movie file name of the form
//
//	<Title> [(<XX>)] (<YYYY>)[ HD].<ext>
//
// The language, when present, is re-appended to the title without brackets:
// "Inception (NL) (2010) HD.mp4" parses to title "Inception NL".
func ParseMedia(name string) MediaName {
	st := &mediaState{
		work: name,
		out:  MediaName{Edition: DefaultEdition, Language: DefaultLanguage},
	}
	for _, rule := range mediaRules {
		rule(st)
	}
	return st.out
}

func stripExtension(st *mediaState) {
	st.work = rtrim(substr(st.work, 0, -extensionLen))
}

func stripMediaEdition(st *mediaState) {
	if strings.EqualFold(lastN(st.work, 2), "hd") {
		st.out.Edition = EditionHD
		st.work = dropLast(st.work, 2)
	}
}

func stripMediaYear(st *mediaState) {
	st.out.YearRaw = substr(lastN(st.work, 6), 1, 4)
	st.out.Year = leadingInt(st.out.YearRaw)
	st.work = dropLast(st.work, 6)
	st.out.Title = st.work
}

func stripMediaLanguage(st *mediaState) {
	if !hasCloseParen(st.work) {
		return
	}
	lang := substr(lastN(st.work, 4), 1, 2)
	st.out.Language = lang
	st.out.Title = dropLast(st.work, 4) + " " + lang
}

func detectMedia3D(st *mediaState) {
	if strings.HasSuffix(st.out.Title, " 3D") {
		st.out.Edition = Edition3D
	}
}

// ParseSeason parses a season directory name of the form
//
//	<Collection> <N>[ 3D][ (<XX>)] (<YYYY>) <count> EPISODES[ HD]
//
// The title keeps the season number and the 3D marker but loses the year and
// language tokens: "Friends 1 (NL) (2004) 24 EPISODES" has title "Friends 1",
// collection "Friends" and season number 1.
func ParseSeason(name string) SeasonName {
	out := SeasonName{Edition: DefaultEdition, Language: DefaultLanguage}
	raw := name

	if strings.EqualFold(lastN(raw, 2), "hd") {
		out.Edition = EditionHD
		raw = dropLast(raw, 2)
	}

	// "<count> EPISODES" are the last two tokens.
	parts := strings.Split(raw, " ")
	if len(parts) >= 2 {
		out.EpisodeCount = leadingInt(parts[len(parts)-2])
	}
	parts = popN(parts, 2)
	raw = strings.Join(parts, " ")

	out.YearRaw = substr(raw, len(raw)-5, 4)
	out.Year = leadingInt(out.YearRaw)
	raw = strings.ReplaceAll(raw, " ("+out.YearRaw+")", "")
	out.Title = rtrim(raw)

	if hasCloseParen(out.Title) {
		lang := substr(out.Title, len(out.Title)-3, 2)
		out.Language = lang
		out.Title = strings.ReplaceAll(out.Title, " ("+lang+")", "")
	}

	is3D := strings.HasSuffix(out.Title, " 3D")
	if is3D {
		out.Edition = Edition3D
	}

	// The collection is read from the name before the language was removed,
	// so the "(XX)" token is still there to drop.
	parts = strings.Split(raw, " ")
	if out.Language != DefaultLanguage {
		parts = popN(parts, 1)
	}
	if is3D {
		parts = popN(parts, 1)
	}
	if len(parts) > 0 {
		out.SeasonNumber = leadingInt(parts[len(parts)-1])
	}
	parts = popN(parts, 1)
	out.Collection = strings.Join(parts, " ")

	return out
}

// ParseEpisode parses an episode file name of the form "<Show> - <Title>.<ext>".
// Names without the " - " separator use the whole stem as the title.
func ParseEpisode(name string) EpisodeName {
	stem := rtrim(substr(name, 0, -extensionLen))
	parts := strings.Split(stem, " - ")
	if len(parts) < 2 {
		return EpisodeName{Title: stem}
	}
	return EpisodeName{Title: parts[1]}
}

func popN(parts []string, n int) []string {
	if n >= len(parts) {
		return parts[:0]
	}
	return parts[:len(parts)-n]
}
