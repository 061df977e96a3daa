package naming

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence grades how well a lookup result matches the title it was found for.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the similarity between a parsed title and a candidate title.
type Match struct {
	Candidate  string
	Score      float64 // Jaro-Winkler similarity, 0..1
	Confidence Confidence
}

// MatchTitle scores candidate against title using Jaro-Winkler similarity on
// cleaned titles. Sequel and season numbers matter: a shared number earns a
// small bonus, a missing or different one a penalty.
func MatchTitle(title, candidate string) Match {
	a, b := CleanTitle(title), CleanTitle(candidate)
	score := float64(edlib.JaroWinklerSimilarity(a, b))
	score = adjustForNumbers(score, numberRegex.FindAllString(a, -1), numberRegex.FindAllString(b, -1))

	m := Match{Candidate: candidate, Score: score}
	switch {
	case score >= 0.95:
		m.Confidence = ConfidenceHigh
	case score >= 0.85:
		m.Confidence = ConfidenceMedium
	case score >= 0.70:
		m.Confidence = ConfidenceLow
	}
	return m
}

// BestMatch returns the index and match of the candidate closest to title,
// or -1 when there are no candidates.
func BestMatch(title string, candidates []string) (int, Match) {
	best, idx := Match{}, -1
	for i, c := range candidates {
		if m := MatchTitle(title, c); idx < 0 || m.Score > best.Score {
			best, idx = m, i
		}
	}
	return idx, best
}

func adjustForNumbers(score float64, titleNums, candidateNums []string) float64 {
	if len(titleNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}
	have := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		have[n] = true
	}
	for _, n := range titleNums {
		if have[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
