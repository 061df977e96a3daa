package ingest

//go:generate mockgen -source=prompt.go -destination=mocks/prompt.go -package=mocks

import (
	"context"

	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/persist"
)

// Answer is the reply to a confirmation gate.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	AnswerQuit
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerQuit:
		return "quit"
	default:
		return "no"
	}
}

// Subject is what a confirmation gate asks about.
type Subject string

const (
	SubjectFile      Subject = "file"
	SubjectDirectory Subject = "directory"
	SubjectObject    Subject = "object"
)

// Settings are confirmed by the user before a run scans anything.
type Settings struct {
	Target         string // label of the target database
	TunnelRequired bool
	Directory      string
	Category       library.Category // prompted for when empty
	Extension      string
}

// Prompter asks the user questions.
type Prompter interface {
	Category(ctx context.Context) (library.Category, error)
	ConfirmSettings(ctx context.Context, s Settings) (bool, error)
	Confirm(ctx context.Context, subject Subject, count int) (Answer, error)
}

// Progress tracks record building.
type Progress interface {
	Step()
	Done()
}

// Reporter shows the user what a run found and did.
type Reporter interface {
	ScanStarted(seasons bool)
	FilesFound(dir string, names []string)
	DirectoriesFound(names []string)
	Building(total int) Progress
	MediaBuilt(items []library.Media)
	Skipped(dir string)
	NothingToProcess()
	Persisted(report *persist.Report)
}

// Dispatcher persists a confirmed batch.
type Dispatcher interface {
	Dispatch(ctx context.Context, b persist.Batch) (*persist.Report, error)
}

// RecordBuilder builds records from names on disk.
type RecordBuilder interface {
	Movie(ctx context.Context, dir, name string) (*library.Movie, error)
	Episode(ctx context.Context, dir, name string) (*library.Episode, error)
	Season(ctx context.Context, dirName string) *library.Season
}

var _ RecordBuilder = (*Builder)(nil)
