// Package ingest drives an interactive ingestion run: it scans a directory,
// asks the user to confirm what it found, builds records and hands the
// confirmed batch to a Dispatcher.
//
// Two channels are independent. Loose files in the directory become movies
// for every category except episode. Subdirectories become seasons for the
// episode and documentary categories. Each channel, and each subdirectory,
// has its own confirmation gates; answering quit at any gate ends the run
// without writing anything.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/persist"
)

// Result is the outcome of a run.
type Result struct {
	State  State
	Batch  persist.Batch
	Report *persist.Report // nil unless dispatched
}

// Orchestrator runs one ingestion.
type Orchestrator struct {
	settings   Settings
	builder    RecordBuilder
	prompter   Prompter
	reporter   Reporter
	dispatcher Dispatcher
	log        *slog.Logger

	state   State
	history []State
}

// New creates an orchestrator.
func New(settings Settings, builder RecordBuilder, prompter Prompter, reporter Reporter, dispatcher Dispatcher, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	if settings.Extension == "" {
		settings.Extension = DefaultExtension
	}
	return &Orchestrator{
		settings:   settings,
		builder:    builder,
		prompter:   prompter,
		reporter:   reporter,
		dispatcher: dispatcher,
		log:        log,
	}
}

// State returns the current state.
func (o *Orchestrator) State() State { return o.state }

// History returns every state the run passed through, in order.
func (o *Orchestrator) History() []State {
	return append([]State(nil), o.history...)
}

// Settings returns the settings of the run, including the chosen category.
func (o *Orchestrator) Settings() Settings { return o.settings }

func (o *Orchestrator) enter(s State) {
	o.state = s
	o.history = append(o.history, s)
	o.log.Debug("state", "state", s.String())
}

// Run executes the run to a terminal state. A quit answer returns ErrQuit
// with nothing dispatched. Declined settings end the run Aborted without error.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	err := o.run(ctx, res)
	if err != nil && !o.state.Terminal() {
		o.enter(StateAborted)
	}
	res.State = o.state
	return res, err
}

func (o *Orchestrator) run(ctx context.Context, res *Result) error {
	o.enter(StateCollectingSettings)
	if !o.settings.Category.Valid() {
		category, err := o.prompter.Category(ctx)
		if err != nil {
			return err
		}
		o.settings.Category = category
	}

	ok, err := o.prompter.ConfirmSettings(ctx, o.settings)
	if err != nil {
		return err
	}
	if !ok {
		o.log.Info("settings declined")
		o.enter(StateAborted)
		return nil
	}
	o.enter(StateSettingsConfirmed)
	o.log.Info("run started", "directory", o.settings.Directory, "category", o.settings.Category)

	category := o.settings.Category
	o.reporter.ScanStarted(category.HasSeasons())

	if category.HasFiles() {
		movies, err := o.files(ctx)
		if err != nil {
			return err
		}
		res.Batch.Movies = movies
	}

	if category.HasSeasons() {
		units, err := o.subdirectories(ctx)
		if err != nil {
			return err
		}
		res.Batch.Seasons = units
	}

	if res.Batch.Empty() {
		o.reporter.NothingToProcess()
		o.enter(StateDone)
		return nil
	}

	o.enter(StateDispatch)
	report, err := o.dispatcher.Dispatch(ctx, res.Batch)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	res.Report = report
	o.reporter.Persisted(report)
	o.enter(StateDone)
	return nil
}

// confirm asks a gate question. Quit moves the run to Aborted.
func (o *Orchestrator) confirm(ctx context.Context, subject Subject, count int) (bool, error) {
	answer, err := o.prompter.Confirm(ctx, subject, count)
	if err != nil {
		return false, err
	}
	o.log.Debug("gate", "subject", subject, "count", count, "answer", answer.String())
	switch answer {
	case AnswerQuit:
		o.enter(StateAborted)
		return false, ErrQuit
	case AnswerYes:
		return true, nil
	default:
		return false, nil
	}
}

// files handles the loose-file channel.
func (o *Orchestrator) files(ctx context.Context) ([]*library.Movie, error) {
	o.enter(StateScanningFiles)
	dir := o.settings.Directory
	names, err := ScanFiles(dir, o.settings.Extension)
	if err != nil {
		return nil, err
	}
	o.reporter.FilesFound("", names)
	if len(names) == 0 {
		return nil, nil
	}

	ok, err := o.confirm(ctx, SubjectFile, len(names))
	if err != nil || !ok {
		return nil, err
	}
	o.enter(StateFilesConfirmed)

	progress := o.reporter.Building(len(names))
	movies := make([]*library.Movie, 0, len(names))
	for _, name := range names {
		m, err := o.builder.Movie(ctx, dir, name)
		if err != nil {
			progress.Done()
			return nil, err
		}
		movies = append(movies, m)
		progress.Step()
	}
	progress.Done()

	sort.SliceStable(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })
	o.enter(StateObjectsBuilt)
	o.reporter.MediaBuilt(asMedia(movies))

	ok, err = o.confirm(ctx, SubjectObject, len(movies))
	if err != nil || !ok {
		return nil, err
	}
	o.enter(StateObjectsConfirmed)
	return movies, nil
}

// subdirectories handles the subdirectories-as-seasons channel.
func (o *Orchestrator) subdirectories(ctx context.Context) ([]persist.SeasonUnit, error) {
	o.enter(StateScanningSubdirectories)
	root := o.settings.Directory
	dirs, err := ScanDirectories(root)
	if err != nil {
		return nil, err
	}
	o.reporter.DirectoriesFound(dirs)
	if len(dirs) == 0 {
		return nil, nil
	}

	ok, err := o.confirm(ctx, SubjectDirectory, len(dirs))
	if err != nil || !ok {
		return nil, err
	}
	o.enter(StateDirectoriesConfirmed)

	var units []persist.SeasonUnit
	for _, d := range dirs {
		unit, ok, err := o.subdirectory(ctx, root, d)
		if err != nil {
			return nil, err
		}
		if ok {
			units = append(units, unit)
		}
	}
	return units, nil
}

func (o *Orchestrator) subdirectory(ctx context.Context, root, name string) (persist.SeasonUnit, bool, error) {
	path := filepath.Join(root, name)
	names, err := ScanFiles(path, o.settings.Extension)
	if err != nil {
		return persist.SeasonUnit{}, false, err
	}
	o.reporter.FilesFound(name, names)
	if len(names) == 0 {
		o.log.Debug("no files in directory", "directory", name)
		return persist.SeasonUnit{}, false, nil
	}

	ok, err := o.confirm(ctx, SubjectFile, len(names))
	if err != nil {
		return persist.SeasonUnit{}, false, err
	}
	if !ok {
		o.reporter.Skipped(name)
		return persist.SeasonUnit{}, false, nil
	}
	o.enter(StateFilesConfirmed)

	progress := o.reporter.Building(len(names))
	episodes := make([]*library.Episode, 0, len(names))
	for _, file := range names {
		e, err := o.builder.Episode(ctx, path, file)
		if err != nil {
			progress.Done()
			return persist.SeasonUnit{}, false, err
		}
		episodes = append(episodes, e)
		progress.Step()
	}
	progress.Done()
	o.enter(StateObjectsBuilt)
	o.reporter.MediaBuilt(asMedia(episodes))

	ok, err = o.confirm(ctx, SubjectObject, len(episodes))
	if err != nil {
		return persist.SeasonUnit{}, false, err
	}
	if !ok {
		o.reporter.Skipped(name)
		return persist.SeasonUnit{}, false, nil
	}
	o.enter(StateObjectsConfirmed)

	return persist.SeasonUnit{
		Directory: name,
		Season:    o.builder.Season(ctx, name),
		Episodes:  episodes,
	}, true, nil
}

func asMedia[T library.Media](items []T) []library.Media {
	out := make([]library.Media, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
