package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/lookup"
	"github.com/vmunix/movieshelf/internal/probe"
	"github.com/vmunix/movieshelf/pkg/naming"
)

// Builder turns file and directory names into library records.
type Builder struct {
	prober   probe.Prober
	resolver lookup.Resolver
	now      func() time.Time
	log      *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock sets the clock used for added dates.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a record builder.
func NewBuilder(prober probe.Prober, resolver lookup.Resolver, log *slog.Logger, opts ...BuilderOption) *Builder {
	if log == nil {
		log = slog.Default()
	}
	b := &Builder{prober: prober, resolver: resolver, now: time.Now, log: log}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Movie builds a movie from a file in dir.
func (b *Builder) Movie(ctx context.Context, dir, name string) (*library.Movie, error) {
	path := filepath.Join(dir, name)
	parsed := naming.ParseMedia(name)

	m := library.NewMovie(b.now())
	m.Title = parsed.Title
	m.Year = parsed.Year
	m.Edition = parsed.Edition
	m.Language = parsed.Language

	size, err := b.sizeGB(path)
	if err != nil {
		return nil, err
	}
	m.SizeGB = size

	m.ReferenceURL, _ = b.resolver.ReferenceURL(ctx, m.Title)
	b.applyFacts(ctx, path, &m.Duration, &m.Technical)
	return m, nil
}

// Episode builds an episode from a file in dir. The season id is assigned
// when the season is written.
func (b *Builder) Episode(ctx context.Context, dir, name string) (*library.Episode, error) {
	path := filepath.Join(dir, name)
	parsed := naming.ParseEpisode(name)

	e := library.NewEpisode()
	e.Title = parsed.Title
	e.DownloadName = name

	size, err := b.sizeGB(path)
	if err != nil {
		return nil, err
	}
	e.SizeGB = size

	b.applyFacts(ctx, path, &e.Duration, &e.Technical)
	return e, nil
}

// Season builds a season from a subdirectory name. The season number only
// ends up in the reference URL.
func (b *Builder) Season(ctx context.Context, dirName string) *library.Season {
	parsed := naming.ParseSeason(dirName)

	s := library.NewSeason(b.now())
	s.Title = parsed.Title
	s.Year = parsed.Year
	s.Edition = parsed.Edition
	s.Language = parsed.Language
	s.EpisodeCount = parsed.EpisodeCount
	s.Collection = parsed.Collection

	ref, resolved := b.resolver.ReferenceURL(ctx, s.Title)
	if resolved {
		ref += fmt.Sprintf("episodes?season=%d", parsed.SeasonNumber)
	}
	s.ReferenceURL = ref
	return s
}

// sizeGB returns the file size in gigabytes. A size that does not format
// as G or M is logged and left at 0.
func (b *Builder) sizeGB(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	size, err := naming.SizeGBFromBytes(info.Size())
	if errors.Is(err, naming.ErrUnknownSizeUnit) {
		b.log.Warn("could not calculate the filesize (not G or M)", "path", path, "bytes", info.Size(), "error", err)
		return 0, nil
	}
	return size, err
}

func (b *Builder) applyFacts(ctx context.Context, path string, duration *string, t *library.Technical) {
	facts, err := b.prober.Probe(ctx, path)
	if err != nil {
		b.log.Warn("probe failed", "path", path, "error", err)
		return
	}

	if facts.Duration != "" {
		*duration = facts.Duration
	}
	t.FileFormat = facts.FileFormat
	t.MimeType = facts.MimeType
	t.Encoding = facts.Encoding
	t.Bitrate = naming.HumanBitrate(facts.Bitrate)
	t.VideoDataFormat = facts.Video.DataFormat
	t.VideoResolution = facts.Video.Resolution()
	t.VideoPixelAspectRatio = facts.Video.PixelAspectRatio
	t.VideoFrameRate = facts.Video.FrameRate

	if len(facts.Audio) == 0 {
		b.log.Warn("no audio streams", "path", path)
		return
	}
	a := facts.Audio[0]
	t.AudioCodec = a.Codec
	t.AudioSampleRate = a.SampleRate
	t.AudioBitsPerSample = a.BitsPerSample
	t.AudioChannelMode = a.ChannelMode
	t.AudioChannels = a.Channels
}
