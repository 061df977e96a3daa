package probe

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Facts are the technical properties of a video file.
type Facts struct {
	Duration   string // "m:ss" or "h:mm:ss"
	FileFormat string
	MimeType   string
	Encoding   string
	Bitrate    float64 // bits per second
	Video      Video
	Audio      []Audio
}

// Video describes the first video stream.
type Video struct {
	DataFormat       string
	Width            int
	Height           int
	PixelAspectRatio float64
	FrameRate        float64
}

// Resolution returns "<w>x<h>".
func (v Video) Resolution() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Audio describes one audio stream.
type Audio struct {
	Codec         string
	SampleRate    float64
	BitsPerSample int
	ChannelMode   string
	Channels      int
}

// Prober reads the technical facts of a file.
type Prober interface {
	Probe(ctx context.Context, path string) (Facts, error)
}

// FFProbe is a Prober backed by the ffprobe binary.
type FFProbe struct {
	binary string
	log    *slog.Logger
}

// New creates an ffprobe prober. An empty binary means "ffprobe" on PATH.
func New(binary string, log *slog.Logger) *FFProbe {
	if log == nil {
		log = slog.Default()
	}
	return &FFProbe{binary: binary, log: log}
}

// Probe runs ffprobe on path. The mime type is sniffed from the file content.
func (p *FFProbe) Probe(ctx context.Context, path string) (Facts, error) {
	result, err := Inspect(ctx, p.binary, path)
	if err != nil {
		return Facts{}, err
	}
	facts := FromResult(result, filepath.Ext(path))

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		p.log.Warn("mime type detection failed", "path", path, "error", err)
	} else {
		facts.MimeType = mt.String()
	}
	p.log.Debug("probed", "path", path, "format", facts.FileFormat, "duration", facts.Duration, "audio_streams", len(facts.Audio))
	return facts, nil
}

// FromResult maps ffprobe output to Facts. ext selects the file format when
// the container reports several names.
func FromResult(r Result, ext string) Facts {
	facts := Facts{
		Duration:   FormatDuration(r.DurationSeconds()),
		FileFormat: fileFormat(r.Format.FormatName, ext),
		Encoding:   r.Format.Tags["encoder"],
		Bitrate:    r.BitRate(),
	}

	if v, ok := r.VideoStream(); ok {
		facts.Video = Video{
			DataFormat:       v.CodecName,
			Width:            v.Width,
			Height:           v.Height,
			PixelAspectRatio: parseRatio(v.SampleAspectRatio),
			FrameRate:        round3(parseRatio(v.RFrameRate)),
		}
		if facts.Video.FrameRate == 0 {
			facts.Video.FrameRate = round3(parseRatio(v.AvgFrameRate))
		}
	}

	for _, a := range r.AudioStreams() {
		sr := parseFloat(a.SampleRate)
		if math.IsNaN(sr) {
			sr = 0
		}
		bits := a.BitsPerSample
		if bits == 0 {
			if raw := parseFloat(a.BitsPerRawSample); !math.IsNaN(raw) {
				bits = int(raw)
			}
		}
		facts.Audio = append(facts.Audio, Audio{
			Codec:         a.CodecName,
			SampleRate:    sr,
			BitsPerSample: bits,
			ChannelMode:   a.ChannelLayout,
			Channels:      a.Channels,
		})
	}
	return facts
}

// fileFormat picks the entry of ffprobe's comma separated format_name that
// matches the extension, or the first entry.
func fileFormat(formatName, ext string) string {
	names := strings.Split(formatName, ",")
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, name := range names {
		if strings.TrimSpace(name) == ext {
			return ext
		}
	}
	return strings.TrimSpace(names[0])
}

// FormatDuration renders seconds as "m:ss", or "h:mm:ss" from one hour up.
func FormatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
