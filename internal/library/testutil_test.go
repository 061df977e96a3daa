package library

import (
	"context"
	"testing"
	"time"

	"github.com/vmunix/movieshelf/internal/migrations"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, d, err := Open(context.Background(), ConnConfig{Driver: "sqlite"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(migrations.Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return NewStore(db, d)
}

var testDay = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func testMovie(title string) *Movie {
	m := NewMovie(testDay)
	m.Title = title
	m.Year = 1999
	m.Duration = "2:19:00"
	m.SizeGB = 1.37
	m.Technical = Technical{
		FileFormat:      "mp4",
		MimeType:        "video/mp4",
		Bitrate:         "4.5 Mbps",
		VideoDataFormat: "h264",
		VideoResolution: "1920x1080",
		VideoFrameRate:  23.976,
		AudioCodec:      "aac",
		AudioChannels:   2,
	}
	return m
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}
