package ingest

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultExtension is the media file extension ingested when none is configured.
const DefaultExtension = ".mp4"

// Eligible reports whether a directory entry name is a media file to ingest:
// not hidden, not starting with "_", and ending with ext.
func Eligible(name, ext string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	return strings.HasSuffix(name, ext)
}

// ScanFiles returns the eligible file names in dir, sorted.
func ScanFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !Eligible(entry.Name(), ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ScanDirectories returns the names of the visible subdirectories of dir, sorted.
func ScanDirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
