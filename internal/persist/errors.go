package persist

import "errors"

var (
	// ErrUnresolvedSeason indicates episodes were handed over before their
	// season had a generated id.
	ErrUnresolvedSeason = errors.New("season id not resolved")

	// ErrNoStore indicates a dispatch without a database to write to.
	ErrNoStore = errors.New("no database configured")
)
