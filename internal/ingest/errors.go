package ingest

import "errors"

// ErrQuit indicates the user answered quit at a confirmation gate.
var ErrQuit = errors.New("quit by user")
