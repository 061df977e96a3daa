package ingest

// State is a step of an ingestion run.
type State int

const (
	StateCollectingSettings State = iota
	StateSettingsConfirmed
	StateScanningFiles
	StateFilesConfirmed
	StateObjectsBuilt
	StateObjectsConfirmed
	StateScanningSubdirectories
	StateDirectoriesConfirmed
	StateDispatch
	StateDone
	StateAborted
)

var stateNames = map[State]string{
	StateCollectingSettings:     "collecting_settings",
	StateSettingsConfirmed:      "settings_confirmed",
	StateScanningFiles:          "scanning_files",
	StateFilesConfirmed:         "files_confirmed",
	StateObjectsBuilt:           "objects_built",
	StateObjectsConfirmed:       "objects_confirmed",
	StateScanningSubdirectories: "scanning_subdirectories",
	StateDirectoriesConfirmed:   "directories_confirmed",
	StateDispatch:               "dispatch",
	StateDone:                   "done",
	StateAborted:                "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the run is over.
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}
