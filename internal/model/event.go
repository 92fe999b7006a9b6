package model

// EventKind is the kind of a raw file-system change.
type EventKind string

const (
	// EventAdd is emitted when a file appears.
	EventAdd EventKind = "add"
	// EventChange is emitted when a file's content is written.
	EventChange EventKind = "change"
	// EventUnlink is emitted when a file is removed or renamed away.
	EventUnlink EventKind = "unlink"
)

// FileEvent is a single raw change notification for a file.
type FileEvent struct {
	Kind EventKind
	Path Path
}
