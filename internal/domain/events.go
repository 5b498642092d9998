package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectoryChanged EventType = "DirectoryChanged"
	EventDirectoryLoaded  EventType = "DirectoryLoaded"
	EventEntryDeleted     EventType = "EntryDeleted"
	EventDeleteFailed     EventType = "DeleteFailed"
	EventEntryRenamed     EventType = "EntryRenamed"
	EventClipboardChanged EventType = "ClipboardChanged"
	EventPasteCompleted   EventType = "PasteCompleted"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectoryChangedEvent is emitted when the session moves to another directory
type DirectoryChangedEvent struct {
	From string
	To   string
}

func (e DirectoryChangedEvent) Type() EventType { return EventDirectoryChanged }

// DirectoryLoadedEvent is emitted after a listing has been read
type DirectoryLoadedEvent struct {
	Path    string
	Entries int
}

func (e DirectoryLoadedEvent) Type() EventType { return EventDirectoryLoaded }

// EntryDeletedEvent is emitted when a delete removed its target
type EntryDeletedEvent struct {
	Path  string
	IsDir bool
	Stage string // name of the stage that removed the target
}

func (e EntryDeletedEvent) Type() EventType { return EventEntryDeleted }

// DeleteFailedEvent is emitted when the target survived every stage
type DeleteFailedEvent struct {
	Path   string
	IsDir  bool
	Reason string
}

func (e DeleteFailedEvent) Type() EventType { return EventDeleteFailed }

// EntryRenamedEvent is emitted after a successful rename
type EntryRenamedEvent struct {
	OldPath string
	NewPath string
}

func (e EntryRenamedEvent) Type() EventType { return EventEntryRenamed }

// ClipboardChangedEvent is emitted when an entry is copied or cut. Item is nil when cleared.
type ClipboardChangedEvent struct {
	Item *ClipboardItem
}

func (e ClipboardChangedEvent) Type() EventType { return EventClipboardChanged }

// PasteCompletedEvent is emitted after a copy or move landed in the target directory
type PasteCompletedEvent struct {
	Source      string
	Destination string
	Moved       bool
}

func (e PasteCompletedEvent) Type() EventType { return EventPasteCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	ShowHidden bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a user-facing setting changes and should be persisted
type ConfigChangedEvent struct {
	ShowHidden bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
