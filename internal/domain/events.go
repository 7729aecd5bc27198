package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventAlbumDiscovered    EventType = "AlbumDiscovered"
	EventScanStarted        EventType = "ScanStarted"
	EventScanCompleted      EventType = "ScanCompleted"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventThumbnailCreated   EventType = "ThumbnailCreated"
	EventThumbnailsComplete EventType = "ThumbnailsComplete"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// AlbumDiscoveredEvent is emitted for every album found during a scan
type AlbumDiscoveredEvent struct {
	Album Album
}

func (e AlbumDiscoveredEvent) Type() EventType { return EventAlbumDiscovered }

// ScanStartedEvent is emitted when album scanning begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when album scanning completes
type ScanCompletedEvent struct {
	Result ScanResult
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BaseDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ThumbnailCreatedEvent is emitted for every thumbnail written
type ThumbnailCreatedEvent struct {
	Source string
	Target string
}

func (e ThumbnailCreatedEvent) Type() EventType { return EventThumbnailCreated }

// ThumbnailsCompleteEvent is emitted when a thumbnail run finishes
type ThumbnailsCompleteEvent struct {
	Created int
	Skipped int
	Failed  int
}

func (e ThumbnailsCompleteEvent) Type() EventType { return EventThumbnailsComplete }
