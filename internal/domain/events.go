package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentLoaded  EventType = "DocumentLoaded"
	EventDocumentChanged EventType = "DocumentChanged"
	EventDocumentRemoved EventType = "DocumentRemoved"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentLoadedEvent is emitted when a document has been read and parsed
type DocumentLoadedEvent struct {
	Doc *Document
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// DocumentChangedEvent is emitted when the watched file changes on disk
type DocumentChangedEvent struct {
	Path string
}

func (e DocumentChangedEvent) Type() EventType { return EventDocumentChanged }

// DocumentRemovedEvent is emitted when the watched file is deleted or renamed away
type DocumentRemovedEvent struct {
	Path string
}

func (e DocumentRemovedEvent) Type() EventType { return EventDocumentRemoved }

// ErrorEvent is emitted when a background component fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
