package ui

import (
	"markview/internal/domain"
	"markview/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// documentLoadedMsg contains the result of a document load command
type documentLoadedMsg struct {
	doc *domain.Document
	err error
}
