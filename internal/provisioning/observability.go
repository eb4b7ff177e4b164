package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal logging surface used throughout provisioning.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during
// provisioning and teardown.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType // Type of event
	Phase     string    // Phase name ("create", "delete", "rollback")
	Message   string    // Human-readable message
	Resource  string    // Resource ID if applicable
	Timestamp time.Time // When the event occurred
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceFailed indicates resource creation failed.
	EventResourceFailed EventType = "resource.failed"
	// EventResourceDeleted indicates a resource was deleted successfully.
	EventResourceDeleted EventType = "resource.deleted"
	// EventRollbackStarted indicates cleanup of a partially created VPC began.
	EventRollbackStarted EventType = "rollback.started"
	// EventRollbackFailed indicates the cleanup attempt itself failed.
	EventRollbackFailed EventType = "rollback.failed"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event logs a structured event as a single line.
func (o *ConsoleObserver) Event(event Event) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", event.Phase, event.Type)
	if event.Resource != "" {
		fmt.Fprintf(&b, " %s", event.Resource)
	}
	if event.Message != "" {
		fmt.Fprintf(&b, ": %s", event.Message)
	}
	log.Print(b.String())
}
