package core

// EventKind identifies what a gameplay event reports.
type EventKind int

const (
	// EventAnswer is emitted when a quiz answer has been graded.
	EventAnswer EventKind = iota
	// EventDrop is emitted when a drag gesture ends.
	EventDrop
)

// String returns a stable name used when persisting events.
func (k EventKind) String() string {
	switch k {
	case EventAnswer:
		return "answer"
	case EventDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Event is a gameplay outcome the platform may record.
type Event struct {
	Kind    EventKind
	Item    string // Question ID or widget name
	Choice  int    // Selected option for answers, attempt number for drops
	Correct bool   // Graded correct or dropped on a valid target
}
