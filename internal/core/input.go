package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move focus or dragged widget up
	ActionDown           // S, Down arrow - move focus or dragged widget down
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionSelect         // Space - toggle checkbox, pick up or drop
	ActionConfirm        // Enter - submit answer or drop
	ActionNext           // N - skip to next question
	ActionChoice1        // 1 - check first answer
	ActionChoice2        // 2 - check second answer
	ActionChoice3        // 3 - check third answer
	ActionChoice4        // 4 - check fourth answer
	ActionBack           // B, Escape - cancel drag, back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionNext:
		return "Next"
	case ActionChoice1:
		return "Choice1"
	case ActionChoice2:
		return "Choice2"
	case ActionChoice3:
		return "Choice3"
	case ActionChoice4:
		return "Choice4"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ChoiceIndex returns the zero-based answer index for Choice1..Choice4.
func (a Action) ChoiceIndex() (int, bool) {
	if a >= ActionChoice1 && a <= ActionChoice4 {
		return int(a - ActionChoice1), true
	}
	return -1, false
}

// PointerKind distinguishes the phases of a pointer gesture.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// Pointer is a single left-button mouse event in screen cells.
type Pointer struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input state during one simulation tick.
// Actions are an unordered set; pointer events keep arrival order because
// press, motion and release must be replayed in sequence.
type InputFrame struct {
	Actions  map[Action]bool
	pointers []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to this frame.
// Consecutive motion events are coalesced into the latest one.
func (f *InputFrame) AddPointer(p Pointer) {
	if n := len(f.pointers); n > 0 && p.Kind == PointerMotion && f.pointers[n-1].Kind == PointerMotion {
		f.pointers[n-1] = p
		return
	}
	f.pointers = append(f.pointers, p)
}

// Pointers returns the pointer events of this frame in arrival order.
func (f InputFrame) Pointers() []Pointer {
	return f.pointers
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.pointers) == 0
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointers = f.pointers[:0]
}

// ClearActions resets the actions but keeps pending pointer events.
func (f *InputFrame) ClearActions() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.pointers) > 0 {
		clone.pointers = append([]Pointer(nil), f.pointers...)
	}
	return clone
}
