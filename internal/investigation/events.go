package investigation

import (
	"context"

	"github.com/myrjola/detectivequest/internal/mansion"
)

// Action is what the player chose to do in a room.
type Action int

const (
	GoLeft Action = iota
	GoRight
	Exit
)

func (a Action) String() string {
	switch a {
	case GoLeft:
		return "left"
	case GoRight:
		return "right"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Option is a door the player may take.
type Option struct {
	Direction mansion.Direction
	// Room is the name of the room behind the door.
	Room string
}

// Input asks the player for decisions. Implementations block until the player answers.
type Input interface {
	// PromptDirection asks where to go next. options holds only the doors that exist.
	// Unrecognised answers must be reported as ErrInvalidInput, end of input as io.EOF.
	PromptDirection(ctx context.Context, options []Option) (Action, error)
	// PromptAccusation asks for the name of the accused suspect.
	PromptAccusation(ctx context.Context) (string, error)
}

// Presenter shows what happens during the investigation.
type Presenter interface {
	Present(ctx context.Context, e Event)
}

// EventKind tells which fields of an Event are set.
type EventKind int

const (
	// RoomEntered sets Room.
	RoomEntered EventKind = iota
	// ClueFound sets Room and Clue.
	ClueFound
	// PathRejected sets Room and Direction.
	PathRejected
	// InputRejected sets Err.
	InputRejected
	// DeadEnd sets Room.
	DeadEnd
	// LeftMansion sets Room.
	LeftMansion
	// CluesReviewed sets Clues.
	CluesReviewed
	// NoCluesCollected has no fields.
	NoCluesCollected
	// VerdictReached sets Verdict.
	VerdictReached
)

func (k EventKind) String() string {
	switch k {
	case RoomEntered:
		return "room-entered"
	case ClueFound:
		return "clue-found"
	case PathRejected:
		return "path-rejected"
	case InputRejected:
		return "input-rejected"
	case DeadEnd:
		return "dead-end"
	case LeftMansion:
		return "left-mansion"
	case CluesReviewed:
		return "clues-reviewed"
	case NoCluesCollected:
		return "no-clues-collected"
	case VerdictReached:
		return "verdict-reached"
	default:
		return "unknown"
	}
}

// Event is a state change worth showing to the player.
type Event struct {
	Kind      EventKind
	Room      string
	Clue      string
	Direction mansion.Direction
	Clues     []string
	Verdict   Verdict
	Err       error
}
